package geom

import "sort"

// Polygon clipping engine using Vatti's scanline algorithm.
// Based on "A generic solution to polygon clipping" by Bala R. Vatti (1992).
//
// Algorithm overview:
//  1. Build a vertex chain per input path and tag its local minima.
//  2. Collect every scanline Y the chain touches.
//  3. Sweep scanlines bottom to top, inserting edges starting at each
//     local minimum into an X-sorted active edge list (AEL).
//  4. At every scanline, track running winding counts per side
//     (subject/clip), swap adjacent edges that have crossed, and emit
//     an output point wherever an edge's contribution status flips.
//  5. Drop edges that reached their top and fold each output record's
//     point chain into a result polygon.

// PathType marks which side of a boolean operation a path belongs to.
type PathType uint8

const (
	PathTypeSubject PathType = iota
	PathTypeClip
)

// localMinima is a vertex where an edge pair starts climbing, tagged
// with the path it came from.
type localMinima struct {
	Vertex   *vertex
	PathType PathType
	IsOpen   bool
}

// edge is one upward run between a local minimum and the next local
// maximum, tracked in the active edge list while its Y range overlaps
// the current scanline.
type edge struct {
	Bot, Top   Point
	CurrX      int64
	Dx         float64 // dx per unit y
	VertexTop  *vertex
	LocalMin   *localMinima
	WindDx     int // +1 (right bound) or -1 (left bound)
	WindCount  int // subject winding at CurrX
	WindCount2 int // clip winding at CurrX
	OutRec     *outRec
	NextInAEL  *edge
	PrevInAEL  *edge
}

type outRecState uint8

const (
	outRecStateUndefined outRecState = iota
	outRecStateOuter
)

// outRec is one output polygon under construction, its points held in
// a circular doubly-linked list so new points can be appended on
// either end without shifting everything else.
type outRec struct {
	Idx   int
	State outRecState
	Pts   *outPt
}

type outPt struct {
	Pt         Point
	Next, Prev *outPt
}

// vattiEngine runs the scanline sweep described above for one boolean
// operation.
type vattiEngine struct {
	clipType    ClipType
	fillRule    FillRule
	minimaList  []*localMinima
	activeEdges *edge
	outRecords  []*outRec
	scanlineSet map[int64]bool
}

func newVattiEngine(clipType ClipType, fillRule FillRule) *vattiEngine {
	return &vattiEngine{clipType: clipType, fillRule: fillRule, scanlineSet: make(map[int64]bool)}
}

// executeClipping runs the full sweep and returns the closed-path
// solution. Open subject paths are accepted but not clipped; the open
// solution is always empty.
func (ve *vattiEngine) executeClipping(subjects, subjectsOpen, clips Shape) (solution, solutionOpen Shape, err error) {
	if err := ve.addPaths(subjects, PathTypeSubject, false); err != nil {
		return nil, nil, err
	}
	if err := ve.addPaths(clips, PathTypeClip, false); err != nil {
		return nil, nil, err
	}

	if len(ve.minimaList) == 0 {
		return Shape{}, Shape{}, nil
	}

	ve.sortLocalMinima()
	ve.executeScanlineAlgorithm()

	return ve.buildSolutionPaths(), Shape{}, nil
}

func (ve *vattiEngine) addPaths(paths Shape, pathType PathType, isOpen bool) error {
	for _, path := range paths {
		minLen := 3
		if isOpen {
			minLen = 2
		}
		if len(path) < minLen {
			continue
		}
		if err := ve.addPath(path, pathType, isOpen); err != nil {
			return err
		}
	}
	return nil
}

func (ve *vattiEngine) addPath(path Polygon, pathType PathType, isOpen bool) error {
	startVertex := createVertexFromPath(path, isOpen)
	if startVertex == nil {
		return nil
	}
	if !validateVertexChain(startVertex) {
		return ErrInvalidInput
	}

	for _, lm := range findLocalMinima(startVertex, pathType, isOpen) {
		ve.minimaList = append(ve.minimaList, lm)
		ve.scanlineSet[lm.Vertex.Pt.Y] = true
		if lm.Vertex.Next != nil {
			ve.scanlineSet[lm.Vertex.Next.Pt.Y] = true
		}
		if lm.Vertex.Prev != nil {
			ve.scanlineSet[lm.Vertex.Prev.Pt.Y] = true
		}
	}
	return nil
}

func (ve *vattiEngine) sortLocalMinima() {
	sort.Slice(ve.minimaList, func(i, j int) bool {
		if ve.minimaList[i].Vertex.Pt.Y != ve.minimaList[j].Vertex.Pt.Y {
			return ve.minimaList[i].Vertex.Pt.Y < ve.minimaList[j].Vertex.Pt.Y
		}
		return ve.minimaList[i].Vertex.Pt.X < ve.minimaList[j].Vertex.Pt.X
	})
}

func (ve *vattiEngine) getSortedScanlines() []int64 {
	scanlines := make([]int64, 0, len(ve.scanlineSet))
	for y := range ve.scanlineSet {
		scanlines = append(scanlines, y)
	}
	sort.Slice(scanlines, func(i, j int) bool { return scanlines[i] < scanlines[j] })
	return scanlines
}

func (ve *vattiEngine) executeScanlineAlgorithm() {
	minimaIndex := 0
	for _, y := range ve.getSortedScanlines() {
		// Existing edges must be repositioned to this scanline before
		// newly-starting edges are inserted, or the insertion sort in
		// insertEdgeIntoAEL compares against stale X values from the
		// previous scanline.
		ve.updateEdgePositions(y)
		minimaIndex = ve.insertLocalMinimaIntoAEL(minimaIndex, y)
		ve.processIntersections(y)
		ve.removeTopEdges(y)
	}
}

func (ve *vattiEngine) insertLocalMinimaIntoAEL(startIndex int, y int64) int {
	index := startIndex
	for index < len(ve.minimaList) && ve.minimaList[index].Vertex.Pt.Y == y {
		lm := ve.minimaList[index]
		left, right := ve.createEdgesFromLocalMinimum(lm)
		if left != nil {
			ve.insertEdgeIntoAEL(left)
		}
		if right != nil {
			ve.insertEdgeIntoAEL(right)
		}
		index++
	}
	return index
}

func (ve *vattiEngine) createEdgesFromLocalMinimum(lm *localMinima) (left, right *edge) {
	v := lm.Vertex
	if v.Prev != nil && v.Prev.Pt.Y > v.Pt.Y {
		left = ve.createEdge(v, v.Prev, lm, -1)
	}
	if v.Next != nil && v.Next.Pt.Y > v.Pt.Y {
		right = ve.createEdge(v, v.Next, lm, 1)
	}
	return left, right
}

func (ve *vattiEngine) createEdge(botVertex, topVertex *vertex, lm *localMinima, windDx int) *edge {
	e := &edge{
		Bot:       botVertex.Pt,
		Top:       topVertex.Pt,
		CurrX:     botVertex.Pt.X,
		VertexTop: topVertex,
		LocalMin:  lm,
		WindDx:    windDx,
	}
	if topVertex.Pt.Y != botVertex.Pt.Y {
		e.Dx = float64(topVertex.Pt.X-botVertex.Pt.X) / float64(topVertex.Pt.Y-botVertex.Pt.Y)
	}
	return e
}

func (ve *vattiEngine) insertEdgeIntoAEL(e *edge) {
	if ve.activeEdges == nil || e.CurrX < ve.activeEdges.CurrX {
		e.NextInAEL = ve.activeEdges
		if ve.activeEdges != nil {
			ve.activeEdges.PrevInAEL = e
		}
		ve.activeEdges = e
		return
	}

	curr := ve.activeEdges
	for curr.NextInAEL != nil && curr.NextInAEL.CurrX <= e.CurrX {
		curr = curr.NextInAEL
	}
	e.NextInAEL = curr.NextInAEL
	e.PrevInAEL = curr
	if curr.NextInAEL != nil {
		curr.NextInAEL.PrevInAEL = e
	}
	curr.NextInAEL = e
}

func (ve *vattiEngine) removeTopEdges(y int64) {
	e := ve.activeEdges
	for e != nil {
		next := e.NextInAEL
		if e.Top.Y == y {
			ve.removeEdgeFromAEL(e)
		}
		e = next
	}
}

func (ve *vattiEngine) updateEdgePositions(y int64) {
	for e := ve.activeEdges; e != nil; e = e.NextInAEL {
		ve.updateEdgeCurrentX(e, y)
	}
}

func (ve *vattiEngine) updateEdgeCurrentX(e *edge, y int64) {
	switch y {
	case e.Bot.Y:
		e.CurrX = e.Bot.X
	case e.Top.Y:
		e.CurrX = e.Top.X
	default:
		e.CurrX = e.Bot.X + int64(e.Dx*float64(y-e.Bot.Y)+0.5)
	}
}

func (ve *vattiEngine) removeEdgeFromAEL(e *edge) {
	if e.PrevInAEL != nil {
		e.PrevInAEL.NextInAEL = e.NextInAEL
	} else {
		ve.activeEdges = e.NextInAEL
	}
	if e.NextInAEL != nil {
		e.NextInAEL.PrevInAEL = e.PrevInAEL
	}
	e.NextInAEL, e.PrevInAEL = nil, nil
}

// processIntersections recomputes winding counts for the scanline,
// swaps adjacent edges whose X order crossed, and emits an output
// point at every edge whose fill-rule contribution flips. Edges ending
// exactly at this scanline are closed in reverse AEL order so their
// output record's point chain stays properly wound.
func (ve *vattiEngine) processIntersections(y int64) {
	hasEndingEdges := false
	for e := ve.activeEdges; e != nil; e = e.NextInAEL {
		if e.Top.Y == y {
			hasEndingEdges = true
			break
		}
	}

	// Edges whose paths crossed since the last scanline now sit out of
	// X order; repeatedly swap adjacent out-of-order pairs until the
	// list is sorted again before reading off contribution changes.
	for swapped := true; swapped; {
		swapped = false
		for e := ve.activeEdges; e != nil && e.NextInAEL != nil; e = e.NextInAEL {
			if ve.edgesIntersect(e, e.NextInAEL) {
				ve.swapAdjacentEdges(e, e.NextInAEL)
				swapped = true
			}
		}
	}

	ve.updateWindingCounts()

	type transition struct {
		edge *edge
		pt   Point
	}
	var transitions []transition

	prevContributing := false
	for e := ve.activeEdges; e != nil; e = e.NextInAEL {
		contributing := ve.isContributingEdge(e)
		if contributing != prevContributing {
			transitions = append(transitions, transition{edge: e, pt: Point{X: e.CurrX, Y: y}})
		}
		prevContributing = contributing
	}

	if hasEndingEdges && len(ve.outRecords) > 0 && len(transitions) > 0 {
		for i := len(transitions) - 1; i >= 0; i-- {
			ve.addOutputPoint(transitions[i].edge, transitions[i].pt)
		}
	} else {
		for _, t := range transitions {
			ve.addOutputPoint(t.edge, t.pt)
		}
	}
}

func (ve *vattiEngine) edgesIntersect(e1, e2 *edge) bool {
	return e1.CurrX > e2.CurrX
}

// swapAdjacentEdges relinks two adjacent active edges into the other
// order. Only their AEL position changes; each edge keeps its own
// CurrX, Dx and Bot/Top, which is what made the swap necessary in the
// first place.
func (ve *vattiEngine) swapAdjacentEdges(e1, e2 *edge) {
	if e1.NextInAEL != e2 {
		return
	}
	if e1.PrevInAEL != nil {
		e1.PrevInAEL.NextInAEL = e2
	} else {
		ve.activeEdges = e2
	}
	if e2.NextInAEL != nil {
		e2.NextInAEL.PrevInAEL = e1
	}
	e2.PrevInAEL = e1.PrevInAEL
	e1.NextInAEL = e2.NextInAEL
	e1.PrevInAEL = e2
	e2.NextInAEL = e1
}

func (ve *vattiEngine) updateWindingCounts() {
	windSubject, windClip := 0, 0
	for e := ve.activeEdges; e != nil; e = e.NextInAEL {
		if e.LocalMin.PathType == PathTypeSubject {
			windSubject += e.WindDx
		} else {
			windClip += e.WindDx
		}
		e.WindCount = windSubject
		e.WindCount2 = windClip
	}
}

func (ve *vattiEngine) isContributingEdge(e *edge) bool {
	windCnt, windCnt2 := e.WindCount, e.WindCount2

	var subjectFilled, clipFilled bool
	switch ve.fillRule {
	case EvenOdd:
		subjectFilled = absInt(windCnt)&1 != 0
		clipFilled = absInt(windCnt2)&1 != 0
	case NonZero:
		subjectFilled = windCnt != 0
		clipFilled = windCnt2 != 0
	case Positive, Negative:
		subjectFilled = absInt(windCnt) > 0
		clipFilled = absInt(windCnt2) > 0
	}

	switch ve.clipType {
	case Union:
		return subjectFilled || clipFilled
	case Intersection:
		return subjectFilled && clipFilled
	case Difference:
		if e.LocalMin.PathType == PathTypeSubject {
			return subjectFilled && !clipFilled
		}
		return clipFilled && !subjectFilled
	case Xor:
		return subjectFilled != clipFilled
	default:
		return false
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// addOutputPoint appends a contribution-boundary point to an edge's
// output record, in sweep order. Intersection shares a single output
// record across all edges since the result is always one connected
// region; every other operation keeps one record per edge.
func (ve *vattiEngine) addOutputPoint(e *edge, pt Point) {
	var rec *outRec
	if ve.clipType == Intersection {
		if len(ve.outRecords) == 0 {
			rec = &outRec{Idx: 0, State: outRecStateOuter}
			ve.outRecords = append(ve.outRecords, rec)
		} else {
			rec = ve.outRecords[0]
		}
		e.OutRec = rec
	} else {
		if e.OutRec == nil {
			e.OutRec = &outRec{Idx: len(ve.outRecords), State: outRecStateOuter}
			ve.outRecords = append(ve.outRecords, e.OutRec)
		}
		rec = e.OutRec
	}

	pt2 := &outPt{Pt: pt}

	if rec.Pts == nil {
		rec.Pts = pt2
		pt2.Next, pt2.Prev = pt2, pt2
		return
	}

	last := rec.Pts.Prev
	pt2.Next, pt2.Prev = rec.Pts, last
	last.Next = pt2
	rec.Pts.Prev = pt2
}

func (ve *vattiEngine) buildSolutionPaths() Shape {
	var solution Shape
	for _, rec := range ve.outRecords {
		if rec.Pts == nil {
			continue
		}
		path := ve.buildPathFromOutRec(rec)
		if len(path) >= 3 {
			solution = append(solution, path)
		}
	}
	return solution
}

func (ve *vattiEngine) buildPathFromOutRec(rec *outRec) Polygon {
	if rec.Pts == nil {
		return nil
	}
	var path Polygon
	start := rec.Pts
	curr := start
	for {
		path = append(path, curr.Pt)
		curr = curr.Next
		if curr == start {
			break
		}
	}
	return path
}

// booleanOp64Impl runs the requested boolean operation through the
// scanline engine above.
func booleanOp64Impl(clipType ClipType, fillRule FillRule, subjects, subjectsOpen, clips Shape) (solution Shape, solutionOpen Shape, err error) {
	engine := newVattiEngine(clipType, fillRule)
	return engine.executeClipping(subjects, subjectsOpen, clips)
}

// inflatePathsImpl offsets paths by delta using the full group-based
// offsetting engine (Offsetter).
func inflatePathsImpl(paths Shape, delta float64, joinType JoinType, endType EndType, opts OffsetOptions) (Shape, error) {
	co := NewOffsetter(opts.MiterLimit, opts.ArcTolerance)
	co.AddPaths(paths, joinType, endType)
	return co.Execute(delta)
}

func areaImpl(path Polygon) float64 {
	if len(path) < 3 {
		return 0.0
	}

	area128 := Area128(path)
	return area128.ToFloat64() / 2.0
}
