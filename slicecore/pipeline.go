package slicecore

import (
	"sort"
	"strconv"

	"github.com/go-slicer/slicecore/bead"
	"github.com/go-slicer/slicecore/extrude"
	"github.com/go-slicer/slicecore/geom"
	"github.com/go-slicer/slicecore/layerplan"
	"github.com/go-slicer/slicecore/pathplan"
	"github.com/go-slicer/slicecore/primetower"
)

// Wall is one extrusion line the pipeline is asked to place on a
// layer: the already-beaded junctions (§3's ExtrusionLine, produced by
// a skeleton/medial-axis stage upstream of this module, out of scope
// per §1) plus which extruder prints it.
type Wall struct {
	Line     pathplan.ExtrusionLine
	Extruder int
}

// Pipeline wires the five component stages together into one ordered
// sequence of emitted commands per layer: path ordering (§4.C; the
// pipeline does not call pathplan.DetectBridgeAngle), prime-tower insertion on extruder switches
// (§4.B), extruder-plan construction with motion timing (§4.D), and
// the layer-plan buffer's thermal look-ahead (§4.E). Beading (§4.A) is
// exposed as WallBeading for a caller building Walls from raw
// thickness queries; nothing else in the pipeline needs it directly,
// since Wall already carries the per-junction widths beading produced.
type Pipeline struct {
	Job      Job
	Settings Settings
	Sink     Sink
	Logger   Logger
	Preheat  layerplan.Preheat

	Order  *pathplan.Optimizer
	Motion extrude.MotionConfig
	Buffer *layerplan.Buffer
	Tower  *primetower.Tower

	lastPosition     geom.Point
	lastUsedExtruder int
	haveLastExtruder bool
}

// NewPipeline builds a Pipeline from its collaborators. bufferSize is
// the layer-plan buffer's bound (≥2, per §3); extruderCount sizes
// InitialTemperatures.
func NewPipeline(job Job, settings Settings, sink Sink, logger Logger, preheat layerplan.Preheat, motion extrude.MotionConfig, travelFeedrate float64, bufferSize, extruderCount int, tower *primetower.Tower) *Pipeline {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Pipeline{
		Job:      job,
		Settings: settings,
		Sink:     sink,
		Logger:   logger,
		Preheat:  preheat,
		Order:    pathplan.NewOptimizer(pathplan.DefaultConfig()),
		Motion:   motion,
		Buffer:   layerplan.NewBuffer(bufferSize, preheat, motion, travelFeedrate, extruderCount),
		Tower:    tower,
	}
}

// WallBeading is a thin pass-through exposing §4.A to a caller that
// still needs to turn a raw thickness query into bead widths/offsets
// before it can build a Wall; the pipeline proper consumes only the
// already-beaded ExtrusionLine.
func (p *Pipeline) WallBeading(strategy bead.Strategy, thickness, beadCount int64) bead.Beading {
	return strategy.Compute(thickness, beadCount)
}

// PlanLayer orders walls, stitches in prime-tower visits for any
// extruder switch, times every move, and hands the finished layer plan
// to the thermal-lookahead buffer. Emission is deferred: it happens as
// the buffer evicts completed layers; call Flush after the last layer
// to drain it.
func (p *Pipeline) PlanLayer(layerIndex int, z, layerThickness int64, walls []Wall, activeExtruders []int, isInitialLayer bool) error {
	if len(walls) == 0 {
		p.Logger.Warnf("layer %d has no walls, dropping", layerIndex)
		return nil
	}

	inputs := make([]pathplan.InputPath, len(walls))
	for i, w := range walls {
		inputs[i] = pathplan.InputPath{Vertices: w.Line.Polygon(), Closed: w.Line.IsClosed}
	}

	planned, err := p.Order.Optimize(inputs, p.lastPosition)
	if err != nil {
		return err
	}

	groups := buildExtruderGroups(planned, inputs, walls, layerThickness)

	lp := &layerplan.LayerPlan{Z: z}
	current := p.lastPosition

	for _, g := range groups {
		if p.needsPrimeTowerVisit(g.extruder, activeExtruders) {
			g.segments = append(p.primeTowerSegments(layerIndex, g.extruder, activeExtruders, current), g.segments...)
		}

		ep := extrude.NewExtruderPlan(g.extruder)
		for _, seg := range g.segments {
			ep.Append(seg)
			current = geom.Point{X: int64(seg.End.X * 1000), Y: int64(seg.End.Y * 1000)}
		}
		plan := &layerplan.Plan{ExtruderPlan: ep, IsInitialLayer: isInitialLayer}
		lp.ExtruderPlans = append(lp.ExtruderPlans, plan)

		p.lastUsedExtruder = g.extruder
		p.haveLastExtruder = true
	}

	if len(lp.ExtruderPlans) == 0 {
		return nil
	}

	dest := groups[0].firstDest
	lp.FirstDest = &dest
	lp.LastPosition = &current
	p.lastPosition = current

	p.Buffer.Handle(lp, p.emitLayer)
	return nil
}

// Flush drains whatever layers remain in the buffer once no more
// layers will be pushed.
func (p *Pipeline) Flush() {
	p.Buffer.Flush(p.emitLayer)
}

func (p *Pipeline) needsPrimeTowerVisit(extruder int, activeExtruders []int) bool {
	if p.Tower == nil {
		return false
	}
	if !p.haveLastExtruder {
		return true
	}
	if p.lastUsedExtruder == extruder {
		return false
	}
	for _, e := range activeExtruders {
		if e == extruder {
			return true
		}
	}
	return false
}

func (p *Pipeline) primeTowerSegments(layerIndex, extruder int, activeExtruders []int, current geom.Point) []extrude.Segment {
	visit := p.Tower.PlanLayer(primetower.Normal, layerIndex, extruder, activeExtruders, p.lastUsedExtruder)

	var segs []extrude.Segment
	pos := current
	for _, ring := range visit.Rings {
		for _, poly := range ring.Outline {
			for _, pt := range poly {
				segs = append(segs, extrude.Segment{
					Start:           toMM(pos),
					End:             toMM(pt),
					NominalFeedrate: 40,
					Feature:         extrude.FeatureExtrude,
					FlowRate:        flowRate(ring.LineWidth, 200, 40),
				})
				pos = pt
			}
		}
	}
	return segs
}

type extruderGroup struct {
	extruder  int
	segments  []extrude.Segment
	firstDest geom.Point
}

// buildExtruderGroups converts the optimizer's planned path order into
// per-extruder runs of segments, starting a new run whenever the
// printing extruder changes (even on a revisit), matching
// extrude.GroupByExtruder's splitting rule but operating on whole
// walls instead of a flat segment stream, since a wall's segments must
// never be split across two different extruder plans.
func buildExtruderGroups(planned []pathplan.PlannedPath, inputs []pathplan.InputPath, walls []Wall, layerThickness int64) []*extruderGroup {
	var groups []*extruderGroup
	lastExtruder := -1
	haveLast := false

	for _, pp := range planned {
		idx := findWallIndex(inputs, pp)
		if idx < 0 {
			continue
		}
		w := walls[idx]
		segs := wallSegments(w.Line, pp, layerThickness)
		if len(segs) == 0 {
			continue
		}

		if !haveLast || w.Extruder != lastExtruder {
			groups = append(groups, &extruderGroup{extruder: w.Extruder, firstDest: geom.Point{X: int64(segs[0].Start.X * 1000), Y: int64(segs[0].Start.Y * 1000)}})
			lastExtruder = w.Extruder
			haveLast = true
		}
		g := groups[len(groups)-1]
		g.segments = append(g.segments, segs...)
	}
	return groups
}

// findWallIndex matches a planned path back to its originating wall by
// the backing array identity of its first vertex: Optimize copies
// InputPath by value but never reallocates Vertices, so the address of
// element zero is stable and unique per input path.
func findWallIndex(inputs []pathplan.InputPath, pp pathplan.PlannedPath) int {
	if len(pp.Path.Vertices) == 0 {
		return -1
	}
	for i, in := range inputs {
		if len(in.Vertices) > 0 && &in.Vertices[0] == &pp.Path.Vertices[0] {
			return i
		}
	}
	return -1
}

// wallSegments walks a wall's junctions in the order the optimizer
// chose (respecting its start index and direction for closed paths,
// and simple reversal for open ones) and turns each consecutive pair
// into a motion segment, with flow rate derived from the pair's
// average line width.
func wallSegments(line pathplan.ExtrusionLine, pp pathplan.PlannedPath, layerThickness int64) []extrude.Segment {
	n := len(line.Junctions)
	if n < 2 {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		if pp.Closed {
			order[i] = (pp.StartIndex + i) % n
		} else {
			order[i] = i
		}
	}
	if pp.Reversed {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	segCount := n - 1
	if pp.Closed {
		segCount = n
	}

	segs := make([]extrude.Segment, 0, segCount)
	for i := 0; i < segCount; i++ {
		a := line.Junctions[order[i]]
		b := line.Junctions[order[(i+1)%n]]
		avgWidth := (a.Width + b.Width) / 2
		feedrate := 60.0
		segs = append(segs, extrude.Segment{
			Start:           toMM(a.Position),
			End:             toMM(b.Position),
			NominalFeedrate: feedrate,
			Feature:         extrude.FeatureExtrude,
			FlowRate:        flowRate(avgWidth, layerThickness, feedrate),
		})
	}
	return segs
}

func toMM(p geom.Point) extrude.Vector {
	return extrude.Vector{X: float64(p.X) / 1000, Y: float64(p.Y) / 1000}
}

// flowRate converts a micrometre line width and layer thickness plus a
// feedrate in mm/s into a volumetric flow in mm^3/s.
func flowRate(lineWidthUm, layerThicknessUm int64, feedrateMMPerSec float64) float64 {
	widthMM := float64(lineWidthUm) / 1000
	thicknessMM := float64(layerThicknessUm) / 1000
	return widthMM * thicknessMM * feedrateMMPerSec
}

// emitLayer turns a finished layer plan's segments and temperature
// inserts into an ordered Command stream, preserving the invariant
// that every extrude command for an extruder is preceded in the
// stream by a SET_TEMPERATURE command meeting its required start
// temperature (§8 property 7).
func (p *Pipeline) emitLayer(lp *layerplan.LayerPlan) {
	_ = p.Sink.Emit(p.Job.commentf("layer z=" + strconv.FormatInt(lp.Z, 10)))

	for _, plan := range lp.ExtruderPlans {
		inserts := append([]layerplan.TempInsert(nil), plan.Inserts...)
		sort.SliceStable(inserts, func(i, j int) bool { return inserts[i].PathIndex < inserts[j].PathIndex })

		insertAt := 0
		for i, seg := range plan.Segments {
			for insertAt < len(inserts) && inserts[insertAt].PathIndex <= i {
				ins := inserts[insertAt]
				_ = p.Sink.Emit(Command{Kind: CommandSetTemperature, Extruder: ins.Extruder, Temperature: ins.Temperature, Wait: ins.Wait})
				insertAt++
			}

			kind := CommandMove
			if seg.Feature == extrude.FeatureExtrude {
				kind = CommandExtrude
			}
			_ = p.Sink.Emit(Command{Kind: kind, X: seg.End.X, Y: seg.End.Y, Feedrate: seg.NominalFeedrate, Extruder: plan.ExtruderIndex})
		}
		for ; insertAt < len(inserts); insertAt++ {
			ins := inserts[insertAt]
			_ = p.Sink.Emit(Command{Kind: CommandSetTemperature, Extruder: ins.Extruder, Temperature: ins.Temperature, Wait: ins.Wait})
		}
	}
}
