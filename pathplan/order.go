package pathplan

import (
	"math"

	"github.com/go-slicer/slicecore/geom"
)

// SeamHint selects how the start vertex of a closed path is chosen.
type SeamHint int

const (
	// SeamShortest starts wherever is nearest the current position.
	SeamShortest SeamHint = iota
	// SeamSpecifiedCorner prefers the vertex nearest a user-given point.
	SeamSpecifiedCorner
	// SeamRandom scatters the seam across vertices, deterministically
	// per path so re-ordering the same input reproduces the same seam.
	SeamRandom
	// SeamSharpestCorner prefers the vertex with the tightest turn angle,
	// since a seam there is least visible.
	SeamSharpestCorner
)

// InputPath is one polygon or polyline awaiting an order and a starting
// point. OverhangVertices, when non-nil, must be parallel to Vertices and
// flags vertices that sit over unsupported regions, so a seam placed
// there can be penalised.
type InputPath struct {
	Vertices         geom.Polygon
	Closed           bool
	OverhangVertices []bool
}

// PlannedPath is one input path with its ordering decided: where to
// start, whether to walk its vertices backwards, and whether it closes.
type PlannedPath struct {
	Path       InputPath
	StartIndex int
	Reversed   bool
	Closed     bool
}

// Config tunes how Optimizer scores candidate start vertices.
type Config struct {
	SeamHint           SeamHint
	SeamPoint          geom.Point
	OverhangPenalty    float64
	SeamCornerWeight   float64
	DistanceWeight     float64
	LookaheadTolerance float64
}

// DefaultConfig returns weights that favour distance first, with a mild
// seam-placement influence and a small penalty for overhang seams.
func DefaultConfig() Config {
	return Config{
		SeamHint:           SeamShortest,
		OverhangPenalty:    500,
		SeamCornerWeight:   50,
		DistanceWeight:     1,
		LookaheadTolerance: 0.1,
	}
}

// Optimizer performs a nearest-neighbour sweep with a one-step
// lookahead over a set of paths, choosing each path's start vertex and
// traversal direction as it goes.
type Optimizer struct {
	cfg Config
}

func NewOptimizer(cfg Config) *Optimizer {
	return &Optimizer{cfg: cfg}
}

// candidate describes one way a path could be entered: from which
// vertex index, in which direction, ending at endPoint.
type candidate struct {
	pathIdx   int
	start     int
	reversed  bool
	startCost float64
	endPoint  geom.Point
}

// Optimize orders every path starting from startPosition, returning them
// in print order with their chosen start vertex and direction.
func (o *Optimizer) Optimize(paths []InputPath, startPosition geom.Point) ([]PlannedPath, error) {
	for _, p := range paths {
		if len(p.Vertices) == 0 {
			return nil, ErrEmptyPath
		}
	}

	used := make([]bool, len(paths))
	result := make([]PlannedPath, 0, len(paths))
	current := startPosition

	remaining := len(paths)
	for remaining > 0 {
		best, ok := o.bestCandidate(paths, used, current)
		if !ok {
			break
		}

		// One-step lookahead: if reversing the chosen candidate would
		// leave the sweep meaningfully closer to whichever path is
		// picked next, flip it.
		if !paths[best.pathIdx].Closed {
			if alt, ok := o.otherDirection(paths[best.pathIdx], best, current); ok {
				used[best.pathIdx] = true
				nextAfterBest, bestHasNext := o.bestCandidate(paths, used, best.endPoint)
				nextAfterAlt, altHasNext := o.bestCandidate(paths, used, alt.endPoint)
				used[best.pathIdx] = false

				bestLookahead := 0.0
				if bestHasNext {
					bestLookahead = nextAfterBest.startCost
				}
				altLookahead := math.MaxFloat64
				if altHasNext {
					altLookahead = nextAfterAlt.startCost
				}
				if altLookahead+o.cfg.LookaheadTolerance < bestLookahead {
					best = alt
				}
			}
		}

		used[best.pathIdx] = true
		remaining--
		result = append(result, PlannedPath{
			Path:       paths[best.pathIdx],
			StartIndex: best.start,
			Reversed:   best.reversed,
			Closed:     paths[best.pathIdx].Closed,
		})
		current = best.endPoint
	}

	return result, nil
}

// bestCandidate scans every unused path for the cheapest way to enter
// it from current, returning the winner.
func (o *Optimizer) bestCandidate(paths []InputPath, used []bool, current geom.Point) (candidate, bool) {
	bestCost := math.MaxFloat64
	var best candidate
	found := false

	for i, p := range paths {
		if used[i] {
			continue
		}
		for _, c := range o.candidatesFor(p, i, current) {
			if c.startCost < bestCost {
				bestCost = c.startCost
				best = c
				found = true
			}
		}
	}
	return best, found
}

// otherDirection returns the entry point for an open path opposite the
// one already chosen: if chosen starts at vertex 0 forward, this
// returns the one starting at the last vertex reversed, and vice versa.
func (o *Optimizer) otherDirection(p InputPath, chosen candidate, current geom.Point) (candidate, bool) {
	cands := o.candidatesFor(p, chosen.pathIdx, current)
	if len(cands) != 2 {
		return candidate{}, false
	}
	if cands[0].reversed != chosen.reversed {
		return cands[0], true
	}
	return cands[1], true
}

// candidatesFor enumerates every vertex a path could legally start at:
// both endpoints for a polyline, every vertex for a polygon.
func (o *Optimizer) candidatesFor(p InputPath, idx int, current geom.Point) []candidate {
	if !p.Closed {
		last := len(p.Vertices) - 1
		return []candidate{
			o.makeCandidate(p, idx, 0, false, current),
			o.makeCandidate(p, idx, last, true, current),
		}
	}

	cands := make([]candidate, 0, len(p.Vertices))
	for v := range p.Vertices {
		cands = append(cands, o.makeCandidate(p, idx, v, false, current))
	}
	return cands
}

func (o *Optimizer) makeCandidate(p InputPath, idx, vertex int, reversed bool, current geom.Point) candidate {
	pos := p.Vertices[vertex]
	cost := o.cfg.DistanceWeight * distance(current, pos)
	cost += o.seamCost(p, vertex)

	var endPoint geom.Point
	if p.Closed {
		endPoint = pos
	} else if reversed {
		endPoint = p.Vertices[0]
	} else {
		endPoint = p.Vertices[len(p.Vertices)-1]
	}

	return candidate{
		pathIdx:   idx,
		start:     vertex,
		reversed:  reversed,
		startCost: cost,
		endPoint:  endPoint,
	}
}

func (o *Optimizer) seamCost(p InputPath, vertex int) float64 {
	cost := 0.0
	switch o.cfg.SeamHint {
	case SeamSpecifiedCorner:
		cost += o.cfg.SeamCornerWeight * distance(p.Vertices[vertex], o.cfg.SeamPoint) / 1000
	case SeamRandom:
		cost += o.cfg.SeamCornerWeight * pseudoRandom(p.Vertices[vertex])
	case SeamSharpestCorner:
		if p.Closed && len(p.Vertices) >= 3 {
			cost -= o.cfg.SeamCornerWeight * sharpness(p.Vertices, vertex)
		}
	}

	if p.OverhangVertices != nil && vertex < len(p.OverhangVertices) && p.OverhangVertices[vertex] {
		cost += o.cfg.OverhangPenalty
	}
	return cost
}

func distance(a, b geom.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Hypot(dx, dy)
}

// sharpness scores how tight the corner at vertex is: 1 for a full
// reversal, 0 for a straight line through.
func sharpness(verts geom.Polygon, vertex int) float64 {
	n := len(verts)
	prev := verts[(vertex-1+n)%n]
	cur := verts[vertex]
	next := verts[(vertex+1)%n]

	v1x, v1y := float64(cur.X-prev.X), float64(cur.Y-prev.Y)
	v2x, v2y := float64(next.X-cur.X), float64(next.Y-cur.Y)
	len1 := math.Hypot(v1x, v1y)
	len2 := math.Hypot(v2x, v2y)
	if len1 == 0 || len2 == 0 {
		return 0
	}
	cos := (v1x*v2x + v1y*v2y) / (len1 * len2)
	return (1 - cos) / 2
}

// pseudoRandom derives a stable, deterministic pseudo-random value in
// [0,1) from a vertex's own coordinates, so the same input path always
// gets the same seam placement.
func pseudoRandom(p geom.Point) float64 {
	h := uint64(p.X)*2654435761 ^ uint64(p.Y)*40503
	return float64(h%1_000_003) / 1_000_003
}
