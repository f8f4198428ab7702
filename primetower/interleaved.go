package primetower

import (
	"math"

	"github.com/go-slicer/slicecore/geom"
	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/core"
)

// wheelSpokes fills a ring's radial band with a sparse bridging pattern:
// a hub at the tower centre connected by radial spokes to points evenly
// spaced around the ring's mid-radius, with consecutive rim points
// additionally joined. The rim count is ceil(pi*OuterRadius/maxBridgingDistance),
// so each rim segment is shorter than 2*maxBridgingDistance.
// The topology itself is built with lvlath's Wheel(n) constructor rather
// than hand-rolled index arithmetic; only the embedding into tower-space
// coordinates is bespoke.
//
// Per-extruder decision: each ring's spokes use that ring's own
// lineWidth, never a width borrowed from another extruder sharing the
// tower, so adjacent rings never bleed into each other's flow rate.
func wheelSpokes(center geom.Point, ring Ring, maxBridgingDistance int64) (geom.Shape, error) {
	midRadius := (ring.InnerRadius + ring.OuterRadius) / 2
	if midRadius <= 0 || maxBridgingDistance <= 0 {
		return nil, nil
	}

	rimCount := int(math.Ceil(math.Pi * float64(ring.OuterRadius) / float64(maxBridgingDistance)))
	if rimCount < 3 {
		rimCount = 3
	}

	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(false)}, nil, builder.Wheel(rimCount+1))
	if err != nil {
		return nil, err
	}

	rimIndex := 0
	points := make(map[string]geom.Point, len(g.Vertices()))
	for _, id := range g.Vertices() {
		if id == "Center" {
			points[id] = center
			continue
		}
		theta := 2 * math.Pi * float64(rimIndex) / float64(rimCount)
		points[id] = geom.Point{
			X: center.X + int64(float64(midRadius)*math.Cos(theta)),
			Y: center.Y + int64(float64(midRadius)*math.Sin(theta)),
		}
		rimIndex++
	}

	spokes := make(geom.Shape, 0, len(g.Edges()))
	for _, e := range g.Edges() {
		from, ok1 := points[e.From]
		to, ok2 := points[e.To]
		if !ok1 || !ok2 {
			continue
		}
		spokes = append(spokes, geom.Polygon{from, to})
	}
	return spokes, nil
}

// SparsePattern builds the wheel bridging pattern for every ring that
// SparseRings reports for the given layer state.
func (t *Tower) SparsePattern(mode Mode, activeExtruders []int, lastUsedExtruder int, maxBridgingDistance int64) (geom.Shape, error) {
	var pattern geom.Shape
	for _, ring := range t.SparseRings(mode, activeExtruders, lastUsedExtruder) {
		spokes, err := wheelSpokes(t.Center, ring, maxBridgingDistance)
		if err != nil {
			return nil, err
		}
		pattern = append(pattern, spokes...)
	}
	return pattern, nil
}
