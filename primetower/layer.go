package primetower

import (
	"math"

	"github.com/go-slicer/slicecore/geom"
)

// startPointCount is how many fixed, evenly spread locations around the
// tower perimeter StartLocation rotates through by layer and extruder
// index, so z-seam blobs from repeated starts don't stack up.
const startPointCount = 8

// LayerVisit is what the path-ordering stage consumes from the tower
// for one layer: the rings to extrude (possibly none), where to start,
// and where to wipe the previous extruder before switching away.
type LayerVisit struct {
	Rings         []Ring
	StartLocation geom.Point
	PostWipe      geom.Point
}

// PlanLayer computes what a layer's plan should do with the tower:
// which rings to extrude, a diffused start location, and a post-wipe
// point opposite it.
func (t *Tower) PlanLayer(mode Mode, layerIndex, extruderIndex int, activeExtruders []int, lastUsedExtruder int) LayerVisit {
	rings := t.RingsForLayer(mode, activeExtruders, lastUsedExtruder)

	slot := (layerIndex + extruderIndex) % startPointCount
	startTheta := 2 * math.Pi * float64(slot) / float64(startPointCount)
	wipeTheta := startTheta + math.Pi

	return LayerVisit{
		Rings:         rings,
		StartLocation: pointOnCircle(t.Center, t.Radius, startTheta),
		PostWipe:      pointOnCircle(t.Center, t.Radius, wipeTheta),
	}
}

func pointOnCircle(center geom.Point, radius int64, theta float64) geom.Point {
	return geom.Point{
		X: center.X + int64(float64(radius)*math.Cos(theta)),
		Y: center.Y + int64(float64(radius)*math.Sin(theta)),
	}
}
