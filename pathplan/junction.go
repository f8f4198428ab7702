// Package pathplan orders the polygons and polylines of a layer for
// printing and decides which way bridging lines should run.
package pathplan

import "github.com/go-slicer/slicecore/geom"

// ExtrusionJunction is one vertex of a variable-width wall, carrying the
// bead width that applies to the segment starting at this vertex.
type ExtrusionJunction struct {
	Position       geom.Point
	Width          int64
	PerimeterIndex int
}

// ExtrusionLine is a sequence of junctions, either an open bead (a
// polyline, printed from one end) or a closed bead (a loop).
type ExtrusionLine struct {
	Junctions []ExtrusionJunction
	IsClosed  bool
	Inset     int
}

// Polygon reduces a line to its bare vertex positions, the shape the
// ordering and bridging stages of this package operate on.
func (l ExtrusionLine) Polygon() geom.Polygon {
	poly := make(geom.Polygon, len(l.Junctions))
	for i, j := range l.Junctions {
		poly[i] = j.Position
	}
	return poly
}
