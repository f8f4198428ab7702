// Package primetower builds the fixed-geometry purge region every layer
// plan visits when switching extruders: a set of concentric rings sized
// to purge each extruder's nozzle, plus whatever base-adhesion and
// sparse-bridging geometry the chosen placement mode needs.
package primetower

import (
	"math"

	"github.com/go-slicer/slicecore/geom"
)

// circleSegments is the fixed approximation CuraEngine itself uses for
// the tower's outer circle.
const circleSegments = 32

// ExtruderSpec describes one extruder's purge requirements and nominal
// print parameters, enough to size and order its ring.
type ExtruderSpec struct {
	Index            int
	LineWidth        int64
	LayerHeight      int64
	FlowRatio        float64
	RequiredPurge    int64 // required purge volume, cubic micrometres
	AdhesionTendency int   // higher sorts further outward
}

// wallPasses returns how many wall passes at LineWidth/LayerHeight/FlowRatio
// are needed to purge RequiredPurge.
func (e ExtruderSpec) wallPasses() int64 {
	volumePerPass := float64(e.LineWidth) * float64(e.LayerHeight) * e.FlowRatio
	if volumePerPass <= 0 {
		return 1
	}
	passes := int64(math.Ceil(float64(e.RequiredPurge) / volumePerPass))
	if passes < 1 {
		passes = 1
	}
	return passes
}

// Ring is one extruder's purge band within the tower, outer and inner
// radius measured from the tower centre.
type Ring struct {
	ExtruderIndex int
	OuterRadius   int64
	InnerRadius   int64
	LineWidth     int64
	Outline       geom.Shape
}

// Tower is the prime tower's fixed geometry: its outer outline and the
// ordered set of per-extruder rings inside it.
type Tower struct {
	Center  geom.Point
	Radius  int64
	Outline geom.Shape
	Rings   []Ring
}

// NewTower lays out concentric rings for extruders, ordered
// outside-to-inside by decreasing AdhesionTendency (extruders whose
// material sticks best to the plate go on the outside).
func NewTower(center geom.Point, extruders []ExtruderSpec) (*Tower, error) {
	if len(extruders) == 0 {
		return nil, ErrNoExtruders
	}

	ordered := make([]ExtruderSpec, len(extruders))
	copy(ordered, extruders)
	sortByAdhesionDescending(ordered)

	rings := make([]Ring, len(ordered))
	radius := int64(0)
	// Compute radii outside-in: first pass accumulates ring widths to find
	// the overall tower radius, second pass lays rings outer to inner.
	widths := make([]int64, len(ordered))
	for i, e := range ordered {
		widths[i] = e.wallPasses() * e.LineWidth
		radius += widths[i]
	}

	outer := radius
	for i, e := range ordered {
		inner := outer - widths[i]
		rings[i] = Ring{
			ExtruderIndex: e.Index,
			OuterRadius:   outer,
			InnerRadius:   inner,
			LineWidth:     e.LineWidth,
			Outline:       ringOutline(center, inner, outer),
		}
		outer = inner
	}

	return &Tower{
		Center:  center,
		Radius:  radius,
		Outline: geom.Shape{geom.Ellipse(center, float64(radius), float64(radius), circleSegments)},
		Rings:   rings,
	}, nil
}

func ringOutline(center geom.Point, innerRadius, outerRadius int64) geom.Shape {
	outerPoly := geom.Ellipse(center, float64(outerRadius), float64(outerRadius), circleSegments)
	if innerRadius <= 0 {
		return geom.Shape{outerPoly}
	}
	innerPoly := geom.Ellipse(center, float64(innerRadius), float64(innerRadius), circleSegments)
	return geom.Shape{outerPoly, innerPoly}
}

func sortByAdhesionDescending(specs []ExtruderSpec) {
	for i := 1; i < len(specs); i++ {
		for j := i; j > 0 && specs[j].AdhesionTendency > specs[j-1].AdhesionTendency; j-- {
			specs[j], specs[j-1] = specs[j-1], specs[j]
		}
	}
}
