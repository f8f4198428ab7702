// Package extrude builds per-extruder plans from ordered paths and
// estimates how long each one takes to print, using the same
// trapezoidal-motion bookkeeping real firmware uses to plan moves.
package extrude

import "math"

// Vector is a planar position in millimetres. Motion planning works in
// real-world units rather than the integer micrometre space the
// geometry package uses, since feedrates and accelerations are
// naturally expressed in mm/s and mm/s^2.
type Vector struct {
	X, Y float64
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Direction returns v as a unit vector, or the zero vector if v has no
// length (a degenerate, zero-length move).
func (v Vector) Direction() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// FeatureKind classifies what a segment's time counts towards.
type FeatureKind int

const (
	FeatureExtrude FeatureKind = iota
	FeatureUnretractedTravel
	FeatureRetractedTravel
)

// Segment is one straight move: an extrusion line or a travel move,
// already reduced to the geometry the trapezoidal planner needs.
type Segment struct {
	Start, End      Vector
	NominalFeedrate float64 // mm/s
	Feature         FeatureKind
	// FlowRate is the volumetric extrusion rate in mm^3/s for this
	// segment at its nominal feedrate; zero for travel moves.
	FlowRate float64
}

func (s Segment) length() float64 {
	return s.End.Sub(s.Start).Length()
}

func (s Segment) direction() Vector {
	return s.End.Sub(s.Start).Direction()
}
