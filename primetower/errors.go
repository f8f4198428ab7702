package primetower

import "errors"

var (
	// ErrNoExtruders is returned when a tower is built with no extruders.
	ErrNoExtruders = errors.New("primetower: at least one extruder is required")

	// ErrInvalidBaseHeight is returned when BaseLayers is asked to produce
	// a negative or zero-height base.
	ErrInvalidBaseHeight = errors.New("primetower: base height must be positive")
)
