package bead

import "errors"

var (
	// ErrInvalidMaxBeadCount is returned when a Limited chain is built
	// with a non-positive bead cap.
	ErrInvalidMaxBeadCount = errors.New("bead: max bead count must be positive")

	// ErrInvalidOptimalWidth is returned when a strategy is built with a
	// non-positive preferred bead width.
	ErrInvalidOptimalWidth = errors.New("bead: optimal width must be positive")
)
