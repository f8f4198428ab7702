package bead

// SingleBeadStrategy always emits exactly one bead, centred on the
// thickness, at a fixed width independent of T or the requested bead
// count. It is the degenerate/ironing-style leaf used when a region's
// settings force a single uniform wall regardless of thickness.
type SingleBeadStrategy struct {
	width                   int64
	defaultTransitionLength int64
}

// NewSingleBeadStrategy builds a strategy that always emits one bead
// of width (minWidth+maxWidth)/2.
func NewSingleBeadStrategy(minWidth, maxWidth, defaultTransitionLength int64) *SingleBeadStrategy {
	return &SingleBeadStrategy{width: (minWidth + maxWidth) / 2, defaultTransitionLength: defaultTransitionLength}
}

func (s *SingleBeadStrategy) Compute(thickness, beadCount int64) Beading {
	if beadCount <= 0 {
		return Beading{TotalThickness: thickness, LeftOver: thickness}
	}
	return Beading{
		TotalThickness:    thickness,
		BeadWidths:        []int64{s.width},
		ToolpathLocations: []int64{thickness / 2},
		LeftOver:          thickness - s.width,
	}
}

func (s *SingleBeadStrategy) OptimalThickness(beadCount int64) int64 {
	return beadCount * s.width
}

func (s *SingleBeadStrategy) TransitionThickness(lowerBeadCount int64) int64 {
	if lowerBeadCount <= 0 {
		return 0
	}
	return 9_999_999
}

func (s *SingleBeadStrategy) OptimalBeadCount(thickness int64) int64 {
	return 1
}

func (s *SingleBeadStrategy) TransitioningLength(lowerBeadCount int64) int64 {
	return defaultTransitioningLength(s.defaultTransitionLength, lowerBeadCount)
}

func (s *SingleBeadStrategy) TransitionAnchor(lowerBeadCount int64) float64 {
	return defaultTransitionAnchor(s, lowerBeadCount)
}
