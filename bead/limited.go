package bead

// LimitedStrategy caps the bead count at maxBeadCount. One bead count
// beyond the cap is handled specially: the wrapped strategy is asked
// for its optimal maxBeadCount beading, and a single zero-width marker
// bead is inserted in the middle so infill planning still sees a wall
// boundary at the true thickness. Must be the outermost wrapper in a chain, or its
// marker bead would be reinterpreted by whatever wraps it.
type LimitedStrategy struct {
	parent       Strategy
	maxBeadCount int64
}

// NewLimitedStrategy wraps parent, refusing to exceed maxBeadCount
// beads.
func NewLimitedStrategy(maxBeadCount int64, parent Strategy) *LimitedStrategy {
	return &LimitedStrategy{parent: parent, maxBeadCount: maxBeadCount}
}

func (l *LimitedStrategy) Compute(thickness, beadCount int64) Beading {
	if beadCount <= l.maxBeadCount {
		return l.parent.Compute(thickness, beadCount)
	}

	optimalThickness := l.parent.OptimalThickness(l.maxBeadCount)
	ret := l.parent.Compute(optimalThickness, l.maxBeadCount)
	ret.LeftOver += thickness - ret.TotalThickness
	ret.TotalThickness = thickness

	beadCount = int64(len(ret.BeadWidths)) + 1
	mid := beadCount / 2
	widths := make([]int64, beadCount)
	copy(widths, ret.BeadWidths[:mid])
	copy(widths[mid+1:], ret.BeadWidths[mid:])
	locations := make([]int64, beadCount)

	copy(locations, ret.ToolpathLocations[:mid])
	locations[mid] = thickness / 2
	for i := int64(0); i < (beadCount+1)/2; i++ {
		src := locations[i]
		locations[beadCount-1-i] = thickness - src
	}

	return Beading{
		TotalThickness:    thickness,
		BeadWidths:        widths,
		ToolpathLocations: locations,
		LeftOver:          ret.LeftOver,
	}
}

func (l *LimitedStrategy) OptimalThickness(beadCount int64) int64 {
	if beadCount <= l.maxBeadCount {
		return l.parent.OptimalThickness(beadCount)
	}
	return 10_000_000 // effectively unreachable: 10 metres in micrometres
}

func (l *LimitedStrategy) TransitionThickness(lowerBeadCount int64) int64 {
	if lowerBeadCount < l.maxBeadCount {
		return l.parent.TransitionThickness(lowerBeadCount)
	}
	if lowerBeadCount == l.maxBeadCount {
		return l.parent.OptimalThickness(lowerBeadCount+1) - 10
	}
	return 9_000_000 // disables any further transition
}

func (l *LimitedStrategy) OptimalBeadCount(thickness int64) int64 {
	parentCount := l.parent.OptimalBeadCount(thickness)
	switch {
	case parentCount <= l.maxBeadCount:
		return parentCount
	case parentCount == l.maxBeadCount+1:
		if thickness < l.parent.OptimalThickness(l.maxBeadCount+1)-10 {
			return l.maxBeadCount
		}
		return l.maxBeadCount + 1
	default:
		return l.maxBeadCount + 1
	}
}

func (l *LimitedStrategy) TransitioningLength(lowerBeadCount int64) int64 {
	return l.parent.TransitioningLength(lowerBeadCount)
}

func (l *LimitedStrategy) TransitionAnchor(lowerBeadCount int64) float64 {
	return l.parent.TransitionAnchor(lowerBeadCount)
}
