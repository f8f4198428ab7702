package bead

// WideningStrategy forces single-bead results up to a minimum printable
// width and makes sure optimal_bead_count never drops to zero once the
// thickness clears a minimum-input threshold, so hairline features
// still get one (widened) bead instead of vanishing.
type WideningStrategy struct {
	parent         Strategy
	minInputWidth  int64
	minOutputWidth int64
}

// NewWideningStrategy wraps parent so that single beads thinner than
// minOutputWidth are raised to it, and any thickness above
// minInputWidth always yields at least one bead.
func NewWideningStrategy(parent Strategy, minInputWidth, minOutputWidth int64) *WideningStrategy {
	return &WideningStrategy{parent: parent, minInputWidth: minInputWidth, minOutputWidth: minOutputWidth}
}

func (w *WideningStrategy) Compute(thickness, beadCount int64) Beading {
	ret := w.parent.Compute(thickness, beadCount)
	if len(ret.BeadWidths) == 1 && ret.BeadWidths[0] < w.minOutputWidth {
		ret.BeadWidths[0] = w.minOutputWidth
	}
	return ret
}

func (w *WideningStrategy) OptimalThickness(beadCount int64) int64 {
	return w.parent.OptimalThickness(beadCount)
}

func (w *WideningStrategy) TransitionThickness(lowerBeadCount int64) int64 {
	if lowerBeadCount == 0 {
		return w.minInputWidth
	}
	return w.parent.TransitionThickness(lowerBeadCount)
}

func (w *WideningStrategy) OptimalBeadCount(thickness int64) int64 {
	count := w.parent.OptimalBeadCount(thickness)
	if thickness > w.minInputWidth && count < 1 {
		return 1
	}
	return count
}

func (w *WideningStrategy) TransitioningLength(lowerBeadCount int64) int64 {
	return w.parent.TransitioningLength(lowerBeadCount)
}

func (w *WideningStrategy) TransitionAnchor(lowerBeadCount int64) float64 {
	return w.parent.TransitionAnchor(lowerBeadCount)
}
