package bead

// OuterWallInsetStrategy shifts the outermost toolpath offset inward
// by a fixed distance, used to pull the visible outer wall away from
// the true model outline (for tolerance or cosmetic reasons) without
// touching bead widths or any other offset.
type OuterWallInsetStrategy struct {
	parent          Strategy
	outerWallOffset int64
}

// NewOuterWallInsetStrategy wraps parent, moving its outermost
// toolpath offset inward by outerWallOffset.
func NewOuterWallInsetStrategy(outerWallOffset int64, parent Strategy) *OuterWallInsetStrategy {
	return &OuterWallInsetStrategy{parent: parent, outerWallOffset: outerWallOffset}
}

func (o *OuterWallInsetStrategy) Compute(thickness, beadCount int64) Beading {
	ret := o.parent.Compute(thickness, beadCount)

	printedBeads := int64(0)
	for _, w := range ret.BeadWidths {
		if w > 0 {
			printedBeads++
		}
	}
	if printedBeads < 2 || len(ret.ToolpathLocations) == 0 {
		return ret
	}

	shifted := ret.ToolpathLocations[0] + o.outerWallOffset
	if shifted > thickness/2 {
		shifted = thickness / 2
	}
	ret.ToolpathLocations[0] = shifted
	return ret
}

func (o *OuterWallInsetStrategy) OptimalThickness(beadCount int64) int64 {
	return o.parent.OptimalThickness(beadCount)
}

func (o *OuterWallInsetStrategy) TransitionThickness(lowerBeadCount int64) int64 {
	return o.parent.TransitionThickness(lowerBeadCount)
}

func (o *OuterWallInsetStrategy) OptimalBeadCount(thickness int64) int64 {
	return o.parent.OptimalBeadCount(thickness)
}

func (o *OuterWallInsetStrategy) TransitioningLength(lowerBeadCount int64) int64 {
	return o.parent.TransitioningLength(lowerBeadCount)
}

func (o *OuterWallInsetStrategy) TransitionAnchor(lowerBeadCount int64) float64 {
	return o.parent.TransitionAnchor(lowerBeadCount)
}
