package bead

// RedistributeStrategy clamps the two outermost beads toward a
// preferred outer width and hands whatever thickness remains to the
// wrapped strategy for the inner beads. Once the region is thick enough
// to fit both outer beads at their optimal width plus a minimum inner
// wall, the outer beads lock at that width and stop growing.
type RedistributeStrategy struct {
	parent                 Strategy
	optimalWidthOuter       int64
	optimalWidthInner       int64
	minimumVariableLineWidth float64
}

// NewRedistributeStrategy wraps parent, redistributing thickness
// between a pair of outer beads (kept near optimalWidthOuter) and
// whatever inner beads parent produces (kept near optimalWidthInner in
// spirit, enforced here only as a minimum-width filter).
func NewRedistributeStrategy(optimalWidthOuter, optimalWidthInner int64, minimumVariableLineWidth float64, parent Strategy) *RedistributeStrategy {
	return &RedistributeStrategy{
		parent:                  parent,
		optimalWidthOuter:       optimalWidthOuter,
		optimalWidthInner:       optimalWidthInner,
		minimumVariableLineWidth: minimumVariableLineWidth,
	}
}

func (r *RedistributeStrategy) OptimalThickness(beadCount int64) int64 {
	innerBeadCount := int64(0)
	if beadCount > 2 {
		innerBeadCount = beadCount - 2
	}
	outerBeadCount := beadCount - innerBeadCount
	return r.parent.OptimalThickness(innerBeadCount) + r.optimalWidthOuter*outerBeadCount
}

func (r *RedistributeStrategy) TransitionThickness(lowerBeadCount int64) int64 {
	return r.parent.TransitionThickness(lowerBeadCount)
}

func (r *RedistributeStrategy) OptimalBeadCount(thickness int64) int64 {
	return r.parent.OptimalBeadCount(thickness)
}

func (r *RedistributeStrategy) TransitioningLength(lowerBeadCount int64) int64 {
	return r.parent.TransitioningLength(lowerBeadCount)
}

func (r *RedistributeStrategy) TransitionAnchor(lowerBeadCount int64) float64 {
	return r.parent.TransitionAnchor(lowerBeadCount)
}

func (r *RedistributeStrategy) optimalOuterBeadWidth(thickness int64, innerMinimumWidth int64) int64 {
	totalOuterOptimal := r.optimalWidthOuter * 2
	outerBeadWidth := thickness / 2
	if totalOuterOptimal < thickness {
		if totalOuterOptimal+innerMinimumWidth > thickness {
			outerBeadWidth -= innerMinimumWidth / 2
		} else {
			outerBeadWidth = r.optimalWidthOuter
		}
	}
	return outerBeadWidth
}

// validateInnerBeadWidths drops inner bead widths (excluding the two
// outer beads) that fall below minimumWidth, reporting whether anything
// was removed.
func validateInnerBeadWidths(widths []int64, minimumWidth int64) ([]int64, bool) {
	if len(widths) <= 2 {
		return widths, false
	}
	filtered := make([]int64, 0, len(widths))
	filtered = append(filtered, widths[0])
	removed := false
	for _, w := range widths[1 : len(widths)-1] {
		if w < minimumWidth {
			removed = true
			continue
		}
		filtered = append(filtered, w)
	}
	filtered = append(filtered, widths[len(widths)-1])
	return filtered, removed
}

func (r *RedistributeStrategy) Compute(thickness, beadCount int64) Beading {
	innerMinimumWidth := int64(float64(r.optimalWidthInner) * r.minimumVariableLineWidth)

	var widths []int64
	if beadCount > 2 {
		outerBeadWidth := r.optimalOuterBeadWidth(thickness, innerMinimumWidth)
		virtualThickness := thickness - outerBeadWidth*2
		virtualBeadCount := beadCount - 2

		inner := r.parent.Compute(virtualThickness, virtualBeadCount)
		widths = make([]int64, 0, len(inner.BeadWidths)+2)
		widths = append(widths, outerBeadWidth)
		widths = append(widths, inner.BeadWidths...)
		widths = append(widths, outerBeadWidth)
	} else {
		widths = r.parent.Compute(thickness, beadCount).BeadWidths
	}

	filtered, removed := validateInnerBeadWidths(widths, innerMinimumWidth)
	if removed {
		return r.Compute(thickness, beadCount-1)
	}

	var sum int64
	for _, w := range filtered {
		sum += w
	}
	return Beading{
		TotalThickness:    thickness,
		BeadWidths:        filtered,
		ToolpathLocations: symmetricToolpathLocations(filtered, thickness),
		LeftOver:          thickness - sum,
	}
}
