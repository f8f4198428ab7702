package bead

// Strategy is the four-query capability every bead-width policy
// implements, plus the two transition-placement queries used to anchor
// bead-count changes along a skeleton. Strategies are stateless: all
// state needed to answer a query is passed in as an argument.
//
// Wrappers hold exactly one inner Strategy and own it exclusively;
// composition happens at construction time via NewChain, never by
// mutation afterward.
type Strategy interface {
	// Compute produces widths and offsets for thickness T with n beads.
	Compute(thickness, beadCount int64) Beading

	// OptimalThickness returns the thickness at which n beads print at
	// their ideal width.
	OptimalThickness(beadCount int64) int64

	// TransitionThickness returns the thickness at which it becomes
	// better to switch from lowerBeadCount to lowerBeadCount+1 beads.
	TransitionThickness(lowerBeadCount int64) int64

	// OptimalBeadCount returns the ideal bead count for thickness T.
	OptimalBeadCount(thickness int64) int64

	// TransitioningLength returns the skeleton length over which a bead
	// count of lowerBeadCount smoothly changes to lowerBeadCount+1.
	TransitioningLength(lowerBeadCount int64) int64

	// TransitionAnchor returns, as a fraction in [0,1] counted from the
	// lowerBeadCount end, where within the transition region the
	// thickness equals TransitionThickness(lowerBeadCount).
	TransitionAnchor(lowerBeadCount int64) float64
}

// defaultTransitioningLength is the fallback most concrete strategies
// use: a fixed length, except for the very first transition (0 -> 1
// beads) which gets a short length so hairline features resolve fast.
func defaultTransitioningLength(defaultLength, lowerBeadCount int64) int64 {
	if lowerBeadCount == 0 {
		return 10
	}
	return defaultLength
}

// defaultTransitionAnchor derives the anchor fraction from the three
// thicknesses bracketing the transition, the formula every strategy
// that doesn't need a bespoke anchor shares.
func defaultTransitionAnchor(s Strategy, lowerBeadCount int64) float64 {
	lowerOptimum := s.OptimalThickness(lowerBeadCount)
	transitionPoint := s.TransitionThickness(lowerBeadCount)
	upperOptimum := s.OptimalThickness(lowerBeadCount + 1)
	if upperOptimum == lowerOptimum {
		return 1.0
	}
	return 1.0 - float64(transitionPoint-lowerOptimum)/float64(upperOptimum-lowerOptimum)
}

// symmetricToolpathLocations fills in toolpath offsets for a set of
// known bead widths so that the result is centrally symmetric about
// thickness/2: offsets grow inward from each end, and an odd middle
// bead sits exactly at thickness/2.
func symmetricToolpathLocations(widths []int64, thickness int64) []int64 {
	n := len(widths)
	locations := make([]int64, n)
	if n == 0 {
		return locations
	}

	var lastCoord, lastWidth int64
	for i := 0; i < n/2; i++ {
		lastCoord = lastCoord + (lastWidth+widths[i])/2
		locations[i] = lastCoord
		lastWidth = widths[i]
	}

	if n%2 == 1 {
		locations[n/2] = thickness / 2
	}

	lastCoord, lastWidth = thickness, 0
	for i := n - 1; i >= n-n/2; i-- {
		lastCoord = lastCoord - (lastWidth+widths[i])/2
		locations[i] = lastCoord
		lastWidth = widths[i]
	}
	return locations
}
