package bead

// ChainConfig parameterizes the standard factory-built chain:
// Distributed -> Redistribute -> optionally Widening -> optionally
// Outer-wall-inset -> Limited (outermost).
type ChainConfig struct {
	OptimalWidth             int64
	DefaultTransitionLength  int64
	OptimalWidthOuter        int64
	OptimalWidthInner        int64
	MinimumVariableLineWidth float64
	MaxBeadCount             int64

	// Widening enables the hairline-feature wrapper when non-nil.
	Widening *WideningConfig

	// OuterWallInsetOffset enables the outer-wall-inset wrapper when
	// non-nil.
	OuterWallInsetOffset *int64
}

// WideningConfig configures the optional Widening wrapper.
type WideningConfig struct {
	MinInputWidth  int64
	MinOutputWidth int64
}

// NewChain builds the standard bead strategy chain. The Limited wrapper
// is always outermost so its marker bead is never reinterpreted by an
// enclosing wrapper.
func NewChain(cfg ChainConfig) (Strategy, error) {
	if cfg.OptimalWidth <= 0 {
		return nil, ErrInvalidOptimalWidth
	}
	if cfg.MaxBeadCount <= 0 {
		return nil, ErrInvalidMaxBeadCount
	}

	var s Strategy = NewDistributedStrategy(cfg.OptimalWidth, cfg.DefaultTransitionLength)
	s = NewRedistributeStrategy(cfg.OptimalWidthOuter, cfg.OptimalWidthInner, cfg.MinimumVariableLineWidth, s)

	if cfg.Widening != nil {
		s = NewWideningStrategy(s, cfg.Widening.MinInputWidth, cfg.Widening.MinOutputWidth)
	}
	if cfg.OuterWallInsetOffset != nil {
		s = NewOuterWallInsetStrategy(*cfg.OuterWallInsetOffset, s)
	}

	return NewLimitedStrategy(cfg.MaxBeadCount, s), nil
}
