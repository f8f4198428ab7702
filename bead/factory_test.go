package bead

import "testing"

func TestNewChainRejectsBadConfig(t *testing.T) {
	if _, err := NewChain(ChainConfig{OptimalWidth: 0, MaxBeadCount: 4}); err != ErrInvalidOptimalWidth {
		t.Errorf("expected ErrInvalidOptimalWidth, got %v", err)
	}
	if _, err := NewChain(ChainConfig{OptimalWidth: 400, MaxBeadCount: 0}); err != ErrInvalidMaxBeadCount {
		t.Errorf("expected ErrInvalidMaxBeadCount, got %v", err)
	}
}

func TestNewChainFullPipeline(t *testing.T) {
	inset := int64(20)
	cfg := ChainConfig{
		OptimalWidth:             400,
		DefaultTransitionLength:  400,
		OptimalWidthOuter:        450,
		OptimalWidthInner:        350,
		MinimumVariableLineWidth: 0.5,
		MaxBeadCount:             6,
		Widening:                 &WideningConfig{MinInputWidth: 100, MinOutputWidth: 200},
		OuterWallInsetOffset:     &inset,
	}
	strategy, err := NewChain(cfg)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	beading := strategy.Compute(2000, 5)
	if beading.TotalThickness != 2000 {
		t.Errorf("TotalThickness = %d, want 2000", beading.TotalThickness)
	}
	if beading.Sum() > beading.TotalThickness {
		t.Errorf("Sum(%d) exceeds TotalThickness(%d)", beading.Sum(), beading.TotalThickness)
	}
	for i := 1; i < len(beading.ToolpathLocations); i++ {
		if beading.ToolpathLocations[i] <= beading.ToolpathLocations[i-1] {
			t.Errorf("offsets not strictly monotone at %d: %v", i, beading.ToolpathLocations)
		}
	}
}

func TestNewChainLimitsExceedingBeadCount(t *testing.T) {
	cfg := ChainConfig{
		OptimalWidth:             400,
		DefaultTransitionLength:  400,
		OptimalWidthOuter:        400,
		OptimalWidthInner:        400,
		MinimumVariableLineWidth: 0.5,
		MaxBeadCount:             4,
	}
	strategy, err := NewChain(cfg)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	beading := strategy.Compute(4000, 5)
	if int64(len(beading.BeadWidths)) != 5 {
		t.Fatalf("expected 5 bead slots (4 real + 1 marker), got %d", len(beading.BeadWidths))
	}
}
