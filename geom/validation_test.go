package geom

import (
	"errors"
	"testing"
)

// ==============================================================================
// Error Validation Tests
// ==============================================================================

func TestBooleanOp64_InvalidClipType(t *testing.T) {
	subjects := Shape{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	clips := Shape{{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}

	// ClipType 100 is out of range (valid: 0-3)
	_, _, err := BooleanOp(ClipType(100), NonZero, subjects, nil, clips)
	if !errors.Is(err, ErrInvalidClipType) {
		t.Errorf("Expected ErrInvalidClipType, got: %v", err)
	}
}

func TestBooleanOp64_InvalidFillRule(t *testing.T) {
	subjects := Shape{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	clips := Shape{{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}

	// FillRule 100 is out of range (valid: 0-3)
	_, _, err := BooleanOp(Union, FillRule(100), subjects, nil, clips)
	if !errors.Is(err, ErrInvalidFillRule) {
		t.Errorf("Expected ErrInvalidFillRule, got: %v", err)
	}
}

func TestBooleanOp64_EmptyPaths(t *testing.T) {
	// Empty paths should not cause errors - just return empty result
	result, _, err := BooleanOp(Union, NonZero, nil, nil, nil)
	if err != nil {
		t.Errorf("Unexpected error for empty paths: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected empty result for empty paths, got %d paths", len(result))
	}
}

func TestBooleanOp64_DegeneratePaths(t *testing.T) {
	// Paths with < 3 points should be filtered out
	subjects := Shape{
		{{0, 0}, {10, 0}},                    // Only 2 points - invalid
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, // Valid rectangle
	}
	clips := Shape{{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}

	// Should succeed and filter out degenerate path
	_, _, err := BooleanOp(Union, NonZero, subjects, nil, clips)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestInflatePaths64_InvalidJoinType(t *testing.T) {
	paths := Shape{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	// JoinType 100 is out of range (valid: 0-3)
	_, err := InflatePaths(paths, 5.0, JoinType(100), EndPolygon)
	if !errors.Is(err, ErrInvalidJoinType) {
		t.Errorf("Expected ErrInvalidJoinType, got: %v", err)
	}
}

func TestInflatePaths64_InvalidEndType(t *testing.T) {
	paths := Shape{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	// EndType 100 is out of range (valid: 0-4)
	_, err := InflatePaths(paths, 5.0, JoinSquare, EndType(100))
	if !errors.Is(err, ErrInvalidEndType) {
		t.Errorf("Expected ErrInvalidEndType, got: %v", err)
	}
}

func TestInflatePaths64_InvalidOptions(t *testing.T) {
	paths := Shape{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	tests := []struct {
		name string
		opts OffsetOptions
	}{
		{
			name: "negative miter limit",
			opts: OffsetOptions{MiterLimit: -1.0, ArcTolerance: 0.25},
		},
		{
			name: "zero miter limit",
			opts: OffsetOptions{MiterLimit: 0.0, ArcTolerance: 0.25},
		},
		{
			name: "negative arc tolerance",
			opts: OffsetOptions{MiterLimit: 2.0, ArcTolerance: -0.1},
		},
		{
			name: "zero arc tolerance",
			opts: OffsetOptions{MiterLimit: 2.0, ArcTolerance: 0.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InflatePaths(paths, 5.0, JoinSquare, EndPolygon, tt.opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Expected ErrInvalidOptions for %s, got: %v", tt.name, err)
			}
		})
	}
}

func TestInflatePaths64_EmptyPaths(t *testing.T) {
	// Empty paths should return empty result, not error
	result, err := InflatePaths(nil, 5.0, JoinSquare, EndPolygon)
	if err != nil {
		t.Errorf("Unexpected error for empty paths: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected empty result for empty paths, got %d paths", len(result))
	}
}

func TestSimplifyPath64_InvalidEpsilon(t *testing.T) {
	path := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	tests := []struct {
		name    string
		epsilon float64
	}{
		{"zero epsilon", 0.0},
		{"negative epsilon", -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SimplifyPath(path, tt.epsilon, false)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter for %s, got: %v", tt.name, err)
			}
		})
	}
}

func TestSimplifyPath64_EmptyPath(t *testing.T) {
	// Empty path should return empty result, not error
	result, err := SimplifyPath(Polygon{}, 1.0, false)
	if err != nil {
		t.Errorf("Unexpected error for empty path: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected empty result for empty path, got %d points", len(result))
	}
}

func TestRectClip64_InvalidRectangle(t *testing.T) {
	paths := Shape{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	tests := []struct {
		name string
		rect Polygon
	}{
		{"empty rect", Polygon{}},
		{"1 point", Polygon{{0, 0}}},
		{"2 points", Polygon{{0, 0}, {10, 10}}},
		{"3 points", Polygon{{0, 0}, {10, 0}, {10, 10}}},
		{"5 points", Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RectClip(tt.rect, paths)
			if !errors.Is(err, ErrInvalidRectangle) {
				t.Errorf("Expected ErrInvalidRectangle for %s, got: %v", tt.name, err)
			}
		})
	}
}

func TestRectClip64_EmptyPaths(t *testing.T) {
	rect := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	// Empty paths should return empty result, not error
	result, err := RectClip(rect, nil)
	if err != nil {
		t.Errorf("Unexpected error for empty paths: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected empty result for empty paths, got %d paths", len(result))
	}
}

// ==============================================================================
// Edge Case Tests
// ==============================================================================

func TestArea64_EmptyPath(t *testing.T) {
	area := Area(Polygon{})
	if area != 0 {
		t.Errorf("Expected area 0 for empty path, got %f", area)
	}
}

func TestIsPositive64_EmptyPath(t *testing.T) {
	result := IsPositive(Polygon{})
	if result {
		t.Error("Expected false for empty path")
	}
}

func TestReverse64_EmptyPath(t *testing.T) {
	result := Reverse(Polygon{})
	if len(result) != 0 {
		t.Errorf("Expected empty result for empty path, got %d points", len(result))
	}
}

func TestReversePaths64_EmptyPaths(t *testing.T) {
	result := ReverseShape(Shape{})
	if len(result) != 0 {
		t.Errorf("Expected empty result for empty paths, got %d paths", len(result))
	}
}

func TestBounds64_EmptyPath(t *testing.T) {
	result := Bounds(Polygon{})
	// Should return empty/zero rectangle
	if result.Width() != 0 || result.Height() != 0 {
		t.Errorf("Expected zero-size rectangle for empty path, got width=%d height=%d",
			result.Width(), result.Height())
	}
}

func TestBoundsPaths64_EmptyPaths(t *testing.T) {
	result := BoundsShape(Shape{})
	// Should return empty/zero rectangle
	if result.Width() != 0 || result.Height() != 0 {
		t.Errorf("Expected zero-size rectangle for empty paths, got width=%d height=%d",
			result.Width(), result.Height())
	}
}
