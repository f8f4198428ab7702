package primetower

import (
	"testing"

	"github.com/go-slicer/slicecore/geom"
)

func TestWheelSpokesProducesSegments(t *testing.T) {
	ring := Ring{ExtruderIndex: 0, InnerRadius: 2000, OuterRadius: 3000, LineWidth: 400}
	shape, err := wheelSpokes(geom.Point{}, ring, 1000)
	if err != nil {
		t.Fatalf("wheelSpokes: %v", err)
	}
	if len(shape) == 0 {
		t.Fatal("expected at least one spoke segment")
	}
	for _, seg := range shape {
		if len(seg) != 2 {
			t.Errorf("expected 2-point spoke segments, got %d points", len(seg))
		}
	}
}

func TestSparsePatternInterleaved(t *testing.T) {
	extruders := []ExtruderSpec{
		{Index: 0, LineWidth: 400, LayerHeight: 200, FlowRatio: 1.0, RequiredPurge: 50_000_000, AdhesionTendency: 1},
		{Index: 1, LineWidth: 400, LayerHeight: 200, FlowRatio: 1.0, RequiredPurge: 50_000_000, AdhesionTendency: 2},
	}
	tower, err := NewTower(geom.Point{}, extruders)
	if err != nil {
		t.Fatalf("NewTower: %v", err)
	}

	pattern, err := tower.SparsePattern(Interleaved, []int{0, 1}, 1, 1000)
	if err != nil {
		t.Fatalf("SparsePattern: %v", err)
	}
	if len(pattern) == 0 {
		t.Fatal("expected a non-empty sparse pattern")
	}
}
