package primetower

import (
	"testing"

	"github.com/go-slicer/slicecore/geom"
)

func TestNewTowerRejectsEmpty(t *testing.T) {
	if _, err := NewTower(geom.Point{}, nil); err != ErrNoExtruders {
		t.Fatalf("expected ErrNoExtruders, got %v", err)
	}
}

func TestNewTowerOrdersRingsByAdhesion(t *testing.T) {
	extruders := []ExtruderSpec{
		{Index: 0, LineWidth: 400, LayerHeight: 200, FlowRatio: 1.0, RequiredPurge: 50_000_000, AdhesionTendency: 1},
		{Index: 1, LineWidth: 400, LayerHeight: 200, FlowRatio: 1.0, RequiredPurge: 50_000_000, AdhesionTendency: 5},
	}
	tower, err := NewTower(geom.Point{X: 0, Y: 0}, extruders)
	if err != nil {
		t.Fatalf("NewTower: %v", err)
	}
	if tower.Rings[0].ExtruderIndex != 1 {
		t.Errorf("expected extruder 1 (higher adhesion) outermost, got %d", tower.Rings[0].ExtruderIndex)
	}
	if tower.Rings[0].OuterRadius != tower.Radius {
		t.Errorf("outermost ring's OuterRadius = %d, want tower radius %d", tower.Rings[0].OuterRadius, tower.Radius)
	}
	for i, r := range tower.Rings {
		if r.InnerRadius >= r.OuterRadius {
			t.Errorf("ring %d has non-positive width: inner=%d outer=%d", i, r.InnerRadius, r.OuterRadius)
		}
	}
}

func TestRingsForLayerNormalMode(t *testing.T) {
	extruders := []ExtruderSpec{
		{Index: 0, LineWidth: 400, LayerHeight: 200, FlowRatio: 1.0, RequiredPurge: 50_000_000, AdhesionTendency: 1},
		{Index: 1, LineWidth: 400, LayerHeight: 200, FlowRatio: 1.0, RequiredPurge: 50_000_000, AdhesionTendency: 2},
	}
	tower, _ := NewTower(geom.Point{X: 0, Y: 0}, extruders)

	rings := tower.RingsForLayer(Normal, []int{0, 1}, 1)
	if len(rings) != 1 || rings[0].ExtruderIndex != 0 {
		t.Fatalf("expected only extruder 0 to need priming, got %+v", rings)
	}
}

func TestSparseRingsOnlyInInterleaved(t *testing.T) {
	extruders := []ExtruderSpec{
		{Index: 0, LineWidth: 400, LayerHeight: 200, FlowRatio: 1.0, RequiredPurge: 50_000_000, AdhesionTendency: 1},
		{Index: 1, LineWidth: 400, LayerHeight: 200, FlowRatio: 1.0, RequiredPurge: 50_000_000, AdhesionTendency: 2},
	}
	tower, _ := NewTower(geom.Point{X: 0, Y: 0}, extruders)

	if got := tower.SparseRings(Normal, []int{0, 1}, 1); got != nil {
		t.Errorf("Normal mode should report no sparse rings, got %v", got)
	}
	sparse := tower.SparseRings(Interleaved, []int{0, 1}, 1)
	if len(sparse) != 1 || sparse[0].ExtruderIndex != 1 {
		t.Errorf("expected extruder 1's ring to be sparse, got %+v", sparse)
	}
}
