package pathplan

import (
	"testing"

	"github.com/go-slicer/slicecore/geom"
)

func TestExpandBridgeSkinLeavesAnchoredSegmentAlone(t *testing.T) {
	skin := geom.Polygon{{X: 50, Y: 0}, {X: 450, Y: 0}}
	infill := []InfillLine{{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 500, Y: 0}}}

	out := ExpandBridgeSkin(skin, infill)
	if out[0] != skin[0] || out[1] != skin[1] {
		t.Errorf("expected points already within the infill span to be untouched, got %v", out)
	}
}

func TestExpandBridgeSkinSnapsShortSegmentOut(t *testing.T) {
	skin := geom.Polygon{{X: 450, Y: 0}, {X: 480, Y: 0}}
	infill := []InfillLine{
		{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 400, Y: 0}},
		{Start: geom.Point{X: 500, Y: 0}, End: geom.Point{X: 900, Y: 0}},
	}

	out := ExpandBridgeSkin(skin, infill)
	if out[0].X != 400 {
		t.Errorf("expected the first point snapped to the nearest infill line's right edge, got %d", out[0].X)
	}
	if out[1].X != 500 {
		t.Errorf("expected the second point snapped to the next infill line's left edge, got %d", out[1].X)
	}
}

func TestExpandBridgeSkinNoInfillIsNoop(t *testing.T) {
	skin := geom.Polygon{{X: 0, Y: 0}, {X: 100, Y: 0}}
	if out := ExpandBridgeSkin(skin, nil); len(out) != 2 || out[0] != skin[0] {
		t.Errorf("expected a no-op when there is no infill, got %v", out)
	}
}
