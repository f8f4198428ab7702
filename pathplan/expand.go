package pathplan

import (
	"sort"

	"github.com/go-slicer/slicecore/geom"
)

// InfillLine is one sparse infill line segment on the layer below a
// bridge skin, used to anchor bridging segments at both ends.
type InfillLine struct {
	Start, End geom.Point
}

// ExpandBridgeSkin widens a bridge skin contour sideways so that every
// segment bridging over sparse infill lands anchored on an infill line
// at each end, rather than stopping mid-air above a gap between lines.
// Vertices are walked in order; each one whose X falls within (edges
// inclusive) the horizontal span of an infill line at the same Y is left
// alone, and one that falls outside is moved to the nearest edge of the
// closest such infill line.
func ExpandBridgeSkin(skin geom.Polygon, infill []InfillLine) geom.Polygon {
	if len(infill) == 0 || len(skin) < 2 {
		return skin
	}

	spans := infillSpans(infill)
	out := make(geom.Polygon, len(skin))
	copy(out, skin)

	for i := range out {
		out[i] = snapToSpan(out[i], spans)
	}
	return out
}

// span is the horizontal projection of one infill line, sorted by its
// left edge so the nearest covering span can be found by scanning.
type span struct {
	left, right int64
	y           int64
}

func infillSpans(infill []InfillLine) []span {
	spans := make([]span, 0, len(infill))
	for _, line := range infill {
		left, right := line.Start.X, line.End.X
		if left > right {
			left, right = right, left
		}
		spans = append(spans, span{left: left, right: right, y: line.Start.Y})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].left < spans[j].left })
	return spans
}

// snapToSpan moves p's X coordinate to the nearest edge of the closest
// infill span sharing its Y, leaving p untouched if it already falls
// within a span's horizontal range.
func snapToSpan(p geom.Point, spans []span) geom.Point {
	var closest *span
	var closestDist int64

	for i := range spans {
		s := spans[i]
		if s.y != p.Y {
			continue
		}
		if p.X >= s.left && p.X <= s.right {
			return p
		}
		dist := s.left - p.X
		if dist < 0 {
			dist = p.X - s.right
		}
		if closest == nil || dist < closestDist {
			closest = &s
			closestDist = dist
		}
	}

	if closest == nil {
		return p
	}
	if p.X < closest.left {
		return geom.Point{X: closest.left, Y: p.Y}
	}
	return geom.Point{X: closest.right, Y: p.Y}
}
