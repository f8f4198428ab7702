package pathplan

import (
	"math"
	"sort"

	"github.com/go-slicer/slicecore/geom"
)

// BridgeConfig tunes bridge-angle detection.
type BridgeConfig struct {
	LineWidth int64
	// SupportedAreaFraction is how much of the skin's area must already
	// rest on solid material before the region stops counting as a
	// bridge at all.
	SupportedAreaFraction float64
	// InfillBelowAngle, when set, skips the per-degree scan and bases
	// the bridge angle directly on the sparse infill pattern running on
	// the layer below (the caller has already established that the
	// layer below is mostly sparse infill, not a solid region).
	InfillBelowAngle       *float64
	InfillPatternIsLinear  bool
}

// bridge state machine, walking the sorted intersections of a single
// scan line with both the skin outline and the supported regions.
type bridgeStatus int

const (
	statusOutside bridgeStatus = iota
	statusHanging
	statusAnchored
	statusSupported
)

// DetectBridgeAngle decides the direction bridging lines should run for
// a skin region that overhangs unsupported space on the layer below.
// solidBelow is the solid area of the previous layer; it returns false
// if the skin is sufficiently supported not to need a bridge treatment
// at all.
func DetectBridgeAngle(skin, solidBelow geom.Shape, cfg BridgeConfig) (angleDeg float64, isBridge bool, err error) {
	supported, err := geom.Intersect(skin, solidBelow, geom.NonZero)
	if err != nil {
		return 0, false, err
	}
	supportedUnion, err := geom.Union(supported, solidBelow, geom.NonZero)
	if err != nil {
		return 0, false, err
	}

	skinArea := shapeArea(skin)
	if skinArea == 0 {
		return 0, false, nil
	}
	if shapeArea(supported)/skinArea >= cfg.SupportedAreaFraction {
		return 0, false, nil
	}

	if cfg.InfillBelowAngle != nil {
		offset := 45.0
		if cfg.InfillPatternIsLinear {
			offset = 90.0
		}
		return math.Mod(*cfg.InfillBelowAngle+offset, 180), true, nil
	}

	lineWidth := cfg.LineWidth
	if lineWidth <= 0 {
		lineWidth = 400
	}

	bestAngle := 0.0
	bestScore := int64(math.MinInt64)
	for alpha := 0; alpha < 180; alpha++ {
		score := evaluateBridgeLines(skin, supportedUnion, lineWidth, float64(alpha))
		if score > bestScore {
			bestScore = score
			bestAngle = float64(alpha)
		}
	}

	return math.Mod(bestAngle+90, 180), true, nil
}

func shapeArea(shape geom.Shape) float64 {
	total := 0.0
	for _, poly := range shape {
		a := geom.Area(poly)
		if a < 0 {
			a = -a
		}
		total += a
	}
	return total
}

// evaluateBridgeLines rotates both shapes by angleDeg so that candidate
// bridging lines become horizontal, then scores every such line across
// the skin's bounding box.
func evaluateBridgeLines(skin, supported geom.Shape, lineWidth int64, angleDeg float64) int64 {
	angleRad := angleDeg * math.Pi / 180
	rotatedSkin := rotateShape(skin, angleRad)
	rotatedSupported := rotateShape(supported, angleRad)

	skinBounds := geom.BoundsShape(rotatedSkin)
	supportedBounds := geom.BoundsShape(rotatedSupported)
	if skinBounds.Top >= skinBounds.Bottom {
		return math.MinInt64
	}

	lineCount := (skinBounds.Bottom - skinBounds.Top) / lineWidth
	if lineCount <= 0 {
		return math.MinInt64
	}

	lineMin := skinBounds.Top + lineWidth/2
	var total int64
	for i := int64(0); i < lineCount; i++ {
		lineY := lineMin + i*lineWidth
		hasSupport := lineY >= supportedBounds.Top && lineY <= supportedBounds.Bottom
		supportedXs := []int64(nil)
		if hasSupport {
			supportedXs = horizontalLineIntersections(rotatedSupported, lineY)
		}
		skinXs := horizontalLineIntersections(rotatedSkin, lineY)
		total += evaluateBridgeLine(skinXs, supportedXs)
	}
	return total
}

func rotateShape(shape geom.Shape, angleRad float64) geom.Shape {
	out := make(geom.Shape, len(shape))
	for i, poly := range shape {
		out[i] = geom.RotatePath(poly, angleRad, geom.Point{})
	}
	return out
}

// horizontalLineIntersections finds every x coordinate at which the
// horizontal line y=lineY crosses an edge of shape, unsorted.
func horizontalLineIntersections(shape geom.Shape, lineY int64) []int64 {
	var xs []int64
	for _, poly := range shape {
		n := len(poly)
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			minY, maxY := a.Y, b.Y
			if minY > maxY {
				minY, maxY = maxY, minY
			}
			if lineY < minY || lineY > maxY {
				continue
			}
			t := float64(lineY-a.Y) / float64(b.Y-a.Y)
			x := float64(a.X) + t*float64(b.X-a.X)
			xs = append(xs, int64(math.Round(x)))
		}
	}
	return xs
}

// evaluateBridgeLine scores one candidate bridging line: positive for
// length spent properly bridging between two supported areas, negative
// for length spent hanging unsupported.
func evaluateBridgeLine(skinXs, supportedXs []int64) int64 {
	if len(skinXs) < 2 {
		return 0
	}
	skinXs = append([]int64(nil), skinXs...)
	supportedXs = append([]int64(nil), supportedXs...)
	sort.Slice(skinXs, func(i, j int) bool { return skinXs[i] < skinXs[j] })
	sort.Slice(supportedXs, func(i, j int) bool { return supportedXs[i] < supportedXs[j] })

	insideSkin := false
	insideSupported := false
	var lastPos int64
	var score int64
	status := statusOutside

	for len(skinXs) > 0 || len(supportedXs) > 0 {
		nextIsSkin := false
		nextIsSupported := false
		switch {
		case len(skinXs) == 0:
			nextIsSupported = true
		case len(supportedXs) == 0:
			nextIsSkin = true
		case skinXs[0] == supportedXs[0]:
			nextIsSkin, nextIsSupported = true, true
		case skinXs[0] < supportedXs[0]:
			nextIsSkin = true
			if insideSkin && insideSupported {
				nextIsSupported = true
			}
		default:
			nextIsSupported = true
			if !insideSupported && !insideSkin {
				nextIsSkin = true
			}
		}

		nextInsideSkin := insideSkin
		nextInsideSupported := insideSupported
		var next int64
		if nextIsSkin {
			next = skinXs[0]
			skinXs = skinXs[1:]
			nextInsideSkin = !nextInsideSkin
		}
		if nextIsSupported {
			next = supportedXs[0]
			supportedXs = supportedXs[1:]
			nextInsideSupported = !nextInsideSupported
		}

		leavingSkin := nextIsSkin && !nextInsideSkin
		reachingSupported := nextIsSupported && nextInsideSupported

		addBridging := false
		addHanging := false
		switch status {
		case statusOutside:
			if reachingSupported {
				status = statusSupported
			} else {
				status = statusHanging
			}
		case statusSupported:
			if leavingSkin {
				status = statusOutside
			} else {
				status = statusAnchored
			}
		case statusHanging:
			addHanging = true
			if reachingSupported {
				status = statusSupported
			} else {
				status = statusOutside
			}
		case statusAnchored:
			if reachingSupported {
				addBridging = true
				status = statusSupported
			} else if leavingSkin {
				addHanging = true
				status = statusOutside
			}
		}

		if addBridging || addHanging {
			length := next - lastPos
			if addBridging {
				score += length
			} else {
				score -= length
			}
		}

		lastPos = next
		insideSkin = nextInsideSkin
		insideSupported = nextInsideSupported
	}

	return score
}
