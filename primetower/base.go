package primetower

import (
	"math"

	"github.com/go-slicer/slicecore/geom"
)

// BaseLayer is one extra outset ring generated for bed adhesion on an
// early layer, at height z above the first layer.
type BaseLayer struct {
	Z       int64
	Outline geom.Shape
}

// BaseLayers generates the first-layer (and, for a raft, multi-layer)
// adhesion base: concentric outsets of outline whose extra radius
// decays with height following curveMagnitude, matching CuraEngine's
// brim_radius_factor = (1 - z/baseHeight)^curveMagnitude curve. Rings
// thinner than one lineWidth are skipped.
func BaseLayers(outline geom.Shape, lineWidth, extraRadius, baseHeight, layerHeight int64, curveMagnitude float64) ([]BaseLayer, error) {
	if baseHeight <= 0 {
		return nil, ErrInvalidBaseHeight
	}
	if layerHeight <= 0 {
		layerHeight = 1
	}

	var layers []BaseLayer
	for z := int64(0); z < baseHeight; z += layerHeight {
		factor := math.Pow(1.0-float64(z)/float64(baseHeight), curveMagnitude)
		radius := int64(float64(extraRadius) * factor)
		rings := radius / lineWidth
		if rings == 0 {
			continue
		}
		radius = lineWidth * rings

		outset, err := geom.InflatePaths(outline, float64(radius), geom.JoinRound, geom.EndPolygon)
		if err != nil {
			return nil, err
		}
		layers = append(layers, BaseLayer{Z: z, Outline: outset})
	}
	return layers, nil
}
