package extrude

import "math"

// ScaleForMinLayerTime uniformly slows down a plan's extrusion moves so
// the layer takes at least minLayerTime, never below minSpeed. Travel
// moves are left alone; only FeatureExtrude segments are scaled, since
// slowing travel wouldn't help print quality and only wastes time.
//
// It returns the rescaled segments, the resulting estimate, and whether
// the head should be lifted and parked for the remainder of the target
// time because even minSpeed wasn't slow enough to fill it.
func ScaleForMinLayerTime(segments []Segment, cfg MotionConfig, minLayerTime float64) (scaled []Segment, estimate TimeMaterialEstimate, needsHeadLift bool, remainder float64) {
	estimate = Estimate(segments, cfg)
	if estimate.Total() >= minLayerTime {
		return segments, estimate, false, 0
	}

	travelTime := estimate.UnretractedTravelTime + estimate.RetractedTravelTime
	targetExtrudeTime := minLayerTime - travelTime
	if estimate.ExtrudeTime <= 0 || targetExtrudeTime <= estimate.ExtrudeTime {
		// No extrusion to slow down, or travel alone already explains
		// the shortfall: nothing left to do but idle at the end.
		return segments, estimate, true, math.Max(minLayerTime-estimate.Total(), 0)
	}

	scaleFactor := estimate.ExtrudeTime / targetExtrudeTime // < 1: slows feedrates down
	scaled = make([]Segment, len(segments))
	copy(scaled, segments)

	minFeedrate := cfg.MinSpeed
	clamped := false
	for i, seg := range scaled {
		if seg.Feature != FeatureExtrude {
			continue
		}
		newFeedrate := seg.NominalFeedrate * scaleFactor
		if newFeedrate < minFeedrate {
			newFeedrate = minFeedrate
			clamped = true
		}
		scaled[i].NominalFeedrate = newFeedrate
	}

	estimate = Estimate(scaled, cfg)
	if clamped && estimate.Total() < minLayerTime {
		return scaled, estimate, true, minLayerTime - estimate.Total()
	}
	return scaled, estimate, false, 0
}
