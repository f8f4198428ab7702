package extrude

// FanSpeed linearly interpolates between fanSpeedMin (at
// minLayerTimeFanMax and above) and fanSpeedMax (at or below
// minLayerTime). A layer faster than minLayerTime pins the fan at its
// maximum, since there's no time for a slower-spinning fan to matter.
func FanSpeed(layerTime, minLayerTime, minLayerTimeFanMax, fanSpeedMin, fanSpeedMax float64) float64 {
	if layerTime <= minLayerTime {
		return fanSpeedMax
	}
	if layerTime >= minLayerTimeFanMax {
		return fanSpeedMin
	}

	span := minLayerTimeFanMax - minLayerTime
	if span <= 0 {
		return fanSpeedMax
	}
	t := (layerTime - minLayerTime) / span
	return fanSpeedMax + t*(fanSpeedMin-fanSpeedMax)
}

// FlowTemperatureOffset is the small temperature delta applied to a
// plan's base print temperature when material_flow_dependent_temperature
// is enabled: extruding faster than referenceFlow runs hotter, extruding
// slower runs cooler, scaled by coefficient (degrees C per mm^3/s).
func FlowTemperatureOffset(avgFlow, referenceFlow, coefficient float64) float64 {
	return (avgFlow - referenceFlow) * coefficient
}
