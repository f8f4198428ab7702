package extrude

// TimeMaterialEstimate is the time and material bookkeeping a layer
// plan buffer needs for thermal look-ahead: how long is spent actually
// extruding versus travelling, and how much material that used.
type TimeMaterialEstimate struct {
	ExtrudeTime           float64 // seconds
	UnretractedTravelTime float64
	RetractedTravelTime   float64
	Material              float64 // mm^3
}

// Total is the sum of every time component, the wall-clock length of
// the plan this estimate describes.
func (e TimeMaterialEstimate) Total() float64 {
	return e.ExtrudeTime + e.UnretractedTravelTime + e.RetractedTravelTime
}

func (e *TimeMaterialEstimate) add(other TimeMaterialEstimate) {
	e.ExtrudeTime += other.ExtrudeTime
	e.UnretractedTravelTime += other.UnretractedTravelTime
	e.RetractedTravelTime += other.RetractedTravelTime
	e.Material += other.Material
}

// ExtruderPlan is every segment printed by one extruder before the
// next extruder change, plus the temperatures that extruder must have
// reached before and during its first extrusion.
type ExtruderPlan struct {
	ExtruderIndex int
	Segments      []Segment

	// RequiredStartTemperature is the temperature the extruder must
	// have reached before its first extrusion in this plan.
	RequiredStartTemperature float64
	// ExtrusionTemperature, when set, overrides the steady-state
	// temperature for this plan's extrusions (an "initial print"
	// temperature lower than normal, for the first layers).
	ExtrusionTemperature *float64
}

func NewExtruderPlan(extruderIndex int) *ExtruderPlan {
	return &ExtruderPlan{ExtruderIndex: extruderIndex}
}

func (p *ExtruderPlan) Append(seg Segment) {
	p.Segments = append(p.Segments, seg)
}

// Estimate runs the trapezoidal motion model over every segment in the
// plan and totals up the result by feature category.
func (p *ExtruderPlan) Estimate(cfg MotionConfig) TimeMaterialEstimate {
	return Estimate(p.Segments, cfg)
}

// Estimate runs the reverse/forward trapezoidal planner over segments
// and classifies each block's time into extrude, unretracted travel or
// retracted travel according to its feature kind.
func Estimate(segments []Segment, cfg MotionConfig) TimeMaterialEstimate {
	var total TimeMaterialEstimate
	for _, b := range buildBlocks(segments, cfg) {
		t := blockTime(b, cfg.Acceleration)
		switch b.segment.Feature {
		case FeatureExtrude:
			total.ExtrudeTime += t
			total.Material += b.segment.FlowRate * t
		case FeatureUnretractedTravel:
			total.UnretractedTravelTime += t
		case FeatureRetractedTravel:
			total.RetractedTravelTime += t
		}
	}
	return total
}

// SegmentTimes returns each segment's own trapezoidal time, aligned by
// index with segments, for callers that need per-path timing (walking
// a plan backwards to find where a temperature change must start)
// rather than just the plan's aggregate Estimate.
func SegmentTimes(segments []Segment, cfg MotionConfig) []float64 {
	blocks := buildBlocks(segments, cfg)
	times := make([]float64, len(blocks))
	for i, b := range blocks {
		times[i] = blockTime(b, cfg.Acceleration)
	}
	return times
}

// GroupByExtruder splits an ordered sequence of segments into
// per-extruder plans, closing the current plan and starting a new one
// every time the extruder index changes — even if the same extruder
// is revisited later, since that later visit is its own plan with its
// own required start temperature.
func GroupByExtruder(segments []Segment, extruderOf func(Segment) int) []*ExtruderPlan {
	var plans []*ExtruderPlan
	var current *ExtruderPlan
	lastExtruder := -1

	for _, seg := range segments {
		idx := extruderOf(seg)
		if current == nil || idx != lastExtruder {
			current = NewExtruderPlan(idx)
			plans = append(plans, current)
			lastExtruder = idx
		}
		current.Append(seg)
	}
	return plans
}
