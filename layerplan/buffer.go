package layerplan

import (
	"math"

	"github.com/go-slicer/slicecore/extrude"
	"github.com/go-slicer/slicecore/geom"
)

// extraPreheatTime absorbs accumulated discrepancy between the
// estimated and actual heating times by starting preheat slightly
// earlier than computed.
const extraPreheatTime = 1.0

// Buffer holds a rolling window of layer plans, deep enough that a
// temperature command can be inserted at the point in the timeline
// where heating or cooling actually has to start, which is often
// several layers before the layer that needs it. Every operation is
// synchronous; nothing here is safe to call from more than one
// goroutine at a time.
type Buffer struct {
	Size            int
	Preheat         Preheat
	Motion          extrude.MotionConfig
	TravelFeedrate  float64
	ExtruderCount   int

	plans []*LayerPlan
}

func NewBuffer(size int, preheat Preheat, motion extrude.MotionConfig, travelFeedrate float64, extruderCount int) *Buffer {
	if size < 1 {
		size = 1
	}
	return &Buffer{Size: size, Preheat: preheat, Motion: motion, TravelFeedrate: travelFeedrate, ExtruderCount: extruderCount}
}

// Push appends a layer plan to the back of the buffer, stitching a
// connecting travel move from the previous layer first. If the buffer
// grows past its bound, the oldest layer is popped and handed to sink.
func (b *Buffer) Push(lp *LayerPlan, sink func(*LayerPlan)) {
	if len(b.plans) > 0 {
		b.connectTravel(b.plans[len(b.plans)-1], lp)
	}
	b.plans = append(b.plans, lp)
	if len(b.plans) > b.Size {
		front := b.plans[0]
		b.plans = b.plans[1:]
		if sink != nil {
			sink(front)
		}
	}
}

// Handle pushes a layer plan, inserts its temperature commands, and
// may emit the buffer's oldest layer to sink if the buffer overflowed.
func (b *Buffer) Handle(lp *LayerPlan, sink func(*LayerPlan)) {
	b.Push(lp, sink)
	b.processNewestLayer()
}

// Flush inserts temperature commands for whatever is left in the
// buffer and emits every remaining layer, in order, oldest first.
func (b *Buffer) Flush(sink func(*LayerPlan)) {
	if len(b.plans) > 0 {
		b.processNewestLayer()
	}
	for _, p := range b.plans {
		if sink != nil {
			sink(p)
		}
	}
	b.plans = nil
}

// connectTravel extends prev's tail extruder plan with a travel move
// to newest's first destination, so the Z change happens across a
// commanded XY move instead of as a bare Z command.
func (b *Buffer) connectTravel(prev, newest *LayerPlan) {
	if newest.FirstDest == nil || len(prev.ExtruderPlans) == 0 || len(newest.ExtruderPlans) == 0 {
		return
	}
	dest := *newest.FirstDest
	if prev.LastPosition != nil && *prev.LastPosition == dest {
		return
	}

	start := dest
	if prev.LastPosition != nil {
		start = *prev.LastPosition
	}

	feature := extrude.FeatureUnretractedTravel
	if newest.RequiresRetractAtFirstWall {
		feature = extrude.FeatureRetractedTravel
	}

	lastPlan := prev.ExtruderPlans[len(prev.ExtruderPlans)-1]
	lastPlan.Append(extrude.Segment{
		Start:           toVector(start),
		End:             toVector(dest),
		NominalFeedrate: b.TravelFeedrate,
		Feature:         feature,
	})
	prev.LastPosition = &dest
}

func toVector(p geom.Point) extrude.Vector {
	return extrude.Vector{X: float64(p.X) / 1000, Y: float64(p.Y) / 1000}
}

// flatten collects every extruder plan across the buffer, in print
// order; processNewestLayer builds this working list once per
// completed layer.
func (b *Buffer) flatten() []*Plan {
	var flat []*Plan
	for _, lp := range b.plans {
		flat = append(flat, lp.ExtruderPlans...)
	}
	return flat
}

// processNewestLayer computes required start (and, if applicable,
// initial-print) temperatures for every extruder plan on the layer
// just pushed, then inserts whatever preheat/cooldown commands each
// one needs into earlier plans in the buffer.
func (b *Buffer) processNewestLayer() {
	if len(b.plans) == 0 {
		return
	}
	newest := b.plans[len(b.plans)-1]
	if len(newest.ExtruderPlans) == 0 {
		b.plans = b.plans[:len(b.plans)-1]
		return
	}

	flat := b.flatten()
	baseIdx := len(flat) - len(newest.ExtruderPlans)

	for i, plan := range newest.ExtruderPlans {
		overallIdx := baseIdx + i
		extruder := plan.ExtruderIndex

		est := plan.Estimate(b.Motion)
		unretracted := est.ExtrudeTime + est.UnretractedTravelTime
		avgFlow := 0.0
		if unretracted > 0 {
			avgFlow = est.Material / unretracted
		}

		printTemp := b.Preheat.PrintTemperature(extruder, avgFlow, plan.IsInitialLayer)
		initialPrintTemp := b.Preheat.InitialPrintTemperature(extruder)

		prevSameExtruderHot := false
		if overallIdx > 0 {
			prev := flat[overallIdx-1]
			prevEst := prev.Estimate(b.Motion)
			prevSameExtruderHot = prev.ExtruderIndex == extruder && (prevEst.ExtrudeTime+prevEst.UnretractedTravelTime) > 0
		}

		if initialPrintTemp == 0 || prevSameExtruderHot {
			plan.RequiredStartTemperature = printTemp
		} else {
			plan.RequiredStartTemperature = initialPrintTemp
			temp := printTemp
			plan.ExtrusionTemperature = &temp
		}

		if overallIdx == 0 {
			// The very first extruder plan of the whole job: the
			// caller reads RequiredStartTemperature/ExtrusionTemperature
			// via InitialTemperatures to seed starting gcode temps.
			continue
		}

		b.insertTempCommandsFor(flat, overallIdx)
	}
}

// InitialTemperatures returns the starting temperature every extruder
// should be set to before the very first layer plan: the first used
// extruder goes to its required/extrusion temperature, every other
// extruder goes to standby.
func (b *Buffer) InitialTemperatures(first *Plan) map[int]float64 {
	temps := make(map[int]float64, b.ExtruderCount)
	for e := 0; e < b.ExtruderCount; e++ {
		if e == first.ExtruderIndex {
			if first.ExtrusionTemperature != nil {
				temps[e] = *first.ExtrusionTemperature
			} else {
				temps[e] = first.RequiredStartTemperature
			}
		} else {
			temps[e] = b.Preheat.StandbyTemperature(e)
		}
	}
	return temps
}

func (b *Buffer) insertTempCommandsFor(flat []*Plan, idx int) {
	plan := flat[idx]
	extruder := plan.ExtruderIndex
	prev := flat[idx-1]
	prevExtruder := prev.ExtruderIndex

	if prevExtruder != extruder {
		standby := b.Preheat.StandbyTemperature(prevExtruder)
		plan.PrevExtruderStandbyTemp = &standby
	}

	if prevExtruder == extruder {
		b.insertPreheatSingleExtrusion(prev, extruder, plan.RequiredStartTemperature)
		return
	}

	b.insertPreheatMultiExtrusion(flat, idx)
	b.insertFinalPrintTempCommand(prev)
	b.insertPrintTempCommand(plan)
}

// insertPreheatSingleExtrusion preheats across a layer change where
// the same extruder continues: the midpoint of the temperature ramp
// is placed exactly at the boundary between the two plans.
func (b *Buffer) insertPreheatSingleExtrusion(prev *Plan, extruder int, requiredTemp float64) {
	if !b.Preheat.NozzleTempEnabled(extruder) {
		return
	}
	prevTemp := requiredOrExtrusionTemp(prev)
	timeBeforeEnd := 0.5 * timeToGoFromTempToTemp(b.Preheat, extruder, prevTemp, requiredTemp)

	total := prev.Estimate(b.Motion).Total()
	if timeBeforeEnd > total {
		timeBeforeEnd = total
	}
	b.insertPreheatCommand(prev, timeBeforeEnd, extruder, requiredTemp)
}

// insertPreheatCommand walks prev's paths backwards from its end,
// accumulating time, to find exactly where timeBeforeEnd lands.
func (b *Buffer) insertPreheatCommand(plan *Plan, timeBeforeEnd float64, extruder int, temp float64) {
	times := extrude.SegmentTimes(plan.Segments, b.Motion)
	accTime := 0.0
	for pathIdx := len(times) - 1; pathIdx >= 0; pathIdx-- {
		accTime += times[pathIdx]
		if accTime > timeBeforeEnd {
			timeAfterPathStart := accTime - timeBeforeEnd
			plan.insertCommand(pathIdx, extruder, temp, false, timeAfterPathStart)
			return
		}
	}
	plan.insertCommand(0, extruder, temp, false, 0)
}

// computeStandbyTempPlan figures out how much of the idle window
// before plan can be spent at standby temperature, and how long
// heating back up from there takes.
func (b *Buffer) computeStandbyTempPlan(flat []*Plan, idx int) WarmUpResult {
	plan := flat[idx]
	extruder := plan.ExtruderIndex
	initialPrintTemp := plan.RequiredStartTemperature

	inBetween := 0.0
	for j := idx - 1; j >= 0; j-- {
		before := flat[j]
		if before.ExtruderIndex == extruder {
			tempBefore := b.Preheat.FinalPrintTemperature(extruder)
			if tempBefore == 0 {
				tempBefore = requiredOrExtrusionTemp(before)
			}
			warm := warmUpAfterCoolDown(b.Preheat, extruder, inBetween, tempBefore, b.Preheat.StandbyTemperature(extruder), initialPrintTemp)
			warm.HeatingTime = math.Min(inBetween, warm.HeatingTime+extraPreheatTime)
			return warm
		}
		inBetween += before.Estimate(b.Motion).Total()
	}

	standby := b.Preheat.StandbyTemperature(extruder)
	heating := timeToGoFromTempToTemp(b.Preheat, extruder, standby, initialPrintTemp)
	lowest := standby
	if heating > inBetween {
		heating = inBetween
		lowest = initialPrintTemp - inBetween*b.Preheat.HeatUpSpeed(extruder)
	}
	heating += extraPreheatTime
	return WarmUpResult{TotalTimeWindow: inBetween, HeatingTime: heating, LowestTemperature: lowest}
}

func (b *Buffer) handleStandbyTemp(flat []*Plan, idx int, standbyTemp float64) {
	extruder := flat[idx].ExtruderIndex
	for j := idx - 2; j >= 0; j-- {
		if flat[j].ExtruderIndex == extruder {
			temp := standbyTemp
			flat[j+1].PrevExtruderStandbyTemp = &temp
			return
		}
	}
	flat[0].insertCommand(0, extruder, standbyTemp, false, 0)
}

// insertPreheatMultiExtrusion handles an extruder switch: decide
// whether there's enough idle time to cool to standby at all, and if
// so insert both the cool-down and the preheat command in whichever
// earlier plan the computed heating time lands in.
func (b *Buffer) insertPreheatMultiExtrusion(flat []*Plan, idx int) {
	plan := flat[idx]
	extruder := plan.ExtruderIndex
	if !b.Preheat.NozzleTempEnabled(extruder) {
		return
	}
	initialPrintTemp := plan.RequiredStartTemperature
	warm := b.computeStandbyTempPlan(flat, idx)

	if warm.TotalTimeWindow < b.Preheat.MinCoolHeatWindow(extruder) {
		b.handleStandbyTemp(flat, idx, initialPrintTemp)
		return
	} else if warm.HeatingTime < warm.TotalTimeWindow {
		b.handleStandbyTemp(flat, idx, warm.LowestTemperature)
	}

	timeBeforeInsert := warm.HeatingTime
	for j := idx - 1; j >= 0; j-- {
		before := flat[j]
		t := before.Estimate(b.Motion).Total()
		if t >= timeBeforeInsert {
			b.insertPreheatCommand(before, timeBeforeInsert, extruder, initialPrintTemp)
			return
		}
		timeBeforeInsert -= t
	}
	flat[0].insertCommand(0, extruder, initialPrintTemp, false, 0)
}

// insertPrintTempCommand, for a plan that starts at a lower
// initial-print temperature, schedules the ramp up to full printing
// temperature right after the plan's leading travel moves end.
func (b *Buffer) insertPrintTempCommand(plan *Plan) {
	if plan.ExtrusionTemperature == nil {
		return
	}
	extruder := plan.ExtruderIndex
	if !b.Preheat.NozzleTempEnabled(extruder) {
		return
	}
	if b.Preheat.InitialPrintTemperature(extruder) == 0 {
		return
	}

	printTemp := *plan.ExtrusionTemperature
	pathIdx := 0
	for ; pathIdx < len(plan.Segments); pathIdx++ {
		if plan.Segments[pathIdx].Feature == extrude.FeatureExtrude {
			break
		}
	}
	plan.insertCommand(pathIdx, extruder, printTemp, false, 0)
}

// insertFinalPrintTempCommand lets the filament cool from printing
// temperature to a lower final-print temperature during the last
// stretch of extrusion in plan, so it isn't left oozing at full heat
// while the nozzle sits idle afterwards.
func (b *Buffer) insertFinalPrintTempCommand(plan *Plan) {
	extruder := plan.ExtruderIndex
	finalTemp := b.Preheat.FinalPrintTemperature(extruder)
	if !b.Preheat.NozzleTempEnabled(extruder) || finalTemp == 0 {
		return
	}

	printTemp := requiredOrExtrusionTemp(plan)
	coolDownTime := timeToGoFromTempToTemp(b.Preheat, extruder, printTemp, finalTemp)

	times := extrude.SegmentTimes(plan.Segments, b.Motion)
	seen := 0.0
	pathIdx := len(times) - 1
	for ; pathIdx >= 0; pathIdx-- {
		seen += times[pathIdx]
		if seen >= coolDownTime {
			break
		}
	}
	if pathIdx < 0 {
		pathIdx = 0
	}
	plan.insertCommand(pathIdx, extruder, finalTemp, false, seen-coolDownTime)
}

func requiredOrExtrusionTemp(p *Plan) float64 {
	if p.ExtrusionTemperature != nil {
		return *p.ExtrusionTemperature
	}
	return p.RequiredStartTemperature
}
