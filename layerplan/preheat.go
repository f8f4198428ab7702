package layerplan

import (
	"math"

	"github.com/go-slicer/slicecore/extrude"
)

// WarmUpResult is the outcome of planning a standby cool-down/heat-up
// cycle during an idle window: how much of the window is spent
// heating back up, the lowest temperature the cycle actually reaches,
// and the total window it was computed over.
type WarmUpResult struct {
	TotalTimeWindow   float64
	HeatingTime       float64
	LowestTemperature float64
}

// Preheat models how quickly one extruder's nozzle heats and cools,
// the per-extruder rates a LinearPreheat implements at constant
// degrees-per-second, the simplest model consistent with a firmware's
// own "heat up speed"/"cool down speed" settings.
type Preheat interface {
	HeatUpSpeed(extruder int) float64   // degrees C per second
	CoolDownSpeed(extruder int) float64 // degrees C per second
	StandbyTemperature(extruder int) float64
	MinCoolHeatWindow(extruder int) float64
	NozzleTempEnabled(extruder int) bool
	FinalPrintTemperature(extruder int) float64
	PrintTemperature(extruder int, avgFlow float64, initialLayer bool) float64
	InitialPrintTemperature(extruder int) float64
}

// LinearPreheat is a straightforward Preheat implementation: constant
// heating and cooling rates, one print/standby/final temperature per
// extruder regardless of flow (flow-dependent temperature is opted
// into via FlowDependentTemperature).
type LinearPreheat struct {
	HeatRate             []float64
	CoolRate             []float64
	Standby              []float64
	MinCoolHeatWindowSec []float64
	NozzleEnabled        []bool
	FinalPrintTemp       []float64
	InitialPrintTemp     []float64
	BasePrintTemp        []float64
	// FlowDependentTemperature, when true for an extruder, adds a small
	// offset to the base print temperature proportional to how far the
	// average flow departs from a nominal reference flow.
	FlowDependentTemperature []bool
	ReferenceFlow            []float64
	FlowTempCoefficient      []float64 // degrees C per (mm^3/s) of deviation
}

func (p *LinearPreheat) HeatUpSpeed(e int) float64            { return p.HeatRate[e] }
func (p *LinearPreheat) CoolDownSpeed(e int) float64           { return p.CoolRate[e] }
func (p *LinearPreheat) StandbyTemperature(e int) float64      { return p.Standby[e] }
func (p *LinearPreheat) MinCoolHeatWindow(e int) float64       { return p.MinCoolHeatWindowSec[e] }
func (p *LinearPreheat) NozzleTempEnabled(e int) bool          { return p.NozzleEnabled[e] }
func (p *LinearPreheat) FinalPrintTemperature(e int) float64   { return p.FinalPrintTemp[e] }
func (p *LinearPreheat) InitialPrintTemperature(e int) float64 { return p.InitialPrintTemp[e] }

// PrintTemperature returns the temperature this extruder should print
// at given its average volumetric flow, applying the flow-dependent
// offset when the extruder opts in.
func (p *LinearPreheat) PrintTemperature(e int, avgFlow float64, initialLayer bool) float64 {
	base := p.BasePrintTemp[e]
	if initialLayer && p.InitialPrintTemp[e] != 0 {
		return p.InitialPrintTemp[e]
	}
	if e < len(p.FlowDependentTemperature) && p.FlowDependentTemperature[e] {
		base += extrude.FlowTemperatureOffset(avgFlow, p.ReferenceFlow[e], p.FlowTempCoefficient[e])
	}
	return base
}

// timeToGoFromTempToTemp is how long it takes this extruder to move
// between two temperatures at its configured heat/cool rate.
func timeToGoFromTempToTemp(p Preheat, extruder int, from, to float64) float64 {
	if to >= from {
		rate := p.HeatUpSpeed(extruder)
		if rate <= 0 {
			return 0
		}
		return (to - from) / rate
	}
	rate := p.CoolDownSpeed(extruder)
	if rate <= 0 {
		return 0
	}
	return (from - to) / rate
}

// warmUpAfterCoolDown plans a cool-then-heat cycle across inBetweenTime
// seconds: cool from tempBefore towards standbyTemp for as long as
// possible, then warm from wherever that leaves off back up to
// targetTemp, arriving exactly at the end of the window.
func warmUpAfterCoolDown(p Preheat, extruder int, inBetweenTime, tempBefore, standbyTemp, targetTemp float64) WarmUpResult {
	coolRate := p.CoolDownSpeed(extruder)
	heatRate := p.HeatUpSpeed(extruder)

	fullCoolTime := timeToGoFromTempToTemp(p, extruder, tempBefore, standbyTemp)
	fullHeatTime := timeToGoFromTempToTemp(p, extruder, standbyTemp, targetTemp)

	if fullCoolTime+fullHeatTime <= inBetweenTime {
		return WarmUpResult{
			TotalTimeWindow:   inBetweenTime,
			HeatingTime:       fullHeatTime,
			LowestTemperature: standbyTemp,
		}
	}

	// Not enough time to fully reach standby: find the crossing point
	// where cooling stops and heating begins, so the two legs together
	// exactly span the window and land on targetTemp.
	if coolRate+heatRate <= 0 {
		return WarmUpResult{TotalTimeWindow: inBetweenTime, HeatingTime: inBetweenTime, LowestTemperature: tempBefore}
	}
	coolTime := (tempBefore + heatRate*inBetweenTime - targetTemp) / (coolRate + heatRate)
	coolTime = math.Max(0, math.Min(coolTime, inBetweenTime))
	lowest := tempBefore - coolRate*coolTime
	heatTime := inBetweenTime - coolTime

	return WarmUpResult{
		TotalTimeWindow:   inBetweenTime,
		HeatingTime:       heatTime,
		LowestTemperature: lowest,
	}
}
