package extrude

import "math"

// MotionConfig carries the firmware-style limits the planner works
// against: a single shared acceleration and per-axis jerk, the
// "instantaneous speed change permitted at a junction" sense of jerk
// classic Marlin firmware uses, not true jerk (rate of change of
// acceleration).
type MotionConfig struct {
	Acceleration float64 // mm/s^2
	JerkX, JerkY float64 // mm/s
	MinSpeed     float64 // mm/s, floor when scaling down for min layer time
}

// block is one segment's trapezoidal motion plan: the entry and exit
// speeds the reverse/forward passes settled on, and the resulting
// accelerate/cruise/decelerate split.
type block struct {
	segment     Segment
	length      float64
	entrySpeed  float64
	exitSpeed   float64
	nominal     float64
	accelerDist float64
	cruiseDist  float64
	decelDist   float64
	cruiseSpeed float64
}

// junctionMaxSpeed bounds the speed a junction between two segments can
// be taken at: the speed at which the velocity component change on
// either axis would exceed the configured jerk.
func junctionMaxSpeed(prevDir, curDir Vector, cfg MotionConfig, prevNominal, curNominal float64) float64 {
	limit := math.Min(prevNominal, curNominal)

	dx := math.Abs(curDir.X - prevDir.X)
	if dx > 1e-9 && cfg.JerkX > 0 {
		limit = math.Min(limit, cfg.JerkX/dx)
	}
	dy := math.Abs(curDir.Y - prevDir.Y)
	if dy > 1e-9 && cfg.JerkY > 0 {
		limit = math.Min(limit, cfg.JerkY/dy)
	}
	return limit
}

// maxAllowableSpeed returns the fastest entry speed that can still
// decelerate (or accelerate) to exitSpeed over distance, given accel.
func maxAllowableSpeed(accel, exitSpeed, distance float64) float64 {
	v2 := exitSpeed*exitSpeed + 2*accel*distance
	if v2 < 0 {
		return 0
	}
	return math.Sqrt(v2)
}

// buildBlocks computes every segment's junction speed limit from its
// neighbours, then runs the classic reverse/forward planner passes so
// that every block's entry and exit speeds are mutually achievable,
// finally resolving each block's accelerate/cruise/decelerate split.
func buildBlocks(segments []Segment, cfg MotionConfig) []*block {
	blocks := make([]*block, len(segments))
	for i, seg := range segments {
		maxEntry := 0.0
		if i > 0 {
			maxEntry = junctionMaxSpeed(segments[i-1].direction(), seg.direction(), cfg, segments[i-1].NominalFeedrate, seg.NominalFeedrate)
		}
		blocks[i] = &block{
			segment:    seg,
			length:     seg.length(),
			entrySpeed: maxEntry,
			nominal:    seg.NominalFeedrate,
		}
	}
	if len(blocks) == 0 {
		return blocks
	}

	// Reverse pass: starting from a stop at the very end, propagate the
	// fastest entry speed each block could still decelerate from down
	// to the next block's entry speed.
	for i := len(blocks) - 1; i >= 0; i-- {
		exit := 0.0
		if i < len(blocks)-1 {
			exit = blocks[i+1].entrySpeed
		}
		if allowed := maxAllowableSpeed(cfg.Acceleration, exit, blocks[i].length); allowed < blocks[i].entrySpeed {
			blocks[i].entrySpeed = allowed
		}
	}

	// Forward pass: starting from a stop, propagate the fastest entry
	// speed reachable from the previous block's own entry speed and
	// length, without exceeding what the reverse pass already allowed.
	prevEntry, prevLength := 0.0, 0.0
	for i, b := range blocks {
		if i > 0 {
			if reachable := maxAllowableSpeed(cfg.Acceleration, prevEntry, prevLength); reachable < b.entrySpeed {
				b.entrySpeed = reachable
			}
		}
		prevEntry, prevLength = b.entrySpeed, b.length
	}

	for i, b := range blocks {
		exit := 0.0
		if i < len(blocks)-1 {
			exit = blocks[i+1].entrySpeed
		}
		b.exitSpeed = exit
		recalculateTrapezoid(b, cfg.Acceleration)
	}

	return blocks
}

// recalculateTrapezoid splits a block's length into an accelerate,
// cruise and decelerate phase. If the block is too short to reach
// nominal speed given its entry/exit constraints, the cruise phase
// collapses to zero and the block becomes a single acceleration peak
// (a "triangle" move).
func recalculateTrapezoid(b *block, accel float64) {
	a, e, nominal := b.entrySpeed, b.exitSpeed, b.nominal

	accelDist := distanceToReach(a, nominal, accel)
	decelDist := distanceToReach(e, nominal, accel)

	if accelDist+decelDist >= b.length {
		// Not enough room to reach nominal speed: find the peak cruise
		// speed reachable given both ends must still be met.
		peak := math.Sqrt(math.Max((2*accel*b.length+a*a+e*e)/2, 0))
		b.cruiseSpeed = peak
		b.accelerDist = distanceToReach(a, peak, accel)
		b.decelDist = math.Max(b.length-b.accelerDist, 0)
		b.cruiseDist = 0
	} else {
		b.cruiseSpeed = nominal
		b.accelerDist = accelDist
		b.decelDist = decelDist
		b.cruiseDist = b.length - accelDist - decelDist
	}
}

func distanceToReach(from, to, accel float64) float64 {
	if to <= from || accel <= 0 {
		return 0
	}
	return (to*to - from*from) / (2 * accel)
}

func blockTime(b *block, accel float64) float64 {
	accelTime := phaseTime(b.entrySpeed, b.cruiseSpeed, accel)
	decelTime := phaseTime(b.exitSpeed, b.cruiseSpeed, accel)
	cruiseTime := 0.0
	if b.cruiseDist > 0 && b.cruiseSpeed > 0 {
		cruiseTime = b.cruiseDist / b.cruiseSpeed
	}
	return accelTime + decelTime + cruiseTime
}

func phaseTime(slowSpeed, fastSpeed, accel float64) float64 {
	if fastSpeed <= slowSpeed || accel <= 0 {
		return 0
	}
	return (fastSpeed - slowSpeed) / accel
}
