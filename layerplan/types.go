// Package layerplan holds a short rolling window of finished layer
// plans so that temperature commands can be back-inserted at the
// point in time where heating or cooling actually needs to begin,
// something that can only be known once later layers exist.
package layerplan

import (
	"github.com/go-slicer/slicecore/extrude"
	"github.com/go-slicer/slicecore/geom"
)

// TempInsert is one temperature command pinned to a position within a
// plan's path list. Inserts sharing a PathIndex fire in the order they
// were added; a downstream emitter consumes every insert whose
// PathIndex is at or before the path it's about to write.
type TempInsert struct {
	PathIndex int
	// DeltaWithinPath is how far into the path's own duration (seconds
	// from its start) the command should fire.
	DeltaWithinPath float64
	Extruder        int
	Temperature     float64
	Wait            bool
}

// Plan wraps one extruder plan with the temperature-insert bookkeeping
// the buffer needs: its own list of pending inserts, and the standby
// temperature it should cool to while idle (set once a later plan
// using the same extruder is known).
type Plan struct {
	*extrude.ExtruderPlan
	Inserts                 []TempInsert
	PrevExtruderStandbyTemp *float64
	IsInitialLayer          bool
}

// insertCommand appends a temp insert at pathIndex, optionally offset
// by deltaWithinPath seconds into that path's own duration.
func (p *Plan) insertCommand(pathIndex int, extruder int, temp float64, wait bool, deltaWithinPath float64) {
	p.Inserts = append(p.Inserts, TempInsert{
		PathIndex:       pathIndex,
		DeltaWithinPath: deltaWithinPath,
		Extruder:        extruder,
		Temperature:     temp,
		Wait:            wait,
	})
}

// LayerPlan is everything printed on one layer: an ordered set of
// extruder plans plus the positional bookkeeping needed to stitch
// travel moves between consecutive layers.
type LayerPlan struct {
	Z              int64
	ExtruderPlans  []*Plan
	FirstDest      *geom.Point
	LastPosition   *geom.Point
	RequiresRetractAtFirstWall bool
}
