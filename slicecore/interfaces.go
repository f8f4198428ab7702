package slicecore

import "github.com/go-slicer/slicecore/geom"

// LayerGeometry is everything the core needs about one layer: the
// slice outline plus the skin, infill and support regions bridging and
// path ordering read from.
type LayerGeometry struct {
	Outline        geom.Shape
	Skin           geom.Shape
	Infill         geom.Shape
	Support        geom.Shape
	Z              int64
	LayerThickness int64
}

// LayerSource is the mesh/slicing front end's contract with the core:
// §6.1's get_layer(layer_index) collaborator.
type LayerSource interface {
	Layer(index int) (LayerGeometry, error)
	LayerCount() int
}

// Settings is the §6.2 keyed accessor every setting name in spec §6
// (wall_line_width_0, prime_tower_size, machine_max_jerk_xy, ...) is
// looked up through. Each accessor returns ErrUnknownSetting if name
// has no value and no registered default.
type Settings interface {
	GetInt(name string) (int64, error)
	GetReal(name string) (float64, error)
	GetBool(name string) (bool, error)
	GetString(name string) (string, error)
}

// CommandKind enumerates the gcode-adjacent commands the core emits,
// per §6.3. The core never formats gcode text itself; a Sink turns
// these into whatever wire format the caller needs.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandExtrude
	CommandSetTemperature
	CommandSetFan
	CommandRetract
	CommandUnretract
	CommandZHopStart
	CommandZHopEnd
	CommandComment
)

// Command is one emitted instruction. Which fields are meaningful
// depends on Kind: a MOVE/EXTRUDE uses X/Y/Feedrate, SET_TEMPERATURE
// uses Extruder/Temperature/Wait, SET_FAN uses FanSpeed, COMMENT uses
// Comment.
type Command struct {
	Kind        CommandKind
	X, Y        float64
	Feedrate    float64
	Extruder    int
	Temperature float64
	Wait        bool
	FanSpeed    float64
	Comment     string
}

// Sink is the §6.3 write-only emission boundary: the only I/O that
// crosses the core's edge. Order of calls is the contract the core
// guarantees; a Sink must not reorder or drop commands.
type Sink interface {
	Emit(cmd Command) error
}

// BridgeBelowQuery is §6.4: read-only access to a previously emitted
// layer's plan, so the bridging detector can find infill lines the
// layer below actually printed rather than recomputing them. Each
// returned line is an open path, a geom.Polygon used as a polyline.
type BridgeBelowQuery interface {
	LayerBelow(index int) (infill []geom.Polygon, ok bool)
}
