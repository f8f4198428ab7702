package slicecore

import "errors"

var (
	// ErrUnknownSetting is returned by a Settings accessor when a name
	// the core requests has no registered value and no default.
	ErrUnknownSetting = errors.New("slicecore: unknown setting")

	// ErrSettingType is returned when a setting exists but was stored
	// under a different Go type than the accessor requested.
	ErrSettingType = errors.New("slicecore: setting has the wrong type")

	// ErrNoLayers reports a LayerSource with zero layers; there is
	// nothing to slice. No function in this package returns it.
	ErrNoLayers = errors.New("slicecore: layer source has no layers")
)
