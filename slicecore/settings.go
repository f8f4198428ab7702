package slicecore

// MapSettings backs Settings with a plain map, the way tests and
// simple embedding callers want to construct one without their own
// config layer; values are stored as whatever Go type the setting
// naturally is (int64, float64, bool or string).
type MapSettings map[string]any

func (m MapSettings) GetInt(name string) (int64, error) {
	v, ok := m[name]
	if !ok {
		return 0, ErrUnknownSetting
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, ErrSettingType
	}
}

func (m MapSettings) GetReal(name string) (float64, error) {
	v, ok := m[name]
	if !ok {
		return 0, ErrUnknownSetting
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, ErrSettingType
	}
}

func (m MapSettings) GetBool(name string) (bool, error) {
	v, ok := m[name]
	if !ok {
		return false, ErrUnknownSetting
	}
	b, ok := v.(bool)
	if !ok {
		return false, ErrSettingType
	}
	return b, nil
}

func (m MapSettings) GetString(name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", ErrUnknownSetting
	}
	s, ok := v.(string)
	if !ok {
		return "", ErrSettingType
	}
	return s, nil
}
