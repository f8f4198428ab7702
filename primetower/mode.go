package primetower

// Mode selects how rings are emitted across layers: exactly one is
// chosen per job.
type Mode int

const (
	// Normal mode emits a full ring set for every extruder used on a
	// layer; an extruder's ring is purged whenever it is active on the
	// current layer but was not the last-used extruder.
	Normal Mode = iota

	// Interleaved mode emits rings only for extruders that actually need
	// priming on a given layer; the rest of the radial band is filled by
	// a sparse wheel pattern instead.
	Interleaved
)

// RingsForLayer reports which rings a layer must extrude given the
// extruders active on it and the extruder last used on the previous
// layer.
func (t *Tower) RingsForLayer(mode Mode, activeExtruders []int, lastUsedExtruder int) []Ring {
	active := make(map[int]bool, len(activeExtruders))
	for _, idx := range activeExtruders {
		active[idx] = true
	}

	var result []Ring
	for _, r := range t.Rings {
		if !active[r.ExtruderIndex] {
			continue
		}
		if mode == Normal {
			if r.ExtruderIndex != lastUsedExtruder {
				result = append(result, r)
			}
			continue
		}
		// Interleaved: only extruders switching in on this layer need a
		// fresh ring; others are covered by the sparse bridging pattern.
		if r.ExtruderIndex != lastUsedExtruder {
			result = append(result, r)
		}
	}
	return result
}

// SparseRings returns the rings not returned by RingsForLayer in
// Interleaved mode, i.e. the bands that must be bridged instead.
func (t *Tower) SparseRings(mode Mode, activeExtruders []int, lastUsedExtruder int) []Ring {
	if mode != Interleaved {
		return nil
	}
	primed := t.RingsForLayer(mode, activeExtruders, lastUsedExtruder)
	primedSet := make(map[int]bool, len(primed))
	for _, r := range primed {
		primedSet[r.ExtruderIndex] = true
	}
	var sparse []Ring
	for _, r := range t.Rings {
		if !primedSet[r.ExtruderIndex] {
			sparse = append(sparse, r)
		}
	}
	return sparse
}
