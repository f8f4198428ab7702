package geom

// Vertex chain construction and local-minima tagging feeding the
// scanline clipping engine in impl_pure.go.

// VertexFlags marks a vertex's role in its path: open-path endpoint
// and/or local min/max relative to its neighbours.
type VertexFlags uint8

const (
	VertexFlagsEmpty     VertexFlags = 0
	VertexFlagsOpenStart VertexFlags = 1 << iota
	VertexFlagsOpenEnd
	VertexFlagsLocalMax
	VertexFlagsLocalMin
)

// vertex is one point in a path's doubly-linked, possibly-circular
// chain, the form the scanline engine walks to find local minima and
// build edges.
type vertex struct {
	Pt    Point
	Next  *vertex
	Prev  *vertex
	Flags VertexFlags
}

func (v *vertex) isLocalMinimum() bool { return v.Flags&VertexFlagsLocalMin != 0 }

// createVertexFromPath turns a polygon (or open polyline) into a
// vertex chain and tags its local minima/maxima, returning the first
// vertex as the chain head.
func createVertexFromPath(path Polygon, isOpen bool) *vertex {
	if len(path) < 2 {
		return nil
	}

	vertices := make([]*vertex, len(path))
	for i, pt := range path {
		vertices[i] = &vertex{Pt: pt}
	}

	for i := range vertices {
		if isOpen {
			if i > 0 {
				vertices[i].Prev = vertices[i-1]
			}
			if i < len(vertices)-1 {
				vertices[i].Next = vertices[i+1]
			}
		} else {
			vertices[i].Prev = vertices[(i-1+len(vertices))%len(vertices)]
			vertices[i].Next = vertices[(i+1)%len(vertices)]
		}
	}

	if isOpen {
		vertices[0].Flags |= VertexFlagsOpenStart
		vertices[len(vertices)-1].Flags |= VertexFlagsOpenEnd
	}

	markLocalMinimaAndMaxima(vertices, isOpen)
	return vertices[0]
}

// markLocalMinimaAndMaxima flags every vertex that is a direction
// reversal relative to its nearest non-horizontal neighbours on each
// side, so a flat top or bottom run doesn't hide the reversal or get
// counted twice. Open-path endpoints compare against their one
// neighbour instead of two.
func markLocalMinimaAndMaxima(vertices []*vertex, isOpen bool) {
	n := len(vertices)
	if n < 2 {
		return
	}

	// nearestDistinctY walks from i in the given step direction,
	// skipping vertices at the same Y, and reports the first distinct
	// one found. For open paths it stops at the chain's ends instead
	// of wrapping.
	nearestDistinctY := func(i, step int) (int, bool) {
		j := i
		for {
			if isOpen && ((step < 0 && j == 0) || (step > 0 && j == n-1)) {
				return 0, false
			}
			j = (j + step + n) % n
			if j == i {
				return 0, false
			}
			if vertices[j].Pt.Y != vertices[i].Pt.Y {
				return j, true
			}
		}
	}

	for i := 0; i < n; i++ {
		if isOpen && i == 0 {
			nIdx, ok := nearestDistinctY(i, 1)
			if !ok {
				continue
			}
			if vertices[nIdx].Pt.Y > vertices[i].Pt.Y {
				vertices[i].Flags |= VertexFlagsLocalMin
			} else {
				vertices[i].Flags |= VertexFlagsLocalMax
			}
			continue
		}
		if isOpen && i == n-1 {
			pIdx, ok := nearestDistinctY(i, -1)
			if !ok {
				continue
			}
			if vertices[pIdx].Pt.Y > vertices[i].Pt.Y {
				vertices[i].Flags |= VertexFlagsLocalMin
			} else {
				vertices[i].Flags |= VertexFlagsLocalMax
			}
			continue
		}

		pIdx, pOk := nearestDistinctY(i, -1)
		nIdx, nOk := nearestDistinctY(i, 1)
		if !pOk || !nOk {
			continue
		}
		py, ny, y := vertices[pIdx].Pt.Y, vertices[nIdx].Pt.Y, vertices[i].Pt.Y
		if py > y && ny > y {
			vertices[i].Flags |= VertexFlagsLocalMin
		} else if py < y && ny < y {
			vertices[i].Flags |= VertexFlagsLocalMax
		}
	}
}

// findLocalMinima collects every local-minimum vertex in a chain as a
// localMinima event, tagged with which side (subject/clip) it came
// from.
func findLocalMinima(startVertex *vertex, pathType PathType, isOpen bool) []*localMinima {
	if startVertex == nil {
		return nil
	}

	var minima []*localMinima
	current := startVertex
	for {
		if current.isLocalMinimum() {
			minima = append(minima, &localMinima{Vertex: current, PathType: pathType, IsOpen: isOpen})
		}
		current = current.Next
		if current == nil || current == startVertex {
			break
		}
	}
	return minima
}

// validateVertexChain checks that the chain's Next/Prev links agree
// with each other and that it either terminates (open path) or closes
// back on its own head (closed path) rather than looping through some
// internal vertex.
func validateVertexChain(startVertex *vertex) bool {
	if startVertex == nil {
		return false
	}

	current := startVertex
	visited := make(map[*vertex]bool)
	for {
		if visited[current] {
			return current == startVertex
		}
		visited[current] = true

		if current.Next != nil && current.Next.Prev != current {
			return false
		}
		if current.Prev != nil && current.Prev.Next != current {
			return false
		}

		current = current.Next
		if current == nil || current == startVertex {
			break
		}
	}
	return true
}
