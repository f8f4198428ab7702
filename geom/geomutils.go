package geom

import "math"

// booleanOpTreeImpl runs the flat boolean op and arranges the resulting
// polygons into a PolyTree by nesting each polygon under the shallowest
// already-placed polygon that contains one of its points. Orientation
// (outer vs hole) falls out of the nesting depth via PolyTreeNode.IsHole.
func booleanOpTreeImpl(clipType ClipType, fillRule FillRule, subjects, clips Shape) (*PolyTree, Shape, error) {
	solution, openSolution, err := booleanOp64Impl(clipType, fillRule, subjects, nil, clips)
	if err != nil {
		return nil, nil, err
	}

	root := NewPolyTree()
	for _, poly := range solution {
		if len(poly) == 0 {
			continue
		}
		parent := root
		for {
			placed := false
			for _, child := range parent.children {
				if len(child.polygon) > 0 && PointInPolygon(poly[0], child.polygon, NonZero) != Outside {
					parent = child
					placed = true
					break
				}
			}
			if !placed {
				break
			}
		}
		parent.AddChild(poly)
	}
	return root, openSolution, nil
}

// bounds64Impl returns the axis-aligned bounding box of path.
func bounds64Impl(path Polygon) Rect {
	if len(path) == 0 {
		return Rect{}
	}
	r := Rect{Left: path[0].X, Right: path[0].X, Top: path[0].Y, Bottom: path[0].Y}
	for _, pt := range path[1:] {
		if pt.X < r.Left {
			r.Left = pt.X
		}
		if pt.X > r.Right {
			r.Right = pt.X
		}
		if pt.Y < r.Top {
			r.Top = pt.Y
		}
		if pt.Y > r.Bottom {
			r.Bottom = pt.Y
		}
	}
	return r
}

// boundsPaths64Impl returns the bounding box enclosing every path in paths.
func boundsPaths64Impl(paths Shape) Rect {
	var r Rect
	first := true
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		pb := bounds64Impl(path)
		if first {
			r = pb
			first = false
			continue
		}
		if pb.Left < r.Left {
			r.Left = pb.Left
		}
		if pb.Right > r.Right {
			r.Right = pb.Right
		}
		if pb.Top < r.Top {
			r.Top = pb.Top
		}
		if pb.Bottom > r.Bottom {
			r.Bottom = pb.Bottom
		}
	}
	return r
}

// translatePath64Impl shifts every point in path by (dx, dy).
func translatePath64Impl(path Polygon, dx, dy int64) Polygon {
	if len(path) == 0 {
		return Polygon{}
	}
	result := make(Polygon, len(path))
	for i, pt := range path {
		result[i] = Point{X: pt.X + dx, Y: pt.Y + dy}
	}
	return result
}

// translatePaths64Impl shifts every point in every path by (dx, dy).
func translatePaths64Impl(paths Shape, dx, dy int64) Shape {
	if len(paths) == 0 {
		return Shape{}
	}
	result := make(Shape, len(paths))
	for i, path := range paths {
		result[i] = translatePath64Impl(path, dx, dy)
	}
	return result
}

// ellipse64Impl generates a closed polygon approximating an ellipse.
func ellipse64Impl(center Point, radiusX, radiusY float64, steps int) Polygon {
	if radiusX <= 0 {
		return Polygon{}
	}
	if radiusY <= 0 {
		radiusY = radiusX
	}
	if steps <= 2 {
		avgRadius := (radiusX + radiusY) / 2
		steps = int(math.Ceil(math.Pi / math.Acos(1-0.25/avgRadius)))
		if steps < 8 {
			steps = 8
		}
		if steps > 360 {
			steps = 360
		}
	}
	result := make(Polygon, steps)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		result[i] = Point{
			X: center.X + int64(math.Round(radiusX*math.Cos(theta))),
			Y: center.Y + int64(math.Round(radiusY*math.Sin(theta))),
		}
	}
	return result
}

// scalePath64Impl multiplies every coordinate of path by scale, about the origin.
func scalePath64Impl(path Polygon, scale float64) Polygon {
	if len(path) == 0 {
		return Polygon{}
	}
	result := make(Polygon, len(path))
	for i, pt := range path {
		result[i] = Point{
			X: int64(math.Round(float64(pt.X) * scale)),
			Y: int64(math.Round(float64(pt.Y) * scale)),
		}
	}
	return result
}

// rotatePath64Impl rotates path by angleRad (counter-clockwise, positive) around center.
func rotatePath64Impl(path Polygon, angleRad float64, center Point) Polygon {
	if len(path) == 0 {
		return Polygon{}
	}
	sin, cos := math.Sin(angleRad), math.Cos(angleRad)
	result := make(Polygon, len(path))
	for i, pt := range path {
		dx := float64(pt.X - center.X)
		dy := float64(pt.Y - center.Y)
		result[i] = Point{
			X: center.X + int64(math.Round(dx*cos-dy*sin)),
			Y: center.Y + int64(math.Round(dx*sin+dy*cos)),
		}
	}
	return result
}

// starPolygon64Impl generates a closed star polygon alternating outerRadius
// and innerRadius vertices, points tips total.
func starPolygon64Impl(center Point, outerRadius, innerRadius float64, points int) Polygon {
	if outerRadius <= 0 || innerRadius <= 0 || points < 3 {
		return Polygon{}
	}
	vertexCount := points * 2
	result := make(Polygon, vertexCount)
	for i := 0; i < vertexCount; i++ {
		theta := math.Pi * float64(i) / float64(points)
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		result[i] = Point{
			X: center.X + int64(math.Round(radius*math.Cos(theta))),
			Y: center.Y + int64(math.Round(radius*math.Sin(theta))),
		}
	}
	return result
}

// simplifyPath64Impl removes points whose perpendicular distance from the
// line joining their neighbours is within epsilon (Douglas-Peucker).
func simplifyPath64Impl(path Polygon, epsilon float64, isClosedPath bool) Polygon {
	if len(path) < 3 {
		result := make(Polygon, len(path))
		copy(result, path)
		return result
	}
	keep := make([]bool, len(path))
	douglasPeucker(path, 0, len(path)-1, epsilon, keep)
	keep[0] = true
	keep[len(path)-1] = true

	result := make(Polygon, 0, len(path))
	for i, k := range keep {
		if k {
			result = append(result, path[i])
		}
	}
	if isClosedPath && len(result) > 2 {
		first, last := result[0], result[len(result)-1]
		if perpendicularDistance(last, path[0], path[len(path)-1]) <= epsilon && first == last {
			result = result[:len(result)-1]
		}
	}
	return result
}

func douglasPeucker(path Polygon, start, end int, epsilon float64, keep []bool) {
	if end <= start+1 {
		return
	}
	maxDist := -1.0
	maxIdx := start
	for i := start + 1; i < end; i++ {
		d := perpendicularDistance(path[i], path[start], path[end])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist > epsilon {
		keep[maxIdx] = true
		douglasPeucker(path, start, maxIdx, epsilon, keep)
		douglasPeucker(path, maxIdx, end, epsilon, keep)
	}
}

func perpendicularDistance(pt, lineStart, lineEnd Point) float64 {
	dx := float64(lineEnd.X - lineStart.X)
	dy := float64(lineEnd.Y - lineStart.Y)
	if dx == 0 && dy == 0 {
		ex := float64(pt.X - lineStart.X)
		ey := float64(pt.Y - lineStart.Y)
		return math.Hypot(ex, ey)
	}
	num := math.Abs(dy*float64(pt.X-lineStart.X) - dx*float64(pt.Y-lineStart.Y))
	return num / math.Hypot(dx, dy)
}
