package geom

// Rect is an axis-aligned bounding rectangle in the same micrometre
// coordinate space as Point.
type Rect struct {
	Left, Top, Right, Bottom int64
}

// Width returns the rectangle's horizontal extent.
func (r Rect) Width() int64 {
	return r.Right - r.Left
}

// Height returns the rectangle's vertical extent.
func (r Rect) Height() int64 {
	return r.Bottom - r.Top
}

// MidPoint returns the rectangle's centre point.
func (r Rect) MidPoint() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// AsPath returns the rectangle as a closed, clockwise 4-point polygon
// starting at the top-left corner.
func (r Rect) AsPath() Polygon {
	return Polygon{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}

// Contains reports whether pt lies strictly inside the rectangle.
func (r Rect) Contains(pt Point) bool {
	return pt.X > r.Left && pt.X < r.Right && pt.Y > r.Top && pt.Y < r.Bottom
}

// ContainsRect reports whether other lies within r, edges inclusive.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left >= r.Left && other.Right <= r.Right &&
		other.Top >= r.Top && other.Bottom <= r.Bottom
}

// IsEmpty reports whether the rectangle has zero or negative width or height.
func (r Rect) IsEmpty() bool {
	return r.Bottom <= r.Top || r.Right <= r.Left
}

// Intersects reports whether r and other overlap, edges and corners inclusive.
func (r Rect) Intersects(other Rect) bool {
	return max64(r.Left, other.Left) <= min64(r.Right, other.Right) &&
		max64(r.Top, other.Top) <= min64(r.Bottom, other.Bottom)
}
