package models

// Point represents a two-dimensional location or vector in local coordinate
// space, used for glyph positions, advances, and offsets.
type Point struct {
	X, Y Scalar
}

// Offset returns a new Point translated by (dx, dy).
func (p Point) Offset(dx, dy Scalar) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
