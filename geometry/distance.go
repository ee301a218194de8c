package geometry

// CirclesOverlap reports whether two circles intersect. Touching circles do not overlap.
func CirclesOverlap(centerA Vector, radiusA float64, centerB Vector, radiusB float64) bool {
	return centerA.DistanceTo(centerB) < radiusA+radiusB
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
