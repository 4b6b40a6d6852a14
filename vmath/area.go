package vmath

// Point is an integer pixel position
type Point struct {
	X, Y int
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// IsUnit reports whether both components are in {-1, 0, 1} and not both zero
func (p Point) IsUnit() bool {
	if p.X == 0 && p.Y == 0 {
		return false
	}
	return Abs(p.X) <= 1 && Abs(p.Y) <= 1
}

// Rect is an axis-aligned box, top-left anchored
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectAt returns a square of side size at (x, y)
func RectAt(x, y, size int) Rect {
	return Rect{X: x, Y: y, Width: size, Height: size}
}

// Contains checks if point is within rect (half-open on the far edges)
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps reports whether the two rects share any pixel
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Center returns the center point of the rect
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// AreaRandomPoint returns a random point within rect using provided RNG
func AreaRandomPoint(r Rect, rng *FastRand) Point {
	x := r.X
	y := r.Y
	if r.Width > 1 {
		x += rng.Intn(r.Width)
	}
	if r.Height > 1 {
		y += rng.Intn(r.Height)
	}
	return Point{X: x, Y: y}
}
