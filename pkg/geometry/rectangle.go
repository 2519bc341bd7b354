package geometry

import "fmt"

// Rectangle is an axis-aligned rectangle in pixel units.
// X,Y is the top-left corner; the value is immutable once built.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRectangle builds a rectangle and validates its dimensions.
// Negative sizes are a caller contract violation, rejected up front.
func NewRectangle(x, y, width, height float64) (Rectangle, error) {
	if width < 0 || height < 0 {
		return Rectangle{}, fmt.Errorf("rectangle dimensions must be non-negative, got %gx%g", width, height)
	}
	return Rectangle{X: x, Y: y, Width: width, Height: height}, nil
}

// X2 returns the x-coordinate of the right edge.
func (r Rectangle) X2() float64 {
	return r.X + r.Width
}

// Y2 returns the y-coordinate of the bottom edge.
func (r Rectangle) Y2() float64 {
	return r.Y + r.Height
}

// Intersects reports whether the two rectangles overlap.
// Touching edges count as an intersection: collision detection here
// is deliberately conservative, so near-misses register.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.X <= other.X2() && r.X2() >= other.X &&
		r.Y <= other.Y2() && r.Y2() >= other.Y
}

// Translated returns a copy of the rectangle moved by (dx, dy).
func (r Rectangle) Translated(dx, dy float64) Rectangle {
	return Rectangle{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// WithX returns a copy of the rectangle with a new left edge.
func (r Rectangle) WithX(x float64) Rectangle {
	return Rectangle{X: x, Y: r.Y, Width: r.Width, Height: r.Height}
}
