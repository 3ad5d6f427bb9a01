package drawing

import "image"

// Point is a portable integer coordinate pair.
type Point struct {
	X, Y int
}

// ImagePoint converts to the stdlib representation.
func (p Point) ImagePoint() image.Point { return image.Point{X: p.X, Y: p.Y} }

// PointFrom converts from the stdlib representation.
func PointFrom(p image.Point) Point { return Point{X: p.X, Y: p.Y} }

// Rect is a portable origin-plus-size rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectFrom converts a stdlib rectangle to origin-plus-size form.
func RectFrom(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// ImageRect converts to the stdlib min/max form.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Contains reports whether p falls inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }
