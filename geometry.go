// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package openkit

// Point represents a 2D position in logical pixels.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size represents a 2D extent in logical pixels.
type Size struct {
	Width, Height float32
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle described by its top-left corner
// and its extent.
type Rect struct {
	X, Y, Width, Height float32
}

// RectFromSize returns a rectangle at the origin with the given extent.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
// Points on the top or left edge are inside, points on the bottom or
// right edge are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersect returns the overlapping region of two rectangles.
// If the rectangles do not overlap, the result is empty.
func (r Rect) Intersect(o Rect) Rect {
	x := max32(r.X, o.X)
	y := max32(r.Y, o.Y)
	right := min32(r.Right(), o.Right())
	bottom := min32(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Offset returns the rectangle translated by dx, dy.
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// EdgeInsets describes padding on each side of a box.
type EdgeInsets struct {
	Top, Right, Bottom, Left float32
}

// UniformInsets returns insets with the same value on all four sides.
func UniformInsets(v float32) EdgeInsets {
	return EdgeInsets{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float32 { return e.Left + e.Right }

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float32 { return e.Top + e.Bottom }

// Shrink returns the rectangle with the insets removed from each side.
// Dimensions never go below zero.
func (e EdgeInsets) Shrink(r Rect) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  max32(0, r.Width-e.Horizontal()),
		Height: max32(0, r.Height-e.Vertical()),
	}
}

// BorderRadius holds a corner radius for each corner of a rectangle,
// clockwise from top-left.
type BorderRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// UniformRadius returns a BorderRadius with the same radius on all corners.
func UniformRadius(r float32) BorderRadius {
	return BorderRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsZero reports whether all corners are square.
func (b BorderRadius) IsZero() bool {
	return b.TopLeft == 0 && b.TopRight == 0 && b.BottomRight == 0 && b.BottomLeft == 0
}

// Max returns the largest corner radius.
func (b BorderRadius) Max() float32 {
	m := b.TopLeft
	if b.TopRight > m {
		m = b.TopRight
	}
	if b.BottomRight > m {
		m = b.BottomRight
	}
	if b.BottomLeft > m {
		m = b.BottomLeft
	}
	return m
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
