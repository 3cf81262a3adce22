// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package paint

import "github.com/openkit-ui/openkit"

// Transform is an affine transform restricted to translation and per-axis
// scaling. UI layout never needs rotation or shear, and the restriction
// keeps transformed rectangles axis-aligned.
type Transform struct {
	TX, TY float32
	SX, SY float32
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{SX: 1, SY: 1}
}

// Apply transforms a point: scale first, then translate.
func (t Transform) Apply(p openkit.Point) openkit.Point {
	return openkit.Point{
		X: p.X*t.SX + t.TX,
		Y: p.Y*t.SY + t.TY,
	}
}

// ApplyRect transforms a rectangle. The result stays axis-aligned because
// the transform has no rotation component.
func (t Transform) ApplyRect(r openkit.Rect) openkit.Rect {
	return openkit.Rect{
		X:      r.X*t.SX + t.TX,
		Y:      r.Y*t.SY + t.TY,
		Width:  r.Width * t.SX,
		Height: r.Height * t.SY,
	}
}

// Translate returns the transform shifted by the given delta. Translation
// accumulates additively and is not affected by the accumulated scale.
func (t Transform) Translate(dx, dy float32) Transform {
	t.TX += dx
	t.TY += dy
	return t
}

// Scale returns the transform with an additional scale applied in local
// space.
func (t Transform) Scale(sx, sy float32) Transform {
	t.SX *= sx
	t.SY *= sy
	return t
}
