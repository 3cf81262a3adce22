// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"github.com/openkit-ui/openkit"
)

// Unbounded marks an axis with no upper size limit.
var Unbounded = float32(math.Inf(1))

// Constraints describes the size bounds passed down during layout.
// A child must resolve to a size within [Min, Max] on each axis.
type Constraints struct {
	MinWidth, MaxWidth   float32
	MinHeight, MaxHeight float32
}

// Tight returns constraints that force exactly the given size.
func Tight(s openkit.Size) Constraints {
	return Constraints{
		MinWidth:  s.Width,
		MaxWidth:  s.Width,
		MinHeight: s.Height,
		MaxHeight: s.Height,
	}
}

// Loose returns constraints bounded above by the given size with no minimum.
func Loose(s openkit.Size) Constraints {
	return Constraints{MaxWidth: s.Width, MaxHeight: s.Height}
}

// UnboundedConstraints returns constraints with no limits on either axis.
func UnboundedConstraints() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// Constrain clamps the size to the constraint bounds.
func (c Constraints) Constrain(s openkit.Size) openkit.Size {
	return openkit.Size{
		Width:  clamp(s.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(s.Height, c.MinHeight, c.MaxHeight),
	}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the width has a finite upper bound.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(float64(c.MaxWidth), 1)
}

// HasBoundedHeight reports whether the height has a finite upper bound.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(float64(c.MaxHeight), 1)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
