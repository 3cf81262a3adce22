// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

// Package layout implements one-pass flexbox positioning for the OpenKit
// paint pipeline.
//
// The layout engine positions already-sized children inside a container
// along a main axis. It does not size children: measuring is the caller's
// responsibility (typically via constraints and the text package), which
// keeps positioning a pure function from sizes to points.
package layout

import "github.com/openkit-ui/openkit"

// Direction selects the main axis and its orientation.
type Direction uint8

const (
	// Row lays children out left to right.
	Row Direction = iota
	// Column lays children out top to bottom.
	Column
	// RowReverse lays children out right to left.
	RowReverse
	// ColumnReverse lays children out bottom to top.
	ColumnReverse
)

var directionNames = [...]string{"Row", "Column", "RowReverse", "ColumnReverse"}

// String returns the direction name for debugging.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Unknown"
}

// IsVertical reports whether the main axis is vertical.
func (d Direction) IsVertical() bool {
	return d == Column || d == ColumnReverse
}

// IsReversed reports whether children flow against the axis direction.
func (d Direction) IsReversed() bool {
	return d == RowReverse || d == ColumnReverse
}

// Justify controls distribution of free space along the main axis.
type Justify uint8

const (
	// JustifyStart packs children at the start of the main axis.
	JustifyStart Justify = iota
	// JustifyEnd packs children at the end of the main axis.
	JustifyEnd
	// JustifyCenter centers the packed children.
	JustifyCenter
	// JustifySpaceBetween puts equal space between children, none at the edges.
	JustifySpaceBetween
	// JustifySpaceAround puts a half-unit of space at each edge and a full
	// unit between children.
	JustifySpaceAround
	// JustifySpaceEvenly puts equal space at the edges and between children.
	JustifySpaceEvenly
	// JustifyStretch positions like JustifyStart. Stretching children to
	// fill the axis is a sizing concern and happens before positioning.
	JustifyStretch
)

var justifyNames = [...]string{
	"Start", "End", "Center", "SpaceBetween", "SpaceAround", "SpaceEvenly", "Stretch",
}

// String returns the justify mode name for debugging.
func (j Justify) String() string {
	if int(j) < len(justifyNames) {
		return justifyNames[j]
	}
	return "Unknown"
}

// Align controls per-child placement on the cross axis.
type Align uint8

const (
	// AlignStart places children at the cross-axis start.
	AlignStart Align = iota
	// AlignEnd places children at the cross-axis end.
	AlignEnd
	// AlignCenter centers children on the cross axis.
	AlignCenter
	// AlignStretch positions like AlignStart; growing children to the
	// container's cross extent is a sizing concern.
	AlignStretch
)

var alignNames = [...]string{"Start", "End", "Center", "Stretch"}

// String returns the align mode name for debugging.
func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "Unknown"
}

// Flex positions children along a main axis with optional gaps.
type Flex struct {
	Direction Direction
	Justify   Justify
	Align     Align

	// Gap is the fixed spacing between adjacent children, in addition to
	// any justify spacing.
	Gap float32
}

// Positions computes the top-left position of each child inside the
// container. positions[i] corresponds to children[i] regardless of
// direction; reversed directions change where children land, not the
// order of the result.
//
// Padding shrinks the content box: the main and cross extents lose the
// padding on both sides and all positions start at the padding's leading
// edge. Children are taken at their given sizes. Negative or NaN inputs
// are treated as zero.
func (f Flex) Positions(container openkit.Size, children []openkit.Size, padding openkit.EdgeInsets) []openkit.Point {
	if len(children) == 0 {
		return nil
	}

	var mainStart, crossStart, mainExtent, crossExtent float32
	if f.Direction.IsVertical() {
		mainStart = sanitize(padding.Top)
		crossStart = sanitize(padding.Left)
		mainExtent = sanitize(container.Height - padding.Vertical())
		crossExtent = sanitize(container.Width - padding.Horizontal())
	} else {
		mainStart = sanitize(padding.Left)
		crossStart = sanitize(padding.Top)
		mainExtent = sanitize(container.Width - padding.Horizontal())
		crossExtent = sanitize(container.Height - padding.Vertical())
	}
	gap := sanitize(f.Gap)

	total := gap * float32(len(children)-1)
	for _, c := range children {
		total += sanitize(f.mainOf(c))
	}

	free := mainExtent - total
	if free < 0 {
		free = 0
	}

	offset, spacing := justifySpacing(f.Justify, free, len(children))

	positions := make([]openkit.Point, 0, len(children))
	mainPos := mainStart + offset

	for i := range children {
		child := children[i]
		if f.Direction.IsReversed() {
			child = children[len(children)-1-i]
		}

		childMain := sanitize(f.mainOf(child))
		childCross := sanitize(f.crossOf(child))

		crossPos := crossStart
		switch f.Align {
		case AlignCenter:
			crossPos = crossStart + (crossExtent-childCross)/2
		case AlignEnd:
			crossPos = crossStart + crossExtent - childCross
		}

		if f.Direction.IsVertical() {
			positions = append(positions, openkit.Pt(crossPos, mainPos))
		} else {
			positions = append(positions, openkit.Pt(mainPos, crossPos))
		}

		mainPos += childMain + gap + spacing
	}

	if f.Direction.IsReversed() {
		for i, j := 0, len(positions)-1; i < j; i, j = i+1, j-1 {
			positions[i], positions[j] = positions[j], positions[i]
		}
	}

	return positions
}

// justifySpacing returns the leading offset and the extra spacing inserted
// after each child for the given justify mode.
func justifySpacing(j Justify, free float32, n int) (offset, spacing float32) {
	switch j {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if n > 1 {
			return 0, free / float32(n-1)
		}
		return 0, 0
	case JustifySpaceAround:
		return free / float32(2*n), free / float32(n)
	case JustifySpaceEvenly:
		return free / float32(n+1), free / float32(n+1)
	default: // JustifyStart, JustifyStretch
		return 0, 0
	}
}

func (f Flex) mainOf(s openkit.Size) float32 {
	if f.Direction.IsVertical() {
		return s.Height
	}
	return s.Width
}

func (f Flex) crossOf(s openkit.Size) float32 {
	if f.Direction.IsVertical() {
		return s.Width
	}
	return s.Height
}

// sanitize maps NaN and negative values to zero.
func sanitize(v float32) float32 {
	if v != v || v < 0 {
		return 0
	}
	return v
}
