// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

// Package paint records drawing operations as a flat command list.
//
// A Painter is created per frame, draw calls are recorded in device space,
// and Finish returns the command list for a renderer to execute. Commands
// form a closed sum type: renderers switch over CommandType and can rely on
// the set of variants being complete.
package paint

import "github.com/openkit-ui/openkit"

// CommandType identifies the type of a recorded draw command.
type CommandType uint8

const (
	// CommandRect fills a rectangle, optionally rounded.
	CommandRect CommandType = iota
	// CommandGradient fills a rectangle with a two-stop linear gradient.
	CommandGradient
	// CommandBorder strokes a rectangle outline, optionally rounded.
	CommandBorder
	// CommandText draws a text run.
	CommandText
	// CommandLine draws a straight line segment.
	CommandLine
	// CommandImage draws a textured rectangle.
	CommandImage
)

var commandTypeNames = [...]string{
	"Rect", "Gradient", "Border", "Text", "Line", "Image",
}

// String returns the command type name for debugging.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is a single recorded drawing operation. All coordinates are in
// device space: the painter's transform has already been applied.
type Command interface {
	// Type returns the command type for dispatch.
	Type() CommandType
}

// RectCommand fills a rectangle with a solid color.
type RectCommand struct {
	Rect   openkit.Rect
	Color  openkit.Color
	Radius openkit.BorderRadius
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CommandRect }

// GradientCommand fills a rectangle with a two-stop linear gradient.
// Angle is in radians; 0 sweeps left to right, pi/2 top to bottom.
type GradientCommand struct {
	Rect   openkit.Rect
	Start  openkit.Color
	End    openkit.Color
	Angle  float32
	Radius openkit.BorderRadius
}

// Type implements Command.
func (GradientCommand) Type() CommandType { return CommandGradient }

// BorderCommand strokes a rectangle outline with the given width.
type BorderCommand struct {
	Rect   openkit.Rect
	Color  openkit.Color
	Width  float32
	Radius openkit.BorderRadius
}

// Type implements Command.
func (BorderCommand) Type() CommandType { return CommandBorder }

// TextCommand draws a text run at a baseline-relative origin.
// Size is the font size in device pixels after scaling.
type TextCommand struct {
	Pos   openkit.Point
	Text  string
	Color openkit.Color
	Size  float32
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CommandText }

// LineCommand draws a straight line segment with the given stroke width.
type LineCommand struct {
	From  openkit.Point
	To    openkit.Point
	Color openkit.Color
	Width float32
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CommandLine }

// ImageCommand draws a previously uploaded texture into a rectangle.
type ImageCommand struct {
	Rect      openkit.Rect
	TextureID uint64
}

// Type implements Command.
func (ImageCommand) Type() CommandType { return CommandImage }

// Compile-time checks that every variant satisfies Command.
var (
	_ Command = RectCommand{}
	_ Command = GradientCommand{}
	_ Command = BorderCommand{}
	_ Command = TextCommand{}
	_ Command = LineCommand{}
	_ Command = ImageCommand{}
)
