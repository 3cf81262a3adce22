// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"math"

	"github.com/openkit-ui/openkit"
)

// Painter records drawing commands for a single frame.
//
// Draw calls are given in the painter's current local space and recorded in
// device space: the top of the transform stack is applied at record time, so
// commands carry final coordinates and renderers never see the stack.
//
// The clip stack is advisory. Pushed clips narrow ClipBounds, which widgets
// consult for culling, but recorded commands are not themselves clipped.
//
// A Painter is single-use: Finish returns the recorded commands and consumes
// the painter. It is not safe for concurrent use.
type Painter struct {
	commands   []Command
	transforms []Transform
	clips      []openkit.Rect
	finished   bool
}

// NewPainter creates an empty painter with an identity transform.
func NewPainter() *Painter {
	return &Painter{
		transforms: []Transform{Identity()},
	}
}

// ----------------------------------------------------------------------------
// Transform stack
// ----------------------------------------------------------------------------

// Save pushes a copy of the current transform onto the stack.
func (p *Painter) Save() {
	p.check()
	p.transforms = append(p.transforms, p.top())
}

// Restore pops the transform stack. Restoring past the initial identity
// transform is a no-op: the stack never becomes empty.
func (p *Painter) Restore() {
	p.check()
	if len(p.transforms) > 1 {
		p.transforms = p.transforms[:len(p.transforms)-1]
	}
}

// Translate moves the origin by dx, dy. The shift accumulates additively
// and is not multiplied by any scale already in effect.
func (p *Painter) Translate(dx, dy float32) {
	p.check()
	p.transforms[len(p.transforms)-1] = p.top().Translate(dx, dy)
}

// Scale scales the local space by sx, sy.
func (p *Painter) Scale(sx, sy float32) {
	p.check()
	p.transforms[len(p.transforms)-1] = p.top().Scale(sx, sy)
}

func (p *Painter) top() Transform {
	return p.transforms[len(p.transforms)-1]
}

// ----------------------------------------------------------------------------
// Clip stack
// ----------------------------------------------------------------------------

// PushClip narrows the advisory clip region to the given local-space rect.
func (p *Painter) PushClip(r openkit.Rect) {
	p.check()
	p.clips = append(p.clips, p.top().ApplyRect(r))
}

// PopClip removes the most recent clip. Popping an empty stack is a no-op.
func (p *Painter) PopClip() {
	p.check()
	if len(p.clips) > 0 {
		p.clips = p.clips[:len(p.clips)-1]
	}
}

// ClipBounds returns the intersection of all pushed clips in device space.
// ok is false when no clip is active.
func (p *Painter) ClipBounds() (bounds openkit.Rect, ok bool) {
	p.check()
	if len(p.clips) == 0 {
		return openkit.Rect{}, false
	}
	bounds = p.clips[0]
	for _, c := range p.clips[1:] {
		bounds = bounds.Intersect(c)
	}
	return bounds, true
}

// ----------------------------------------------------------------------------
// Draw operations
// ----------------------------------------------------------------------------

// FillRect records a solid rectangle fill.
func (p *Painter) FillRect(r openkit.Rect, c openkit.Color) {
	p.FillRoundedRect(r, c, openkit.BorderRadius{})
}

// FillRoundedRect records a rounded rectangle fill.
func (p *Painter) FillRoundedRect(r openkit.Rect, c openkit.Color, radius openkit.BorderRadius) {
	p.check()
	dr, ok := p.deviceRect(r)
	if !ok {
		return
	}
	p.commands = append(p.commands, RectCommand{Rect: dr, Color: c, Radius: radius})
}

// FillGradient records a two-stop linear gradient fill. angle is in radians.
func (p *Painter) FillGradient(r openkit.Rect, start, end openkit.Color, angle float32, radius openkit.BorderRadius) {
	p.check()
	dr, ok := p.deviceRect(r)
	if !ok {
		return
	}
	if isNaN(angle) {
		p.drop("gradient")
		return
	}
	p.commands = append(p.commands, GradientCommand{
		Rect:   dr,
		Start:  start,
		End:    end,
		Angle:  angle,
		Radius: radius,
	})
}

// DrawBorder records a rectangle outline with the given stroke width.
func (p *Painter) DrawBorder(r openkit.Rect, c openkit.Color, width float32, radius openkit.BorderRadius) {
	p.check()
	dr, ok := p.deviceRect(r)
	if !ok {
		return
	}
	if isNaN(width) || width <= 0 {
		p.drop("border")
		return
	}
	p.commands = append(p.commands, BorderCommand{
		Rect:   dr,
		Color:  c,
		Width:  width * p.top().SX,
		Radius: radius,
	})
}

// StrokeRect records a rectangle outline as four line segments. Unlike
// DrawBorder this survives renderers without rounded-border support.
func (p *Painter) StrokeRect(r openkit.Rect, c openkit.Color, width float32) {
	p.check()
	p.DrawLine(openkit.Pt(r.X, r.Y), openkit.Pt(r.Right(), r.Y), c, width)
	p.DrawLine(openkit.Pt(r.Right(), r.Y), openkit.Pt(r.Right(), r.Bottom()), c, width)
	p.DrawLine(openkit.Pt(r.Right(), r.Bottom()), openkit.Pt(r.X, r.Bottom()), c, width)
	p.DrawLine(openkit.Pt(r.X, r.Bottom()), openkit.Pt(r.X, r.Y), c, width)
}

// DrawLine records a line segment.
func (p *Painter) DrawLine(from, to openkit.Point, c openkit.Color, width float32) {
	p.check()
	if isNaN(from.X) || isNaN(from.Y) || isNaN(to.X) || isNaN(to.Y) || isNaN(width) || width <= 0 {
		p.drop("line")
		return
	}
	t := p.top()
	p.commands = append(p.commands, LineCommand{
		From:  t.Apply(from),
		To:    t.Apply(to),
		Color: c,
		Width: width * t.SX,
	})
}

// DrawText records a text run. pos is the top-left of the run's box; size
// is the font size in local units and scales with the transform.
func (p *Painter) DrawText(pos openkit.Point, text string, c openkit.Color, size float32) {
	p.check()
	if text == "" {
		return
	}
	if isNaN(pos.X) || isNaN(pos.Y) || isNaN(size) || size <= 0 {
		p.drop("text")
		return
	}
	t := p.top()
	p.commands = append(p.commands, TextCommand{
		Pos:   t.Apply(pos),
		Text:  text,
		Color: c,
		Size:  size * t.SX,
	})
}

// DrawImage records a textured rectangle referencing an uploaded texture.
func (p *Painter) DrawImage(r openkit.Rect, textureID uint64) {
	p.check()
	dr, ok := p.deviceRect(r)
	if !ok {
		return
	}
	p.commands = append(p.commands, ImageCommand{Rect: dr, TextureID: textureID})
}

// ----------------------------------------------------------------------------
// Finish
// ----------------------------------------------------------------------------

// Len returns the number of recorded commands.
func (p *Painter) Len() int {
	p.check()
	return len(p.commands)
}

// Finish returns the recorded commands and consumes the painter. Any use
// after Finish panics: frames must not accidentally share a painter.
func (p *Painter) Finish() []Command {
	p.check()
	p.finished = true
	cmds := p.commands
	p.commands = nil
	p.transforms = nil
	p.clips = nil
	return cmds
}

func (p *Painter) check() {
	if p.finished {
		panic("paint: painter used after Finish")
	}
}

// deviceRect transforms a rect to device space, clamping negative
// dimensions to zero. ok is false when a coordinate is NaN, in which case
// the command must be dropped.
func (p *Painter) deviceRect(r openkit.Rect) (openkit.Rect, bool) {
	if isNaN(r.X) || isNaN(r.Y) || isNaN(r.Width) || isNaN(r.Height) {
		p.drop("rect")
		return openkit.Rect{}, false
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return p.top().ApplyRect(r), true
}

func (p *Painter) drop(kind string) {
	openkit.Logger().Debug("paint: dropped command with invalid geometry", "kind", kind)
}

func isNaN(v float32) bool {
	return math.IsNaN(float64(v))
}
