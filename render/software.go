// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"
	"math"

	"github.com/openkit-ui/openkit"
	"github.com/openkit-ui/openkit/paint"
	"github.com/openkit-ui/openkit/text"
)

// SoftwareExecutor rasterizes paint commands on the CPU.
//
// It covers the full command set well enough to serve as the fallback when
// no GPU is available: solid and gradient fills with rounded corners,
// borders, lines, and text through the text engine. Image commands need a
// texture store and are skipped with a debug log.
type SoftwareExecutor struct {
	// engine rasterizes text commands. May be nil, in which case text is
	// skipped.
	engine text.Engine
}

// NewSoftwareExecutor creates a CPU executor. engine may be nil.
func NewSoftwareExecutor(engine text.Engine) *SoftwareExecutor {
	return &SoftwareExecutor{engine: engine}
}

// Execute draws the commands into the target in order.
func (e *SoftwareExecutor) Execute(target RenderTarget, cmds []paint.Command) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	pix := target.Pixels()
	if pix == nil {
		return errors.New("render: target has no CPU pixel access")
	}

	img := &image.RGBA{
		Pix:    pix,
		Stride: target.Stride(),
		Rect:   image.Rect(0, 0, target.Width(), target.Height()),
	}

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case paint.RectCommand:
			e.fillRect(img, c.Rect, c.Radius, func(x, y float32) openkit.Color { return c.Color })
		case paint.GradientCommand:
			e.fillRect(img, c.Rect, c.Radius, gradientShader(c))
		case paint.BorderCommand:
			e.drawBorder(img, c)
		case paint.LineCommand:
			e.drawLine(img, c)
		case paint.TextCommand:
			e.drawText(img, c)
		case paint.ImageCommand:
			openkit.Logger().Debug("render: software path skipped image command",
				"texture", c.TextureID)
		}
	}
	return nil
}

// fillRect fills the rect with a per-pixel shader, clipped to the image
// and respecting rounded corners.
func (e *SoftwareExecutor) fillRect(img *image.RGBA, r openkit.Rect, radius openkit.BorderRadius, shade func(x, y float32) openkit.Color) {
	x0 := clampInt(int(math.Floor(float64(r.X))), 0, img.Rect.Max.X)
	y0 := clampInt(int(math.Floor(float64(r.Y))), 0, img.Rect.Max.Y)
	x1 := clampInt(int(math.Ceil(float64(r.Right()))), 0, img.Rect.Max.X)
	y1 := clampInt(int(math.Ceil(float64(r.Bottom()))), 0, img.Rect.Max.Y)

	rounded := !radius.IsZero()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5
			if rounded && !insideRounded(r, radius, px, py) {
				continue
			}
			blendPixel(img, x, y, shade(px, py))
		}
	}
}

// gradientShader interpolates between the gradient stops along the angle.
func gradientShader(c paint.GradientCommand) func(x, y float32) openkit.Color {
	cos := float32(math.Cos(float64(c.Angle)))
	sin := float32(math.Sin(float64(c.Angle)))
	// Project the rect onto the gradient axis to normalize t to [0, 1].
	extent := abs32(c.Rect.Width*cos) + abs32(c.Rect.Height*sin)
	if extent == 0 {
		extent = 1
	}
	originX := c.Rect.X
	originY := c.Rect.Y
	if cos < 0 {
		originX = c.Rect.Right()
	}
	if sin < 0 {
		originY = c.Rect.Bottom()
	}
	return func(x, y float32) openkit.Color {
		t := ((x-originX)*cos + (y-originY)*sin) / extent
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		return c.Start.Blend(c.End, t)
	}
}

// drawBorder fills the four edge strips of the rect.
func (e *SoftwareExecutor) drawBorder(img *image.RGBA, c paint.BorderCommand) {
	w := c.Width
	r := c.Rect
	solid := func(x, y float32) openkit.Color { return c.Color }
	e.fillRect(img, openkit.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: w}, openkit.BorderRadius{}, solid)
	e.fillRect(img, openkit.Rect{X: r.X, Y: r.Bottom() - w, Width: r.Width, Height: w}, openkit.BorderRadius{}, solid)
	e.fillRect(img, openkit.Rect{X: r.X, Y: r.Y + w, Width: w, Height: r.Height - 2*w}, openkit.BorderRadius{}, solid)
	e.fillRect(img, openkit.Rect{X: r.Right() - w, Y: r.Y + w, Width: w, Height: r.Height - 2*w}, openkit.BorderRadius{}, solid)
}

// drawLine stamps a square brush along the segment.
func (e *SoftwareExecutor) drawLine(img *image.RGBA, c paint.LineCommand) {
	dx := c.To.X - c.From.X
	dy := c.To.Y - c.From.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	steps := int(length) + 1
	half := c.Width / 2
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		cx := c.From.X + dx*t
		cy := c.From.Y + dy*t
		e.fillRect(img, openkit.Rect{
			X:      cx - half,
			Y:      cy - half,
			Width:  c.Width,
			Height: c.Width,
		}, openkit.BorderRadius{}, func(x, y float32) openkit.Color { return c.Color })
	}
}

// drawText rasterizes the run through the engine and blits it.
func (e *SoftwareExecutor) drawText(img *image.RGBA, c paint.TextCommand) {
	if e.engine == nil {
		openkit.Logger().Debug("render: software path has no text engine, skipped text")
		return
	}
	raster, err := e.engine.Rasterize(c.Text, c.Size, c.Color)
	if err != nil {
		openkit.Logger().Warn("render: text rasterization failed", "error", err)
		return
	}

	ox := int(c.Pos.X)
	oy := int(c.Pos.Y)
	for y := 0; y < raster.Height; y++ {
		ty := oy + y
		if ty < 0 || ty >= img.Rect.Max.Y {
			continue
		}
		for x := 0; x < raster.Width; x++ {
			tx := ox + x
			if tx < 0 || tx >= img.Rect.Max.X {
				continue
			}
			i := (y*raster.Width + x) * 4
			a := raster.Pixels[i+3]
			if a == 0 {
				continue
			}
			blendPixel(img, tx, ty, openkit.Color{
				R: float32(raster.Pixels[i]) / 255,
				G: float32(raster.Pixels[i+1]) / 255,
				B: float32(raster.Pixels[i+2]) / 255,
				A: float32(a) / 255,
			})
		}
	}
}

// insideRounded reports whether the pixel center lies inside the rounded
// rect.
func insideRounded(r openkit.Rect, radius openkit.BorderRadius, px, py float32) bool {
	type corner struct {
		cx, cy, rad float32
	}
	corners := [4]corner{
		{r.X + radius.TopLeft, r.Y + radius.TopLeft, radius.TopLeft},
		{r.Right() - radius.TopRight, r.Y + radius.TopRight, radius.TopRight},
		{r.Right() - radius.BottomRight, r.Bottom() - radius.BottomRight, radius.BottomRight},
		{r.X + radius.BottomLeft, r.Bottom() - radius.BottomLeft, radius.BottomLeft},
	}
	for i, c := range corners {
		if c.rad <= 0 {
			continue
		}
		// Only test pixels in the corner's square.
		inX := (i == 0 || i == 3) && px < c.cx || (i == 1 || i == 2) && px > c.cx
		inY := (i == 0 || i == 1) && py < c.cy || (i == 2 || i == 3) && py > c.cy
		if inX && inY {
			dx := px - c.cx
			dy := py - c.cy
			if dx*dx+dy*dy > c.rad*c.rad {
				return false
			}
		}
	}
	return true
}

// blendPixel composites a straight-alpha color over the pixel.
func blendPixel(img *image.RGBA, x, y int, c openkit.Color) {
	if c.A <= 0 {
		return
	}
	i := img.PixOffset(x, y)
	if c.A >= 1 {
		img.Pix[i] = floatByte(c.R)
		img.Pix[i+1] = floatByte(c.G)
		img.Pix[i+2] = floatByte(c.B)
		img.Pix[i+3] = 255
		return
	}
	inv := 1 - c.A
	img.Pix[i] = floatByte(c.R*c.A + float32(img.Pix[i])/255*inv)
	img.Pix[i+1] = floatByte(c.G*c.A + float32(img.Pix[i+1])/255*inv)
	img.Pix[i+2] = floatByte(c.B*c.A + float32(img.Pix[i+2])/255*inv)
	img.Pix[i+3] = floatByte(c.A + float32(img.Pix[i+3])/255*inv)
}

func floatByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
