// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package text

import (
	"bytes"
	"errors"
	"image"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/openkit-ui/openkit"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// nextFontID assigns unique ids to engines so glyph caches can key on the
// font without holding a reference to it.
var nextFontID atomic.Uint64

// GoTextEngine shapes text with go-text/typesetting's HarfBuzz port and
// rasterizes it with x/image opentype faces.
//
// Shaping handles kerning, ligatures, and right-to-left runs; measurement
// therefore reflects what rasterization actually produces. The engine holds
// one font; applications needing font fallback compose engines.
//
// A GoTextEngine is safe for concurrent Measure calls. Rasterize serializes
// internally because x/image faces are not safe for concurrent use.
type GoTextEngine struct {
	id     uint64
	gtFont *gtfont.Font
	otFont *opentype.Font

	// shaperPool pools HarfbuzzShaper instances. The shaper has internal
	// mutable state and is not safe for concurrent use.
	shaperPool sync.Pool

	// mu protects faces and all rasterization through them.
	mu    sync.Mutex
	faces map[uint32]xfont.Face
}

// NewGoTextEngine parses TTF/OTF font data and returns an engine for it.
func NewGoTextEngine(fontData []byte) (*GoTextEngine, error) {
	if len(fontData) == 0 {
		return nil, errors.New("text: empty font data")
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, err
	}

	otFont, err := opentype.Parse(fontData)
	if err != nil {
		return nil, err
	}

	return &GoTextEngine{
		id:     nextFontID.Add(1),
		gtFont: gtFace.Font,
		otFont: otFont,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		faces: make(map[uint32]xfont.Face),
	}, nil
}

// FontID returns the engine's unique font identifier for glyph cache keys.
func (e *GoTextEngine) FontID() uint64 { return e.id }

// Measure implements Engine.
func (e *GoTextEngine) Measure(text string, size float32) openkit.Size {
	if text == "" || size <= 0 {
		return openkit.Size{}
	}

	lines := strings.Split(text, "\n")
	var width float32
	for _, line := range lines {
		if w := e.shapeLineWidth(line, size); w > width {
			width = w
		}
	}

	return openkit.Size{
		Width:  width,
		Height: float32(len(lines)) * size * LineHeightFactor,
	}
}

// shapeLineWidth shapes a single line and returns the sum of glyph advances.
func (e *GoTextEngine) shapeLineWidth(line string, size float32) float32 {
	if line == "" {
		return 0
	}

	runes := []rune(line)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: detectDirection(line),
		// font.Face is not safe for concurrent use; NewFace is a cheap
		// wrapper over the shared thread-safe *Font.
		Face:     gtfont.NewFace(e.gtFont),
		Size:     fixed.Int26_6(size * 64),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	shaper := e.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	e.shaperPool.Put(shaper)

	var width fixed.Int26_6
	for _, g := range output.Glyphs {
		width += g.Advance
	}
	return float32(width) / 64
}

// Rasterize implements Engine.
func (e *GoTextEngine) Rasterize(text string, size float32, color openkit.Color) (Raster, error) {
	if text == "" || size <= 0 {
		return Raster{}, nil
	}

	extent := e.Measure(text, size)
	w := int(math.Ceil(float64(extent.Width)))
	h := int(math.Ceil(float64(extent.Height)))
	if w <= 0 || h <= 0 {
		return Raster{}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	face, err := e.faceLocked(size)
	if err != nil {
		return Raster{}, err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	src := image.NewUniform(color.NRGBA())
	ascent := face.Metrics().Ascent
	lineHeight := size * LineHeightFactor

	for i, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		drawer := &xfont.Drawer{
			Dst:  img,
			Src:  src,
			Face: face,
			Dot: fixed.Point26_6{
				X: 0,
				Y: fixed.Int26_6(float32(i)*lineHeight*64) + ascent,
			},
		}
		drawer.DrawString(line)
	}

	return Raster{Width: w, Height: h, Pixels: img.Pix}, nil
}

// GlyphRaster is a single rasterized glyph plus the metrics needed to
// position it and advance past it.
type GlyphRaster struct {
	// Mask is the glyph's alpha coverage.
	Mask *image.Alpha

	// BearingX and BearingY offset the mask from the pen position;
	// BearingY is the distance from the baseline up to the mask top.
	BearingX float32
	BearingY float32

	// Advance is the horizontal pen advance in pixels.
	Advance float32
}

// RasterizeGlyph renders one glyph to an alpha mask for atlas upload.
func (e *GoTextEngine) RasterizeGlyph(r rune, size float32) (*GlyphRaster, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	face, err := e.faceLocked(size)
	if err != nil {
		return nil, err
	}

	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return nil, errors.New("text: glyph not in font")
	}

	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()

	mask := image.NewAlpha(image.Rect(0, 0, maxX-minX, maxY-minY))
	drawer := &xfont.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: -bounds.Min.X,
			Y: -bounds.Min.Y,
		},
	}
	drawer.DrawString(string(r))

	return &GlyphRaster{
		Mask:     mask,
		BearingX: float32(minX),
		BearingY: float32(-minY),
		Advance:  float32(advance) / 64,
	}, nil
}

// faceLocked returns a cached x/image face for the given size.
// Callers must hold e.mu.
func (e *GoTextEngine) faceLocked(size float32) (xfont.Face, error) {
	key := math.Float32bits(size)
	if f, ok := e.faces[key]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(e.otFont, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	e.faces[key] = f
	return f, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs before
// shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

var _ Engine = (*GoTextEngine)(nil)
