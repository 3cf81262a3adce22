// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

// Package render executes recorded paint commands against a target,
// selecting between a GPU-accelerated path and a CPU software path.
package render

import (
	"errors"

	"github.com/openkit-ui/openkit"
	"github.com/openkit-ui/openkit/gpu"
	"github.com/openkit-ui/openkit/paint"
	"github.com/openkit-ui/openkit/text"
)

// Backend identifies which rendering path a Renderer selected.
type Backend uint8

const (
	// BackendSoftware renders on the CPU.
	BackendSoftware Backend = iota
	// BackendGPU batches quads and uploads through the GPU sinks.
	BackendGPU
)

var backendNames = [...]string{"Software", "GPU"}

// String returns the backend name for debugging.
func (b Backend) String() string {
	if int(b) < len(backendNames) {
		return backendNames[b]
	}
	return "Unknown"
}

// DefaultAtlasSize is the glyph atlas dimension used when none is given.
const DefaultAtlasSize = 1024

// Options configures a Renderer.
type Options struct {
	// Device is the host's GPU device handle. Nil selects the software
	// path directly.
	Device DeviceHandle

	// Buffers and Textures are the GPU upload sinks, typically a
	// backend/wgpu.Sink. Both are required for the GPU path.
	Buffers  gpu.BufferSink
	Textures gpu.TextureSink

	// TextEngine measures and rasterizes text. Optional; without it text
	// commands are skipped.
	TextEngine text.Engine

	// AtlasSize is the glyph atlas dimension. Zero selects
	// DefaultAtlasSize.
	AtlasSize int
}

// GlyphRasterizer is the optional text engine capability the GPU glyph
// path needs. text.GoTextEngine implements it.
type GlyphRasterizer interface {
	FontID() uint64
	RasterizeGlyph(r rune, size float32) (*text.GlyphRaster, error)
}

// Renderer is the facade over the two rendering paths.
//
// Frames follow a begin/submit/end lifecycle:
//
//	r.BeginFrame(viewport)
//	r.Submit(painter.Finish())
//	err := r.EndFrame(target)
//
// Construction attempts the GPU path when a device handle is given and
// falls back to software on any typed initialization error; the chosen
// path is fixed for the renderer's lifetime and reported by Backend.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	backend  Backend
	device   DeviceHandle
	buffers  gpu.BufferSink
	textures gpu.TextureSink

	batch     *gpu.DrawBatch
	atlas     *gpu.TextureAtlas
	glyphs    *gpu.GlyphCache
	lastBuilt gpu.BuiltBatch

	software *SoftwareExecutor
	engine   text.Engine

	viewport openkit.Size
	cmds     []paint.Command
	inFrame  bool
}

// New creates a renderer, preferring the GPU path when Options carry a
// usable device and sinks.
func New(opts Options) (*Renderer, error) {
	r := &Renderer{
		backend:  BackendSoftware,
		device:   opts.Device,
		software: NewSoftwareExecutor(opts.TextEngine),
		engine:   opts.TextEngine,
	}

	if opts.Device != nil {
		if err := r.initGPU(opts); err != nil {
			var rerr *Error
			if !errors.As(err, &rerr) {
				return nil, err
			}
			openkit.Logger().Warn("render: GPU initialization failed, falling back to CPU rendering",
				"stage", rerr.Stage, "error", rerr.Err)
		} else {
			r.backend = BackendGPU
		}
	}

	openkit.Logger().Info("render: backend selected", "backend", r.backend.String())
	return r, nil
}

// initGPU validates the GPU options and builds the batching state.
// Failures are typed with the stage that rejected initialization.
func (r *Renderer) initGPU(opts Options) error {
	if opts.Device.Device() == nil {
		return &Error{Stage: StageDevice, Err: errors.New("device handle has no device")}
	}
	if opts.Buffers == nil || opts.Textures == nil {
		return &Error{Stage: StageDevice, Err: errors.New("GPU sinks not provided")}
	}

	size := opts.AtlasSize
	if size == 0 {
		size = DefaultAtlasSize
	}
	atlas, err := gpu.NewTextureAtlas(size)
	if err != nil {
		return &Error{Stage: StageDevice, Err: err}
	}

	r.buffers = opts.Buffers
	r.textures = opts.Textures
	r.atlas = atlas
	r.glyphs = gpu.NewGlyphCache(atlas)
	r.batch = gpu.NewDrawBatch(openkit.Size{})
	return nil
}

// Backend reports which rendering path is active.
func (r *Renderer) Backend() Backend { return r.backend }

// BeginFrame starts a frame with the given viewport in device pixels.
func (r *Renderer) BeginFrame(viewport openkit.Size) {
	r.viewport = viewport
	r.cmds = r.cmds[:0]
	r.inFrame = true
}

// Submit queues commands for the current frame. May be called multiple
// times; order is preserved.
func (r *Renderer) Submit(cmds []paint.Command) {
	r.cmds = append(r.cmds, cmds...)
}

// EndFrame renders the queued commands to the target and closes the frame.
func (r *Renderer) EndFrame(target RenderTarget) error {
	if !r.inFrame {
		return errors.New("render: EndFrame without BeginFrame")
	}
	r.inFrame = false

	if target == nil {
		return errors.New("render: nil target")
	}

	// CPU-accessible targets always take the software path, even on a GPU
	// renderer: readback would cost more than rasterizing directly.
	if target.Pixels() != nil {
		return r.software.Execute(target, r.cmds)
	}

	if r.backend != BackendGPU {
		return &Error{Stage: StageSurface, Err: errors.New("software backend cannot render to GPU-only target")}
	}
	return r.renderGPU()
}

// renderGPU batches the frame's commands and uploads the geometry.
func (r *Renderer) renderGPU() error {
	r.batch.Reset(r.viewport)
	for _, cmd := range r.cmds {
		r.batch.Add(cmd)
	}

	if err := r.uploadGlyphs(); err != nil {
		return err
	}

	built, err := r.batch.Build(r.buffers)
	if err != nil {
		return &Error{Stage: StageDevice, Err: err}
	}

	// The previous frame's geometry is no longer referenced once the new
	// build exists; releasing it keeps the sink's buffer table bounded.
	if r.lastBuilt.VertexBuffer != 0 && r.lastBuilt.VertexBuffer != built.VertexBuffer {
		r.buffers.ReleaseBuffer(r.lastBuilt.VertexBuffer)
		r.buffers.ReleaseBuffer(r.lastBuilt.IndexBuffer)
	}
	r.lastBuilt = built

	if built.IndexCount > 0 {
		if err := r.buffers.SubmitIndexedDraw(built.VertexBuffer, built.IndexBuffer, built.IndexCount); err != nil {
			return &Error{Stage: StageDevice, Err: err}
		}
	}

	openkit.Logger().Debug("render: frame batched",
		"rects", r.batch.RectCount(),
		"indices", built.IndexCount,
		"texts", r.batch.TextCount())
	return nil
}

// uploadGlyphs ensures every glyph referenced by the frame's text commands
// is resident in the atlas.
func (r *Renderer) uploadGlyphs() error {
	texts := r.batch.TextCommands()
	if len(texts) == 0 {
		return nil
	}
	rast, ok := r.engine.(GlyphRasterizer)
	if !ok {
		openkit.Logger().Debug("render: text engine cannot rasterize glyphs, text skipped")
		return nil
	}

	for _, tc := range texts {
		for _, ch := range tc.Text {
			key := gpu.GlyphKey{
				FontID:  rast.FontID(),
				GlyphID: uint32(ch),
				SizePx:  uint32(tc.Size + 0.5),
			}
			if _, hit := r.glyphs.Get(key); hit {
				continue
			}
			if err := r.uploadGlyph(rast, key, ch, tc.Size); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) uploadGlyph(rast GlyphRasterizer, key gpu.GlyphKey, ch rune, size float32) error {
	g, err := rast.RasterizeGlyph(ch, size)
	if err != nil {
		openkit.Logger().Debug("render: glyph rasterization failed", "rune", string(ch), "error", err)
		return nil
	}

	b := g.Mask.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		// Whitespace: cache the metrics with no atlas region.
		r.glyphs.Put(key, gpu.GlyphInfo{Advance: g.Advance})
		return nil
	}

	// Expand the alpha mask to white RGBA; the shader tints with the
	// vertex color.
	rgba := make([]byte, w*h*4)
	for i, a := range g.Mask.Pix {
		rgba[i*4] = 0xFF
		rgba[i*4+1] = 0xFF
		rgba[i*4+2] = 0xFF
		rgba[i*4+3] = a
	}

	id, err := r.atlas.Upload(w, h, rgba, r.textures)
	if err != nil {
		return &Error{Stage: StageDevice, Err: err}
	}
	r.glyphs.Put(key, gpu.GlyphInfo{
		AtlasID:  id,
		Width:    w,
		Height:   h,
		BearingX: g.BearingX,
		BearingY: g.BearingY,
		Advance:  g.Advance,
	})
	return nil
}

// Resize updates the viewport used for subsequent frames.
func (r *Renderer) Resize(width, height int) {
	r.viewport = openkit.Size{Width: float32(width), Height: float32(height)}
	openkit.Logger().Debug("render: resized", "width", width, "height", height)
}

// Batch exposes the GPU batch for hosts that issue the draw call
// themselves. Nil on the software backend.
func (r *Renderer) Batch() *gpu.DrawBatch { return r.batch }

// Atlas exposes the glyph atlas. Nil on the software backend.
func (r *Renderer) Atlas() *gpu.TextureAtlas { return r.atlas }
