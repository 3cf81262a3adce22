// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/wgpu/hal"

	types "github.com/gogpu/gputypes"

	"github.com/openkit-ui/openkit"
	"github.com/openkit-ui/openkit/gpu"
)

// Sink uploads batch geometry and atlas pixels through a HAL device.
//
// It owns a single RGBA8 atlas texture sized at construction and a table of
// vertex/index buffers keyed by the ids it hands out. Buffer ids are never
// reused within a Sink's lifetime.
type Sink struct {
	device hal.Device
	queue  hal.Queue

	mu      sync.RWMutex
	buffers map[gpu.BufferID]hal.Buffer
	atlas   hal.Texture

	atlasSize int
	nextID    atomic.Uint64
	draw      DrawFunc
}

// DrawFunc issues an indexed draw over bound geometry. The host supplies
// it with the encoder and pipeline state the draw runs under.
type DrawFunc func(vertices, indices hal.Buffer, indexCount int) error

var (
	_ gpu.BufferSink  = (*Sink)(nil)
	_ gpu.TextureSink = (*Sink)(nil)
)

// NewSink creates a sink over the device and queue and allocates the atlas
// texture at atlasSize x atlasSize pixels.
func NewSink(device hal.Device, queue hal.Queue, atlasSize int) (*Sink, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: sink requires a device and queue")
	}
	if atlasSize <= 0 {
		return nil, fmt.Errorf("wgpu: atlas size must be positive, got %d", atlasSize)
	}

	atlas, err := device.CreateTexture(&hal.TextureDescriptor{
		Label: "openkit_atlas",
		Size: hal.Extent3D{
			Width:              uint32(atlasSize),
			Height:             uint32(atlasSize),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     types.TextureDimension2D,
		Format:        types.TextureFormatRGBA8Unorm,
		Usage:         types.TextureUsageCopyDst | types.TextureUsageTextureBinding,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create atlas texture: %w", err)
	}

	s := &Sink{
		device:    device,
		queue:     queue,
		buffers:   make(map[gpu.BufferID]hal.Buffer),
		atlas:     atlas,
		atlasSize: atlasSize,
	}
	s.nextID.Store(1)
	return s, nil
}

// CreateVertexBuffer implements gpu.BufferSink.
func (s *Sink) CreateVertexBuffer(data []byte) (gpu.BufferID, error) {
	return s.createBuffer(data, types.BufferUsageVertex|types.BufferUsageCopyDst, "openkit_vertices")
}

// CreateIndexBuffer implements gpu.BufferSink.
func (s *Sink) CreateIndexBuffer(data []byte) (gpu.BufferID, error) {
	return s.createBuffer(data, types.BufferUsageIndex|types.BufferUsageCopyDst, "openkit_indices")
}

func (s *Sink) createBuffer(data []byte, usage types.BufferUsage, label string) (gpu.BufferID, error) {
	buffer, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return 0, fmt.Errorf("wgpu: failed to create buffer: %w", err)
	}
	if len(data) > 0 {
		s.queue.WriteBuffer(buffer, 0, data)
	}

	id := gpu.BufferID(s.newID())
	s.mu.Lock()
	s.buffers[id] = buffer
	s.mu.Unlock()
	return id, nil
}

// WriteRegion implements gpu.TextureSink by copying rgba into the atlas
// texture at (x, y). The layer argument selects the array layer; the atlas
// is single-layer, so only layer 0 is valid.
func (s *Sink) WriteRegion(layer, x, y, w, h int, rgba []byte) error {
	if layer != 0 {
		return fmt.Errorf("wgpu: atlas has a single layer, got layer %d", layer)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("wgpu: invalid region %dx%d", w, h)
	}
	if x < 0 || y < 0 || x+w > s.atlasSize || y+h > s.atlasSize {
		return fmt.Errorf("wgpu: region (%d,%d %dx%d) outside %d px atlas", x, y, w, h, s.atlasSize)
	}
	if len(rgba) < w*h*4 {
		return fmt.Errorf("wgpu: region data %d bytes, need %d", len(rgba), w*h*4)
	}

	dst := &hal.ImageCopyTexture{
		Texture:  s.atlas,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: uint32(x), Y: uint32(y), Z: 0},
		Aspect:   types.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(w * 4),
		RowsPerImage: uint32(h),
	}
	size := &hal.Extent3D{
		Width:              uint32(w),
		Height:             uint32(h),
		DepthOrArrayLayers: 1,
	}
	s.queue.WriteTexture(dst, rgba[:w*h*4], layout, size)
	return nil
}

// SetDrawFunc installs the host's draw callback. Until one is set,
// SubmitIndexedDraw uploads-only frames succeed without drawing.
func (s *Sink) SetDrawFunc(draw DrawFunc) { s.draw = draw }

// SubmitIndexedDraw implements gpu.BufferSink by resolving the buffer ids
// and handing them to the host's draw callback. The render pass, pipeline,
// and bind groups belong to the host; the sink only owns the geometry.
func (s *Sink) SubmitIndexedDraw(vertices, indices gpu.BufferID, indexCount int) error {
	s.mu.RLock()
	vb, vok := s.buffers[vertices]
	ib, iok := s.buffers[indices]
	s.mu.RUnlock()

	if !vok || !iok {
		return fmt.Errorf("wgpu: draw references unknown buffers %d, %d", vertices, indices)
	}
	if s.draw == nil {
		openkit.Logger().Debug("wgpu: no draw callback installed, geometry uploaded only")
		return nil
	}
	return s.draw(vb, ib, indexCount)
}

// Buffer returns the HAL buffer behind an id, for hosts that bind the
// geometry into their own render pass.
func (s *Sink) Buffer(id gpu.BufferID) (hal.Buffer, bool) {
	s.mu.RLock()
	buffer, ok := s.buffers[id]
	s.mu.RUnlock()
	return buffer, ok
}

// AtlasTexture returns the atlas texture for binding.
func (s *Sink) AtlasTexture() hal.Texture { return s.atlas }

// ReleaseBuffer destroys a buffer and forgets its id. Releasing an unknown
// id is a no-op.
func (s *Sink) ReleaseBuffer(id gpu.BufferID) {
	s.mu.Lock()
	buffer, ok := s.buffers[id]
	if ok {
		delete(s.buffers, id)
	}
	s.mu.Unlock()

	if ok {
		s.device.DestroyBuffer(buffer)
	}
}

// Destroy releases every buffer and the atlas texture.
func (s *Sink) Destroy() {
	s.mu.Lock()
	buffers := s.buffers
	s.buffers = make(map[gpu.BufferID]hal.Buffer)
	atlas := s.atlas
	s.atlas = nil
	s.mu.Unlock()

	for _, buffer := range buffers {
		s.device.DestroyBuffer(buffer)
	}
	if atlas != nil {
		s.device.DestroyTexture(atlas)
	}
}

func (s *Sink) newID() uint64 {
	return s.nextID.Add(1) - 1
}
