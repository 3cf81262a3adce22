// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

// Package gpu turns recorded paint commands into GPU-ready geometry and
// manages the glyph texture atlas.
//
// The package does not talk to a GPU itself. Uploads go through the
// BufferSink and TextureSink interfaces, implemented for WebGPU in
// backend/wgpu and by in-memory fakes in tests.
package gpu

// BufferID identifies an uploaded GPU buffer. IDs are opaque and assigned
// by the sink.
type BufferID uint64

// BufferSink receives finished vertex and index data and issues the draw
// call over it. Shader and pipeline selection are entirely the sink's
// responsibility.
//
// Implementations copy the data during the call; the caller may reuse the
// slice afterwards.
type BufferSink interface {
	// CreateVertexBuffer uploads vertex data and returns its buffer id.
	CreateVertexBuffer(data []byte) (BufferID, error)

	// CreateIndexBuffer uploads index data and returns its buffer id.
	CreateIndexBuffer(data []byte) (BufferID, error)

	// SubmitIndexedDraw draws indexCount indices from the index buffer
	// over the vertex buffer.
	SubmitIndexedDraw(vertices, indices BufferID, indexCount int) error

	// ReleaseBuffer frees a buffer once no submitted draw references it.
	// Unknown ids are ignored.
	ReleaseBuffer(id BufferID)
}

// TextureSink receives pixel uploads into a texture region.
type TextureSink interface {
	// WriteRegion writes w*h*4 bytes of RGBA data at (x, y) on the given
	// texture layer.
	WriteRegion(layer, x, y, w, h int, rgba []byte) error
}
