// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"encoding/binary"
	"math"
)

// RectVertex is one corner of a rounded-rectangle quad. The layout matches
// the vertex input of the rect shader in backend/wgpu.
type RectVertex struct {
	// Position in normalized device coordinates.
	Position [2]float32

	// UV within the quad, (0,0) top-left to (1,1) bottom-right.
	UV [2]float32

	// Color as straight-alpha RGBA.
	Color [4]float32

	// RectBounds carries the rect's device-space x, y, width, height so
	// the fragment shader can evaluate the rounded-corner distance field.
	RectBounds [4]float32

	// CornerRadii clockwise from top-left.
	CornerRadii [4]float32

	// Params packs per-quad shading controls:
	// [gradient angle, border width, is-gradient flag, unused].
	Params [4]float32
}

// RectVertexStride is the size of one RectVertex in bytes.
const RectVertexStride = 20 * 4

// PackRectVertices serializes vertices to little-endian bytes for upload.
func PackRectVertices(verts []RectVertex) []byte {
	out := make([]byte, 0, len(verts)*RectVertexStride)
	for i := range verts {
		v := &verts[i]
		out = appendF32(out, v.Position[:])
		out = appendF32(out, v.UV[:])
		out = appendF32(out, v.Color[:])
		out = appendF32(out, v.RectBounds[:])
		out = appendF32(out, v.CornerRadii[:])
		out = appendF32(out, v.Params[:])
	}
	return out
}

// PackIndices serializes indices to little-endian bytes for upload.
func PackIndices(indices []uint32) []byte {
	out := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(out[i*4:], idx)
	}
	return out
}

func appendF32(dst []byte, vals []float32) []byte {
	for _, v := range vals {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}
