// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"math"

	"github.com/openkit-ui/openkit"
	"github.com/openkit-ui/openkit/paint"
)

// emptyBufferSize is allocated in place of empty vertex or index data so
// that pipelines always bind a valid non-zero buffer.
const emptyBufferSize = 64

// BuiltBatch references the uploaded buffers for one batch.
type BuiltBatch struct {
	VertexBuffer BufferID
	IndexBuffer  BufferID
	IndexCount   int
}

// DrawBatch accumulates rect-like paint commands as quad geometry for a
// single indexed draw call.
//
// Each quad contributes 4 vertices and 6 indices. Positions are converted
// from device pixels to normalized device coordinates against the viewport
// given at Reset. Text and image commands are not turned into quads here;
// they are collected for the glyph and texture paths to consume.
//
// A DrawBatch tracks a dirty flag: Build uploads only when commands were
// added since the last build, so calling it every frame is cheap when the
// scene is static.
type DrawBatch struct {
	viewport openkit.Size

	vertices []RectVertex
	indices  []uint32
	texts    []paint.TextCommand
	images   []paint.ImageCommand

	dirty    bool
	hasBuilt bool
	built    BuiltBatch
}

// NewDrawBatch creates an empty batch for the given viewport.
func NewDrawBatch(viewport openkit.Size) *DrawBatch {
	return &DrawBatch{viewport: viewport, dirty: true}
}

// Reset clears all accumulated commands and sets the viewport for the next
// frame.
func (b *DrawBatch) Reset(viewport openkit.Size) {
	b.viewport = viewport
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.texts = b.texts[:0]
	b.images = b.images[:0]
	b.dirty = true
	b.hasBuilt = false
}

// Add appends a paint command to the batch.
func (b *DrawBatch) Add(cmd paint.Command) {
	switch c := cmd.(type) {
	case paint.RectCommand:
		b.addQuad(c.Rect, c.Color.Array(), c.Radius, [4]float32{})
	case paint.GradientCommand:
		// The shader lerps from Color toward Params-driven gradient using
		// the end color packed into the UV-space; the start color rides in
		// the vertex color. Params: [angle, 0, 1, 0].
		b.addGradientQuad(c)
	case paint.BorderCommand:
		b.addQuad(c.Rect, c.Color.Array(), c.Radius, [4]float32{0, c.Width, 0, 0})
	case paint.LineCommand:
		b.addLineQuad(c)
	case paint.TextCommand:
		b.texts = append(b.texts, c)
		b.dirty = true
	case paint.ImageCommand:
		b.images = append(b.images, c)
		b.dirty = true
	}
}

// addQuad appends a rect as 4 vertices and 6 indices.
func (b *DrawBatch) addQuad(r openkit.Rect, color [4]float32, radius openkit.BorderRadius, params [4]float32) {
	if b.viewport.IsEmpty() {
		openkit.Logger().Debug("gpu: dropped quad, empty viewport")
		return
	}

	base := uint32(len(b.vertices))

	x1, y1 := b.ndc(r.X, r.Y)
	x2, y2 := b.ndc(r.Right(), r.Bottom())

	bounds := [4]float32{r.X, r.Y, r.Width, r.Height}
	radii := [4]float32{radius.TopLeft, radius.TopRight, radius.BottomRight, radius.BottomLeft}

	b.vertices = append(b.vertices,
		RectVertex{Position: [2]float32{x1, y1}, UV: [2]float32{0, 0}, Color: color, RectBounds: bounds, CornerRadii: radii, Params: params},
		RectVertex{Position: [2]float32{x2, y1}, UV: [2]float32{1, 0}, Color: color, RectBounds: bounds, CornerRadii: radii, Params: params},
		RectVertex{Position: [2]float32{x2, y2}, UV: [2]float32{1, 1}, Color: color, RectBounds: bounds, CornerRadii: radii, Params: params},
		RectVertex{Position: [2]float32{x1, y2}, UV: [2]float32{0, 1}, Color: color, RectBounds: bounds, CornerRadii: radii, Params: params},
	)
	b.indices = append(b.indices, base, base+1, base+2, base, base+2, base+3)
	b.dirty = true
}

func (b *DrawBatch) addGradientQuad(c paint.GradientCommand) {
	n := len(b.vertices)
	b.addQuad(c.Rect, c.Start.Array(), c.Radius, [4]float32{c.Angle, 0, 1, 0})
	if len(b.vertices) == n {
		return // dropped
	}
	// The end color replaces the vertex color on the far corners; the
	// shader interpolates along the gradient axis using Params[0].
	end := c.End.Array()
	b.vertices[n+1].Color = end
	b.vertices[n+2].Color = end
}

// addLineQuad expands a line segment into a quad of the stroke width.
func (b *DrawBatch) addLineQuad(c paint.LineCommand) {
	if b.viewport.IsEmpty() {
		openkit.Logger().Debug("gpu: dropped line, empty viewport")
		return
	}

	dx := c.To.X - c.From.X
	dy := c.To.Y - c.From.Y
	length := sqrt32(dx*dx + dy*dy)
	if length == 0 || c.Width <= 0 {
		return
	}

	// Half-width normal perpendicular to the segment.
	nx := -dy / length * c.Width / 2
	ny := dx / length * c.Width / 2

	base := uint32(len(b.vertices))
	color := c.Color.Array()

	minX := min32(c.From.X, c.To.X) - abs32(nx)
	minY := min32(c.From.Y, c.To.Y) - abs32(ny)
	maxX := max32(c.From.X, c.To.X) + abs32(nx)
	maxY := max32(c.From.Y, c.To.Y) + abs32(ny)
	bounds := [4]float32{minX, minY, maxX - minX, maxY - minY}

	corners := [4][2]float32{
		{c.From.X + nx, c.From.Y + ny},
		{c.To.X + nx, c.To.Y + ny},
		{c.To.X - nx, c.To.Y - ny},
		{c.From.X - nx, c.From.Y - ny},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, corner := range corners {
		px, py := b.ndc(corner[0], corner[1])
		b.vertices = append(b.vertices, RectVertex{
			Position:   [2]float32{px, py},
			UV:         uvs[i],
			Color:      color,
			RectBounds: bounds,
		})
	}
	b.indices = append(b.indices, base, base+1, base+2, base, base+2, base+3)
	b.dirty = true
}

// ndc converts device pixels to normalized device coordinates. The y axis
// flips: pixel y grows down, NDC y grows up.
func (b *DrawBatch) ndc(x, y float32) (float32, float32) {
	return (x/b.viewport.Width)*2 - 1, 1 - (y/b.viewport.Height)*2
}

// Build uploads the batch geometry through the sink and returns the buffer
// references. When nothing changed since the last build, the previous
// result is returned without touching the sink.
//
// An empty batch still produces valid buffers: a zeroed allocation of
// emptyBufferSize bytes for each, with IndexCount zero.
func (b *DrawBatch) Build(sink BufferSink) (BuiltBatch, error) {
	if !b.dirty && b.hasBuilt {
		return b.built, nil
	}

	vdata := PackRectVertices(b.vertices)
	if len(vdata) == 0 {
		vdata = make([]byte, emptyBufferSize)
	}
	idata := PackIndices(b.indices)
	if len(idata) == 0 {
		idata = make([]byte, emptyBufferSize)
	}

	vbuf, err := sink.CreateVertexBuffer(vdata)
	if err != nil {
		return BuiltBatch{}, err
	}
	ibuf, err := sink.CreateIndexBuffer(idata)
	if err != nil {
		return BuiltBatch{}, err
	}

	b.built = BuiltBatch{
		VertexBuffer: vbuf,
		IndexBuffer:  ibuf,
		IndexCount:   len(b.indices),
	}
	b.dirty = false
	b.hasBuilt = true
	return b.built, nil
}

// RectCount returns the number of batched quads.
func (b *DrawBatch) RectCount() int { return len(b.vertices) / 4 }

// IndexCount returns the number of batched indices.
func (b *DrawBatch) IndexCount() int { return len(b.indices) }

// TextCount returns the number of deferred text commands.
func (b *DrawBatch) TextCount() int { return len(b.texts) }

// ImageCount returns the number of deferred image commands.
func (b *DrawBatch) ImageCount() int { return len(b.images) }

// TextCommands returns the deferred text commands for the glyph path.
func (b *DrawBatch) TextCommands() []paint.TextCommand { return b.texts }

// ImageCommands returns the deferred image commands for the texture path.
func (b *DrawBatch) ImageCommands() []paint.ImageCommand { return b.images }

// Vertices exposes the accumulated vertices for inspection and testing.
func (b *DrawBatch) Vertices() []RectVertex { return b.vertices }

// Indices exposes the accumulated indices for inspection and testing.
func (b *DrawBatch) Indices() []uint32 { return b.indices }

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
