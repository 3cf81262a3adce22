// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"errors"
	"fmt"

	"github.com/openkit-ui/openkit"
)

// ErrAtlasSize is returned when a texture atlas is created with a
// non-positive size.
var ErrAtlasSize = errors.New("gpu: atlas size must be positive")

// AtlasID identifies an uploaded atlas region. IDs increase monotonically
// and are never reused, even after the atlas is cleared; a stale ID simply
// stops resolving.
type AtlasID uint64

// AtlasRegion is the pixel rectangle an upload landed in.
type AtlasRegion struct {
	X, Y          int
	Width, Height int
	Layer         int
}

// UV returns the region's texture coordinates as [u0, v0, u1, v1] for an
// atlas of the given size.
func (r AtlasRegion) UV(atlasSize int) [4]float32 {
	s := float32(atlasSize)
	return [4]float32{
		float32(r.X) / s,
		float32(r.Y) / s,
		float32(r.X+r.Width) / s,
		float32(r.Y+r.Height) / s,
	}
}

// AtlasItemTooLargeError reports an upload that can never fit, even into
// an empty atlas.
type AtlasItemTooLargeError struct {
	Width, Height int
	AtlasSize     int
}

func (e *AtlasItemTooLargeError) Error() string {
	return fmt.Sprintf("gpu: item %dx%d exceeds atlas size %d", e.Width, e.Height, e.AtlasSize)
}

// shelfAllocator packs rectangles into horizontal rows. Items are placed
// left to right; when a row fills, the next row opens below the tallest
// item of the current one.
type shelfAllocator struct {
	size      int
	rowX      int
	rowY      int
	rowHeight int
}

func (a *shelfAllocator) allocate(w, h int) (x, y int, ok bool) {
	if a.rowX+w > a.size {
		// Row is full, open the next one.
		a.rowY += a.rowHeight
		a.rowX = 0
		a.rowHeight = 0
	}
	if a.rowY+h > a.size {
		return 0, 0, false
	}
	x, y = a.rowX, a.rowY
	a.rowX += w
	if h > a.rowHeight {
		a.rowHeight = h
	}
	return x, y, true
}

func (a *shelfAllocator) reset() {
	a.rowX = 0
	a.rowY = 0
	a.rowHeight = 0
}

// TextureAtlas packs RGBA uploads into a single square texture layer and
// tracks where each upload landed.
//
// When the atlas fills up it clears itself and retries the upload once.
// Clearing invalidates every previously issued AtlasID and bumps the
// generation counter; callers holding derived state (glyph caches) watch
// the generation and re-upload on demand. This trades a one-frame glyph
// re-upload for never failing mid-frame, which suits UI workloads where
// the live glyph set is far smaller than the atlas.
//
// TextureAtlas is not safe for concurrent use.
type TextureAtlas struct {
	size       int
	alloc      shelfAllocator
	regions    map[AtlasID]AtlasRegion
	nextID     uint64
	generation uint64
}

// NewTextureAtlas creates an atlas of size x size pixels.
func NewTextureAtlas(size int) (*TextureAtlas, error) {
	if size <= 0 {
		return nil, ErrAtlasSize
	}
	return &TextureAtlas{
		size:    size,
		alloc:   shelfAllocator{size: size},
		regions: make(map[AtlasID]AtlasRegion),
	}, nil
}

// Upload places w*h RGBA pixels into the atlas and writes them through the
// sink. On success it returns the region's id.
//
// If the atlas is full, it is cleared and the upload retried once. Only an
// item larger than the atlas itself fails, with *AtlasItemTooLargeError.
func (t *TextureAtlas) Upload(w, h int, rgba []byte, sink TextureSink) (AtlasID, error) {
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("gpu: invalid upload size %dx%d", w, h)
	}
	if len(rgba) < w*h*4 {
		return 0, fmt.Errorf("gpu: upload data %d bytes, need %d", len(rgba), w*h*4)
	}
	if w > t.size || h > t.size {
		return 0, &AtlasItemTooLargeError{Width: w, Height: h, AtlasSize: t.size}
	}

	x, y, ok := t.alloc.allocate(w, h)
	if !ok {
		t.Clear()
		openkit.Logger().Info("gpu: texture atlas full, cleared",
			"size", t.size, "generation", t.generation)
		x, y, ok = t.alloc.allocate(w, h)
		if !ok {
			// Unreachable: the item fits an empty atlas by the size check.
			return 0, &AtlasItemTooLargeError{Width: w, Height: h, AtlasSize: t.size}
		}
	}

	if err := sink.WriteRegion(0, x, y, w, h, rgba); err != nil {
		return 0, err
	}

	t.nextID++
	id := AtlasID(t.nextID)
	t.regions[id] = AtlasRegion{X: x, Y: y, Width: w, Height: h}
	return id, nil
}

// Clear drops every region and resets the packer. The id counter is not
// reset: ids from before the clear never resolve again.
func (t *TextureAtlas) Clear() {
	t.alloc.reset()
	clear(t.regions)
	t.generation++
}

// Region resolves an atlas id to its pixel rectangle.
func (t *TextureAtlas) Region(id AtlasID) (AtlasRegion, bool) {
	r, ok := t.regions[id]
	return r, ok
}

// UV resolves an atlas id directly to texture coordinates.
func (t *TextureAtlas) UV(id AtlasID) ([4]float32, bool) {
	r, ok := t.regions[id]
	if !ok {
		return [4]float32{}, false
	}
	return r.UV(t.size), true
}

// Size returns the atlas dimension in pixels.
func (t *TextureAtlas) Size() int { return t.size }

// Len returns the number of live regions.
func (t *TextureAtlas) Len() int { return len(t.regions) }

// Generation increments each time the atlas is cleared.
func (t *TextureAtlas) Generation() uint64 { return t.generation }
