// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package gpu

// GlyphKey identifies a rasterized glyph in the atlas.
type GlyphKey struct {
	FontID  uint64
	GlyphID uint32

	// SizePx is the rounded pixel size. Glyphs rasterize per integer size;
	// fractional sizes share the nearest bucket.
	SizePx uint32
}

// GlyphInfo locates a glyph in the atlas and carries its layout metrics.
type GlyphInfo struct {
	AtlasID AtlasID

	Width, Height int

	// BearingX and BearingY offset the glyph bitmap from the pen position;
	// BearingY is measured from the baseline up to the bitmap top.
	BearingX float32
	BearingY float32

	// Advance is the horizontal pen advance in pixels.
	Advance float32
}

// GlyphCache maps glyph keys to their atlas locations.
//
// The cache is bound to one atlas and tracks its generation: after the
// atlas clears itself, every cached entry points at reclaimed space, so
// the first lookup afterwards drops the whole map and misses. Callers
// re-rasterize and re-upload on miss.
//
// GlyphCache is not safe for concurrent use.
type GlyphCache struct {
	atlas      *TextureAtlas
	generation uint64
	glyphs     map[GlyphKey]GlyphInfo
}

// NewGlyphCache creates a cache bound to the atlas.
func NewGlyphCache(atlas *TextureAtlas) *GlyphCache {
	return &GlyphCache{
		atlas:      atlas,
		generation: atlas.Generation(),
		glyphs:     make(map[GlyphKey]GlyphInfo),
	}
}

// Get returns the cached info for a glyph, if still valid.
func (c *GlyphCache) Get(key GlyphKey) (GlyphInfo, bool) {
	c.sync()
	info, ok := c.glyphs[key]
	return info, ok
}

// Put records a glyph's atlas location.
func (c *GlyphCache) Put(key GlyphKey, info GlyphInfo) {
	c.sync()
	c.glyphs[key] = info
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int {
	c.sync()
	return len(c.glyphs)
}

// sync drops all entries when the atlas has been cleared since the last
// call.
func (c *GlyphCache) sync() {
	if gen := c.atlas.Generation(); gen != c.generation {
		clear(c.glyphs)
		c.generation = gen
	}
}
