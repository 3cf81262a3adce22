// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

// Package text provides text measurement and rasterization for the OpenKit
// paint pipeline, plus the bounded measurement cache that sits in front of
// the shaping engine.
package text

import "github.com/openkit-ui/openkit"

// Raster is a block of rasterized text in non-premultiplied RGBA order.
type Raster struct {
	Width  int
	Height int

	// Pixels holds Width*Height*4 bytes in RGBA order.
	Pixels []byte
}

// Engine measures and rasterizes text at a given font size.
//
// Engines are not required to be safe for concurrent use; the measurement
// cache serializes access for callers that share one across goroutines.
type Engine interface {
	// Measure returns the extent of the text. Multi-line text measures as
	// the widest line by the number of lines times the line height.
	Measure(text string, size float32) openkit.Size

	// Rasterize renders the text into an RGBA pixel block tinted with the
	// given color. Returns an error if the text cannot be rendered.
	Rasterize(text string, size float32, color openkit.Color) (Raster, error)
}

// LineHeightFactor is the ratio of line height to font size used for
// measurement and multi-line rendering.
const LineHeightFactor = 1.2
