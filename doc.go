// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

// Package openkit provides the shared geometry and color primitives for the
// OpenKit UI paint pipeline, plus the ambient logger used by all subpackages.
//
// The pipeline itself lives in the subpackages:
//
//   - layout: one-pass flexbox positioning of child boxes
//   - paint: immediate-mode command recording with transform and clip stacks
//   - text: text shaping, rasterization, and the measurement cache
//   - gpu: quad batching, vertex packing, and the glyph texture atlas
//   - render: the renderer facade with GPU and software backends
//   - backend/wgpu: WebGPU resource sinks for the GPU backend
//
// A typical frame records commands through a paint.Painter, hands the finished
// command list to a render.Renderer, and presents the target:
//
//	p := paint.NewPainter()
//	p.FillRect(openkit.Rect{X: 10, Y: 10, Width: 80, Height: 40}, openkit.RGB(0.2, 0.4, 0.9))
//	cmds := p.Finish()
//
//	r.BeginFrame(openkit.Size{Width: 800, Height: 600})
//	r.Submit(cmds)
//	err := r.EndFrame(target)
package openkit
