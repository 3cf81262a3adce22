// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

// Package wgpu uploads batched UI geometry through the WebGPU hardware
// abstraction layer.
//
// Sink implements the gpu.BufferSink and gpu.TextureSink interfaces over a
// hal.Device and hal.Queue, so a render.Renderer constructed with a Sink
// streams its vertex, index, and atlas data straight to the GPU. The quad
// shader that consumes the uploaded geometry lives in this package as WGSL
// and is compiled to SPIR-V through naga.
package wgpu
