// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package render

import "fmt"

// Pipeline stages that can fail during GPU initialization and rendering.
// Errors carry the stage so callers can distinguish a missing adapter from
// a device or surface failure when deciding whether to fall back.
const (
	StageAdapter = "adapter"
	StageDevice  = "device"
	StageSurface = "surface"
)

// Error is a typed rendering failure tagged with the pipeline stage it
// occurred in.
type Error struct {
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
