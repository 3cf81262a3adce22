// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// quadShaderWGSL draws the batched UI quads. The vertex layout must match
// gpu.RectVertex: position, uv, color, rect bounds in device pixels, per
// corner radii, and a params vector carrying the gradient angle, border
// width, and gradient flag.
const quadShaderWGSL = `
struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(1) uv: vec2<f32>,
    @location(2) color: vec4<f32>,
    @location(3) rect_bounds: vec4<f32>,
    @location(4) corner_radii: vec4<f32>,
    @location(5) params: vec4<f32>,
};

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
    @location(1) color: vec4<f32>,
    @location(2) rect_bounds: vec4<f32>,
    @location(3) corner_radii: vec4<f32>,
    @location(4) params: vec4<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(in.position, 0.0, 1.0);
    out.uv = in.uv;
    out.color = in.color;
    out.rect_bounds = in.rect_bounds;
    out.corner_radii = in.corner_radii;
    out.params = in.params;
    return out;
}

// Signed distance to a rounded rectangle. p is relative to the rect
// center, half is the half extent, radius the corner radius for the
// quadrant p falls in.
fn rounded_rect_sdf(p: vec2<f32>, half: vec2<f32>, radius: f32) -> f32 {
    let q = abs(p) - half + vec2<f32>(radius, radius);
    return length(max(q, vec2<f32>(0.0, 0.0))) + min(max(q.x, q.y), 0.0) - radius;
}

fn corner_radius(p: vec2<f32>, radii: vec4<f32>) -> f32 {
    // radii order: top-left, top-right, bottom-right, bottom-left.
    if (p.x < 0.0 && p.y < 0.0) {
        return radii.x;
    }
    if (p.x >= 0.0 && p.y < 0.0) {
        return radii.y;
    }
    if (p.x >= 0.0 && p.y >= 0.0) {
        return radii.z;
    }
    return radii.w;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let origin = in.rect_bounds.xy;
    let extent = in.rect_bounds.zw;
    let half = extent * 0.5;
    let pixel = in.uv * extent;
    let p = pixel - half;

    let radius = corner_radius(p, in.corner_radii);
    let d = rounded_rect_sdf(p, half, radius);
    if (d > 0.0) {
        discard;
    }

    let border_width = in.params.y;
    if (border_width > 0.0 && d < -border_width) {
        discard;
    }

    return in.color;
}
`

// CompileQuadShader compiles the quad shader to SPIR-V and creates the
// module on the device.
func CompileQuadShader(device hal.Device) (hal.ShaderModule, error) {
	spirvBytes, err := naga.Compile(quadShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to compile quad shader: %w", err)
	}

	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "openkit_quad_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create quad shader module: %w", err)
	}
	return module, nil
}
