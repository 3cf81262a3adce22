package gpu

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestPackRectVerticesLayout(t *testing.T) {
	v := RectVertex{
		Position:    [2]float32{-1, 1},
		UV:          [2]float32{0, 0},
		Color:       [4]float32{1, 0, 0, 1},
		RectBounds:  [4]float32{10, 20, 30, 40},
		CornerRadii: [4]float32{1, 2, 3, 4},
		Params:      [4]float32{0.5, 2, 1, 0},
	}

	data := PackRectVertices([]RectVertex{v})
	if len(data) != RectVertexStride {
		t.Fatalf("packed %d bytes, want %d", len(data), RectVertexStride)
	}

	// Fields serialize in declaration order, little-endian.
	at := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	if at(0) != -1 || at(1) != 1 {
		t.Errorf("position = (%v, %v), want (-1, 1)", at(0), at(1))
	}
	if at(4) != 1 { // color.R
		t.Errorf("color.R at word 4 = %v, want 1", at(4))
	}
	if at(8) != 10 || at(11) != 40 { // rect bounds
		t.Errorf("bounds words = %v..%v, want 10..40", at(8), at(11))
	}
	if at(13) != 2 { // corner radii[1]
		t.Errorf("radii[1] = %v, want 2", at(13))
	}
	if at(17) != 2 { // params[1] border width
		t.Errorf("params[1] = %v, want 2", at(17))
	}
}

func TestPackIndices(t *testing.T) {
	data := PackIndices([]uint32{0, 1, 2, 0, 2, 3})
	if len(data) != 24 {
		t.Fatalf("packed %d bytes, want 24", len(data))
	}
	if got := binary.LittleEndian.Uint32(data[20:]); got != 3 {
		t.Errorf("last index = %d, want 3", got)
	}
}
