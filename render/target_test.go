package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPixmapTarget(t *testing.T) {
	target := NewPixmapTarget(64, 32)

	if target.Width() != 64 || target.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("format = %v, want RGBA8Unorm", target.Format())
	}
	if len(target.Pixels()) != 64*32*4 {
		t.Errorf("pixel buffer = %d bytes, want %d", len(target.Pixels()), 64*32*4)
	}
	if target.Stride() != 64*4 {
		t.Errorf("stride = %d, want %d", target.Stride(), 64*4)
	}
}

func TestPixmapTargetClear(t *testing.T) {
	target := NewPixmapTarget(8, 8)
	target.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})

	if got := pixelAt(target, 3, 3); got != [4]uint8{10, 20, 30, 255} {
		t.Errorf("cleared pixel = %v", got)
	}
}

func TestPixmapTargetResize(t *testing.T) {
	target := NewPixmapTarget(8, 8)
	target.Resize(16, 4)
	if target.Width() != 16 || target.Height() != 4 {
		t.Errorf("size after resize = %dx%d, want 16x4", target.Width(), target.Height())
	}
}

func TestPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	target := NewPixmapTargetFromImage(img)

	// Shares memory with the source image.
	img.Pix[0] = 42
	if target.Pixels()[0] != 42 {
		t.Error("target does not share memory with source image")
	}
	if target.Image() != img {
		t.Error("Image() returned a different image")
	}
}
