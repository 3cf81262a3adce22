package paint

import (
	"math"
	"testing"

	"github.com/openkit-ui/openkit"
)

var (
	red  = openkit.RGB(1, 0, 0)
	blue = openkit.RGB(0, 0, 1)
)

// ============================================================================
// Transform stack
// ============================================================================

func TestPainterTransformsAtRecordTime(t *testing.T) {
	p := NewPainter()
	p.Translate(10, 20)
	p.Scale(2, 2)
	p.FillRect(openkit.Rect{X: 5, Y: 5, Width: 10, Height: 10}, red)

	cmds := p.Finish()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	rc, ok := cmds[0].(RectCommand)
	if !ok {
		t.Fatalf("got %T, want RectCommand", cmds[0])
	}
	want := openkit.Rect{X: 20, Y: 30, Width: 20, Height: 20}
	if rc.Rect != want {
		t.Errorf("device rect = %+v, want %+v", rc.Rect, want)
	}
}

func TestPainterSaveRestore(t *testing.T) {
	p := NewPainter()
	p.Save()
	p.Translate(100, 100)
	p.Restore()
	p.FillRect(openkit.Rect{Width: 10, Height: 10}, red)

	cmds := p.Finish()
	rc := cmds[0].(RectCommand)
	if rc.Rect.X != 0 || rc.Rect.Y != 0 {
		t.Errorf("restore did not undo translate: %+v", rc.Rect)
	}
}

func TestPainterRestoreFloor(t *testing.T) {
	p := NewPainter()
	// Unbalanced restores must not pop the seeded identity transform.
	p.Restore()
	p.Restore()
	p.FillRect(openkit.Rect{Width: 10, Height: 10}, red)

	cmds := p.Finish()
	rc := cmds[0].(RectCommand)
	want := openkit.Rect{Width: 10, Height: 10}
	if rc.Rect != want {
		t.Errorf("rect after excess restores = %+v, want %+v", rc.Rect, want)
	}
}

func TestPainterNestedScaleTranslate(t *testing.T) {
	p := NewPainter()
	p.Scale(2, 2)
	p.Translate(5, 5) // translation adds raw deltas, unaffected by scale
	p.FillRect(openkit.Rect{Width: 1, Height: 1}, red)

	rc := p.Finish()[0].(RectCommand)
	want := openkit.Rect{X: 5, Y: 5, Width: 2, Height: 2}
	if rc.Rect != want {
		t.Errorf("rect = %+v, want %+v", rc.Rect, want)
	}
}

func TestPainterTranslateOrderIndependentOfScale(t *testing.T) {
	// Scale-then-translate and translate-then-scale land in the same
	// place: translation always accumulates post-scale.
	a := NewPainter()
	a.Scale(2, 2)
	a.Translate(5, 5)
	a.FillRect(openkit.Rect{Width: 1, Height: 1}, red)

	b := NewPainter()
	b.Translate(5, 5)
	b.Scale(2, 2)
	b.FillRect(openkit.Rect{Width: 1, Height: 1}, red)

	ra := a.Finish()[0].(RectCommand)
	rb := b.Finish()[0].(RectCommand)
	if ra.Rect != rb.Rect {
		t.Errorf("scale-first rect %+v != translate-first rect %+v", ra.Rect, rb.Rect)
	}
}

// ============================================================================
// Clip stack
// ============================================================================

func TestPainterClipBounds(t *testing.T) {
	p := NewPainter()

	if _, ok := p.ClipBounds(); ok {
		t.Error("empty clip stack reported active bounds")
	}

	p.PushClip(openkit.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	p.PushClip(openkit.Rect{X: 50, Y: 50, Width: 100, Height: 100})

	bounds, ok := p.ClipBounds()
	if !ok {
		t.Fatal("clip stack reported no bounds")
	}
	want := openkit.Rect{X: 50, Y: 50, Width: 50, Height: 50}
	if bounds != want {
		t.Errorf("ClipBounds = %+v, want %+v", bounds, want)
	}

	p.PopClip()
	bounds, _ = p.ClipBounds()
	if bounds.Width != 100 {
		t.Errorf("after pop, bounds = %+v", bounds)
	}

	// Clips are recorded in device space.
	p.PopClip()
	p.Translate(10, 10)
	p.PushClip(openkit.Rect{Width: 20, Height: 20})
	bounds, _ = p.ClipBounds()
	if bounds.X != 10 || bounds.Y != 10 {
		t.Errorf("transformed clip = %+v, want origin (10, 10)", bounds)
	}
}

func TestPainterPopClipEmpty(t *testing.T) {
	p := NewPainter()
	p.PopClip() // no-op, must not panic
	if _, ok := p.ClipBounds(); ok {
		t.Error("bounds active after popping empty stack")
	}
}

// ============================================================================
// Draw operations
// ============================================================================

func TestPainterStrokeRectIsFourLines(t *testing.T) {
	p := NewPainter()
	p.StrokeRect(openkit.Rect{X: 0, Y: 0, Width: 10, Height: 10}, red, 1)

	cmds := p.Finish()
	if len(cmds) != 4 {
		t.Fatalf("got %d commands, want 4", len(cmds))
	}
	for i, c := range cmds {
		if c.Type() != CommandLine {
			t.Errorf("command %d type = %v, want Line", i, c.Type())
		}
	}
}

func TestPainterTextScalesWithTransform(t *testing.T) {
	p := NewPainter()
	p.Scale(2, 2)
	p.DrawText(openkit.Pt(10, 10), "hi", red, 16)

	tc := p.Finish()[0].(TextCommand)
	if tc.Size != 32 {
		t.Errorf("text size = %v, want 32", tc.Size)
	}
	if tc.Pos != openkit.Pt(20, 20) {
		t.Errorf("text pos = %+v, want (20, 20)", tc.Pos)
	}
}

func TestPainterGradient(t *testing.T) {
	p := NewPainter()
	p.FillGradient(openkit.Rect{Width: 10, Height: 10}, red, blue, math.Pi/2, openkit.BorderRadius{})

	gc := p.Finish()[0].(GradientCommand)
	if gc.Start != red || gc.End != blue {
		t.Errorf("gradient colors = %+v, %+v", gc.Start, gc.End)
	}
	if gc.Angle != math.Pi/2 {
		t.Errorf("gradient angle = %v", gc.Angle)
	}
}

func TestPainterRejectsInvalidGeometry(t *testing.T) {
	nan := float32(math.NaN())

	p := NewPainter()
	p.FillRect(openkit.Rect{X: nan, Width: 10, Height: 10}, red)
	p.DrawLine(openkit.Pt(0, 0), openkit.Pt(nan, 0), red, 1)
	p.DrawText(openkit.Pt(0, 0), "x", red, nan)
	p.DrawBorder(openkit.Rect{Width: 10, Height: 10}, red, -1, openkit.BorderRadius{})
	p.DrawLine(openkit.Pt(0, 0), openkit.Pt(1, 1), red, 0)
	p.DrawText(openkit.Pt(0, 0), "", red, 12)

	if got := p.Len(); got != 0 {
		t.Errorf("recorded %d invalid commands, want 0", got)
	}

	// Negative dimensions clamp to zero instead of being dropped.
	p.FillRect(openkit.Rect{X: 5, Y: 5, Width: -10, Height: 10}, red)
	cmds := p.Finish()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	rc := cmds[0].(RectCommand)
	if rc.Rect.Width != 0 {
		t.Errorf("negative width clamped to %v, want 0", rc.Rect.Width)
	}
}

// ============================================================================
// Finish
// ============================================================================

func TestPainterFinishConsumes(t *testing.T) {
	p := NewPainter()
	p.FillRect(openkit.Rect{Width: 1, Height: 1}, red)
	cmds := p.Finish()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}

	defer func() {
		if recover() == nil {
			t.Error("draw after Finish did not panic")
		}
	}()
	p.FillRect(openkit.Rect{Width: 1, Height: 1}, red)
}

func TestPainterCommandOrder(t *testing.T) {
	p := NewPainter()
	p.FillRect(openkit.Rect{Width: 1, Height: 1}, red)
	p.DrawLine(openkit.Pt(0, 0), openkit.Pt(1, 1), red, 1)
	p.DrawImage(openkit.Rect{Width: 1, Height: 1}, 7)

	cmds := p.Finish()
	wantTypes := []CommandType{CommandRect, CommandLine, CommandImage}
	for i, want := range wantTypes {
		if cmds[i].Type() != want {
			t.Errorf("command %d type = %v, want %v", i, cmds[i].Type(), want)
		}
	}
}
