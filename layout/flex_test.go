package layout

import (
	"math"
	"testing"

	"github.com/openkit-ui/openkit"
)

var (
	container = openkit.Size{Width: 300, Height: 100}
	noPad     openkit.EdgeInsets
	// Three 50-wide children leave 150 of free space in a 300-wide row.
	row3 = []openkit.Size{
		{Width: 50, Height: 20},
		{Width: 50, Height: 20},
		{Width: 50, Height: 20},
	}
)

func xs(points []openkit.Point) []float32 {
	out := make([]float32, len(points))
	for i, p := range points {
		out[i] = p.X
	}
	return out
}

func eqf(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-4 {
			return false
		}
	}
	return true
}

func TestFlexJustifyModes(t *testing.T) {
	tests := []struct {
		justify Justify
		wantX   []float32
	}{
		{JustifyStart, []float32{0, 50, 100}},
		{JustifyStretch, []float32{0, 50, 100}},
		{JustifyEnd, []float32{150, 200, 250}},
		{JustifyCenter, []float32{75, 125, 175}},
		{JustifySpaceBetween, []float32{0, 125, 250}},
		{JustifySpaceAround, []float32{25, 125, 225}},
		{JustifySpaceEvenly, []float32{37.5, 125, 212.5}},
	}
	for _, tt := range tests {
		f := Flex{Direction: Row, Justify: tt.justify}
		got := xs(f.Positions(container, row3, noPad))
		if !eqf(got, tt.wantX) {
			t.Errorf("%v: x positions = %v, want %v", tt.justify, got, tt.wantX)
		}
	}
}

func TestFlexGap(t *testing.T) {
	f := Flex{Direction: Row, Gap: 10}
	got := xs(f.Positions(container, row3, noPad))
	want := []float32{0, 60, 120}
	if !eqf(got, want) {
		t.Errorf("gap positions = %v, want %v", got, want)
	}

	// Gap reduces the free space seen by justify.
	f.Justify = JustifyEnd
	got = xs(f.Positions(container, row3, noPad))
	want = []float32{130, 190, 250}
	if !eqf(got, want) {
		t.Errorf("gap+end positions = %v, want %v", got, want)
	}
}

func TestFlexColumn(t *testing.T) {
	f := Flex{Direction: Column}
	children := []openkit.Size{
		{Width: 20, Height: 30},
		{Width: 20, Height: 40},
	}
	got := f.Positions(openkit.Size{Width: 100, Height: 200}, children, noPad)

	if got[0] != openkit.Pt(0, 0) {
		t.Errorf("child 0 at %+v, want origin", got[0])
	}
	if got[1] != openkit.Pt(0, 30) {
		t.Errorf("child 1 at %+v, want (0, 30)", got[1])
	}
}

func TestFlexAlign(t *testing.T) {
	children := []openkit.Size{{Width: 50, Height: 20}}

	tests := []struct {
		align Align
		wantY float32
	}{
		{AlignStart, 0},
		{AlignStretch, 0},
		{AlignCenter, 40},
		{AlignEnd, 80},
	}
	for _, tt := range tests {
		f := Flex{Direction: Row, Align: tt.align}
		got := f.Positions(container, children, noPad)
		if got[0].Y != tt.wantY {
			t.Errorf("%v: y = %v, want %v", tt.align, got[0].Y, tt.wantY)
		}
	}
}

func TestFlexReverse(t *testing.T) {
	f := Flex{Direction: RowReverse}
	children := []openkit.Size{
		{Width: 50, Height: 20},
		{Width: 30, Height: 20},
	}
	got := f.Positions(container, children, noPad)

	// positions[i] still corresponds to children[i]: the first child is
	// placed last along the axis.
	if got[0] != openkit.Pt(30, 0) {
		t.Errorf("child 0 at %+v, want (30, 0)", got[0])
	}
	if got[1] != openkit.Pt(0, 0) {
		t.Errorf("child 1 at %+v, want origin", got[1])
	}
}

func TestFlexColumnReverse(t *testing.T) {
	f := Flex{Direction: ColumnReverse}
	children := []openkit.Size{
		{Width: 20, Height: 30},
		{Width: 20, Height: 40},
	}
	got := f.Positions(openkit.Size{Width: 100, Height: 200}, children, noPad)

	if got[0] != openkit.Pt(0, 40) {
		t.Errorf("child 0 at %+v, want (0, 40)", got[0])
	}
	if got[1] != openkit.Pt(0, 0) {
		t.Errorf("child 1 at %+v, want origin", got[1])
	}
}

func TestFlexPadding(t *testing.T) {
	pad := openkit.EdgeInsets{Top: 5, Right: 20, Bottom: 0, Left: 10}

	// Positions start at the padding's leading edge.
	f := Flex{Direction: Row}
	got := f.Positions(container, []openkit.Size{{Width: 50, Height: 20}}, pad)
	if got[0] != openkit.Pt(10, 5) {
		t.Errorf("start position = %+v, want (10, 5)", got[0])
	}

	// Free space is measured against the padded content box:
	// 300 - 30 padding - 150 children = 120, split into two 60 gaps.
	f.Justify = JustifySpaceBetween
	gotX := xs(f.Positions(container, row3, pad))
	wantX := []float32{10, 120, 230}
	if !eqf(gotX, wantX) {
		t.Errorf("space-between with padding = %v, want %v", gotX, wantX)
	}

	// End-justified children stop at the trailing padding edge.
	f.Justify = JustifyEnd
	gotX = xs(f.Positions(container, row3, pad))
	wantX = []float32{130, 180, 230}
	if !eqf(gotX, wantX) {
		t.Errorf("end with padding = %v, want %v", gotX, wantX)
	}

	// Cross-axis centering happens inside the padded extent.
	f.Justify = JustifyStart
	f.Align = AlignCenter
	got = f.Positions(container, []openkit.Size{{Width: 50, Height: 20}}, pad)
	// crossStart 5 + (95 - 20) / 2.
	if got[0].Y != 42.5 {
		t.Errorf("centered y = %v, want 42.5", got[0].Y)
	}
}

func TestFlexPaddingColumn(t *testing.T) {
	pad := openkit.EdgeInsets{Top: 8, Left: 3}
	f := Flex{Direction: Column}
	children := []openkit.Size{
		{Width: 20, Height: 30},
		{Width: 20, Height: 40},
	}
	got := f.Positions(openkit.Size{Width: 100, Height: 200}, children, pad)

	if got[0] != openkit.Pt(3, 8) {
		t.Errorf("child 0 at %+v, want (3, 8)", got[0])
	}
	if got[1] != openkit.Pt(3, 38) {
		t.Errorf("child 1 at %+v, want (3, 38)", got[1])
	}
}

func TestFlexOverflowClampsFreeSpace(t *testing.T) {
	// Children wider than the container: free space clamps at zero and
	// children overflow past the right edge instead of overlapping.
	f := Flex{Direction: Row, Justify: JustifySpaceBetween}
	children := []openkit.Size{
		{Width: 200, Height: 20},
		{Width: 200, Height: 20},
	}
	got := xs(f.Positions(container, children, noPad))
	want := []float32{0, 200}
	if !eqf(got, want) {
		t.Errorf("overflow positions = %v, want %v", got, want)
	}
}

func TestFlexDegenerateInputs(t *testing.T) {
	f := Flex{Direction: Row, Justify: JustifyCenter}

	if got := f.Positions(container, nil, noPad); got != nil {
		t.Errorf("no children: got %v, want nil", got)
	}

	// Single child with space-between behaves like start.
	f.Justify = JustifySpaceBetween
	got := f.Positions(container, []openkit.Size{{Width: 50, Height: 20}}, noPad)
	if got[0].X != 0 {
		t.Errorf("single child space-between x = %v, want 0", got[0].X)
	}

	// NaN sizes are treated as zero rather than poisoning every position.
	nan := float32(math.NaN())
	got = f.Positions(container, []openkit.Size{
		{Width: nan, Height: 20},
		{Width: 50, Height: nan},
	}, noPad)
	for i, p := range got {
		if p.X != p.X || p.Y != p.Y {
			t.Errorf("position %d contains NaN: %+v", i, p)
		}
	}
}
