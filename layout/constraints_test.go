package layout

import (
	"testing"

	"github.com/openkit-ui/openkit"
)

func TestTightConstraints(t *testing.T) {
	c := Tight(openkit.Size{Width: 100, Height: 50})

	if !c.IsTight() {
		t.Error("Tight constraints not reported as tight")
	}

	got := c.Constrain(openkit.Size{Width: 999, Height: 1})
	want := openkit.Size{Width: 100, Height: 50}
	if got != want {
		t.Errorf("Constrain = %+v, want %+v", got, want)
	}
}

func TestLooseConstraints(t *testing.T) {
	c := Loose(openkit.Size{Width: 100, Height: 50})

	if c.IsTight() {
		t.Error("Loose constraints reported as tight")
	}

	tests := []struct {
		name string
		in   openkit.Size
		want openkit.Size
	}{
		{"within bounds", openkit.Size{Width: 60, Height: 30}, openkit.Size{Width: 60, Height: 30}},
		{"over max", openkit.Size{Width: 200, Height: 80}, openkit.Size{Width: 100, Height: 50}},
		{"zero", openkit.Size{}, openkit.Size{}},
	}
	for _, tt := range tests {
		if got := c.Constrain(tt.in); got != tt.want {
			t.Errorf("%s: Constrain(%+v) = %+v, want %+v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestUnboundedConstraints(t *testing.T) {
	c := UnboundedConstraints()

	if c.HasBoundedWidth() {
		t.Error("unbounded width reported as bounded")
	}
	if c.HasBoundedHeight() {
		t.Error("unbounded height reported as bounded")
	}

	got := c.Constrain(openkit.Size{Width: 1e6, Height: 1e6})
	if got.Width != 1e6 || got.Height != 1e6 {
		t.Errorf("unbounded Constrain clamped: %+v", got)
	}

	bounded := Loose(openkit.Size{Width: 10, Height: 10})
	if !bounded.HasBoundedWidth() || !bounded.HasBoundedHeight() {
		t.Error("loose constraints not reported as bounded")
	}
}
