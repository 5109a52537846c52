package model

import (
	"math"
	"testing"
)

func TestAxis(t *testing.T) {
	got := Axis(0, 1, 0.25)
	want := []float64{0, 0.25, 0.5, 0.75}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Axis[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAxis_MaxExclusive(t *testing.T) {
	got := Axis(0, 200, 100)
	if len(got) != 2 {
		t.Fatalf("Axis(0,200,100) = %v, want [0 100]", got)
	}
}

func TestAxis_NonPositiveResolution(t *testing.T) {
	if got := Axis(0, 1, 0); got != nil {
		t.Fatalf("Axis with zero resolution = %v, want nil", got)
	}
	if got := Axis(0, 1, -0.5); got != nil {
		t.Fatalf("Axis with negative resolution = %v, want nil", got)
	}
}

func TestAreaSpecAxes(t *testing.T) {
	area := AreaSpec{
		LatMin: 36, LatMax: 36.25, LatRes: 0.1,
		LonMin: -118, LonMax: -117.85, LonRes: 0.1,
		HtMin: 0, HtMax: 500, HtRes: 100,
	}

	if n := len(area.Lats()); n != 3 {
		t.Errorf("len(Lats) = %d, want 3", n)
	}
	if n := len(area.Lons()); n != 2 {
		t.Errorf("len(Lons) = %d, want 2", n)
	}
	if n := len(area.Heights()); n != 5 {
		t.Errorf("len(Heights) = %d, want 5", n)
	}
}
