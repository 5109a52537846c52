package core

import (
	"testing"
	"time"

	"github.com/insarlabs/tropodelay/model"
)

const (
	issTLE1 = "1 25544U 98067A   19343.69339541  .00001764  00000-0  40967-4 0  9990"
	issTLE2 = "2 25544  51.6439 211.2001 0007417  17.6667  85.6398 15.50103472202482"
)

func TestSatellitePositionAt(t *testing.T) {
	at := time.Date(2019, time.December, 9, 12, 0, 0, 0, time.UTC)
	pos := SatellitePositionAt(issTLE1, issTLE2, at)

	// A low-earth orbiter sits a few hundred kilometres above the surface.
	alt := pos.Norm() - SemiMajorAxisM
	if alt < 300e3 || alt > 500e3 {
		t.Errorf("altitude = %v m, want within [300e3, 500e3]", alt)
	}
}

func TestSatellitePositionAt_MovesOverTime(t *testing.T) {
	at := time.Date(2019, time.December, 9, 12, 0, 0, 0, time.UTC)
	p0 := SatellitePositionAt(issTLE1, issTLE2, at)
	p1 := SatellitePositionAt(issTLE1, issTLE2, at.Add(time.Minute))

	// Roughly 7.7 km/s of orbital motion.
	d := p1.Sub(p0).Norm()
	if d < 100e3 || d > 1000e3 {
		t.Errorf("moved %v m in one minute", d)
	}
}

func TestLookFromTLE(t *testing.T) {
	at := time.Date(2019, time.December, 9, 12, 0, 0, 0, time.UTC)
	look := LookFromTLE(issTLE1, issTLE2, at)

	if look.Kind != model.LookSatellite {
		t.Fatalf("kind = %v, want LookSatellite", look.Kind)
	}
	want := SatellitePositionAt(issTLE1, issTLE2, at)
	got := Vec3{X: look.Vector.X, Y: look.Vector.Y, Z: look.Vector.Z}
	if got.Sub(want).Norm() > 1e-9 {
		t.Errorf("vector = %v, want %v", got, want)
	}
}
