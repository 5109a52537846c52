package core

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/insarlabs/tropodelay/model"
)

// varyField gives every location a distinct but deterministic atmosphere, so
// out-of-order completion shows up as a wrong value at a wrong index.
type varyField struct{}

func (varyField) Temperature(pts []Vec3) ([]float64, error) {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = 230 + math.Mod(math.Abs(p.X+2*p.Y+3*p.Z), 60)
	}
	return out, nil
}

func (varyField) Pressure(pts []Vec3) ([]float64, error) {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = 80000 + math.Mod(math.Abs(p.X-p.Y), 20000)
	}
	return out, nil
}

func (varyField) RelativeHumidity(pts []Vec3) ([]float64, error) {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = math.Mod(math.Abs(p.Z), 100)
	}
	return out, nil
}

func (varyField) Refractivity() model.RefractivityConstants {
	return model.DefaultRefractivity
}

// countingField counts lookups so tests can assert a run never touched the
// weather model.
type countingField struct {
	constField
	calls atomic.Int64
}

func (f *countingField) Temperature(pts []Vec3) ([]float64, error) {
	f.calls.Add(1)
	return f.constField.Temperature(pts)
}

func (f *countingField) Pressure(pts []Vec3) ([]float64, error) {
	f.calls.Add(1)
	return f.constField.Pressure(pts)
}

func (f *countingField) RelativeHumidity(pts []Vec3) ([]float64, error) {
	f.calls.Add(1)
	return f.constField.RelativeHumidity(pts)
}

type recordedMetrics struct {
	workers   int
	points    int
	lastDone  int
	lastTotal int
	durations int
}

func (m *recordedMetrics) ObserveGridDuration(time.Duration) { m.durations++ }
func (m *recordedMetrics) AddPointsComputed(n int)           { m.points += n }
func (m *recordedMetrics) SetProgress(done, total int)       { m.lastDone, m.lastTotal = done, total }
func (m *recordedMetrics) SetWorkers(n int)                  { m.workers = n }

func testArea() model.AreaSpec {
	return model.AreaSpec{
		LatMin: 36, LatMax: 36.3, LatRes: 0.1,
		LonMin: -118, LonMax: -117.8, LonRes: 0.1,
		HtMin: 0, HtMax: 200, HtRes: 100,
	}
}

func TestDelayOverArea_Shape(t *testing.T) {
	area := testArea()
	grid, err := DelayOverArea(context.Background(), constField{tempK: 288, pressPa: 101325, rhPct: 40}, area)
	if err != nil {
		t.Fatalf("DelayOverArea: %v", err)
	}

	wantPoints := len(grid.Heights) * len(grid.Lats) * len(grid.Lons)
	if len(grid.Values) != wantPoints {
		t.Fatalf("len(Values) = %d, want %d", len(grid.Values), wantPoints)
	}
	if grid.NumPoints() != wantPoints {
		t.Errorf("NumPoints = %d, want %d", grid.NumPoints(), wantPoints)
	}
	for _, v := range grid.Values {
		if v.Hydrostatic <= 0 {
			t.Fatalf("non-positive hydrostatic delay %v", v.Hydrostatic)
		}
	}
}

func TestDelayOverArea_FlatIndexMatchesPointOrder(t *testing.T) {
	area := testArea()
	points, err := GridPoints(area)
	if err != nil {
		t.Fatalf("GridPoints: %v", err)
	}
	grid, err := DelayOverArea(context.Background(), varyField{}, area, WithWorkers(1))
	if err != nil {
		t.Fatalf("DelayOverArea: %v", err)
	}

	for h := range grid.Heights {
		for la := range grid.Lats {
			for lo := range grid.Lons {
				idx := grid.FlatIndex(h, la, lo)
				p := points[idx]
				if p.HeightM != grid.Heights[h] || p.LatDeg != grid.Lats[la] || p.LonDeg != grid.Lons[lo] {
					t.Fatalf("FlatIndex(%d,%d,%d)=%d maps to %+v", h, la, lo, idx, p)
				}
				if grid.At(h, la, lo) != grid.Values[idx] {
					t.Fatalf("At(%d,%d,%d) != Values[%d]", h, la, lo, idx)
				}
			}
		}
	}
}

func TestDelayFromGrid_ParallelMatchesSequential(t *testing.T) {
	points, err := GridPoints(testArea())
	if err != nil {
		t.Fatalf("GridPoints: %v", err)
	}

	seq, err := DelayFromGrid(context.Background(), varyField{}, points, model.Zenith(0), WithWorkers(1))
	if err != nil {
		t.Fatalf("sequential run: %v", err)
	}
	par, err := DelayFromGrid(context.Background(), varyField{}, points, model.Zenith(0),
		WithWorkers(4), WithChunkSize(3))
	if err != nil {
		t.Fatalf("parallel run: %v", err)
	}

	if len(seq) != len(par) {
		t.Fatalf("lengths differ: %d vs %d", len(seq), len(par))
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("values differ at %d: %+v vs %+v", i, seq[i], par[i])
		}
	}
}

func TestDelayOverArea_InvalidAreaRejectedBeforeLookup(t *testing.T) {
	cases := []struct {
		name string
		area model.AreaSpec
	}{
		{"zero-size box", model.AreaSpec{
			LatMin: 36, LatMax: 36, LatRes: 0.1,
			LonMin: -118, LonMax: -117.8, LonRes: 0.1,
			HtMin: 0, HtMax: 200, HtRes: 100,
		}},
		{"inverted bounds", model.AreaSpec{
			LatMin: 36.3, LatMax: 36, LatRes: 0.1,
			LonMin: -118, LonMax: -117.8, LonRes: 0.1,
			HtMin: 0, HtMax: 200, HtRes: 100,
		}},
		{"non-positive resolution", model.AreaSpec{
			LatMin: 36, LatMax: 36.3, LatRes: 0.1,
			LonMin: -118, LonMax: -117.8, LonRes: 0,
			HtMin: 0, HtMax: 200, HtRes: 100,
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			field := &countingField{constField: constField{tempK: 288, pressPa: 101325}}
			_, err := DelayOverArea(context.Background(), field, c.area)
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("err = %v, want ErrConfig", err)
			}
			if n := field.calls.Load(); n != 0 {
				t.Errorf("field queried %d times before validation failure", n)
			}
		})
	}
}

func TestDelayFromGrid_ErrorAbortsRun(t *testing.T) {
	points, err := GridPoints(testArea())
	if err != nil {
		t.Fatalf("GridPoints: %v", err)
	}
	field := failingField{
		constField:   constField{tempK: 288, pressPa: 101325},
		failPressure: true,
	}

	for _, workers := range []int{1, 4} {
		_, err := DelayFromGrid(context.Background(), field, points, model.Zenith(0), WithWorkers(workers))
		if !errors.Is(err, ErrDataUnavailable) {
			t.Errorf("workers=%d: err = %v, want ErrDataUnavailable", workers, err)
		}
	}
}

func TestDelayFromGrid_CancelledContext(t *testing.T) {
	points, err := GridPoints(testArea())
	if err != nil {
		t.Fatalf("GridPoints: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = DelayFromGrid(ctx, varyField{}, points, model.Zenith(0), WithWorkers(1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestDelayFromGrid_ProgressAndMetrics(t *testing.T) {
	points, err := GridPoints(testArea())
	if err != nil {
		t.Fatalf("GridPoints: %v", err)
	}

	metrics := &recordedMetrics{}
	lastDone := 0
	progress := func(done, total int) {
		if done <= lastDone {
			t.Errorf("progress went backwards: %d after %d", done, lastDone)
		}
		lastDone = done
		if total != len(points) {
			t.Errorf("progress total = %d, want %d", total, len(points))
		}
	}

	_, err = DelayFromGrid(context.Background(), varyField{}, points, model.Zenith(0),
		WithWorkers(3), WithChunkSize(4), WithProgress(progress), WithMetricsRecorder(metrics))
	if err != nil {
		t.Fatalf("DelayFromGrid: %v", err)
	}

	if lastDone != len(points) {
		t.Errorf("final progress = %d, want %d", lastDone, len(points))
	}
	if metrics.workers != 3 {
		t.Errorf("recorded workers = %d, want 3", metrics.workers)
	}
	if metrics.points != len(points) {
		t.Errorf("recorded points = %d, want %d", metrics.points, len(points))
	}
	if metrics.lastDone != len(points) || metrics.lastTotal != len(points) {
		t.Errorf("recorded progress = %d/%d, want %d/%d",
			metrics.lastDone, metrics.lastTotal, len(points), len(points))
	}
	if metrics.durations != 1 {
		t.Errorf("recorded %d durations, want 1", metrics.durations)
	}
}

func TestDelayFromGrid_EmptyPoints(t *testing.T) {
	out, err := DelayFromGrid(context.Background(), varyField{}, nil, model.Zenith(0))
	if err != nil {
		t.Fatalf("DelayFromGrid: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len(out) = %d, want 0", len(out))
	}
}
