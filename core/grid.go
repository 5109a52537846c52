package core

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/insarlabs/tropodelay/model"
)

// DefaultChunkSize is the number of grid points handed to a worker at a
// time. Chunking amortises dispatch overhead; the exact value only affects
// throughput, never results.
const DefaultChunkSize = 50

// GridMetricsRecorder receives observational metrics from grid runs. It must
// never influence results or ordering; a nil recorder disables reporting.
type GridMetricsRecorder interface {
	ObserveGridDuration(d time.Duration)
	AddPointsComputed(n int)
	SetProgress(done, total int)
	SetWorkers(n int)
}

type gridOptions struct {
	step     float64
	workers  int
	chunk    int
	progress func(done, total int)
	metrics  GridMetricsRecorder
}

// GridOption tunes a grid delay computation.
type GridOption func(*gridOptions)

// WithStep sets the ray sampling step in metres.
func WithStep(step float64) GridOption {
	return func(o *gridOptions) { o.step = step }
}

// WithWorkers bounds the worker pool. One worker selects the sequential
// fallback path, which produces element-identical output.
func WithWorkers(n int) GridOption {
	return func(o *gridOptions) { o.workers = n }
}

// WithChunkSize sets how many points each dispatched work item covers.
func WithChunkSize(n int) GridOption {
	return func(o *gridOptions) { o.chunk = n }
}

// WithProgress registers a callback invoked as results are collected.
func WithProgress(fn func(done, total int)) GridOption {
	return func(o *gridOptions) { o.progress = fn }
}

// WithMetricsRecorder attaches a metrics recorder to the run.
func WithMetricsRecorder(m GridMetricsRecorder) GridOption {
	return func(o *gridOptions) { o.metrics = m }
}

func buildOptions(opts []GridOption) gridOptions {
	o := gridOptions{
		step:    DefaultStepM,
		workers: runtime.NumCPU(),
		chunk:   DefaultChunkSize,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.chunk < 1 {
		o.chunk = 1
	}
	return o
}

// DelayOverArea computes zenith delays for every point of the regular grid
// described by the area spec. The grid is shaped (heights, lats, lons); a
// zero-size bounding box or non-positive resolution on any axis is rejected
// before any point is evaluated.
func DelayOverArea(ctx context.Context, field WeatherField, area model.AreaSpec, opts ...GridOption) (*model.DelayGrid, error) {
	points, err := GridPoints(area)
	if err != nil {
		return nil, err
	}
	values, err := DelayFromGrid(ctx, field, points, model.Zenith(0), opts...)
	if err != nil {
		return nil, err
	}
	return &model.DelayGrid{Heights: area.Heights(), Lats: area.Lats(), Lons: area.Lons(), Values: values}, nil
}

// GridPoints validates the area spec and expands it into the flat
// (height, lat, lon)-ordered point list the scheduler works over.
func GridPoints(area model.AreaSpec) ([]model.Geodetic, error) {
	if err := validateArea(area); err != nil {
		return nil, err
	}

	lats := area.Lats()
	lons := area.Lons()
	hts := area.Heights()

	points := make([]model.Geodetic, 0, len(hts)*len(lats)*len(lons))
	for _, ht := range hts {
		for _, lat := range lats {
			for _, lon := range lons {
				points = append(points, model.Geodetic{LatDeg: lat, LonDeg: lon, HeightM: ht})
			}
		}
	}
	return points, nil
}

func validateArea(area model.AreaSpec) error {
	axes := []struct {
		name          string
		min, max, res float64
	}{
		{"latitude", area.LatMin, area.LatMax, area.LatRes},
		{"longitude", area.LonMin, area.LonMax, area.LonRes},
		{"height", area.HtMin, area.HtMax, area.HtRes},
	}
	for _, ax := range axes {
		if ax.min == ax.max {
			return fmt.Errorf("%w: zero-size bounding box on %s axis", ErrConfig, ax.name)
		}
		if ax.max < ax.min {
			return fmt.Errorf("%w: inverted bounds on %s axis (%g > %g)", ErrConfig, ax.name, ax.min, ax.max)
		}
		if ax.res <= 0 {
			return fmt.Errorf("%w: %s resolution %g must be positive", ErrConfig, ax.name, ax.res)
		}
	}
	return nil
}

// DelayFromGrid computes (hydrostatic, wet) delays for an explicit list of
// query points, flat-indexed to match the input order. Work is distributed
// in chunks over a bounded worker pool; results complete out of order and
// are re-inserted by their original index. Any point failing aborts the run.
func DelayFromGrid(ctx context.Context, field WeatherField, points []model.Geodetic, look model.LookSpec, opts ...GridOption) ([]model.DelayPair, error) {
	o := buildOptions(opts)
	total := len(points)
	out := make([]model.DelayPair, total)

	if o.metrics != nil {
		o.metrics.SetWorkers(o.workers)
		start := time.Now()
		defer func() { o.metrics.ObserveGridDuration(time.Since(start)) }()
	}
	if total == 0 {
		return out, nil
	}

	compute := func(i int) (model.DelayPair, error) {
		pair, err := DelayAlongRay(field, points[i], look, o.step)
		if err != nil {
			return model.DelayPair{}, fmt.Errorf("point %d (lat=%.4f lon=%.4f ht=%.1f): %w",
				i, points[i].LatDeg, points[i].LonDeg, points[i].HeightM, err)
		}
		return pair, nil
	}

	if o.workers <= 1 {
		for i := range points {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			pair, err := compute(i)
			if err != nil {
				return nil, err
			}
			out[i] = pair
			o.report(i+1, total, 1)
		}
		return out, nil
	}

	type result struct {
		index int
		pair  model.DelayPair
	}

	g, gctx := errgroup.WithContext(ctx)
	chunks := make(chan [2]int)
	results := make(chan result, o.chunk)

	g.Go(func() error {
		defer close(chunks)
		for start := 0; start < total; start += o.chunk {
			end := start + o.chunk
			if end > total {
				end = total
			}
			select {
			case chunks <- [2]int{start, end}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < o.workers; w++ {
		g.Go(func() error {
			for ch := range chunks {
				for i := ch[0]; i < ch[1]; i++ {
					pair, err := compute(i)
					if err != nil {
						return err
					}
					select {
					case results <- result{index: i, pair: pair}:
					case <-gctx.Done():
						return gctx.Err()
					}
				}
			}
			return nil
		})
	}

	// Close the results channel once producer and workers are done, so the
	// collection loop below terminates even on failure.
	runErr := make(chan error, 1)
	go func() {
		runErr <- g.Wait()
		close(results)
	}()

	done := 0
	for r := range results {
		out[r.index] = r.pair
		done++
		o.report(done, total, 1)
	}

	if err := <-runErr; err != nil {
		return nil, err
	}
	return out, nil
}

func (o *gridOptions) report(done, total, computed int) {
	if o.progress != nil {
		o.progress(done, total)
	}
	if o.metrics != nil {
		o.metrics.AddPointsComputed(computed)
		o.metrics.SetProgress(done, total)
	}
}
