package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DelayCollector bundles Prometheus metrics for delay-grid computations and
// satisfies core.GridMetricsRecorder so the scheduler can drive them
// directly.
type DelayCollector struct {
	gatherer prometheus.Gatherer

	PointsComputed prometheus.Counter
	GridDuration   prometheus.Histogram
	GridProgress   prometheus.Gauge
	GridWorkers    prometheus.Gauge
}

// NewDelayCollector registers the delay metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewDelayCollector(reg prometheus.Registerer) (*DelayCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	points, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delay_points_computed_total",
		Help: "Cumulative number of grid points whose delay has been integrated.",
	}), "delay_points_computed_total")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "delay_grid_duration_seconds",
		Help:    "Wall-clock duration of whole delay-grid computations.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})
	duration, err = registerHistogram(reg, duration, "delay_grid_duration_seconds")
	if err != nil {
		return nil, err
	}

	progress, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "delay_grid_progress_ratio",
		Help: "Fraction of the current delay grid that has been computed.",
	}), "delay_grid_progress_ratio")
	if err != nil {
		return nil, err
	}

	workers, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "delay_grid_workers",
		Help: "Size of the worker pool for the current delay-grid run.",
	}), "delay_grid_workers")
	if err != nil {
		return nil, err
	}

	return &DelayCollector{
		gatherer:       gatherer,
		PointsComputed: points,
		GridDuration:   duration,
		GridProgress:   progress,
		GridWorkers:    workers,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *DelayCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveGridDuration records the wall-clock time of one grid run.
func (c *DelayCollector) ObserveGridDuration(d time.Duration) {
	if c == nil || c.GridDuration == nil {
		return
	}
	c.GridDuration.Observe(d.Seconds())
}

// AddPointsComputed counts finished grid points.
func (c *DelayCollector) AddPointsComputed(n int) {
	if c == nil || c.PointsComputed == nil {
		return
	}
	c.PointsComputed.Add(float64(n))
}

// SetProgress updates the progress ratio gauge.
func (c *DelayCollector) SetProgress(done, total int) {
	if c == nil || c.GridProgress == nil || total <= 0 {
		return
	}
	c.GridProgress.Set(float64(done) / float64(total))
}

// SetWorkers records the worker pool size of the current run.
func (c *DelayCollector) SetWorkers(n int) {
	if c == nil || c.GridWorkers == nil {
		return
	}
	c.GridWorkers.Set(float64(n))
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
