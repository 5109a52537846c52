package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/insarlabs/tropodelay/core"
	"github.com/insarlabs/tropodelay/epoch"
	"github.com/insarlabs/tropodelay/internal/logging"
	"github.com/insarlabs/tropodelay/internal/observability"
	"github.com/insarlabs/tropodelay/model"
	"github.com/insarlabs/tropodelay/weather"
)

func main() {
	profilePath := flag.String("profile", "", "path to a JSON model-level column profile")
	modelClass := flag.String("model", "ea", "weather model class identifier (ea, ei)")
	fetch := flag.Bool("fetch", false, "fetch the profile from the model's archive instead of reading -profile")
	acqTime := flag.String("time", "", "acquisition time (RFC3339); rounded to the model's analysis cadence")

	latMin := flag.Float64("lat-min", 0, "bounding box: minimum latitude (deg)")
	latMax := flag.Float64("lat-max", 0, "bounding box: maximum latitude (deg)")
	latRes := flag.Float64("lat-res", 0.1, "latitude resolution (deg)")
	lonMin := flag.Float64("lon-min", 0, "bounding box: minimum longitude (deg)")
	lonMax := flag.Float64("lon-max", 0, "bounding box: maximum longitude (deg)")
	lonRes := flag.Float64("lon-res", 0.1, "longitude resolution (deg)")
	htMin := flag.Float64("ht-min", 0, "minimum height (m)")
	htMax := flag.Float64("ht-max", 500, "maximum height (m)")
	htRes := flag.Float64("ht-res", 100, "height resolution (m)")

	step := flag.Float64("step", core.DefaultStepM, "ray sampling step (m)")
	workers := flag.Int("workers", 0, "worker pool size; 0 means one per CPU, 1 forces sequential")
	chunk := flag.Int("chunk", core.DefaultChunkSize, "points per dispatched work item")

	tle1 := flag.String("tle1", "", "first TLE line; with -tle2, look vectors point at the propagated satellite")
	tle2 := flag.String("tle2", "", "second TLE line")

	outPath := flag.String("out", "", "output path for the delay grid JSON (default stdout)")
	metricsAddr := flag.String("metrics-addr", "", "HTTP address for Prometheus /metrics (empty disables)")

	flag.Parse()

	log := logging.NewFromEnv()
	ctx, log := logging.WithJobLogger(context.Background(), log)

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	collector, err := observability.NewDelayCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}
	if *metricsAddr != "" {
		serveMetrics(*metricsAddr, collector, log)
	}

	registry := weather.NewRegistry()
	mc, err := registry.Resolve(*modelClass)
	if err != nil {
		log.Error(ctx, "unknown weather model class", logging.String("error", err.Error()))
		os.Exit(1)
	}

	area := model.AreaSpec{
		LatMin: *latMin, LatMax: *latMax, LatRes: *latRes,
		LonMin: *lonMin, LonMax: *lonMax, LonRes: *lonRes,
		HtMin: *htMin, HtMax: *htMax, HtRes: *htRes,
	}

	profile, err := loadProfile(ctx, mc, area, *profilePath, *fetch, *acqTime, log)
	if err != nil {
		log.Error(ctx, "failed to load weather profile", logging.String("error", err.Error()))
		os.Exit(1)
	}
	if profile.Column.Levels != mc.Levels {
		log.Error(ctx, "profile level count does not match model class",
			logging.Int("profile_levels", int(profile.Column.Levels)),
			logging.Int("class_levels", int(mc.Levels)),
		)
		os.Exit(1)
	}

	field, err := weather.NewColumnField(profile.Column, model.DefaultRefractivity)
	if err != nil {
		log.Error(ctx, "failed to build weather field", logging.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info(ctx, "weather field ready",
		logging.String("class", mc.Class),
		logging.Int("levels", int(mc.Levels)),
		logging.Float64("bottom_m", field.Bottom()),
		logging.Float64("top_m", field.Top()),
	)

	opts := []core.GridOption{
		core.WithStep(*step),
		core.WithChunkSize(*chunk),
		core.WithMetricsRecorder(collector),
		core.WithProgress(progressLogger(ctx, log)),
	}
	if *workers > 0 {
		opts = append(opts, core.WithWorkers(*workers))
	}

	tracer := otel.Tracer("tropodelay")
	ctx, span := tracer.Start(ctx, "delay_grid")
	span.SetAttributes(
		attribute.String("model.class", mc.Class),
		attribute.Float64("step_m", *step),
	)

	grid, err := computeGrid(ctx, field, area, *tle1, *tle2, opts)
	span.End()
	if err != nil {
		log.Error(ctx, "delay grid computation failed", logging.String("error", err.Error()))
		os.Exit(1)
	}

	if err := writeGrid(*outPath, grid); err != nil {
		log.Error(ctx, "failed to write output", logging.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info(ctx, "delay grid complete", logging.Int("points", grid.NumPoints()))
}

// computeGrid runs the zenith area computation, or a satellite-look
// computation over the same grid points when a TLE is supplied.
func computeGrid(ctx context.Context, field core.WeatherField, area model.AreaSpec, tle1, tle2 string, opts []core.GridOption) (*model.DelayGrid, error) {
	if tle1 == "" || tle2 == "" {
		return core.DelayOverArea(ctx, field, area, opts...)
	}

	points, err := core.GridPoints(area)
	if err != nil {
		return nil, err
	}
	look := core.LookFromTLE(tle1, tle2, time.Now().UTC())
	values, err := core.DelayFromGrid(ctx, field, points, look, opts...)
	if err != nil {
		return nil, err
	}
	return &model.DelayGrid{
		Heights: area.Heights(),
		Lats:    area.Lats(),
		Lons:    area.Lons(),
		Values:  values,
	}, nil
}

// loadProfile reads the column profile from disk, or retrieves it through
// the model class's fetcher when -fetch is set. Requesting fetch for a class
// with no fetcher bound fails fast rather than degrading.
func loadProfile(ctx context.Context, mc *weather.ModelClass, area model.AreaSpec, path string, fetch bool, acqTime string, log logging.Logger) (*weather.Profile, error) {
	if fetch {
		at := time.Now().UTC()
		if acqTime != "" {
			parsed, err := time.Parse(time.RFC3339, acqTime)
			if err != nil {
				return nil, fmt.Errorf("parse -time: %w", err)
			}
			at = parsed
		}
		rounded := epoch.Round(at, mc.Cadence)
		log.Info(ctx, "fetching weather profile",
			logging.String("class", mc.Class),
			logging.String("analysis_time", rounded.Format(time.RFC3339)),
		)
		return mc.Fetch(ctx, area, rounded)
	}

	if path == "" {
		return nil, fmt.Errorf("either -profile or -fetch is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return weather.LoadProfile(f)
}

// progressLogger logs at every 10% of grid completion.
func progressLogger(ctx context.Context, log logging.Logger) func(done, total int) {
	lastDecile := -1
	return func(done, total int) {
		if total <= 0 {
			return
		}
		decile := done * 10 / total
		if decile > lastDecile {
			lastDecile = decile
			log.Info(ctx, "grid progress", logging.Int("done", done), logging.Int("total", total))
		}
	}
}

func serveMetrics(addr string, collector *observability.DelayCollector, log logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
}

func writeGrid(path string, grid *model.DelayGrid) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(grid)
}
