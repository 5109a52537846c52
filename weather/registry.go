package weather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/insarlabs/tropodelay/core"
	"github.com/insarlabs/tropodelay/model"
)

// Fetcher retrieves a model-level profile for an area and analysis time from
// a weather archive. Network retrieval is owned by the fetcher; this core
// only resolves whether one is configured.
type Fetcher interface {
	FetchProfile(ctx context.Context, area model.AreaSpec, at time.Time) (*Profile, error)
}

// ModelClass describes one known weather-model family: its short class
// identifier as used by the archive ("ea", "ei"), the dataset it maps to,
// the hybrid-level scheme, and the cadence at which analyses are published.
type ModelClass struct {
	Class   string
	Dataset string
	Levels  model.LevelCount
	Cadence time.Duration

	fetcher Fetcher
}

// Fetch retrieves a profile through the class's configured fetcher. A class
// with no fetcher bound fails fast: the fetch feature was requested but is
// unavailable in this build/configuration.
func (mc *ModelClass) Fetch(ctx context.Context, area model.AreaSpec, at time.Time) (*Profile, error) {
	if mc.fetcher == nil {
		return nil, fmt.Errorf("%w: no fetcher configured for weather model class %q", core.ErrConfig, mc.Class)
	}
	return mc.fetcher.FetchProfile(ctx, area, at)
}

// Registry is a thread-safe store of weather-model classes.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*ModelClass
}

// NewRegistry constructs a registry pre-seeded with the ECMWF classes this
// engine understands, with no fetchers bound.
func NewRegistry() *Registry {
	r := &Registry{classes: make(map[string]*ModelClass)}
	// Seeding cannot collide in an empty registry.
	_ = r.Register(&ModelClass{Class: "ei", Dataset: "interim", Levels: model.Levels60, Cadence: 6 * time.Hour})
	_ = r.Register(&ModelClass{Class: "ea", Dataset: "era5", Levels: model.Levels137, Cadence: 6 * time.Hour})
	return r
}

// Register adds a model class. It returns an error if the class identifier
// is already taken.
func (r *Registry) Register(mc *ModelClass) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[mc.Class]; exists {
		return fmt.Errorf("weather model class %q already registered", mc.Class)
	}
	r.classes[mc.Class] = mc
	return nil
}

// BindFetcher attaches a fetcher to an already-registered class.
func (r *Registry) BindFetcher(class string, f Fetcher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mc, ok := r.classes[class]
	if !ok {
		return fmt.Errorf("%w: unknown weather model class %q", core.ErrConfig, class)
	}
	mc.fetcher = f
	return nil
}

// Resolve returns the model class for the given identifier. An unknown class
// is a configuration error, raised before any computation starts.
func (r *Registry) Resolve(class string) (*ModelClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mc, ok := r.classes[class]
	if !ok {
		return nil, fmt.Errorf("%w: unknown weather model class %q", core.ErrConfig, class)
	}
	return mc, nil
}

// Classes returns a snapshot of the registered class identifiers.
func (r *Registry) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.classes))
	for class := range r.classes {
		out = append(out, class)
	}
	return out
}
