package weather

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/insarlabs/tropodelay/core"
	"github.com/insarlabs/tropodelay/model"
)

// Profile is a loaded model-level column plus the lat/lon axes of the file
// it came from. This package consumes arrays a retrieval layer has already
// extracted; it does not parse weather-file formats.
type Profile struct {
	Column *model.HybridLevelProfile
	Lats   []float64
	Lons   []float64
}

// internal JSON shape; kept unexported so it can evolve independently of the
// model types.
type profileJSON struct {
	Levels   int       `json:"levels"`
	Humidity string    `json:"humidity"` // "q" | "rh"
	ZTop     float64   `json:"z"`
	LnSP     float64   `json:"lnsp"`
	T        []float64 `json:"t"`
	Q        []float64 `json:"q"`
	Lats     []float64 `json:"lats"`
	Lons     []float64 `json:"lons"`
}

// LoadProfile reads a JSON model-level column from r and validates it
// against the supported hybrid-level schemes. Latitude and longitude axes
// are normalised to ascending order; some archives publish them reversed.
func LoadProfile(r io.Reader) (*Profile, error) {
	var payload profileJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadProfile: decode failed: %w", err)
	}

	var levels model.LevelCount
	switch payload.Levels {
	case 60:
		levels = model.Levels60
	case 137:
		levels = model.Levels137
	default:
		return nil, fmt.Errorf("%w: profile has %d levels, want 60 or 137", core.ErrConfig, payload.Levels)
	}

	var humidity model.HumidityKind
	switch payload.Humidity {
	case "q", "":
		humidity = model.HumiditySpecific
	case "rh":
		humidity = model.HumidityRelative
	default:
		return nil, fmt.Errorf("%w: unknown humidity kind %q", core.ErrConfig, payload.Humidity)
	}

	if len(payload.T) != payload.Levels || len(payload.Q) != payload.Levels {
		return nil, fmt.Errorf("%w: profile arrays have %d/%d entries, want %d",
			core.ErrConfig, len(payload.T), len(payload.Q), payload.Levels)
	}

	return &Profile{
		Column: &model.HybridLevelProfile{
			Levels:   levels,
			Humidity: humidity,
			ZTop:     payload.ZTop,
			LnSP:     payload.LnSP,
			T:        payload.T,
			Q:        payload.Q,
		},
		Lats: ascending(payload.Lats),
		Lons: ascending(payload.Lons),
	}, nil
}

// ascending reverses an axis published in descending order and leaves
// everything else untouched.
func ascending(axis []float64) []float64 {
	if len(axis) >= 2 && axis[0] > axis[1] {
		rev := make([]float64, len(axis))
		for i, v := range axis {
			rev[len(axis)-1-i] = v
		}
		return rev
	}
	return axis
}
