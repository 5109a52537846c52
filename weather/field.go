// Package weather provides the weather-field collaborators consumed by the
// delay integrator: field implementations backed by converted model-level
// profiles, a registry of known weather-model classes, and the pluggable
// archive fetcher surface.
package weather

import (
	"fmt"
	"math"
	"sort"

	"github.com/insarlabs/tropodelay/core"
	"github.com/insarlabs/tropodelay/model"
)

// ConstantField answers every query with fixed values. It exists for tests
// and for isolating the integrator from interpolation effects.
type ConstantField struct {
	TempK     float64
	PressPa   float64
	RelHumPct float64
	Constants model.RefractivityConstants
}

func (f *ConstantField) Temperature(pts []core.Vec3) ([]float64, error) {
	return fill(len(pts), f.TempK), nil
}

func (f *ConstantField) Pressure(pts []core.Vec3) ([]float64, error) {
	return fill(len(pts), f.PressPa), nil
}

func (f *ConstantField) RelativeHumidity(pts []core.Vec3) ([]float64, error) {
	return fill(len(pts), f.RelHumPct), nil
}

func (f *ConstantField) Refractivity() model.RefractivityConstants {
	return f.Constants
}

func fill(n int, v float64) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = v
	}
	return vals
}

// ColumnField is a weather field backed by one converted model-level column:
// per-level physical heights with temperature, pressure, and relative
// humidity, interpolated linearly in height. Samples outside the column's
// vertical extent answer NaN, which the integrator masks to zero.
type ColumnField struct {
	constants model.RefractivityConstants

	// ascending in height
	heights []float64
	temp    []float64
	press   []float64
	relHum  []float64
}

// NewColumnField converts a hybrid-level profile to physical coordinates and
// builds a field over the resulting column. Profiles carrying specific
// humidity have it converted to relative humidity per level.
func NewColumnField(p *model.HybridLevelProfile, k model.RefractivityConstants) (*ColumnField, error) {
	heights, pressures, err := core.LevelHeights(p)
	if err != nil {
		return nil, err
	}

	n := len(heights)
	f := &ColumnField{
		constants: k,
		heights:   make([]float64, n),
		temp:      make([]float64, n),
		press:     make([]float64, n),
		relHum:    make([]float64, n),
	}

	// LevelHeights orders top-first; store ascending for interpolation.
	for i := 0; i < n; i++ {
		j := n - 1 - i
		f.heights[i] = heights[j]
		f.temp[i] = p.T[j]
		f.press[i] = pressures[j]
		switch p.Humidity {
		case model.HumidityRelative:
			f.relHum[i] = p.Q[j]
		case model.HumiditySpecific:
			f.relHum[i] = relHumFromSpecific(p.Q[j], pressures[j], p.T[j])
		default:
			return nil, fmt.Errorf("%w: unknown humidity kind %d", core.ErrConfig, p.Humidity)
		}
	}

	return f, nil
}

// relHumFromSpecific derives relative humidity (%) from specific humidity
// q (kg/kg) at pressure p (Pa) and temperature t (K): the vapor partial
// pressure follows from q = 0.622 e / (p - 0.378 e).
func relHumFromSpecific(q, p, t float64) float64 {
	e := q * p / (0.622 + 0.378*q)
	svp := core.SaturationVaporPressure(t) * 100 // hPa -> Pa
	return e / svp * 100
}

func (f *ColumnField) Temperature(pts []core.Vec3) ([]float64, error) {
	return f.lookup(pts, f.temp), nil
}

func (f *ColumnField) Pressure(pts []core.Vec3) ([]float64, error) {
	return f.lookup(pts, f.press), nil
}

func (f *ColumnField) RelativeHumidity(pts []core.Vec3) ([]float64, error) {
	return f.lookup(pts, f.relHum), nil
}

func (f *ColumnField) Refractivity() model.RefractivityConstants {
	return f.constants
}

// Bottom and Top return the vertical extent of the column in metres.
func (f *ColumnField) Bottom() float64 { return f.heights[0] }
func (f *ColumnField) Top() float64    { return f.heights[len(f.heights)-1] }

func (f *ColumnField) lookup(pts []core.Vec3, vals []float64) []float64 {
	out := make([]float64, len(pts))
	for i, pt := range pts {
		h := core.GeodeticFromECEF(pt).HeightM
		out[i] = interpHeight(f.heights, vals, h)
	}
	return out
}

// interpHeight linearly interpolates vals over ascending heights, returning
// NaN outside the covered range.
func interpHeight(heights, vals []float64, h float64) float64 {
	n := len(heights)
	if n == 0 || h < heights[0] || h > heights[n-1] {
		return math.NaN()
	}
	j := sort.SearchFloat64s(heights, h)
	if j < n && heights[j] == h {
		return vals[j]
	}
	lo, hi := j-1, j
	w := (h - heights[lo]) / (heights[hi] - heights[lo])
	return vals[lo] + (vals[hi]-vals[lo])*w
}
