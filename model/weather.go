package model

// RefractivityConstants are the k1/k2/k3 coefficients relating pressure,
// temperature, and water-vapour partial pressure to refractivity. Units:
// k1, k2 in K/Pa; k3 in K²/Pa.
type RefractivityConstants struct {
	K1 float64
	K2 float64
	K3 float64
}

// DefaultRefractivity holds the coefficients used for ECMWF-derived models.
var DefaultRefractivity = RefractivityConstants{
	K1: 0.776,
	K2: 0.233,
	K3: 3.75e3,
}

// HumidityKind says which humidity variable a weather model supplies.
type HumidityKind int

const (
	// HumiditySpecific is specific humidity q (kg/kg).
	HumiditySpecific HumidityKind = iota
	// HumidityRelative is relative humidity (%).
	HumidityRelative
)

// LevelCount enumerates the hybrid-level schemes with known A/B coefficient
// tables. Selection is always by this explicit enum, never by inspecting
// slice lengths.
type LevelCount int

const (
	Levels60  LevelCount = 60
	Levels137 LevelCount = 137
)

// HybridLevelProfile is one grid column of a model-level weather file:
// geopotential at the top level, log surface pressure, and per-level
// temperature and humidity ordered from model top (level 1) to the surface
// (level N).
type HybridLevelProfile struct {
	Levels   LevelCount
	Humidity HumidityKind

	ZTop float64   // geopotential at the top level (m²/s²)
	LnSP float64   // log of surface pressure (Pa)
	T    []float64 // temperature per level (K)
	Q    []float64 // humidity per level (kg/kg or %)
}
