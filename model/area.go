package model

// AreaSpec is a bounding box plus per-axis resolutions describing a regular
// (height, lat, lon) grid of query points. Minima are inclusive, maxima
// exclusive, matching half-open range semantics.
type AreaSpec struct {
	LatMin, LatMax, LatRes float64
	LonMin, LonMax, LonRes float64
	HtMin, HtMax, HtRes    float64
}

// Axis expands [min, max) at the given resolution into explicit values.
// It returns nil when the resolution is not positive.
func Axis(min, max, res float64) []float64 {
	if res <= 0 {
		return nil
	}
	var vals []float64
	for v := min; v < max; v += res {
		vals = append(vals, v)
	}
	return vals
}

// Lats returns the latitude axis values.
func (a AreaSpec) Lats() []float64 { return Axis(a.LatMin, a.LatMax, a.LatRes) }

// Lons returns the longitude axis values.
func (a AreaSpec) Lons() []float64 { return Axis(a.LonMin, a.LonMax, a.LonRes) }

// Heights returns the height axis values.
func (a AreaSpec) Heights() []float64 { return Axis(a.HtMin, a.HtMax, a.HtRes) }
