package model

// DelayPair holds the two delay components for one query point, in metres of
// equivalent path delay.
type DelayPair struct {
	Hydrostatic float64 `json:"hydrostatic"`
	Wet         float64 `json:"wet"`
}

// DelayGrid is the result of a gridded delay computation, shaped
// (n_heights, n_lats, n_lons) and stored flat in that order.
type DelayGrid struct {
	Heights []float64   `json:"heights"`
	Lats    []float64   `json:"lats"`
	Lons    []float64   `json:"lons"`
	Values  []DelayPair `json:"values"`
}

// NumPoints returns the number of grid cells.
func (g *DelayGrid) NumPoints() int {
	return len(g.Heights) * len(g.Lats) * len(g.Lons)
}

// FlatIndex maps (height, lat, lon) bin indices to the flat Values index.
func (g *DelayGrid) FlatIndex(h, la, lo int) int {
	return (h*len(g.Lats)+la)*len(g.Lons) + lo
}

// At returns the delay pair at the given (height, lat, lon) bin indices.
func (g *DelayGrid) At(h, la, lo int) DelayPair {
	return g.Values[g.FlatIndex(h, la, lo)]
}

// Point returns the geodetic position of the given grid cell.
func (g *DelayGrid) Point(h, la, lo int) Geodetic {
	return Geodetic{
		LatDeg:  g.Lats[la],
		LonDeg:  g.Lons[lo],
		HeightM: g.Heights[h],
	}
}
