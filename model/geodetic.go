package model

// Geodetic is a position on the WGS84 ellipsoid: latitude and longitude in
// degrees, height in metres above the ellipsoid.
type Geodetic struct {
	LatDeg  float64
	LonDeg  float64
	HeightM float64
}

// LookKind discriminates the two ways a look vector can be specified.
type LookKind int

const (
	// LookZenith means "straight up from the local horizontal frame at the
	// receiver", with a fixed range.
	LookZenith LookKind = iota
	// LookExplicit carries an explicit receiver-to-satellite vector in ECEF.
	LookExplicit
	// LookSatellite carries a satellite ECEF position; the look vector is
	// derived per receiver as satellite minus receiver.
	LookSatellite
)

// DefaultZenithRangeM is the integration range used for zenith look vectors
// when none is given.
const DefaultZenithRangeM = 15000.0

// ECEF is an Earth-centred Earth-fixed position or direction in metres.
type ECEF struct {
	X, Y, Z float64
}

// LookSpec is a tagged look-vector variant. Zenith specs carry only a range;
// explicit specs carry the ECEF vector from receiver to satellite, whose norm
// is the range; satellite specs carry the satellite's ECEF position.
type LookSpec struct {
	Kind   LookKind
	RangeM float64 // used when Kind == LookZenith
	Vector ECEF    // vector (LookExplicit) or satellite position (LookSatellite)
}

// Zenith returns a zenith look spec with the given range, or the default
// range when rangeM <= 0.
func Zenith(rangeM float64) LookSpec {
	if rangeM <= 0 {
		rangeM = DefaultZenithRangeM
	}
	return LookSpec{Kind: LookZenith, RangeM: rangeM}
}

// Explicit returns a look spec for an explicit receiver-to-satellite vector.
func Explicit(v ECEF) LookSpec {
	return LookSpec{Kind: LookExplicit, Vector: v}
}

// Satellite returns a look spec that points each receiver at the given
// satellite ECEF position.
func Satellite(pos ECEF) LookSpec {
	return LookSpec{Kind: LookSatellite, Vector: pos}
}
