package core

import (
	"fmt"
	"math"

	"github.com/insarlabs/tropodelay/model"
)

// WGS84 ellipsoid parameters (metres).
const (
	SemiMajorAxisM = 6378137.0
	Flattening     = 1.0 / 298.257223563
)

// Vec3 is an ECEF vector in metres.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// ECEFFromGeodetic converts a geodetic position to ECEF metres using the
// standard ellipsoidal transform.
func ECEFFromGeodetic(pos model.Geodetic) Vec3 {
	lat := pos.LatDeg * math.Pi / 180
	lon := pos.LonDeg * math.Pi / 180

	e2 := Flattening * (2 - Flattening) // eccentricity squared
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)

	// Radius of curvature in the prime vertical.
	n := SemiMajorAxisM / math.Sqrt(1-e2*sinLat*sinLat)

	return Vec3{
		X: (n + pos.HeightM) * cosLat * math.Cos(lon),
		Y: (n + pos.HeightM) * cosLat * math.Sin(lon),
		Z: (n*(1-e2) + pos.HeightM) * sinLat,
	}
}

// GeodeticFromECEF converts an ECEF position in metres back to geodetic
// coordinates using Bowring's closed-form approximation, which is accurate
// to well under a millimetre for near-Earth positions.
func GeodeticFromECEF(pos Vec3) model.Geodetic {
	a := SemiMajorAxisM
	b := a * (1 - Flattening)
	e2 := Flattening * (2 - Flattening)

	h := a*a - b*b
	p := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y)
	t := math.Atan2(pos.Z*a, p*b)
	sinT := math.Sin(t)
	cosT := math.Cos(t)

	lat := math.Atan2(pos.Z+h/b*sinT*sinT*sinT, p-h/a*cosT*cosT*cosT)
	lon := math.Atan2(pos.Y, pos.X)
	n := a / math.Sqrt(1-e2*math.Sin(lat)*math.Sin(lat))
	hei := p/math.Cos(lat) - n

	return model.Geodetic{
		LatDeg:  lat * 180 / math.Pi,
		LonDeg:  lon * 180 / math.Pi,
		HeightM: hei,
	}
}

// ZenithDirection returns the local "up" unit vector at the receiver.
//
// This is the spherical normal (cos lat cos lon, cos lat sin lon, sin lat),
// not the ellipsoidal normal used by ECEFFromGeodetic. The angular
// difference between the two stays below 0.2 degrees.
func ZenithDirection(pos model.Geodetic) Vec3 {
	lat := pos.LatDeg * math.Pi / 180
	lon := pos.LonDeg * math.Pi / 180
	return Vec3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// LookBetween returns the unit direction and range from the receiver to the
// satellite, both in ECEF metres. Coincident positions are rejected.
func LookBetween(receiver, satellite Vec3) (Vec3, float64, error) {
	vec := satellite.Sub(receiver)
	rng := vec.Norm()
	if rng == 0 {
		return Vec3{}, 0, fmt.Errorf("%w: receiver and satellite coincide", ErrDegenerate)
	}
	return vec.Scale(1 / rng), rng, nil
}

// ResolveLook turns a look spec into a concrete unit direction and range for
// the given receiver. Zenith specs derive their direction from the receiver's
// own latitude and longitude; explicit specs are normalised.
func ResolveLook(spec model.LookSpec, receiver model.Geodetic) (Vec3, float64, error) {
	switch spec.Kind {
	case model.LookZenith:
		rng := spec.RangeM
		if rng <= 0 {
			rng = model.DefaultZenithRangeM
		}
		return ZenithDirection(receiver), rng, nil
	case model.LookExplicit:
		vec := Vec3{X: spec.Vector.X, Y: spec.Vector.Y, Z: spec.Vector.Z}
		rng := vec.Norm()
		if rng == 0 {
			return Vec3{}, 0, fmt.Errorf("%w: zero-length look vector", ErrDegenerate)
		}
		return vec.Scale(1 / rng), rng, nil
	case model.LookSatellite:
		sat := Vec3{X: spec.Vector.X, Y: spec.Vector.Y, Z: spec.Vector.Z}
		return LookBetween(ECEFFromGeodetic(receiver), sat)
	default:
		return Vec3{}, 0, fmt.Errorf("%w: unknown look kind %d", ErrConfig, spec.Kind)
	}
}
