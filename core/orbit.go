package core

import (
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/insarlabs/tropodelay/model"
)

// SatellitePositionAt propagates a two-line element set to the given UTC
// time and returns the satellite's ECEF position in metres.
// go-satellite works in kilometres; everything else here is metres.
func SatellitePositionAt(tle1, tle2 string, at time.Time) Vec3 {
	sat := satellite.TLEToSat(tle1, tle2, satellite.GravityWGS72)

	year, month, day := at.Date()
	hour, min, sec := at.Clock()

	posECI, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	posECEF := satellite.ECIToECEF(posECI, gmst)

	const kmToM = 1000.0
	return Vec3{
		X: posECEF.X * kmToM,
		Y: posECEF.Y * kmToM,
		Z: posECEF.Z * kmToM,
	}
}

// LookFromTLE builds a satellite look spec for an acquisition time: every
// receiver's look vector will point at the propagated satellite position.
func LookFromTLE(tle1, tle2 string, at time.Time) model.LookSpec {
	pos := SatellitePositionAt(tle1, tle2, at)
	return model.Satellite(model.ECEF{X: pos.X, Y: pos.Y, Z: pos.Z})
}
