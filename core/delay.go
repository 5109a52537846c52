package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/insarlabs/tropodelay/model"
)

// WeatherField is the capability set the integrator needs from a weather
// model. Implementations answer queries for arrays of ECEF sample points,
// returning values aligned to the input and NaN for samples outside the
// model domain. A lookup that cannot be answered at all returns an error,
// which aborts the whole run.
type WeatherField interface {
	Temperature(pts []Vec3) ([]float64, error)
	Pressure(pts []Vec3) ([]float64, error)
	RelativeHumidity(pts []Vec3) ([]float64, error)
	Refractivity() model.RefractivityConstants
}

// Saturation vapor pressure over water and ice (Buck), in hPa. Input in
// kelvin. The blend between the two uses a quadratic weight on
// [250.16 K, 273.16 K]: pure ice below, pure water above.
const (
	svpTriplePointK = 273.16
	svpIceBoundK    = 250.16
)

func svpWater(tempK float64) float64 {
	return 6.1121 * math.Exp(17.502*(tempK-svpTriplePointK)/(240.97+tempK-svpTriplePointK))
}

func svpIce(tempK float64) float64 {
	return 6.1121 * math.Exp(22.587*(tempK-svpTriplePointK)/(273.86+tempK-svpTriplePointK))
}

// SaturationVaporPressure returns the blended saturation vapor pressure in
// hPa at the given temperature in kelvin.
func SaturationVaporPressure(tempK float64) float64 {
	switch {
	case tempK >= svpTriplePointK:
		return svpWater(tempK)
	case tempK <= svpIceBoundK:
		return svpIce(tempK)
	default:
		w := (tempK - svpIceBoundK) / (svpTriplePointK - svpIceBoundK)
		return svpIce(tempK) + (svpWater(tempK)-svpIce(tempK))*w*w
	}
}

// hydrostaticIntegrand fills dst with k1*P/T per sample, masking NaN to zero
// so an out-of-domain sample contributes nothing rather than poisoning the
// whole integral.
func hydrostaticIntegrand(dst, temp, press []float64, k model.RefractivityConstants) {
	for i := range dst {
		v := k.K1 * press[i] / temp[i]
		if math.IsNaN(v) {
			v = 0
		}
		dst[i] = v
	}
}

// wetIntegrand fills dst with k2*e/T + k3*e/T² per sample, where e is the
// partial pressure of water vapor in Pa derived from relative humidity.
func wetIntegrand(dst, temp, rh []float64, k model.RefractivityConstants) {
	for i := range dst {
		// svp is in hPa; scale by 100 to Pa.
		e := rh[i] / 100 * SaturationVaporPressure(temp[i]) * 100
		v := k.K2*e/temp[i] + k.K3*e/(temp[i]*temp[i])
		if math.IsNaN(v) {
			v = 0
		}
		dst[i] = v
	}
}

func sampleLook(receiver model.Geodetic, look model.LookSpec, step float64) (Ray, error) {
	dir, rng, err := ResolveLook(look, receiver)
	if err != nil {
		return Ray{}, err
	}
	return SampleRay(ECEFFromGeodetic(receiver), dir, rng, step)
}

// HydrostaticDelay integrates the dry-air delay along the look vector from
// the receiver, in metres of equivalent path delay.
func HydrostaticDelay(field WeatherField, receiver model.Geodetic, look model.LookSpec, step float64) (float64, error) {
	ray, err := sampleLook(receiver, look, step)
	if err != nil {
		return 0, err
	}
	return hydrostaticOverRay(field, ray)
}

// WetDelay integrates the water-vapor delay along the look vector from the
// receiver, in metres of equivalent path delay.
func WetDelay(field WeatherField, receiver model.Geodetic, look model.LookSpec, step float64) (float64, error) {
	ray, err := sampleLook(receiver, look, step)
	if err != nil {
		return 0, err
	}
	return wetOverRay(field, ray)
}

// DelayAlongRay computes both delay components over one shared sampling of
// the ray, so the two are comparable along the same path.
func DelayAlongRay(field WeatherField, receiver model.Geodetic, look model.LookSpec, step float64) (model.DelayPair, error) {
	ray, err := sampleLook(receiver, look, step)
	if err != nil {
		return model.DelayPair{}, err
	}
	hydro, err := hydrostaticOverRay(field, ray)
	if err != nil {
		return model.DelayPair{}, err
	}
	wet, err := wetOverRay(field, ray)
	if err != nil {
		return model.DelayPair{}, err
	}
	return model.DelayPair{Hydrostatic: hydro, Wet: wet}, nil
}

func hydrostaticOverRay(field WeatherField, ray Ray) (float64, error) {
	temp, err := field.Temperature(ray.Points)
	if err != nil {
		return 0, fmt.Errorf("%w: temperature lookup: %v", ErrDataUnavailable, err)
	}
	press, err := field.Pressure(ray.Points)
	if err != nil {
		return 0, fmt.Errorf("%w: pressure lookup: %v", ErrDataUnavailable, err)
	}

	f := make([]float64, len(ray.T))
	hydrostaticIntegrand(f, temp, press, field.Refractivity())
	return integrate.Trapezoidal(ray.T, f), nil
}

func wetOverRay(field WeatherField, ray Ray) (float64, error) {
	temp, err := field.Temperature(ray.Points)
	if err != nil {
		return 0, fmt.Errorf("%w: temperature lookup: %v", ErrDataUnavailable, err)
	}
	rh, err := field.RelativeHumidity(ray.Points)
	if err != nil {
		return 0, fmt.Errorf("%w: humidity lookup: %v", ErrDataUnavailable, err)
	}

	f := make([]float64, len(ray.T))
	wetIntegrand(f, temp, rh, field.Refractivity())
	return integrate.Trapezoidal(ray.T, f), nil
}
