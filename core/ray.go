package core

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultStepM is the sampling step along a ray when the caller does not
// choose one. It is always threaded through as an explicit parameter.
const DefaultStepM = 15.0

// Ray is a fixed-step sampling of the segment from an origin along a unit
// direction: T[i] is the distance along the ray and Points[i] the ECEF
// position origin + dir*T[i].
type Ray struct {
	T      []float64
	Points []Vec3
}

// SampleRay produces floor(rng/step) samples spanning [0, rng]. Quadrature
// needs at least two samples, so rays shorter than twice the step are
// rejected as degenerate rather than silently yielding an empty or
// single-point integral.
func SampleRay(origin, unitDir Vec3, rng, step float64) (Ray, error) {
	if step <= 0 {
		return Ray{}, fmt.Errorf("%w: sampling step %g must be positive", ErrConfig, step)
	}
	n := int(rng / step)
	if n < 2 {
		return Ray{}, fmt.Errorf("%w: range %g m yields %d samples at step %g m, need at least 2",
			ErrDegenerate, rng, n, step)
	}

	t := make([]float64, n)
	floats.Span(t, 0, rng)

	pts := make([]Vec3, n)
	for i, ti := range t {
		pts[i] = origin.Add(unitDir.Scale(ti))
	}
	return Ray{T: t, Points: pts}, nil
}
