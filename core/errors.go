package core

import "errors"

// Error kinds for the delay engine. Specific failures wrap one of these so
// callers can classify with errors.Is without matching message text.
var (
	// ErrConfig covers structural setup problems: unsupported level counts,
	// zero-size bounding boxes, unknown weather-model classes. Never retried.
	ErrConfig = errors.New("configuration error")

	// ErrDataUnavailable means the weather field could not answer a query.
	// It aborts the whole run; a partially-filled delay grid is worse than a
	// clear failure.
	ErrDataUnavailable = errors.New("weather data unavailable")

	// ErrDegenerate covers geometry the integrator cannot handle: a ray
	// shorter than the sampling step, or a zero-length look vector.
	ErrDegenerate = errors.New("degenerate geometry")
)
