// Package epoch maps acquisition times onto the fixed analysis cadence that
// weather archives publish at (e.g. 00/06/12/18 UTC for ECMWF analyses).
package epoch

import "time"

// Round returns t rounded to the nearest multiple of cadence. Ties round
// down. A non-positive cadence returns t unchanged.
func Round(t time.Time, cadence time.Duration) time.Time {
	if cadence <= 0 {
		return t
	}
	down := t.Truncate(cadence)
	up := down.Add(cadence)

	if up.Sub(t) < t.Sub(down) {
		return up
	}
	return down
}

// Surrounding returns the analysis epochs immediately before and after t.
// When t falls exactly on an epoch, both values equal t.
func Surrounding(t time.Time, cadence time.Duration) (before, after time.Time) {
	if cadence <= 0 {
		return t, t
	}
	before = t.Truncate(cadence)
	if before.Equal(t) {
		return t, t
	}
	return before, before.Add(cadence)
}
