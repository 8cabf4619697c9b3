package domain

import (
	"errors"
	"math"
)

// ZoneWidthDegrees is the arc width of each of the ten longitude zones.
const ZoneWidthDegrees = 36.0

// DefaultZone9EastBoundary is the default east (exclusive) boundary of zone 9.
const DefaultZone9EastBoundary = 116.7

var (
	// ErrNotFinite reports a NaN or infinite longitude at an input boundary.
	ErrNotFinite = errors.New("longitude must be finite")

	// ErrNoPoints reports a covering-interval query over an empty point set.
	ErrNoPoints = errors.New("no longitude points")
)

// ValidateLongitude rejects NaN and infinite values before they reach
// interval math. Any finite value is acceptable; normalization handles range.
func ValidateLongitude(lon float64) error {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return ErrNotFinite
	}
	return nil
}

// NormalizeEdge maps lon into the closed range [-180, 180], keeping +180
// distinct from -180. Interval boundaries need the closed form: an arc ending
// exactly at +180 is not the same as one starting at -180.
func NormalizeEdge(lon float64) float64 {
	m := math.Mod(lon+180.0, 360.0)
	if m < 0 {
		m += 360.0
	}
	x := m - 180.0
	// Only positive inputs equivalent to +180 keep the +180 side of the seam.
	if x == -180.0 && lon > 0 {
		return 180.0
	}
	return x
}

// NormalizePoint maps lon into the half-open range [-180, 180); +180 folds
// into -180. Single coordinates use the point form.
func NormalizePoint(lon float64) float64 {
	x := NormalizeEdge(lon)
	if x == 180.0 {
		return -180.0
	}
	return x
}

// To360 maps lon into [0, 360).
func To360(lon float64) float64 {
	m := math.Mod(lon, 360.0)
	if m < 0 {
		m += 360.0
	}
	return m
}

// From360Edge converts a [0, 360) longitude back to the closed [-180, 180]
// edge form, keeping 180 as +180.
func From360Edge(lon360 float64) float64 {
	if lon360 > 180.0 {
		return lon360 - 360.0
	}
	return lon360
}
