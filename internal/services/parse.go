package services

import (
	"earth-zone-service/internal/domain"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrNotLongitudeText reports input that does not match the longitude
// literal pattern. Callers typically fall through to geocoding.
var ErrNotLongitudeText = errors.New("not a longitude literal")

var lonTextPattern = regexp.MustCompile(
	`^\s*([-+]?\d+(?:\.\d+)?)\s*(?:[,\s]\s*([-+]?\d+(?:\.\d+)?))?\s*$`,
)

// ParseLongitudeText parses free-text longitude input: "116.7",
// "116.7,39.9" or "116.7 39.9". The second number, when present, is a
// latitude and is discarded. Values outside [-180, 180] wrap via point-form
// normalization.
func ParseLongitudeText(s string) (float64, error) {
	m := lonTextPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrNotLongitudeText
	}

	lon, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, ErrNotLongitudeText
	}
	if err := domain.ValidateLongitude(lon); err != nil {
		return 0, fmt.Errorf("parse longitude: %w", err)
	}

	if lon < -180 || lon > 180 {
		lon = domain.NormalizePoint(lon)
	}
	return lon, nil
}
