package services

import (
	"earth-zone-service/internal/domain"
	"fmt"
	"math"
)

// zoneOrigin returns the west edge of zone 9 (point form) for the given
// zone-9 east boundary.
func zoneOrigin(boundary float64) float64 {
	return domain.NormalizePoint(domain.NormalizePoint(boundary) - domain.ZoneWidthDegrees)
}

// BuildZoneIntervals generates the ten zone arcs for the given zone-9 east
// boundary (exclusive). Zone numbers decrease eastward from the boundary and
// wrap from 0 back to 9 on its west side; the returned arcs tile the circle
// exactly once with no gaps or overlaps.
func BuildZoneIntervals(boundary float64) ([]domain.ZoneInterval, error) {
	if err := domain.ValidateLongitude(boundary); err != nil {
		return nil, fmt.Errorf("build zone intervals: boundary: %w", err)
	}

	origin := zoneOrigin(boundary)

	intervals := make([]domain.ZoneInterval, 0, 10)
	for stepsEast := 0; stepsEast < 10; stepsEast++ {
		zone := (9 - stepsEast) % 10
		west := domain.NormalizePoint(origin + float64(stepsEast)*domain.ZoneWidthDegrees)
		east := domain.NormalizePoint(west + domain.ZoneWidthDegrees)
		intervals = append(intervals, domain.ZoneInterval{Zone: zone, West: west, East: east})
	}

	return intervals, nil
}

// PointZone maps a single longitude to the zone whose half-open arc contains
// it. A point exactly on a boundary belongs to the zone for which that
// boundary is the west (inclusive) edge. Agrees with BuildZoneIntervals for
// every point.
func PointZone(lon, boundary float64) (domain.ZoneInterval, error) {
	if err := domain.ValidateLongitude(lon); err != nil {
		return domain.ZoneInterval{}, fmt.Errorf("point zone: %w", err)
	}
	if err := domain.ValidateLongitude(boundary); err != nil {
		return domain.ZoneInterval{}, fmt.Errorf("point zone: boundary: %w", err)
	}

	origin := zoneOrigin(boundary)

	diff := domain.To360(domain.NormalizePoint(lon) - origin)
	stepsEast := int(math.Floor(diff / domain.ZoneWidthDegrees)) // 0..9
	zone := (9 - stepsEast) % 10

	west := domain.NormalizePoint(origin + float64(stepsEast)*domain.ZoneWidthDegrees)
	east := domain.NormalizePoint(west + domain.ZoneWidthDegrees)
	return domain.ZoneInterval{Zone: zone, West: west, East: east}, nil
}
