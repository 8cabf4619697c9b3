package services

import (
	"earth-zone-service/internal/domain"
	"fmt"
	"slices"
)

// ZonesCoveredByRange returns the zones whose arcs intersect the given
// west/east longitude range, which may cross the ±180 seam. A degenerate
// range (west == east) is treated as-is and can match zero or one zone;
// callers meaning a point query should use PointZone instead.
func ZonesCoveredByRange(west, east, boundary float64) ([]domain.ZoneInterval, error) {
	if err := domain.ValidateLongitude(west); err != nil {
		return nil, fmt.Errorf("zones covered: west: %w", err)
	}
	if err := domain.ValidateLongitude(east); err != nil {
		return nil, fmt.Errorf("zones covered: east: %w", err)
	}

	query := domain.NewRange(west, east)

	intervals, err := BuildZoneIntervals(boundary)
	if err != nil {
		return nil, fmt.Errorf("zones covered: %w", err)
	}

	covered := make([]domain.ZoneInterval, 0, len(intervals))
	for _, zi := range intervals {
		if zi.Arc().Intersects(query) {
			covered = append(covered, zi)
		}
	}

	// Display stability: ascending zone numbers rather than tiling order.
	slices.SortFunc(covered, func(a, b domain.ZoneInterval) int {
		return a.Zone - b.Zone
	})

	return covered, nil
}
