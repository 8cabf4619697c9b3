package services

import (
	"earth-zone-service/internal/domain"
	"fmt"
	"slices"
)

// MinimalCoveringInterval computes the shortest arc on the circle containing
// every point in the multiset.
//
// Points are mapped to [0, 360) and sorted; the largest circular gap between
// consecutive points (wrapping last to first) is found, and the covering arc
// is its complement. A single point degenerates to west == east. Returns
// domain.ErrNoPoints for an empty input.
func MinimalCoveringInterval(points []float64) (domain.Range, error) {
	if len(points) == 0 {
		return domain.Range{}, domain.ErrNoPoints
	}

	pts := make([]float64, 0, len(points))
	for _, p := range points {
		if err := domain.ValidateLongitude(p); err != nil {
			return domain.Range{}, fmt.Errorf("covering interval: %w", err)
		}
		pts = append(pts, domain.To360(p))
	}
	slices.Sort(pts)

	if len(pts) == 1 {
		w := domain.From360Edge(pts[0])
		return domain.Range{West: w, East: w}, nil
	}

	// Strict > keeps the first maximal gap in sorted order, which makes the
	// equal-gap tie-break deterministic.
	maxGap := -1.0
	maxI := 0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		gap := domain.To360(b - a)
		if gap > maxGap {
			maxGap = gap
			maxI = i
		}
	}

	// The covering arc runs eastward from the point after the gap around to
	// the point before it.
	west := domain.From360Edge(pts[(maxI+1)%len(pts)])
	east := domain.From360Edge(pts[maxI])

	return domain.Range{West: west, East: east}, nil
}
