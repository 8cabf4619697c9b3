package domain

// Represents one of the ten numbered 36°-wide arcs partitioning the full
// longitude circle. The arc is half-open [West, East) measured eastward;
// West > East numerically means the zone crosses the ±180 seam.
// A ZoneInterval is immutable computed data and contains no side effects.
type ZoneInterval struct {
	Zone int
	West float64
	East float64
}

// Arc returns the zone's half-open [West, East) extent as a Range.
func (z ZoneInterval) Arc() Range {
	return Range{West: z.West, East: z.East}
}

// Contains reports whether the point-form longitude lies inside the zone's
// half-open arc. The west edge is inclusive, the east edge exclusive.
func (z ZoneInterval) Contains(lon float64) bool {
	return To360(NormalizePoint(lon)-z.West) < ZoneWidthDegrees
}
