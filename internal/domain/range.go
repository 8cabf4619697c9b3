package domain

// Segment is a non-wrapping longitude arc in edge form with A < B
// (A == B for the degenerate case).
type Segment struct {
	A float64
	B float64
}

// Overlaps reports open-interval overlap between two non-wrapping segments.
// Touching endpoints do not count: zone arcs are half-open.
func (s Segment) Overlaps(o Segment) bool {
	return s.A < o.B && o.A < s.B
}

// Range is a possibly-wrapping west/east longitude arc in edge form.
// West > East means the arc crosses the ±180 seam.
type Range struct {
	West float64
	East float64
}

// NewRange builds a Range with both endpoints normalized to edge form.
func NewRange(west, east float64) Range {
	return Range{West: NormalizeEdge(west), East: NormalizeEdge(east)}
}

// Degenerate reports a zero-width range (west == east): either a true
// single-meridian extent or an upstream data quirk. Not an error.
func (r Range) Degenerate() bool { return r.West == r.East }

// Wraps reports whether the arc crosses the ±180 seam.
func (r Range) Wraps() bool { return r.West > r.East }

// Width returns the eastward arc length of the range in degrees.
// The full-circle range (-180, 180) reports 360, not 0.
func (r Range) Width() float64 {
	if r.Degenerate() {
		return 0
	}
	if r.West == -180.0 && r.East == 180.0 {
		return 360.0
	}
	return To360(r.East - r.West)
}

// Split decomposes the range into one or two non-wrapping segments.
// A wrapping range becomes [west, 180) and [-180, east); re-merged eastward
// the segments reconstruct the original arc. A degenerate range stays a
// single zero-width segment, never two.
func (r Range) Split() []Segment {
	w := NormalizeEdge(r.West)
	e := NormalizeEdge(r.East)
	if w <= e {
		return []Segment{{A: w, B: e}}
	}
	return []Segment{{A: w, B: 180.0}, {A: -180.0, B: e}}
}

// Intersects reports whether two possibly-wrapping ranges share any arc.
func (r Range) Intersects(o Range) bool {
	for _, a := range r.Split() {
		for _, b := range o.Split() {
			if a.Overlaps(b) {
				return true
			}
		}
	}
	return false
}
