package domain

import "fmt"

// FormatZoneArc renders a zone arc in half-open interval notation. An arc
// crossing the seam is shown as the union of its two segments.
func FormatZoneArc(r Range, digits int) string {
	segs := r.Split()
	if len(segs) == 1 {
		return fmt.Sprintf("[%.*f°, %.*f°)", digits, segs[0].A, digits, segs[0].B)
	}
	return fmt.Sprintf("crosses ±180°: [%.*f°, %.*f°) ∪ [%.*f°, %.*f°)",
		digits, segs[0].A, digits, segs[0].B,
		digits, segs[1].A, digits, segs[1].B)
}

// FormatBounds renders a place's west/east longitude extent in closed
// notation. Identical endpoints are flagged rather than shown as a normal
// interval: the bounds may be a true single-meridian extent or an incomplete
// result from the upstream service.
func FormatBounds(r Range) string {
	if r.Degenerate() {
		return fmt.Sprintf("[%.6f°, %.6f°] (identical endpoints; possibly degenerate or incomplete bounds)",
			r.West, r.East)
	}
	segs := r.Split()
	if len(segs) == 1 {
		return fmt.Sprintf("[%.6f°, %.6f°]", segs[0].A, segs[0].B)
	}
	return fmt.Sprintf("crosses ±180°: [%.6f°, 180.000000°] ∪ [-180.000000°, %.6f°]",
		segs[0].A, segs[1].B)
}
