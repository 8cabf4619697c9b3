package domain

import (
	"math"
	"strings"
	"testing"
)

func TestRangeSplitNonWrapping(t *testing.T) {
	segs := NewRange(10, 50).Split()
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].A != 10 || segs[0].B != 50 {
		t.Errorf("segment = %+v, want (10, 50)", segs[0])
	}
}

func TestRangeSplitWrapping(t *testing.T) {
	segs := NewRange(170, -170).Split()
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].A != 170 || segs[0].B != 180 {
		t.Errorf("first segment = %+v, want (170, 180)", segs[0])
	}
	if segs[1].A != -180 || segs[1].B != -170 {
		t.Errorf("second segment = %+v, want (-180, -170)", segs[1])
	}

	// Re-merging the segments eastward reconstructs the original width.
	width := (segs[0].B - segs[0].A) + (segs[1].B - segs[1].A)
	if math.Abs(width-NewRange(170, -170).Width()) > 1e-9 {
		t.Errorf("segment widths sum to %v, range width is %v", width, NewRange(170, -170).Width())
	}
}

func TestRangeSplitDegenerate(t *testing.T) {
	r := NewRange(42, 42)
	if !r.Degenerate() {
		t.Fatal("expected degenerate range")
	}
	segs := r.Split()
	if len(segs) != 1 {
		t.Fatalf("degenerate range must stay a single segment, got %d", len(segs))
	}
	if r.Width() != 0 {
		t.Errorf("degenerate width = %v, want 0", r.Width())
	}
}

func TestSegmentOverlaps(t *testing.T) {
	a := Segment{A: 0, B: 10}

	if !a.Overlaps(Segment{A: 5, B: 15}) {
		t.Error("expected overlap for (0,10) and (5,15)")
	}
	// Touching endpoints do not count: arcs are half-open.
	if a.Overlaps(Segment{A: 10, B: 20}) {
		t.Error("touching endpoints must not overlap")
	}
	if a.Overlaps(Segment{A: -20, B: 0}) {
		t.Error("touching endpoints must not overlap")
	}
	if a.Overlaps(Segment{A: 11, B: 20}) {
		t.Error("disjoint segments must not overlap")
	}
}

func TestRangeIntersects(t *testing.T) {
	seam := NewRange(170, -170)

	if !seam.Intersects(NewRange(175, 179)) {
		t.Error("expected intersection east of the seam")
	}
	if !seam.Intersects(NewRange(-179, -175)) {
		t.Error("expected intersection west of the seam")
	}
	if seam.Intersects(NewRange(-160, 160)) {
		t.Error("expected no intersection with the complementary arc")
	}
	if !seam.Intersects(NewRange(160, -160)) {
		t.Error("expected intersection between two wrapping arcs")
	}
}

func TestRangeWidth(t *testing.T) {
	if got := NewRange(170, -170).Width(); math.Abs(got-20) > 1e-9 {
		t.Errorf("wrapping width = %v, want 20", got)
	}
	if got := NewRange(10, 50).Width(); math.Abs(got-40) > 1e-9 {
		t.Errorf("width = %v, want 40", got)
	}
	// Full circle is distinct from degenerate.
	if got := NewRange(-180, 180).Width(); got != 360 {
		t.Errorf("full-circle width = %v, want 360", got)
	}
}

func TestFormatZoneArc(t *testing.T) {
	got := FormatZoneArc(Range{West: 80.7, East: 116.7}, 4)
	if got != "[80.7000°, 116.7000°)" {
		t.Errorf("FormatZoneArc = %q", got)
	}

	wrapped := FormatZoneArc(Range{West: 152.7, East: -171.3}, 4)
	if !strings.Contains(wrapped, "180.0000°)") || !strings.Contains(wrapped, "∪") {
		t.Errorf("wrapped arc %q should show a seam-split union", wrapped)
	}
}

func TestFormatBounds(t *testing.T) {
	got := FormatBounds(Range{West: 5, East: 5})
	if !strings.Contains(got, "degenerate") {
		t.Errorf("degenerate bounds %q should be flagged", got)
	}

	plain := FormatBounds(Range{West: -10, East: 20})
	if plain != "[-10.000000°, 20.000000°]" {
		t.Errorf("FormatBounds = %q", plain)
	}

	wrapped := FormatBounds(Range{West: 170, East: -170})
	if !strings.Contains(wrapped, "∪") {
		t.Errorf("wrapped bounds %q should show a seam-split union", wrapped)
	}
}
