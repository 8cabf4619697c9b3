package geocode

import (
	"encoding/json"
	"testing"
)

func TestFlattenLongitudesPoint(t *testing.T) {
	raw := json.RawMessage(`{"type":"Point","coordinates":[116.7,39.9]}`)

	lons, err := FlattenLongitudes(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lons) != 1 || lons[0] != 116.7 {
		t.Fatalf("lons = %v, want [116.7]", lons)
	}
}

func TestFlattenLongitudesPolygon(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "Polygon",
		"coordinates": [[[10.0, 1.0], [20.0, 2.0], [350.0, 3.0], [10.0, 1.0]]]
	}`)

	lons, err := FlattenLongitudes(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{10, 20, 350, 10}
	if len(lons) != len(want) {
		t.Fatalf("lons = %v, want %v", lons, want)
	}
	for i := range want {
		if lons[i] != want[i] {
			t.Fatalf("lons = %v, want %v", lons, want)
		}
	}
}

func TestFlattenLongitudesMultiPolygon(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "MultiPolygon",
		"coordinates": [
			[[[177.0, -17.0], [179.0, -18.0]]],
			[[[-179.0, -17.5], [-178.0, -18.5]]]
		]
	}`)

	lons, err := FlattenLongitudes(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{177, 179, -179, -178}
	if len(lons) != len(want) {
		t.Fatalf("lons = %v, want %v", lons, want)
	}
	for i := range want {
		if lons[i] != want[i] {
			t.Fatalf("lons = %v, want %v", lons, want)
		}
	}
}

func TestFlattenLongitudesIgnoresNonPairLeaves(t *testing.T) {
	raw := json.RawMessage(`{"coordinates":[["a","b"],[1.0,"x"],[5.0,6.0],7.0]}`)

	lons, err := FlattenLongitudes(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lons) != 1 || lons[0] != 5.0 {
		t.Fatalf("lons = %v, want [5]", lons)
	}
}

func TestFlattenLongitudesMissingCoordinates(t *testing.T) {
	lons, err := FlattenLongitudes(json.RawMessage(`{"type":"GeometryCollection"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lons) != 0 {
		t.Fatalf("lons = %v, want empty", lons)
	}
}

func TestFlattenLongitudesInvalidJSON(t *testing.T) {
	if _, err := FlattenLongitudes(json.RawMessage(`{not json`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
