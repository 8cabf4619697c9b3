package geocode

import (
	"encoding/json"
	"fmt"
)

// FlattenLongitudes walks a GeoJSON geometry of any nesting depth and
// returns the longitude of every [lon, lat] coordinate pair encountered.
// Non-pair, non-list leaves are ignored.
func FlattenLongitudes(raw json.RawMessage) ([]float64, error) {
	var geom struct {
		Coordinates any `json:"coordinates"`
	}
	if err := json.Unmarshal(raw, &geom); err != nil {
		return nil, fmt.Errorf("flatten longitudes: decode geometry: %w", err)
	}

	var lons []float64
	walkCoordinates(geom.Coordinates, &lons)
	return lons, nil
}

func walkCoordinates(v any, lons *[]float64) {
	list, ok := v.([]any)
	if !ok {
		return
	}

	if len(list) == 2 {
		lon, lonOK := list[0].(float64)
		_, latOK := list[1].(float64)
		if lonOK && latOK {
			*lons = append(*lons, lon)
			return
		}
	}

	for _, item := range list {
		walkCoordinates(item, lons)
	}
}
