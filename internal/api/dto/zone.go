package dto

type ZoneResponse struct {
	Zone int     `json:"zone"`
	West float64 `json:"west"`
	East float64 `json:"east"`
	Arc  string  `json:"arc"`
}

type ListZonesResponse struct {
	Zone9EastBoundary float64        `json:"zone9_east_boundary"`
	Zones             []ZoneResponse `json:"zones"`
}

type LocateResponse struct {
	Lon  float64      `json:"lon"`
	Zone ZoneResponse `json:"zone"`
}

type CoverageResponse struct {
	West       float64        `json:"west"`
	East       float64        `json:"east"`
	Bounds     string         `json:"bounds"`
	Degenerate bool           `json:"degenerate"`
	Zones      []ZoneResponse `json:"zones"`
}

type ResolveRequest struct {
	Query string `json:"query"`
}

type ResolveResponse struct {
	Query        string         `json:"query"`
	Note         string         `json:"note,omitempty"`
	CenterLon    float64        `json:"center_lon"`
	CenterZone   ZoneResponse   `json:"center_zone"`
	BoundsWest   *float64       `json:"bounds_west,omitempty"`
	BoundsEast   *float64       `json:"bounds_east,omitempty"`
	Bounds       string         `json:"bounds,omitempty"`
	Degenerate   bool           `json:"degenerate,omitempty"`
	CoveredZones []ZoneResponse `json:"covered_zones,omitempty"`
}
