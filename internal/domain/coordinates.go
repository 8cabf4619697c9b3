package domain

// Immutable geographic coordinates (longitude, latitude).
// Longitude is held in point form; latitude is carried through for display
// only and never enters zone math.
type Coordinates struct {
	Lon float64
	Lat float64
}

// NewCoordinates normalizes the longitude to point form.
func NewCoordinates(lon, lat float64) Coordinates {
	return Coordinates{Lon: NormalizePoint(lon), Lat: lat}
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }
