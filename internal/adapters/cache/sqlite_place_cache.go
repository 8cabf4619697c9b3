package cache

import (
	"context"
	"database/sql"
	"earth-zone-service/internal/domain"
	"earth-zone-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache mapping query strings to geocoded places. Query keys
// are expected to be consistent (e.g., normalized) by the caller.
type SqlitePlaceCache struct {
	DB *sql.DB
}

func NewSqlitePlaceCache(db *sql.DB) *SqlitePlaceCache {
	return &SqlitePlaceCache{DB: db}
}

// Fetch the cached place for the given query.
func (s *SqlitePlaceCache) Get(ctx context.Context, query string) (ports.Place, bool, error) {
	if s.DB == nil {
		return ports.Place{}, false, errors.New("place cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return ports.Place{}, false, nil
	}

	q := `
	SELECT display_name, lon, lat, west, east, geometry_lons
	FROM place_cache
	WHERE query = ?;
	`

	var (
		displayName string
		lon, lat    float64
		west, east  sql.NullFloat64
		geomJSON    sql.NullString
	)
	err := s.DB.QueryRowContext(ctx, q, query).Scan(&displayName, &lon, &lat, &west, &east, &geomJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Place{}, false, nil
	}
	if err != nil {
		return ports.Place{}, false, fmt.Errorf("get place cache: query place_cache table: %w", err)
	}

	place, err := assemblePlace(displayName, lon, lat, west, east, geomJSON)
	if err != nil {
		return ports.Place{}, false, fmt.Errorf("get place cache: %w", err)
	}

	return place, true, nil
}

// Store a query -> place mapping in the cache.
func (s *SqlitePlaceCache) Put(ctx context.Context, query string, place ports.Place) error {
	if s.DB == nil {
		return errors.New("place cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert place cache: empty query key")
	}

	west, east, geomJSON, err := flattenPlace(place)
	if err != nil {
		return fmt.Errorf("insert place cache: %w", err)
	}

	q := `
	INSERT OR REPLACE INTO place_cache (
		query,
		display_name,
		lon,
		lat,
		west,
		east,
		geometry_lons
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q,
		query, place.DisplayName, place.Center.Lon, place.Center.Lat, west, east, geomJSON,
	); err != nil {
		return fmt.Errorf("insert place cache query=%q: %w", query, err)
	}

	return nil
}

// assemblePlace rebuilds a ports.Place from its flattened row form.
func assemblePlace(
	displayName string,
	lon, lat float64,
	west, east sql.NullFloat64,
	geomJSON sql.NullString,
) (ports.Place, error) {
	place := ports.Place{
		DisplayName: displayName,
		Center:      domain.Coordinates{Lon: lon, Lat: lat},
	}

	if west.Valid && east.Valid {
		r := domain.Range{West: west.Float64, East: east.Float64}
		place.Bounds = &r
	}

	if geomJSON.Valid && geomJSON.String != "" {
		var lons []float64
		if err := json.Unmarshal([]byte(geomJSON.String), &lons); err != nil {
			return ports.Place{}, fmt.Errorf("decode geometry longitudes: %w", err)
		}
		place.GeometryLons = lons
	}

	return place, nil
}

// flattenPlace converts a ports.Place to its nullable row form.
func flattenPlace(place ports.Place) (west, east sql.NullFloat64, geomJSON sql.NullString, err error) {
	if place.Bounds != nil {
		west = sql.NullFloat64{Float64: place.Bounds.West, Valid: true}
		east = sql.NullFloat64{Float64: place.Bounds.East, Valid: true}
	}

	if len(place.GeometryLons) > 0 {
		b, merr := json.Marshal(place.GeometryLons)
		if merr != nil {
			return west, east, geomJSON, fmt.Errorf("encode geometry longitudes: %w", merr)
		}
		geomJSON = sql.NullString{String: string(b), Valid: true}
	}

	return west, east, geomJSON, nil
}
