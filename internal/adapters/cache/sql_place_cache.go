package cache

import (
	"context"
	"database/sql"
	"earth-zone-service/internal/platform/obs"
	"earth-zone-service/internal/ports"
	"errors"
	"fmt"
	"strings"
)

// SQLPlaceCache is a Postgres-backed cache mapping queries to geocoded
// places. Schema is initialized out of band (cmd/dbtool).
type SQLPlaceCache struct {
	DB *sql.DB
}

func NewSQLPlaceCache(db *sql.DB) *SQLPlaceCache {
	return &SQLPlaceCache{DB: db}
}

// Fetch the cached place for the given query.
func (s *SQLPlaceCache) Get(ctx context.Context, query string) (_ ports.Place, _ bool, err error) {
	defer obs.Time(ctx, "place.cache.Get")(&err)

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
	WHERE query = $1;
	`

	var (
		displayName string
		lon, lat    float64
		west, east  sql.NullFloat64
		geomJSON    sql.NullString
	)
	err = s.DB.QueryRowContext(ctx, q, query).Scan(&displayName, &lon, &lat, &west, &east, &geomJSON)
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
func (s *SQLPlaceCache) Put(ctx context.Context, query string, place ports.Place) (err error) {
	defer obs.Time(ctx, "place.cache.Put")(&err)

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
	INSERT INTO place_cache (query, display_name, lon, lat, west, east, geometry_lons)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (query) DO UPDATE
	SET display_name = EXCLUDED.display_name,
		lon = EXCLUDED.lon,
		lat = EXCLUDED.lat,
		west = EXCLUDED.west,
		east = EXCLUDED.east,
		geometry_lons = EXCLUDED.geometry_lons;
	`

	if _, err := s.DB.ExecContext(ctx, q,
		query, place.DisplayName, place.Center.Lon, place.Center.Lat, west, east, geomJSON,
	); err != nil {
		return fmt.Errorf("insert place cache query=%q: %w", query, err)
	}

	return nil
}
