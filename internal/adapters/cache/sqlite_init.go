package cache

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the place cache table if missing. The DDL is kept
// portable between SQLite and Postgres so the same statement serves both
// cmd/server (sqlite) and cmd/dbtool (postgres). Longitudes are stored as
// DOUBLE PRECISION (float8 in Postgres, REAL affinity in SQLite): float4
// would round boundary-adjacent values into a different zone on read-back.
func InitSchema(db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS place_cache (
		query TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		west DOUBLE PRECISION,
		east DOUBLE PRECISION,
		geometry_lons TEXT
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create place_cache table: %w", err)
	}

	return nil
}
