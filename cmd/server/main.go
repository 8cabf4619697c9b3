package main

import (
	"database/sql"
	"earth-zone-service/internal/adapters/cache"
	"earth-zone-service/internal/adapters/geocode"
	"earth-zone-service/internal/api"
	"earth-zone-service/internal/config"
	"earth-zone-service/internal/domain"
	"earth-zone-service/internal/platform/db"
	"earth-zone-service/internal/ports"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (place cache, Nominatim) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	boundary, err := config.GetFloat("ZONE9_EAST_BOUNDARY", domain.DefaultZone9EastBoundary)
	if err != nil {
		log.Fatal(err)
	}
	if err := domain.ValidateLongitude(boundary); err != nil {
		log.Fatalf("ZONE9_EAST_BOUNDARY: %v", err)
	}

	placeCache, closeCache, err := openPlaceCache()
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	var geocoder ports.Geocoder
	if config.Get("GEOCODER", "nominatim") != "off" {
		g, err := geocode.NewNominatimGeocoder(
			config.Get("NOMINATIM_BASE_URL", ""),
			config.Get("NOMINATIM_USER_AGENT", "earth-zone-service/1.0"),
			config.Get("NOMINATIM_LANGUAGE", ""),
			placeCache,
		)
		if err != nil {
			log.Fatal(err)
		}
		geocoder = g
	}

	router := api.NewRouter(boundary, geocoder)

	// Write timeout leaves room for cold-cache geocoding (external API latency).
	log.Printf("Server listening addr=:%s boundary=%.4f", port, boundary)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openPlaceCache selects the place cache driver from PLACE_CACHE:
// sqlite (default), postgres, redis, or none.
func openPlaceCache() (ports.PlaceCache, func(), error) {
	driver := config.Get("PLACE_CACHE", "sqlite")

	switch driver {
	case "none":
		return nil, nil, nil

	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		sdb, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
		}
		if err := sdb.Ping(); err != nil {
			sdb.Close()
			return nil, nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
		}
		// Initialize schema on startup for local runs.
		if err := cache.InitSchema(sdb); err != nil {
			sdb.Close()
			return nil, nil, err
		}
		return cache.NewSqlitePlaceCache(sdb), func() { sdb.Close() }, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for PLACE_CACHE=postgres")
		}
		pdb, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewSQLPlaceCache(pdb), func() { pdb.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: config.Get("REDIS_ADDR", "localhost:6379"),
		})
		return cache.NewRedisPlaceCache(client), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown PLACE_CACHE driver %q", driver)
	}
}
