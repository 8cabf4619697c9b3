package main

import (
	"bufio"
	"context"
	"database/sql"
	"earth-zone-service/internal/adapters/cache"
	"earth-zone-service/internal/adapters/geocode"
	"earth-zone-service/internal/config"
	"earth-zone-service/internal/domain"
	"earth-zone-service/internal/ports"
	"earth-zone-service/internal/services"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// zonectl is the interactive front end: it reads place names or longitudes
// and prints the zone breakdown. With arguments it resolves each one and
// exits; without, it enters a prompt loop.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	boundary, err := config.GetFloat("ZONE9_EAST_BOUNDARY", domain.DefaultZone9EastBoundary)
	if err != nil {
		log.Fatal(err)
	}
	if err := domain.ValidateLongitude(boundary); err != nil {
		log.Fatalf("ZONE9_EAST_BOUNDARY: %v", err)
	}

	geocoder, closeCache, err := buildGeocoder()
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	ctx := context.Background()

	if len(os.Args) > 1 {
		for _, arg := range os.Args[1:] {
			resolveAndPrint(ctx, arg, boundary, geocoder)
		}
		return
	}

	fmt.Println("Earth longitude zones (10 zones, 36° each)")
	fmt.Printf("Zone 9 = [%.4f°, %.4f°) (east boundary exclusive)\n",
		domain.NormalizePoint(domain.NormalizePoint(boundary)-domain.ZoneWidthDegrees),
		domain.NormalizeEdge(boundary))
	fmt.Println("Enter a place name or longitude; q to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("place or longitude> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			return
		}

		resolveAndPrint(ctx, line, boundary, geocoder)
	}
}

// buildGeocoder wires the Nominatim adapter with an optional sqlite place
// cache (DB_PATH). GEOCODER=off leaves lookups to longitude literals only.
func buildGeocoder() (ports.Geocoder, func(), error) {
	if config.Get("GEOCODER", "nominatim") == "off" {
		return nil, nil, nil
	}

	var placeCache ports.PlaceCache
	var closeCache func()

	if dbPath := config.Get("DB_PATH", ""); dbPath != "" {
		sdb, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
		}
		if err := cache.InitSchema(sdb); err != nil {
			sdb.Close()
			return nil, nil, err
		}
		placeCache = cache.NewSqlitePlaceCache(sdb)
		closeCache = func() { sdb.Close() }
	}

	geocoder, err := geocode.NewNominatimGeocoder(
		config.Get("NOMINATIM_BASE_URL", ""),
		config.Get("NOMINATIM_USER_AGENT", "earth-zone-service/1.0"),
		config.Get("NOMINATIM_LANGUAGE", ""),
		placeCache,
	)
	if err != nil {
		if closeCache != nil {
			closeCache()
		}
		return nil, nil, err
	}

	return geocoder, closeCache, nil
}

func resolveAndPrint(ctx context.Context, query string, boundary float64, geocoder ports.Geocoder) {
	res, err := services.ResolveQuery(ctx, query, boundary, geocoder)
	switch {
	case err == nil:
	case errors.Is(err, ports.ErrNoMatch):
		fmt.Printf("no match for %q; try a fuller name (e.g. \"Bangkok, Thailand\")\n\n", query)
		return
	default:
		fmt.Printf("error: %v\n\n", err)
		return
	}

	printPlace(res)
}

func printPlace(res *services.PlaceZones) {
	if res.Note != "" {
		fmt.Printf("matched: %s\n", res.Note)
	}
	fmt.Printf("query: %s\n", res.Query)

	if res.Bounds != nil {
		fmt.Printf("  longitude bounds: %s\n", domain.FormatBounds(*res.Bounds))
	} else {
		fmt.Printf("  point longitude: %.6f°\n", res.CenterLon)
	}

	if len(res.CoveredZones) > 0 {
		nums := make([]string, 0, len(res.CoveredZones))
		for _, z := range res.CoveredZones {
			nums = append(nums, fmt.Sprintf("%d", z.Zone))
		}
		fmt.Printf("  covered zones: %s\n", strings.Join(nums, ", "))
		for _, z := range res.CoveredZones {
			fmt.Printf("    - zone %d: %s (west-inclusive)\n", z.Zone, domain.FormatZoneArc(z.Arc(), 4))
		}
	} else {
		z := res.CenterZone
		fmt.Printf("  zone: %d\n", z.Zone)
		fmt.Printf("  zone interval: %s (west-inclusive)\n", domain.FormatZoneArc(z.Arc(), 4))
	}

	fmt.Println()
}
