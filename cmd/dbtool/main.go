package main

import (
	"earth-zone-service/internal/adapters/cache"
	"earth-zone-service/internal/platform/db"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the Postgres place-cache schema for deployments using
// PLACE_CACHE=postgres. The sqlite driver self-initializes on startup.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pdb, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pdb.Close()

	log.Println("Initializing place cache schema...")
	if err := cache.InitSchema(pdb); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
