package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Denger878/landscape-data-pipeline/internal/config"
	"github.com/Denger878/landscape-data-pipeline/internal/ingest"
)

func main() {
	cfgPath := flag.String("config", "", "path to pipeline.yaml (optional)")
	flag.Parse()

	// .env is optional; the variable may come from the environment.
	_ = godotenv.Load()

	accessKey := os.Getenv("UNSPLASH_ACCESS_KEY")
	if accessKey == "" {
		log.Fatal("UNSPLASH_ACCESS_KEY not set")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	client := ingest.NewClient(cfg.Ingest.BaseURL, accessKey)
	records, err := client.Collect(cfg, config.SearchQueries)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode metadata: %v", err)
	}
	if err := os.WriteFile(cfg.RawMetadataPath(), data, 0o644); err != nil {
		log.Fatalf("Failed to write metadata: %v", err)
	}

	log.Printf("Metadata saved: %s (%d records)", cfg.RawMetadataPath(), len(records))
}
