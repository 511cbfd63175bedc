package main

import (
	"flag"
	"log"

	"github.com/Denger878/landscape-data-pipeline/internal/config"
	"github.com/Denger878/landscape-data-pipeline/internal/pipeline"
	"github.com/Denger878/landscape-data-pipeline/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "path to pipeline.yaml (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	st, err := store.Open(cfg.Data.DB)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	summary, err := pipeline.Run(cfg, st)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	if err := st.Verify(); err != nil {
		log.Printf("Verification failed: %v", err)
	}

	log.Printf("Run %s: %d inserted, %d conflicts, %.1f%% quality",
		summary.RunID, summary.Inserted, summary.Conflicts, summary.QualityPct)
}
