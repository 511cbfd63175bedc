package main

import (
	"flag"
	"log"

	_ "github.com/Denger878/landscape-data-pipeline/docs"
	"github.com/Denger878/landscape-data-pipeline/internal/api"
	"github.com/Denger878/landscape-data-pipeline/internal/config"
	"github.com/Denger878/landscape-data-pipeline/internal/store"
	"github.com/Denger878/landscape-data-pipeline/pkg/router"
)

// @title Landscape Image API
// @version 1.0
// @description Serves random landscape images with location captions and dataset statistics.
// @BasePath /api/v1
func main() {
	cfgPath := flag.String("config", "", "path to pipeline.yaml (optional)")
	addr := flag.String("addr", ":8080", "listen address")
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

	r := router.New()
	api.RegisterRoutes(r, st)

	r.Start(*addr)
}
