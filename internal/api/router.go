package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Denger878/landscape-data-pipeline/internal/api/handler"
	"github.com/Denger878/landscape-data-pipeline/internal/store"
	"github.com/Denger878/landscape-data-pipeline/pkg/router"
)

// RegisterRoutes wires the API endpoints onto the router.
func RegisterRoutes(r *router.Router, st *store.Store) {
	h := handler.New(st)

	r.GET("/api/v1/images/random", h.GetRandomImage)
	r.GET("/api/v1/images/random/location", h.GetRandomImageWithLocation)
	r.GET("/api/v1/stats", h.GetStats)
	r.GET("/api/v1/runs", h.ListRuns)
	r.GET("/api/v1/health", h.HealthCheck)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
