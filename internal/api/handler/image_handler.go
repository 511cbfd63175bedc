// Package handler implements the HTTP handlers for the landscape image
// API.
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
	"github.com/Denger878/landscape-data-pipeline/internal/store"
	"github.com/Denger878/landscape-data-pipeline/pkg/utils"
)

const topCountriesLimit = 5

// Handler serves image queries against the store.
type Handler struct {
	store *store.Store
}

// New creates a handler backed by the given store.
func New(st *store.Store) *Handler {
	return &Handler{store: st}
}

// imagePayload is the response body for random image queries.
type imagePayload struct {
	ID           string       `json:"id"`
	ImageURL     string       `json:"imageUrl"`
	Caption      *string      `json:"caption"`
	Photographer photographer `json:"photographer"`
	UnsplashLink string       `json:"unsplashLink"`
}

type photographer struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Profile  string `json:"profile"`
}

// GetRandomImage returns one random image
// @Summary Random image
// @Description Fetch a uniformly-random landscape image with caption and photographer credit
// @Tags images
// @Produce json
// @Success 200 {object} map[string]interface{} "Image payload"
// @Failure 404 {object} map[string]interface{} "No images found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /images/random [get]
func (h *Handler) GetRandomImage(w http.ResponseWriter, r *http.Request) {
	h.randomImage(w, false)
}

// GetRandomImageWithLocation returns one random image that has location data
// @Summary Random image with location
// @Description Fetch a uniformly-random landscape image restricted to images carrying location data
// @Tags images
// @Produce json
// @Success 200 {object} map[string]interface{} "Image payload"
// @Failure 404 {object} map[string]interface{} "No images with location found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /images/random/location [get]
func (h *Handler) GetRandomImageWithLocation(w http.ResponseWriter, r *http.Request) {
	h.randomImage(w, true)
}

func (h *Handler) randomImage(w http.ResponseWriter, requireLocation bool) {
	rec, err := h.store.RandomImage(requireLocation)
	if errors.Is(err, store.ErrNoImages) {
		msg := "No images found"
		if requireLocation {
			msg = "No images with location found"
		}
		writeError(w, http.StatusNotFound, msg)
		return
	}
	if err != nil {
		log.Printf("Error fetching random image: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    buildImagePayload(rec),
	})
}

// GetStats returns dataset statistics
// @Summary Dataset statistics
// @Description Total images, location coverage and top countries
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "Statistics payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(topCountriesLimit)
	if err != nil {
		log.Printf("Error fetching stats: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"total":            stats.Total,
			"withLocation":     stats.WithLocation,
			"withCountry":      stats.WithCountry,
			"locationCoverage": utils.Round(utils.Percent(stats.WithLocation, stats.Total), 1),
			"topCountries":     stats.TopCountries,
		},
	})
}

// ListRuns returns pipeline run history
// @Summary Pipeline run history
// @Description Past cleaning runs with counts and quality percentages, newest first
// @Tags runs
// @Produce json
// @Success 200 {object} map[string]interface{} "Run history"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.store.ListRuns()
	if err != nil {
		log.Printf("Error fetching runs: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if runs == nil {
		runs = []store.RunRow{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    runs,
	})
}

// HealthCheck reports service health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service healthy"
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "landscape-api",
	})
}

func buildImagePayload(rec *model.ImageRecord) imagePayload {
	return imagePayload{
		ID:       rec.ID,
		ImageURL: rec.ImageURL,
		Caption:  rec.Caption(),
		Photographer: photographer{
			Name:     rec.PhotographerName,
			Username: rec.PhotographerUsername,
			Profile:  "https://unsplash.com/@" + rec.PhotographerUsername,
		},
		UnsplashLink: rec.PageURL,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": msg})
}
