// Package ingest fetches landscape image metadata from the Unsplash
// search API and turns it into raw pipeline records.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
	"github.com/Denger878/landscape-data-pipeline/internal/pipeline"
)

// ErrMissingAccessKey aborts ingestion before any request is made.
var ErrMissingAccessKey = errors.New("unsplash access key is required")

// Client talks to the Unsplash API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
}

// NewClient creates an API client. baseURL is injectable for tests.
func NewClient(baseURL, accessKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		accessKey:  accessKey,
	}
}

// Photo is the subset of the Unsplash photo payload the pipeline needs.
type Photo struct {
	ID             string  `json:"id"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Color          *string `json:"color"`
	Description    *string `json:"description"`
	AltDescription *string `json:"alt_description"`
	URLs           struct {
		Regular string `json:"regular"`
	} `json:"urls"`
	Links struct {
		HTML string `json:"html"`
	} `json:"links"`
	User struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"user"`
	Location struct {
		Name    string `json:"name"`
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"location"`
}

type searchResponse struct {
	Results []Photo `json:"results"`
}

// SearchPhotos fetches one page of landscape-oriented search results.
func (c *Client) SearchPhotos(query string, perPage, page int) ([]Photo, error) {
	if c.accessKey == "" {
		return nil, ErrMissingAccessKey
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("orientation", "landscape")
	params.Set("client_id", c.accessKey)

	resp, err := c.httpClient.Get(c.baseURL + "/search/photos?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %q: unexpected status %d", query, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %q: %w", query, err)
	}

	var search searchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("failed to decode response for %q: %w", query, err)
	}
	return search.Results, nil
}

// ProbeDownload checks that the image URL is reachable. The pipeline
// only tracks metadata, so reachability stands in for a full download.
func (c *Client) ProbeDownload(imageURL string) bool {
	resp, err := c.httpClient.Head(imageURL)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// BuildRecord converts an API photo into a raw record. Structured
// location data wins; the description text only fills in whichever of
// (name, country) is still empty.
func BuildRecord(photo *Photo, query string, landmarks, countries model.KeywordTable) model.ImageRecord {
	rec := model.ImageRecord{
		ID:                   photo.ID,
		ImageURL:             photo.URLs.Regular,
		DownloadURL:          photo.URLs.Regular,
		PageURL:              photo.Links.HTML,
		PhotographerName:     photo.User.Name,
		PhotographerUsername: photo.User.Username,
		Width:                photo.Width,
		Height:               photo.Height,
		Color:                photo.Color,
		Source:               "unsplash",
		Query:                query,
	}

	if desc := pickDescription(photo); desc != "" {
		rec.Description = &desc
	}

	if photo.Location.Name != "" {
		rec.LocationName = model.StringPtr(photo.Location.Name)
	} else if photo.Location.City != "" {
		rec.LocationName = model.StringPtr(photo.Location.City)
	}
	if photo.Location.Country != "" {
		rec.Country = model.StringPtr(photo.Location.Country)
	}

	pipeline.ResolveLocation(&rec, landmarks, countries)
	return rec
}

func pickDescription(photo *Photo) string {
	if photo.Description != nil && *photo.Description != "" {
		return *photo.Description
	}
	if photo.AltDescription != nil && *photo.AltDescription != "" {
		return *photo.AltDescription
	}
	return ""
}
