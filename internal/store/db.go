// Package store persists enriched image metadata to SQLite and serves
// the read-side queries for the API.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

// ErrNoImages is returned by the random queries when nothing matches.
var ErrNoImages = errors.New("no images found")

const schema = `
CREATE TABLE IF NOT EXISTS images (
	id TEXT PRIMARY KEY,
	image_url TEXT NOT NULL,
	download_url TEXT,
	page_url TEXT,
	location_name TEXT,
	country TEXT,
	description TEXT,
	photographer_name TEXT,
	photographer_username TEXT,
	width INTEGER,
	height INTEGER,
	color TEXT,
	source TEXT,
	query TEXT,
	downloaded INTEGER DEFAULT 0,
	aspect_ratio REAL,
	megapixels REAL
);

CREATE INDEX IF NOT EXISTS idx_images_country ON images(country);
CREATE INDEX IF NOT EXISTS idx_images_location ON images(location_name);

CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at DATETIME,
	finished_at DATETIME,
	total_raw INTEGER,
	duplicates_removed INTEGER,
	cleaned INTEGER,
	inserted INTEGER,
	conflicts INTEGER,
	quality_pct REAL,
	location_pct REAL
);
`

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates the database directory if needed, opens the database and
// ensures the schema exists.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertImages inserts enriched records one by one. The primary key
// enforces identity uniqueness; constraint violations are counted as
// skipped and never abort the batch.
func (s *Store) InsertImages(records []model.ImageRecord) (inserted, skipped int, err error) {
	const insertSQL = `
	INSERT INTO images (
		id, image_url, download_url, page_url,
		location_name, country, description,
		photographer_name, photographer_username,
		width, height, color,
		source, query, downloaded,
		aspect_ratio, megapixels
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i := range records {
		rec := &records[i]
		_, execErr := s.db.Exec(insertSQL,
			rec.ID, rec.ImageURL, rec.DownloadURL, rec.PageURL,
			rec.LocationName, rec.Country, rec.Description,
			rec.PhotographerName, rec.PhotographerUsername,
			rec.Width, rec.Height, rec.Color,
			rec.Source, rec.Query, rec.Downloaded,
			rec.AspectRatio, rec.Megapixels,
		)
		if execErr != nil {
			var sqliteErr sqlite3.Error
			if errors.As(execErr, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
				skipped++
				continue
			}
			return inserted, skipped, fmt.Errorf("failed to insert image %s: %w", rec.ID, execErr)
		}
		inserted++
	}

	return inserted, skipped, nil
}

// RandomImage fetches one uniformly-random image, optionally restricted
// to images carrying location data.
func (s *Store) RandomImage(requireLocation bool) (*model.ImageRecord, error) {
	query := `
	SELECT id, image_url, location_name, country,
	       photographer_name, photographer_username, page_url
	FROM images`
	if requireLocation {
		query += `
	WHERE location_name IS NOT NULL OR country IS NOT NULL`
	}
	query += `
	ORDER BY RANDOM()
	LIMIT 1`

	var rec model.ImageRecord
	var locationName, country sql.NullString
	err := s.db.QueryRow(query).Scan(
		&rec.ID, &rec.ImageURL, &locationName, &country,
		&rec.PhotographerName, &rec.PhotographerUsername, &rec.PageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoImages
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch random image: %w", err)
	}

	if locationName.Valid {
		rec.LocationName = &locationName.String
	}
	if country.Valid {
		rec.Country = &country.String
	}
	return &rec, nil
}

// CountryCount is one entry of the top-countries breakdown.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// CoverageStats aggregates the stored dataset for the stats endpoint.
type CoverageStats struct {
	Total        int            `json:"total"`
	WithLocation int            `json:"withLocation"`
	WithCountry  int            `json:"withCountry"`
	TopCountries []CountryCount `json:"topCountries"`
}

// Stats computes total counts, coverage and the top-N country
// frequencies.
func (s *Store) Stats(topN int) (*CoverageStats, error) {
	stats := &CoverageStats{TopCountries: []CountryCount{}}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM images`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count images: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM images WHERE location_name IS NOT NULL`).Scan(&stats.WithLocation); err != nil {
		return nil, fmt.Errorf("failed to count locations: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM images WHERE country IS NOT NULL`).Scan(&stats.WithCountry); err != nil {
		return nil, fmt.Errorf("failed to count countries: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT country, COUNT(*) AS count
		FROM images
		WHERE country IS NOT NULL
		GROUP BY country
		ORDER BY count DESC
		LIMIT ?`, topN)
	if err != nil {
		return nil, fmt.Errorf("failed to query top countries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cc CountryCount
		if err := rows.Scan(&cc.Country, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan country row: %w", err)
		}
		stats.TopCountries = append(stats.TopCountries, cc)
	}
	return stats, rows.Err()
}

// SaveRun records the summary of a completed pipeline run.
func (s *Store) SaveRun(summary *model.RunSummary) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (
			id, started_at, finished_at, total_raw, duplicates_removed,
			cleaned, inserted, conflicts, quality_pct, location_pct
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.RunID, summary.StartedAt, summary.FinishedAt,
		summary.Stats.Total, summary.DuplicatesRemoved,
		summary.Cleaned, summary.Inserted, summary.Conflicts,
		summary.QualityPct, summary.LocationPct,
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// RunRow is one row of run history.
type RunRow struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt"`
	TotalRaw    int       `json:"totalRaw"`
	Cleaned     int       `json:"cleaned"`
	Inserted    int       `json:"inserted"`
	Conflicts   int       `json:"conflicts"`
	QualityPct  float64   `json:"qualityPct"`
	LocationPct float64   `json:"locationPct"`
}

// ListRuns returns run history, newest first.
func (s *Store) ListRuns() ([]RunRow, error) {
	rows, err := s.db.Query(`
		SELECT id, started_at, finished_at, total_raw, cleaned,
		       inserted, conflicts, quality_pct, location_pct
		FROM runs
		ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRow
	for rows.Next() {
		var r RunRow
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.TotalRaw,
			&r.Cleaned, &r.Inserted, &r.Conflicts, &r.QualityPct, &r.LocationPct); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Verify runs sanity queries after a load and logs the outcome, the
// same checks the loader has always done.
func (s *Store) Verify() error {
	stats, err := s.Stats(5)
	if err != nil {
		return err
	}

	var avgWidth, avgHeight sql.NullFloat64
	if err := s.db.QueryRow(`SELECT AVG(width), AVG(height) FROM images`).Scan(&avgWidth, &avgHeight); err != nil {
		return fmt.Errorf("failed to query average dimensions: %w", err)
	}

	log.Printf("Verification: %d images, %d with location, %d with country",
		stats.Total, stats.WithLocation, stats.WithCountry)
	if avgWidth.Valid && avgHeight.Valid {
		log.Printf("Average dimensions: %.0fx%.0fpx", avgWidth.Float64, avgHeight.Float64)
	}
	for _, cc := range stats.TopCountries {
		log.Printf("Top country: %s (%d)", cc.Country, cc.Count)
	}
	return nil
}
