package ingest

import (
	"fmt"
	"time"

	"github.com/Denger878/landscape-data-pipeline/internal/config"
	"github.com/Denger878/landscape-data-pipeline/internal/model"
)

// Collect walks the search query rotation until the target count of
// reachable images is hit, building raw records as it goes. All fetched
// metadata is kept, including records whose image was unreachable; the
// download flag records the difference and validation filters on it.
func (c *Client) Collect(cfg *config.Config, queries []string) ([]model.ImageRecord, error) {
	if c.accessKey == "" {
		return nil, ErrMissingAccessKey
	}

	fmt.Printf("🌐 Target: %d images using %d queries\n", cfg.Ingest.TargetCount, len(queries))

	var records []model.ImageRecord
	downloaded := 0

	for _, query := range queries {
		if downloaded >= cfg.Ingest.TargetCount {
			break
		}

		fmt.Printf("🔎 Searching: %q\n", query)
		time.Sleep(time.Duration(cfg.Ingest.RateLimitSeconds) * time.Second)

		photos, err := c.SearchPhotos(query, cfg.Ingest.PerQuery, 1)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			continue
		}

		for i := range photos {
			rec := BuildRecord(&photos[i], query, cfg.Landmarks, cfg.Countries)

			if c.ProbeDownload(rec.DownloadURL) {
				rec.Downloaded = 1
				downloaded++
				if downloaded%20 == 0 {
					fmt.Printf("📥 Progress: %d/%d%s\n", downloaded, cfg.Ingest.TargetCount, captionSuffix(&rec))
				}
			}

			records = append(records, rec)
			if downloaded >= cfg.Ingest.TargetCount {
				break
			}
		}
	}

	withLocation := 0
	for i := range records {
		if records[i].HasLocation() {
			withLocation++
		}
	}
	fmt.Printf("🏁 Ingestion complete: %d images reachable, %d/%d with location\n",
		downloaded, withLocation, len(records))

	return records, nil
}

func captionSuffix(rec *model.ImageRecord) string {
	if caption := rec.Caption(); caption != nil {
		return " (" + *caption + ")"
	}
	return ""
}
