package headlines

import "context"

// ScrapeResult summarizes a single scrape run.
type ScrapeResult struct {
	Source  string `json:"source"`
	Found   int    `json:"found"`
	Saved   int    `json:"saved"`
	Skipped int    `json:"skipped"`
}

// Scraper fetches the configured source page and stores its headlines.
type Scraper interface {
	// Scrape runs one fetch, extract and insert cycle. Inserts happen one
	// at a time, so a failure part way through leaves earlier articles
	// stored. Scraping the same page twice stores duplicates.
	Scrape(ctx context.Context) (*ScrapeResult, error)
}
