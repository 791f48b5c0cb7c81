package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of headlines.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context) (*headlines.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context) (*headlines.ScrapeResult, error) {
	return s.ScrapeFn(ctx)
}
