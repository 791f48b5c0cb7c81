// Package scrape runs the fetch, extract and store pipeline that turns a
// news page into stored articles.
package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/headlines"
	"golang.org/x/time/rate"
)

// Defaults for the headline source scraped when nothing else is configured.
const (
	DefaultSourceURL = "https://www.mlb.com/mets"
	DefaultItem      = "li.p-headline-stack__headline"
	DefaultTitle     = "a"
)

// DefaultRule returns the selector rule for DefaultSourceURL.
func DefaultRule() headlines.SelectorRule {
	return headlines.SelectorRule{
		Item:     DefaultItem,
		Title:    DefaultTitle,
		LinkAttr: headlines.DefaultLinkAttr,
	}
}

// Ensure Scraper implements headlines.Scraper at compile time.
var _ headlines.Scraper = (*Scraper)(nil)

// Scraper fetches SourceURL, extracts headlines with Rule and stores each
// complete headline as a new article.
type Scraper struct {
	Fetcher   headlines.Fetcher
	Extractor headlines.Extractor
	Articles  headlines.ArticleService
	SourceURL string
	Rule      headlines.SelectorRule

	// Limiter, if set, bounds how often Scrape may hit the source.
	// Scrapes over the limit fail with ERATELIMIT.
	Limiter *rate.Limiter
}

// NewLimiter returns a limiter allowing one scrape per interval.
// Returns nil, meaning unlimited, for a non-positive interval.
func NewLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Scrape runs a single scrape of the source page.
//
// Headlines missing either a title or a link are counted as skipped.
// Articles are inserted one by one in document order; if an insert fails
// the articles stored before it are kept and the partial result is
// returned alongside the error. Nothing is deduplicated.
func (s *Scraper) Scrape(ctx context.Context) (*headlines.ScrapeResult, error) {
	if s.Limiter != nil && !s.Limiter.Allow() {
		return nil, headlines.Errorf(headlines.ERATELIMIT, "scrape requested too soon, try again later")
	}

	html, err := s.Fetcher.Fetch(ctx, s.SourceURL)
	if err != nil {
		return nil, err
	}

	items, err := s.Extractor.Extract(html, s.Rule)
	if err != nil {
		return nil, err
	}

	result := &headlines.ScrapeResult{
		Source: s.SourceURL,
		Found:  len(items),
	}

	for _, item := range items {
		if item.Title == "" || item.Link == "" {
			result.Skipped++
			continue
		}

		article := &headlines.Article{Title: item.Title, Link: item.Link}
		if err := s.Articles.CreateArticle(ctx, article); err != nil {
			return result, err
		}
		if article.ID == "" {
			result.Skipped++
			continue
		}
		result.Saved++
	}

	return result, nil
}
