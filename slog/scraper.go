package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingScraper implements headlines.Scraper.
var _ headlines.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   headlines.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next headlines.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the counts.
func (s *LoggingScraper) Scrape(ctx context.Context) (result *headlines.ScrapeResult, err error) {
	defer func(begin time.Time) {
		var r headlines.ScrapeResult
		if result != nil {
			r = *result
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "scrape",
			"source", r.Source,
			"found", r.Found,
			"saved", r.Saved,
			"skipped", r.Skipped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx)
}
