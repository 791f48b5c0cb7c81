package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Ensure LoggingAnnotator implements headlines.Annotator.
var _ headlines.Annotator = (*LoggingAnnotator)(nil)

// LoggingAnnotator wraps an Annotator with logging.
type LoggingAnnotator struct {
	next   headlines.Annotator
	logger *slog.Logger
}

// NewLoggingAnnotator creates a new LoggingAnnotator.
func NewLoggingAnnotator(next headlines.Annotator, logger *slog.Logger) *LoggingAnnotator {
	return &LoggingAnnotator{next: next, logger: logger}
}

// SaveNote delegates to the wrapped annotator and logs the operation.
// Note contents are not logged.
func (a *LoggingAnnotator) SaveNote(ctx context.Context, articleID, title, body string) (article *headlines.Article, err error) {
	defer func(begin time.Time) {
		var noteID string
		if article != nil {
			noteID = article.NoteID
		}
		a.logger.Info("save note",
			"article", articleID,
			"note", noteID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.SaveNote(ctx, articleID, title, body)
}
