package headlines

import (
	"context"
	"time"
)

// Article represents a scraped headline and its link.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Fingerprint string    `json:"fingerprint"`
	NoteID      string    `json:"noteId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`

	// Note is only populated when the article is looked up by ID.
	Note *Note `json:"note,omitempty"`
}

// IsEmpty reports whether the article has neither a title nor a link.
// Empty articles are never persisted.
func (a *Article) IsEmpty() bool {
	return a.Title == "" && a.Link == ""
}

// HasNote reports whether a note is attached to the article.
func (a *Article) HasNote() bool {
	return a.NoteID != ""
}

// ArticleService represents a service for managing articles.
type ArticleService interface {
	// CreateArticle stores a new article and assigns its ID.
	// Empty articles are skipped silently: no error is returned
	// and the ID is left blank.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID with its note populated.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter in insertion order.
	// Notes are not populated; only NoteID is set.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// AttachNote points the article at the given note and returns the
	// updated article. The note ID is not checked for existence.
	// Returns ENOTFOUND if the article does not exist.
	AttachNote(ctx context.Context, articleID, noteID string) (*Article, error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	// Fingerprint restricts results to copies of the same title and link.
	Fingerprint *string `json:"fingerprint"`
}
