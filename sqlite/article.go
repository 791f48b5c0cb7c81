package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/headlines"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ headlines.ArticleService = (*ArticleService)(nil)

// ArticleService implements headlines.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle stores a new article. Articles with neither a title nor a
// link are skipped without error. Identical articles are stored again.
func (s *ArticleService) CreateArticle(ctx context.Context, article *headlines.Article) error {
	if article.IsEmpty() {
		return nil
	}

	id := uuid.New().String()
	fp := fingerprint(article.Title, article.Link)
	createdAt := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, link, fingerprint, note_id, created_at)
		VALUES (?, ?, ?, ?, '', ?)
	`, id, article.Title, article.Link, fp, createdAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	article.ID = id
	article.Fingerprint = fp
	article.NoteID = ""
	article.Note = nil
	article.CreatedAt = createdAt

	return nil
}

// FindArticleByID retrieves an article by ID and populates its note.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*headlines.Article, error) {
	var article headlines.Article
	var createdAt string
	var noteID, noteTitle, noteBody, noteCreatedAt sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT a.id, a.title, a.link, a.fingerprint, a.note_id, a.created_at,
			n.id, n.title, n.body, n.created_at
		FROM articles a
		LEFT JOIN notes n ON n.id = a.note_id
		WHERE a.id = ?
	`, id).Scan(&article.ID, &article.Title, &article.Link, &article.Fingerprint, &article.NoteID, &createdAt,
		&noteID, &noteTitle, &noteBody, &noteCreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, headlines.Errorf(headlines.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	if article.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	if noteID.Valid {
		note := &headlines.Note{
			ID:    noteID.String,
			Title: noteTitle.String,
			Body:  noteBody.String,
		}
		if note.CreatedAt, err = parseRFC3339(noteCreatedAt.String, "note created_at"); err != nil {
			return nil, err
		}
		article.Note = note
	}

	return &article, nil
}

// FindArticles retrieves articles matching the filter in insertion order.
func (s *ArticleService) FindArticles(ctx context.Context, filter headlines.ArticleFilter) ([]*headlines.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, link, fingerprint, note_id, created_at FROM articles WHERE 1=1")

	if filter.Fingerprint != nil {
		query.WriteString(" AND fingerprint = ?")
		args = append(args, *filter.Fingerprint)
	}

	query.WriteString(" ORDER BY rowid ASC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []*headlines.Article{}
	for rows.Next() {
		var article headlines.Article
		var createdAt string

		if err := rows.Scan(&article.ID, &article.Title, &article.Link, &article.Fingerprint, &article.NoteID,
			&createdAt); err != nil {
			return nil, err
		}

		if article.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// AttachNote points the article at noteID and returns the updated article.
func (s *ArticleService) AttachNote(ctx context.Context, articleID, noteID string) (*headlines.Article, error) {
	result, err := s.db.ExecContext(ctx, "UPDATE articles SET note_id = ? WHERE id = ?", noteID, articleID)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, headlines.Errorf(headlines.ENOTFOUND, "article not found")
	}

	return s.FindArticleByID(ctx, articleID)
}
