package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/headlines"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ headlines.NoteService = (*NoteService)(nil)

// NoteService implements headlines.NoteService using SQLite.
type NoteService struct {
	db *DB
}

// NewNoteService creates a new NoteService.
func NewNoteService(db *DB) *NoteService {
	return &NoteService{db: db}
}

// CreateNote stores a new note. Notes are always inserted, never updated.
func (s *NoteService) CreateNote(ctx context.Context, note *headlines.Note) error {
	note.ID = uuid.New().String()
	note.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (id, title, body, created_at)
		VALUES (?, ?, ?, ?)
	`, note.ID, note.Title, note.Body, note.CreatedAt.Format(time.RFC3339))
	if err != nil {
		note.ID = ""
		return err
	}

	return nil
}

// FindNoteByID retrieves a note by ID.
func (s *NoteService) FindNoteByID(ctx context.Context, id string) (*headlines.Note, error) {
	var note headlines.Note
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, body, created_at
		FROM notes
		WHERE id = ?
	`, id).Scan(&note.ID, &note.Title, &note.Body, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, headlines.Errorf(headlines.ENOTFOUND, "note not found")
	}
	if err != nil {
		return nil, err
	}

	if note.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &note, nil
}

// CountNotes returns the number of stored notes, including replaced ones.
func (s *NoteService) CountNotes(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
