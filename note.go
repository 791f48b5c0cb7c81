package headlines

import (
	"context"
	"time"
)

// Note is a freeform annotation attached to an article.
// Notes are never edited in place: saving a note always creates a new one.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// NoteService represents a service for managing notes.
type NoteService interface {
	// CreateNote stores a new note and assigns its ID.
	CreateNote(ctx context.Context, note *Note) error

	// FindNoteByID retrieves a note by ID.
	// Returns ENOTFOUND if the note does not exist.
	FindNoteByID(ctx context.Context, id string) (*Note, error)

	// CountNotes returns the total number of stored notes, attached or not.
	CountNotes(ctx context.Context) (int, error)
}

// Annotator attaches notes to articles.
type Annotator interface {
	// SaveNote creates a new note and attaches it to the article,
	// replacing any previously attached note. The previous note is kept.
	// Returns ENOTFOUND if the article does not exist; the new note is
	// stored regardless.
	SaveNote(ctx context.Context, articleID, title, body string) (*Article, error)
}
