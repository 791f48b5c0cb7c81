package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.NoteService = (*NoteService)(nil)

// NoteService is a mock implementation of headlines.NoteService.
type NoteService struct {
	CreateNoteFn   func(ctx context.Context, note *headlines.Note) error
	FindNoteByIDFn func(ctx context.Context, id string) (*headlines.Note, error)
	CountNotesFn   func(ctx context.Context) (int, error)
}

func (s *NoteService) CreateNote(ctx context.Context, note *headlines.Note) error {
	return s.CreateNoteFn(ctx, note)
}

func (s *NoteService) FindNoteByID(ctx context.Context, id string) (*headlines.Note, error) {
	return s.FindNoteByIDFn(ctx, id)
}

func (s *NoteService) CountNotes(ctx context.Context) (int, error) {
	return s.CountNotesFn(ctx)
}

var _ headlines.Annotator = (*Annotator)(nil)

// Annotator is a mock implementation of headlines.Annotator.
type Annotator struct {
	SaveNoteFn func(ctx context.Context, articleID, title, body string) (*headlines.Article, error)
}

func (a *Annotator) SaveNote(ctx context.Context, articleID, title, body string) (*headlines.Article, error) {
	return a.SaveNoteFn(ctx, articleID, title, body)
}
