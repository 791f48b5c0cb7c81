// Package annotate attaches user notes to stored articles.
package annotate

import (
	"context"

	"github.com/fwojciec/headlines"
)

// Ensure Annotator implements headlines.Annotator at compile time.
var _ headlines.Annotator = (*Annotator)(nil)

// Annotator creates notes and attaches them to articles.
//
// The two writes are independent: the note is created first and kept even
// if attaching it fails, and a replaced note is never deleted.
type Annotator struct {
	Notes    headlines.NoteService
	Articles headlines.ArticleService
}

// NewAnnotator creates a new Annotator.
func NewAnnotator(notes headlines.NoteService, articles headlines.ArticleService) *Annotator {
	return &Annotator{Notes: notes, Articles: articles}
}

// SaveNote creates a new note with title and body and attaches it to the
// article. The returned article has the new note populated.
func (a *Annotator) SaveNote(ctx context.Context, articleID, title, body string) (*headlines.Article, error) {
	note := &headlines.Note{Title: title, Body: body}
	if err := a.Notes.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	article, err := a.Articles.AttachNote(ctx, articleID, note.ID)
	if err != nil {
		return nil, err
	}

	if article.Note == nil || article.Note.ID != note.ID {
		article.Note = note
	}

	return article, nil
}
