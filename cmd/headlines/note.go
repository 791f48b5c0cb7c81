package main

import (
	"fmt"

	"github.com/fwojciec/headlines"
)

// Run executes the note command.
func (c *NoteCmd) Run(deps *Dependencies) error {
	article, err := deps.Annotator.SaveNote(deps.Ctx, c.ID, c.Title, c.Body)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headlines.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved note %s on article %q\n", article.NoteID, article.Title)
	return nil
}
