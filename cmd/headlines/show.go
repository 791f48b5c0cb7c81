package main

import (
	"fmt"

	"github.com/fwojciec/headlines"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if headlines.ErrorCode(err) == headlines.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'headlines list' to see stored articles.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", headlines.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n%s\n", article.Title, article.Link)

	if article.Note == nil {
		fmt.Fprintln(deps.Stdout, "\nNo note. Use 'headlines note' to add one.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\n%s\n%s\n", article.Note.Title, article.Note.Body)
	return nil
}
