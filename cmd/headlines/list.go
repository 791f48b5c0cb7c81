package main

import (
	"fmt"

	"github.com/fwojciec/headlines"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter headlines.ArticleFilter
	if c.Fingerprint != "" {
		filter.Fingerprint = &c.Fingerprint
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headlines.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'headlines scrape' to fetch some.")
		return nil
	}

	for _, a := range articles {
		marker := " "
		if a.HasNote() {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s  %s\n", marker, a.ID, a.Title, a.Link)
	}

	return nil
}
