package main

import (
	"fmt"

	"github.com/fwojciec/headlines"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Scrape(deps.Ctx)
	if result != nil && result.Saved > 0 && err != nil {
		fmt.Fprintf(deps.Stderr, "warning: %d articles were saved before the failure\n", result.Saved)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", headlines.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scrape complete: found %d, saved %d, skipped %d\n",
		result.Found, result.Saved, result.Skipped)
	return nil
}
