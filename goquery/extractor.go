// Package goquery provides a CSS selector based implementation of
// headlines.Extractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/headlines"
)

// Ensure Extractor implements headlines.Extractor at compile time.
var _ headlines.Extractor = (*Extractor)(nil)

// Extractor extracts headlines from HTML using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses HTML and returns one headline per element matching
// rule.Item, in document order.
//
// For each item, the text of every descendant matching rule.Title is
// joined and trimmed to form the title; the link attribute is read from
// the first match. Items without a matching descendant, or whose first
// match lacks the attribute, yield empty fields. Headlines are neither
// deduplicated nor filtered.
func (e *Extractor) Extract(html string, rule headlines.SelectorRule) ([]headlines.Headline, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	item, err := cascadia.Compile(rule.Item)
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "invalid item selector %q: %v", rule.Item, err)
	}
	title, err := cascadia.Compile(rule.Title)
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "invalid title selector %q: %v", rule.Title, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "failed to parse HTML: %v", err)
	}

	attr := rule.Attr()
	results := []headlines.Headline{}

	doc.FindMatcher(item).Each(func(_ int, sel *goquery.Selection) {
		matches := sel.FindMatcher(title)
		link, _ := matches.Attr(attr)

		results = append(results, headlines.Headline{
			Title: strings.TrimSpace(matches.Text()),
			Link:  strings.TrimSpace(link),
		})
	})

	return results, nil
}
