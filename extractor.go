package headlines

// DefaultLinkAttr is the attribute read for a headline's link when a
// SelectorRule does not name one.
const DefaultLinkAttr = "href"

// SelectorRule describes where headlines live in a page.
type SelectorRule struct {
	// Item selects one element per headline (e.g. "li.headline").
	Item string `json:"item"`

	// Title selects the descendant of each item holding the headline text
	// and link attribute (e.g. "a").
	Title string `json:"title"`

	// LinkAttr names the attribute of the Title element holding the link.
	// Defaults to DefaultLinkAttr.
	LinkAttr string `json:"linkAttr"`
}

// Validate returns an error if the rule is missing required selectors.
func (r SelectorRule) Validate() error {
	if r.Item == "" {
		return Errorf(EINVALID, "item selector required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "title selector required")
	}
	return nil
}

// Attr returns the link attribute name, falling back to DefaultLinkAttr.
func (r SelectorRule) Attr() string {
	if r.LinkAttr == "" {
		return DefaultLinkAttr
	}
	return r.LinkAttr
}

// Headline is a single title/link pair extracted from a page.
type Headline struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Extractor extracts headlines from HTML using selector rules.
type Extractor interface {
	// Extract parses HTML and returns one headline per element matching
	// rule.Item, in document order. Items missing the title element yield
	// empty strings rather than an error. No matches yields an empty slice.
	Extract(html string, rule SelectorRule) ([]Headline, error)
}
