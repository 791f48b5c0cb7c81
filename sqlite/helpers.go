package sqlite

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// fingerprint returns the xxHash of an article's title and link as 16 hex digits.
func fingerprint(title, link string) string {
	d := xxhash.New()
	_, _ = d.WriteString(title)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(link)
	return fmt.Sprintf("%016x", d.Sum64())
}
