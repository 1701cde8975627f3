package music

import (
	"fmt"
	"strings"
)

// Artist represents a recording artist. Name is optional in the schema; an
// empty string stands in for NULL and such artists never match a name filter.
type Artist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	// Albums is populated only by tree reads. It is a display convenience,
	// not an owning reference.
	Albums []*Album `json:"albums,omitempty"`
}

// NormalizeName trims the surrounding whitespace callers tend to leave in
// artist names. Duplicate detection compares normalized names case-insensitively.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// Validate validates the artist fields.
func (a *Artist) Validate() error {
	if len(a.Name) > 500 {
		return fmt.Errorf("artist name cannot exceed 500 characters, got %d", len(a.Name))
	}
	return nil
}
