package music

import (
	"fmt"
	"strings"
)

// Album represents a collection of tracks owned by a single artist.
type Album struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ArtistID int    `json:"artist_id"`

	// Artist is the resolved owner, looked up by ArtistID for display.
	// The foreign key is authoritative; the pointer never owns the artist.
	Artist *Artist `json:"artist,omitempty"`

	// Tracks is populated only by tree reads.
	Tracks []*Track `json:"tracks,omitempty"`
}

// Validate validates the album fields.
func (a *Album) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("album title cannot be empty")
	}
	if len(a.Title) > 500 {
		return fmt.Errorf("album title cannot exceed 500 characters, got %d", len(a.Title))
	}
	if a.ArtistID <= 0 {
		return fmt.Errorf("album must reference an artist")
	}
	return nil
}
