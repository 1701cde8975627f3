package music

import (
	"fmt"
	"strings"
)

// Track represents a single catalog track. AlbumID, GenreID and Composer are
// optional; MediaTypeID is required. Milliseconds is the raw duration as
// stored, mm:ss formatting belongs to the presentation layer.
type Track struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	AlbumID      *int    `json:"album_id,omitempty"`
	MediaTypeID  int     `json:"media_type_id"`
	GenreID      *int    `json:"genre_id,omitempty"`
	Composer     string  `json:"composer,omitempty"`
	Milliseconds int     `json:"milliseconds"`
	Bytes        int64   `json:"bytes"`
	UnitPrice    float64 `json:"unit_price"`

	// Album is the resolved parent, looked up by AlbumID for display.
	Album *Album `json:"album,omitempty"`
}

// Validate validates the track fields.
func (t *Track) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("track name cannot be empty")
	}
	if len(t.Name) > 500 {
		return fmt.Errorf("track name cannot exceed 500 characters, got %d", len(t.Name))
	}
	if t.MediaTypeID <= 0 {
		return fmt.Errorf("track must reference a media type")
	}
	if t.Milliseconds < 0 {
		return fmt.Errorf("duration cannot be negative, got %d", t.Milliseconds)
	}
	if t.Bytes < 0 {
		return fmt.Errorf("bytes cannot be negative, got %d", t.Bytes)
	}
	if t.UnitPrice < 0 {
		return fmt.Errorf("unit price cannot be negative, got %f", t.UnitPrice)
	}
	if len(t.Composer) > 500 {
		return fmt.Errorf("composer cannot exceed 500 characters, got %d", len(t.Composer))
	}
	return nil
}
