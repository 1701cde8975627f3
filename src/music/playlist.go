package music

import (
	"context"
	"fmt"
	"strings"
)

// Playlist represents a named collection of tracks. Membership lives in the
// playlist_track association table; no ordering column is stored, the listing
// order is always ascending track id at read time.
type Playlist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Validate validates the playlist fields.
func (p *Playlist) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("playlist name cannot be empty")
	}
	if len(p.Name) > 200 {
		return fmt.Errorf("playlist name cannot exceed 200 characters, got %d", len(p.Name))
	}
	return nil
}

// PlaylistRepository defines the interface for playlist data access operations.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id int) (*Playlist, error)
	GetAll(ctx context.Context) ([]*Playlist, error)
	Update(ctx context.Context, playlist *Playlist) error
	Delete(ctx context.Context, id int) error
	GetMaxID(ctx context.Context) (int, error)
	AddTrackToPlaylist(ctx context.Context, playlistID, trackID int) error
	RemoveTrackFromPlaylist(ctx context.Context, playlistID, trackID int) error
	ContainsTrack(ctx context.Context, playlistID, trackID int) (bool, error)
	GetTracksForPlaylist(ctx context.Context, playlistID int) ([]*Track, error)
	GetTracksForPlaylistPaginated(ctx context.Context, playlistID, limit, offset int) ([]*Track, error)
	GetTracksCountForPlaylist(ctx context.Context, playlistID int) (int, error)
}
