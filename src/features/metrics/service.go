package metrics

import (
	"context"
	"log/slog"

	"github.com/okvist/trackshelf/src/music"
)

// Overview is a snapshot of the catalog totals, for dashboards.
type Overview struct {
	Artists    int `json:"artists"`
	Albums     int `json:"albums"`
	Tracks     int `json:"tracks"`
	Playlists  int `json:"playlists"`
	MediaTypes int `json:"media_types"`
}

// Service computes catalog statistics.
type Service struct {
	catalog      music.Catalog
	playlistRepo music.PlaylistRepository
}

// NewService creates a new metrics service.
func NewService(catalog music.Catalog, playlistRepo music.PlaylistRepository) *Service {
	return &Service{catalog: catalog, playlistRepo: playlistRepo}
}

// GetOverview returns the current catalog totals.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	slog.Debug("GetOverview service called")

	artists, err := s.catalog.GetArtistsCount(ctx, "")
	if err != nil {
		return nil, err
	}
	albums, err := s.catalog.GetAlbumsCount(ctx, "")
	if err != nil {
		return nil, err
	}
	tracks, err := s.catalog.GetTracksCount(ctx, "")
	if err != nil {
		return nil, err
	}
	playlists, err := s.playlistRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	mediaTypes, err := s.catalog.GetMediaTypes(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Artists:    artists,
		Albums:     albums,
		Tracks:     tracks,
		Playlists:  len(playlists),
		MediaTypes: len(mediaTypes),
	}, nil
}
