package playlists

import (
	"context"
	"log/slog"

	"github.com/okvist/trackshelf/src/features/config"
	"github.com/okvist/trackshelf/src/music"
)

// Service is the domain service for the playlists feature. Membership is a
// plain set: adding twice is a no-op, removing never fails on absence.
type Service struct {
	playlistRepo  music.PlaylistRepository
	configManager *config.Manager
}

// NewService creates a new playlists service.
func NewService(playlistRepo music.PlaylistRepository, cfgManager *config.Manager) *Service {
	return &Service{
		playlistRepo:  playlistRepo,
		configManager: cfgManager,
	}
}

// CreatePlaylist creates a new playlist with the next free id.
func (s *Service) CreatePlaylist(ctx context.Context, name string) (*music.Playlist, error) {
	slog.Debug("CreatePlaylist service called", "name", name)

	maxID, err := s.playlistRepo.GetMaxID(ctx)
	if err != nil {
		slog.Error("CreatePlaylist max id failed", "error", err)
		return nil, err
	}

	playlist := &music.Playlist{ID: maxID + 1, Name: name}
	if err := playlist.Validate(); err != nil {
		slog.Error("CreatePlaylist validation failed", "error", err)
		return nil, err
	}

	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		slog.Error("CreatePlaylist failed", "name", name, "error", err)
		return nil, err
	}

	slog.Debug("CreatePlaylist completed", "id", playlist.ID, "name", name)
	return playlist, nil
}

// GetPlaylist gets a playlist by id, or nil when it doesn't exist.
func (s *Service) GetPlaylist(ctx context.Context, id int) (*music.Playlist, error) {
	slog.Debug("GetPlaylist service called", "id", id)

	playlist, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		slog.Error("GetPlaylist failed", "id", id, "error", err)
		return nil, err
	}

	return playlist, nil
}

// GetPlaylists gets all playlists, ordered by name.
func (s *Service) GetPlaylists(ctx context.Context) ([]*music.Playlist, error) {
	slog.Debug("GetPlaylists service called")

	playlists, err := s.playlistRepo.GetAll(ctx)
	if err != nil {
		slog.Error("GetPlaylists failed", "error", err)
		return nil, err
	}

	slog.Debug("GetPlaylists completed", "count", len(playlists))
	return playlists, nil
}

// UpdatePlaylistName renames a playlist. Renaming an id that no longer
// exists is a silent no-op.
func (s *Service) UpdatePlaylistName(ctx context.Context, id int, name string) error {
	slog.Debug("UpdatePlaylistName service called", "id", id, "name", name)

	existing, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		slog.Error("UpdatePlaylistName lookup failed", "id", id, "error", err)
		return err
	}
	if existing == nil {
		slog.Debug("UpdatePlaylistName skipped, playlist not found", "id", id)
		return nil
	}

	existing.Name = name
	if err := s.playlistRepo.Update(ctx, existing); err != nil {
		slog.Error("UpdatePlaylistName failed", "id", id, "error", err)
		return err
	}

	slog.Debug("UpdatePlaylistName completed", "id", id)
	return nil
}

// DeletePlaylist deletes a playlist; the repository drops its membership
// rows in the same transaction.
func (s *Service) DeletePlaylist(ctx context.Context, id int) error {
	slog.Debug("DeletePlaylist service called", "id", id)

	if err := s.playlistRepo.Delete(ctx, id); err != nil {
		slog.Error("DeletePlaylist failed", "id", id, "error", err)
		return err
	}

	slog.Debug("DeletePlaylist completed", "id", id)
	return nil
}

// AddTrackToPlaylist adds a track to a playlist. Adding a track that is
// already a member is a no-op, not an error.
func (s *Service) AddTrackToPlaylist(ctx context.Context, playlistID, trackID int) error {
	slog.Debug("AddTrackToPlaylist service called", "playlistID", playlistID, "trackID", trackID)

	contains, err := s.playlistRepo.ContainsTrack(ctx, playlistID, trackID)
	if err != nil {
		slog.Error("AddTrackToPlaylist membership check failed", "playlistID", playlistID, "trackID", trackID, "error", err)
		return err
	}
	if contains {
		slog.Debug("AddTrackToPlaylist skipped, track already in playlist", "playlistID", playlistID, "trackID", trackID)
		return nil
	}

	if err := s.playlistRepo.AddTrackToPlaylist(ctx, playlistID, trackID); err != nil {
		slog.Error("AddTrackToPlaylist failed", "playlistID", playlistID, "trackID", trackID, "error", err)
		return err
	}

	slog.Debug("AddTrackToPlaylist completed", "playlistID", playlistID, "trackID", trackID)
	return nil
}

// RemoveTrackFromPlaylist removes a track from a playlist. Removing a track
// that isn't a member is a no-op.
func (s *Service) RemoveTrackFromPlaylist(ctx context.Context, playlistID, trackID int) error {
	slog.Debug("RemoveTrackFromPlaylist service called", "playlistID", playlistID, "trackID", trackID)

	if err := s.playlistRepo.RemoveTrackFromPlaylist(ctx, playlistID, trackID); err != nil {
		slog.Error("RemoveTrackFromPlaylist failed", "playlistID", playlistID, "trackID", trackID, "error", err)
		return err
	}

	slog.Debug("RemoveTrackFromPlaylist completed", "playlistID", playlistID, "trackID", trackID)
	return nil
}

// GetPlaylistTracks gets every track in a playlist, ordered by name.
func (s *Service) GetPlaylistTracks(ctx context.Context, playlistID int) ([]*music.Track, error) {
	slog.Debug("GetPlaylistTracks service called", "playlistID", playlistID)

	tracks, err := s.playlistRepo.GetTracksForPlaylist(ctx, playlistID)
	if err != nil {
		slog.Error("GetPlaylistTracks failed", "playlistID", playlistID, "error", err)
		return nil, err
	}

	slog.Debug("GetPlaylistTracks completed", "playlistID", playlistID, "count", len(tracks))
	return tracks, nil
}

// GetPlaylistTracksPage gets one page of a playlist's tracks, ordered by
// ascending track id, plus the playlist's total track count.
func (s *Service) GetPlaylistTracksPage(ctx context.Context, playlistID, skip, take int) ([]*music.Track, int, error) {
	slog.Debug("GetPlaylistTracksPage service called", "playlistID", playlistID, "skip", skip, "take", take)

	paging := s.configManager.Get().Paging
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = paging.DefaultPageSize
	}
	if paging.MaxPageSize > 0 && take > paging.MaxPageSize {
		take = paging.MaxPageSize
	}

	tracks, err := s.playlistRepo.GetTracksForPlaylistPaginated(ctx, playlistID, take, skip)
	if err != nil {
		slog.Error("GetPlaylistTracksPage failed", "playlistID", playlistID, "error", err)
		return nil, 0, err
	}

	count, err := s.playlistRepo.GetTracksCountForPlaylist(ctx, playlistID)
	if err != nil {
		slog.Error("GetPlaylistTracksPage count failed", "playlistID", playlistID, "error", err)
		return nil, 0, err
	}

	slog.Debug("GetPlaylistTracksPage completed", "playlistID", playlistID, "count", len(tracks), "total", count)
	return tracks, count, nil
}
