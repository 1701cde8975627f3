package library

import (
	"context"
	"log/slog"
	"strings"

	"github.com/okvist/trackshelf/src/features/config"
	"github.com/okvist/trackshelf/src/music"
)

// Service is the domain service for the library feature. It owns id
// assignment, paging normalization and the delete guards; the catalog
// persists whatever it is handed.
type Service struct {
	catalog       music.Catalog
	configManager *config.Manager
}

// NewService creates a new library service.
func NewService(catalog music.Catalog, cfgManager *config.Manager) *Service {
	return &Service{
		catalog:       catalog,
		configManager: cfgManager,
	}
}

// normalizePage clamps skip/take into usable limit/offset values. A
// non-positive take falls back to the configured default page size, an
// oversized take is clamped to the configured maximum.
func (s *Service) normalizePage(skip, take int) (limit, offset int) {
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
	return take, skip
}

// normalizeSearch trims the search text; whitespace-only input means no filter.
func normalizeSearch(search string) string {
	return strings.TrimSpace(search)
}

// GetArtistsPage returns one page of artists plus the total count of artists
// matching the search.
func (s *Service) GetArtistsPage(ctx context.Context, skip, take int, search string) ([]*music.Artist, int, error) {
	slog.Debug("GetArtistsPage service called", "skip", skip, "take", take, "search", search)
	limit, offset := s.normalizePage(skip, take)
	filter := normalizeSearch(search)

	artists, err := s.catalog.GetArtistsPaginated(ctx, limit, offset, filter)
	if err != nil {
		slog.Error("GetArtistsPage failed", "error", err)
		return nil, 0, err
	}
	count, err := s.catalog.GetArtistsCount(ctx, filter)
	if err != nil {
		slog.Error("GetArtistsPage count failed", "error", err)
		return nil, 0, err
	}
	slog.Debug("GetArtistsPage completed", "count", len(artists), "total", count)
	return artists, count, nil
}

// GetAlbumsPage returns one page of albums plus the total count of albums
// matching the search.
func (s *Service) GetAlbumsPage(ctx context.Context, skip, take int, search string) ([]*music.Album, int, error) {
	slog.Debug("GetAlbumsPage service called", "skip", skip, "take", take, "search", search)
	limit, offset := s.normalizePage(skip, take)
	filter := normalizeSearch(search)

	albums, err := s.catalog.GetAlbumsPaginated(ctx, limit, offset, filter)
	if err != nil {
		slog.Error("GetAlbumsPage failed", "error", err)
		return nil, 0, err
	}
	count, err := s.catalog.GetAlbumsCount(ctx, filter)
	if err != nil {
		slog.Error("GetAlbumsPage count failed", "error", err)
		return nil, 0, err
	}
	slog.Debug("GetAlbumsPage completed", "count", len(albums), "total", count)
	return albums, count, nil
}

// GetTracksPage returns one page of tracks plus the total count of tracks
// matching the search.
func (s *Service) GetTracksPage(ctx context.Context, skip, take int, search string) ([]*music.Track, int, error) {
	slog.Debug("GetTracksPage service called", "skip", skip, "take", take, "search", search)
	limit, offset := s.normalizePage(skip, take)
	filter := normalizeSearch(search)

	tracks, err := s.catalog.GetTracksPaginated(ctx, limit, offset, filter)
	if err != nil {
		slog.Error("GetTracksPage failed", "error", err)
		return nil, 0, err
	}
	count, err := s.catalog.GetTracksCount(ctx, filter)
	if err != nil {
		slog.Error("GetTracksPage count failed", "error", err)
		return nil, 0, err
	}
	slog.Debug("GetTracksPage completed", "count", len(tracks), "total", count)
	return tracks, count, nil
}

// GetArtist returns a single artist, or nil when it doesn't exist.
func (s *Service) GetArtist(ctx context.Context, id int) (*music.Artist, error) {
	slog.Debug("GetArtist service called", "id", id)
	artist, err := s.catalog.GetArtist(ctx, id)
	if err != nil {
		slog.Error("GetArtist failed", "error", err, "id", id)
		return nil, err
	}
	return artist, nil
}

// GetAlbum returns a single album, or nil when it doesn't exist.
func (s *Service) GetAlbum(ctx context.Context, id int) (*music.Album, error) {
	slog.Debug("GetAlbum service called", "id", id)
	album, err := s.catalog.GetAlbum(ctx, id)
	if err != nil {
		slog.Error("GetAlbum failed", "error", err, "id", id)
		return nil, err
	}
	return album, nil
}

// GetTrack returns a single track, or nil when it doesn't exist.
func (s *Service) GetTrack(ctx context.Context, id int) (*music.Track, error) {
	slog.Debug("GetTrack service called", "id", id)
	track, err := s.catalog.GetTrack(ctx, id)
	if err != nil {
		slog.Error("GetTrack failed", "error", err, "id", id)
		return nil, err
	}
	return track, nil
}

// GetTracks returns all tracks, ordered by name.
func (s *Service) GetTracks(ctx context.Context) ([]*music.Track, error) {
	slog.Debug("GetTracks service called")
	tracks, err := s.catalog.GetTracks(ctx)
	if err != nil {
		slog.Error("GetTracks failed", "error", err)
		return nil, err
	}
	slog.Debug("GetTracks completed", "count", len(tracks))
	return tracks, nil
}

// GetArtistsTree returns all artists with albums and tracks nested under them.
func (s *Service) GetArtistsTree(ctx context.Context) ([]*music.Artist, error) {
	slog.Debug("GetArtistsTree service called")
	artists, err := s.catalog.GetArtistsTree(ctx)
	if err != nil {
		slog.Error("GetArtistsTree failed", "error", err)
		return nil, err
	}
	slog.Debug("GetArtistsTree completed", "count", len(artists))
	return artists, nil
}

// GetMediaTypes returns the media type vocabulary.
func (s *Service) GetMediaTypes(ctx context.Context) ([]*music.MediaType, error) {
	slog.Debug("GetMediaTypes service called")
	return s.catalog.GetMediaTypes(ctx)
}

// CreateArtist adds an artist, reusing an existing one when the trimmed name
// matches case-insensitively. The new id is the current maximum plus one.
func (s *Service) CreateArtist(ctx context.Context, name string) (*music.Artist, error) {
	slog.Debug("CreateArtist service called", "name", name)
	name = music.NormalizeName(name)

	if name != "" {
		existing, err := s.catalog.GetArtistByName(ctx, name)
		if err != nil {
			slog.Error("CreateArtist lookup failed", "error", err)
			return nil, err
		}
		if existing != nil {
			slog.Debug("CreateArtist reusing existing artist", "id", existing.ID)
			return existing, nil
		}
	}

	maxID, err := s.catalog.GetMaxArtistID(ctx)
	if err != nil {
		slog.Error("CreateArtist max id failed", "error", err)
		return nil, err
	}

	artist := &music.Artist{ID: maxID + 1, Name: name}
	if err := s.catalog.AddArtist(ctx, artist); err != nil {
		slog.Error("CreateArtist failed", "error", err)
		return nil, err
	}
	slog.Debug("CreateArtist completed", "id", artist.ID)
	return artist, nil
}

// CreateAlbum adds an album with the next free id.
func (s *Service) CreateAlbum(ctx context.Context, title string, artistID int) (*music.Album, error) {
	slog.Debug("CreateAlbum service called", "title", title, "artistID", artistID)

	maxID, err := s.catalog.GetMaxAlbumID(ctx)
	if err != nil {
		slog.Error("CreateAlbum max id failed", "error", err)
		return nil, err
	}

	album := &music.Album{ID: maxID + 1, Title: title, ArtistID: artistID}
	if err := s.catalog.AddAlbum(ctx, album); err != nil {
		slog.Error("CreateAlbum failed", "error", err)
		return nil, err
	}
	slog.Debug("CreateAlbum completed", "id", album.ID)
	return album, nil
}

// CreateTrack adds a track with the next free id. An empty media type
// vocabulary refuses the create no matter what id the caller supplies; a zero
// media type id means "use the first configured media type".
func (s *Service) CreateTrack(ctx context.Context, track *music.Track) (*music.Track, error) {
	slog.Debug("CreateTrack service called", "name", track.Name)

	mediaTypes, err := s.catalog.GetMediaTypes(ctx)
	if err != nil {
		slog.Error("CreateTrack media type lookup failed", "error", err)
		return nil, err
	}
	if len(mediaTypes) == 0 {
		slog.Error("CreateTrack refused", "error", music.ErrNoMediaTypes)
		return nil, music.ErrNoMediaTypes
	}
	if track.MediaTypeID == 0 {
		track.MediaTypeID = mediaTypes[0].ID
	}

	maxID, err := s.catalog.GetMaxTrackID(ctx)
	if err != nil {
		slog.Error("CreateTrack max id failed", "error", err)
		return nil, err
	}

	track.ID = maxID + 1
	if err := s.catalog.AddTrack(ctx, track); err != nil {
		slog.Error("CreateTrack failed", "error", err)
		return nil, err
	}
	slog.Debug("CreateTrack completed", "id", track.ID)
	return track, nil
}

// UpdateArtist updates an artist. Updating an id that no longer exists is a
// silent no-op, so a stale edit never resurrects a deleted row.
func (s *Service) UpdateArtist(ctx context.Context, artist *music.Artist) error {
	slog.Debug("UpdateArtist service called", "id", artist.ID)

	existing, err := s.catalog.GetArtist(ctx, artist.ID)
	if err != nil {
		slog.Error("UpdateArtist lookup failed", "error", err, "id", artist.ID)
		return err
	}
	if existing == nil {
		slog.Debug("UpdateArtist skipped, artist not found", "id", artist.ID)
		return nil
	}

	if err := s.catalog.UpdateArtist(ctx, artist); err != nil {
		slog.Error("UpdateArtist failed", "error", err, "id", artist.ID)
		return err
	}
	return nil
}

// UpdateAlbum updates an album. Missing ids are a silent no-op.
func (s *Service) UpdateAlbum(ctx context.Context, album *music.Album) error {
	slog.Debug("UpdateAlbum service called", "id", album.ID)

	existing, err := s.catalog.GetAlbum(ctx, album.ID)
	if err != nil {
		slog.Error("UpdateAlbum lookup failed", "error", err, "id", album.ID)
		return err
	}
	if existing == nil {
		slog.Debug("UpdateAlbum skipped, album not found", "id", album.ID)
		return nil
	}

	if err := s.catalog.UpdateAlbum(ctx, album); err != nil {
		slog.Error("UpdateAlbum failed", "error", err, "id", album.ID)
		return err
	}
	return nil
}

// UpdateTrack updates a track. Missing ids are a silent no-op.
func (s *Service) UpdateTrack(ctx context.Context, track *music.Track) error {
	slog.Debug("UpdateTrack service called", "id", track.ID)

	existing, err := s.catalog.GetTrack(ctx, track.ID)
	if err != nil {
		slog.Error("UpdateTrack lookup failed", "error", err, "id", track.ID)
		return err
	}
	if existing == nil {
		slog.Debug("UpdateTrack skipped, track not found", "id", track.ID)
		return nil
	}

	if err := s.catalog.UpdateTrack(ctx, track); err != nil {
		slog.Error("UpdateTrack failed", "error", err, "id", track.ID)
		return err
	}
	return nil
}

// ArtistHasDependents reports whether any albums still reference the artist.
func (s *Service) ArtistHasDependents(ctx context.Context, id int) (bool, error) {
	count, err := s.catalog.GetAlbumsCountForArtist(ctx, id)
	if err != nil {
		slog.Error("ArtistHasDependents failed", "error", err, "id", id)
		return false, err
	}
	return count > 0, nil
}

// AlbumHasDependents reports whether any tracks still reference the album.
func (s *Service) AlbumHasDependents(ctx context.Context, id int) (bool, error) {
	count, err := s.catalog.GetTracksCountForAlbum(ctx, id)
	if err != nil {
		slog.Error("AlbumHasDependents failed", "error", err, "id", id)
		return false, err
	}
	return count > 0, nil
}

// DeleteArtist deletes an artist, refusing while any albums reference it.
func (s *Service) DeleteArtist(ctx context.Context, id int) error {
	slog.Debug("DeleteArtist service called", "id", id)

	count, err := s.catalog.GetAlbumsCountForArtist(ctx, id)
	if err != nil {
		slog.Error("DeleteArtist dependents check failed", "error", err, "id", id)
		return err
	}
	if count > 0 {
		return &music.HasDependentsError{Entity: "artist", ID: id, Dependents: count}
	}

	if err := s.catalog.DeleteArtist(ctx, id); err != nil {
		slog.Error("DeleteArtist failed", "error", err, "id", id)
		return err
	}
	slog.Debug("DeleteArtist completed", "id", id)
	return nil
}

// DeleteAlbum deletes an album, refusing while any tracks reference it.
func (s *Service) DeleteAlbum(ctx context.Context, id int) error {
	slog.Debug("DeleteAlbum service called", "id", id)

	count, err := s.catalog.GetTracksCountForAlbum(ctx, id)
	if err != nil {
		slog.Error("DeleteAlbum dependents check failed", "error", err, "id", id)
		return err
	}
	if count > 0 {
		return &music.HasDependentsError{Entity: "album", ID: id, Dependents: count}
	}

	if err := s.catalog.DeleteAlbum(ctx, id); err != nil {
		slog.Error("DeleteAlbum failed", "error", err, "id", id)
		return err
	}
	slog.Debug("DeleteAlbum completed", "id", id)
	return nil
}

// DeleteTrack deletes a track; the catalog drops its playlist membership
// rows in the same transaction.
func (s *Service) DeleteTrack(ctx context.Context, id int) error {
	slog.Debug("DeleteTrack service called", "id", id)
	if err := s.catalog.DeleteTrack(ctx, id); err != nil {
		slog.Error("DeleteTrack failed", "error", err, "id", id)
		return err
	}
	slog.Debug("DeleteTrack completed", "id", id)
	return nil
}

// SeedMediaTypes makes sure every configured media type name exists, adding
// missing ones with the next free id. Existing names are matched
// case-insensitively and never duplicated.
func (s *Service) SeedMediaTypes(ctx context.Context, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		existing, err := s.catalog.GetMediaTypeByName(ctx, name)
		if err != nil {
			slog.Error("SeedMediaTypes lookup failed", "error", err, "name", name)
			return err
		}
		if existing != nil {
			continue
		}

		maxID, err := s.catalog.GetMaxMediaTypeID(ctx)
		if err != nil {
			slog.Error("SeedMediaTypes max id failed", "error", err)
			return err
		}

		if err := s.catalog.AddMediaType(ctx, &music.MediaType{ID: maxID + 1, Name: name}); err != nil {
			slog.Error("SeedMediaTypes insert failed", "error", err, "name", name)
			return err
		}
		slog.Debug("SeedMediaTypes added media type", "name", name)
	}
	return nil
}
