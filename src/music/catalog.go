package music

import (
	"context"
)

// Catalog is the interface for managing the music catalog.
// It's our primary repository interface for the catalog domain.
type Catalog interface {
	// Artist methods
	AddArtist(ctx context.Context, artist *Artist) error
	GetArtist(ctx context.Context, id int) (*Artist, error)
	UpdateArtist(ctx context.Context, artist *Artist) error
	DeleteArtist(ctx context.Context, id int) error
	GetArtistsPaginated(ctx context.Context, limit, offset int, nameFilter string) ([]*Artist, error)
	GetArtistsCount(ctx context.Context, nameFilter string) (int, error)
	GetArtistByName(ctx context.Context, name string) (*Artist, error)
	GetMaxArtistID(ctx context.Context) (int, error)
	GetAlbumsCountForArtist(ctx context.Context, artistID int) (int, error)
	GetArtistsTree(ctx context.Context) ([]*Artist, error)

	// Album methods
	AddAlbum(ctx context.Context, album *Album) error
	GetAlbum(ctx context.Context, id int) (*Album, error)
	UpdateAlbum(ctx context.Context, album *Album) error
	DeleteAlbum(ctx context.Context, id int) error
	GetAlbumsPaginated(ctx context.Context, limit, offset int, titleFilter string) ([]*Album, error)
	GetAlbumsCount(ctx context.Context, titleFilter string) (int, error)
	GetMaxAlbumID(ctx context.Context) (int, error)
	GetTracksCountForAlbum(ctx context.Context, albumID int) (int, error)

	// Track methods
	AddTrack(ctx context.Context, track *Track) error
	GetTrack(ctx context.Context, id int) (*Track, error)
	UpdateTrack(ctx context.Context, track *Track) error
	DeleteTrack(ctx context.Context, id int) error
	GetTracks(ctx context.Context) ([]*Track, error)
	GetTracksPaginated(ctx context.Context, limit, offset int, nameFilter string) ([]*Track, error)
	GetTracksCount(ctx context.Context, nameFilter string) (int, error)
	GetMaxTrackID(ctx context.Context) (int, error)

	// Media type methods
	AddMediaType(ctx context.Context, mediaType *MediaType) error
	GetMediaTypes(ctx context.Context) ([]*MediaType, error)
	GetMediaTypeByName(ctx context.Context, name string) (*MediaType, error)
	GetMaxMediaTypeID(ctx context.Context) (int, error)
}
