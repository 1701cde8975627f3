package library

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/okvist/trackshelf/src/features/config"
	"github.com/okvist/trackshelf/src/music"
)

// MockCatalog is a mock implementation of music.Catalog
type MockCatalog struct {
	music.Catalog // Embed interface to avoid implementing all methods for now, will panic if unused methods called
	artists       map[int]*music.Artist
	tracks        map[int]*music.Track
	mediaTypes    []*music.MediaType

	addedMediaTypes []*music.MediaType

	albumsPerArtist map[int]int
	tracksPerAlbum  map[int]int

	deletedArtists []int
	deletedAlbums  []int
	updatedArtists []*music.Artist

	lastLimit  int
	lastOffset int
	lastFilter string
}

func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		artists:         make(map[int]*music.Artist),
		tracks:          make(map[int]*music.Track),
		albumsPerArtist: make(map[int]int),
		tracksPerAlbum:  make(map[int]int),
	}
}

func (m *MockCatalog) AddArtist(ctx context.Context, artist *music.Artist) error {
	if _, ok := m.artists[artist.ID]; ok {
		return errors.New("artist already exists")
	}
	m.artists[artist.ID] = artist
	return nil
}

func (m *MockCatalog) GetArtist(ctx context.Context, id int) (*music.Artist, error) {
	return m.artists[id], nil
}

func (m *MockCatalog) GetArtistByName(ctx context.Context, name string) (*music.Artist, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, artist := range m.artists {
		if artist.Name != "" && strings.ToLower(strings.TrimSpace(artist.Name)) == want {
			return artist, nil
		}
	}
	return nil, nil
}

func (m *MockCatalog) GetMaxArtistID(ctx context.Context) (int, error) {
	max := 0
	for id := range m.artists {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (m *MockCatalog) UpdateArtist(ctx context.Context, artist *music.Artist) error {
	m.updatedArtists = append(m.updatedArtists, artist)
	return nil
}

func (m *MockCatalog) DeleteArtist(ctx context.Context, id int) error {
	m.deletedArtists = append(m.deletedArtists, id)
	delete(m.artists, id)
	return nil
}

func (m *MockCatalog) DeleteAlbum(ctx context.Context, id int) error {
	m.deletedAlbums = append(m.deletedAlbums, id)
	return nil
}

func (m *MockCatalog) GetAlbumsCountForArtist(ctx context.Context, artistID int) (int, error) {
	return m.albumsPerArtist[artistID], nil
}

func (m *MockCatalog) GetTracksCountForAlbum(ctx context.Context, albumID int) (int, error) {
	return m.tracksPerAlbum[albumID], nil
}

func (m *MockCatalog) GetMediaTypes(ctx context.Context) ([]*music.MediaType, error) {
	return m.mediaTypes, nil
}

func (m *MockCatalog) GetMediaTypeByName(ctx context.Context, name string) (*music.MediaType, error) {
	for _, mt := range m.mediaTypes {
		if strings.EqualFold(mt.Name, name) {
			return mt, nil
		}
	}
	return nil, nil
}

func (m *MockCatalog) GetMaxMediaTypeID(ctx context.Context) (int, error) {
	max := 0
	for _, mt := range m.mediaTypes {
		if mt.ID > max {
			max = mt.ID
		}
	}
	return max, nil
}

func (m *MockCatalog) AddMediaType(ctx context.Context, mediaType *music.MediaType) error {
	m.mediaTypes = append(m.mediaTypes, mediaType)
	m.addedMediaTypes = append(m.addedMediaTypes, mediaType)
	return nil
}

func (m *MockCatalog) GetMaxTrackID(ctx context.Context) (int, error) {
	max := 0
	for id := range m.tracks {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (m *MockCatalog) AddTrack(ctx context.Context, track *music.Track) error {
	if _, ok := m.tracks[track.ID]; ok {
		return errors.New("track already exists")
	}
	m.tracks[track.ID] = track
	return nil
}

func (m *MockCatalog) GetArtistsPaginated(ctx context.Context, limit, offset int, nameFilter string) ([]*music.Artist, error) {
	m.lastLimit = limit
	m.lastOffset = offset
	m.lastFilter = nameFilter
	return []*music.Artist{}, nil
}

func (m *MockCatalog) GetArtistsCount(ctx context.Context, nameFilter string) (int, error) {
	return len(m.artists), nil
}

func testConfigManager() *config.Manager {
	return config.NewManager(&config.Config{
		Paging: config.Paging{DefaultPageSize: 15, MaxPageSize: 100},
	})
}

func TestCreateArtist_AssignsNextID(t *testing.T) {
	mockCat := NewMockCatalog()
	mockCat.artists[3] = &music.Artist{ID: 3, Name: "Existing"}
	service := NewService(mockCat, testConfigManager())

	artist, err := service.CreateArtist(context.Background(), "Norah Jones")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if artist.ID != 4 {
		t.Errorf("expected id 4, got %d", artist.ID)
	}
}

func TestCreateArtist_TrimsName(t *testing.T) {
	mockCat := NewMockCatalog()
	service := NewService(mockCat, testConfigManager())

	artist, err := service.CreateArtist(context.Background(), "  Norah Jones  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if artist.Name != "Norah Jones" {
		t.Errorf("expected trimmed name, got %q", artist.Name)
	}
}

func TestCreateArtist_ReusesExistingCaseInsensitive(t *testing.T) {
	mockCat := NewMockCatalog()
	existing := &music.Artist{ID: 1, Name: "Norah Jones"}
	mockCat.artists[1] = existing
	service := NewService(mockCat, testConfigManager())

	artist, err := service.CreateArtist(context.Background(), "  norah JONES ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if artist.ID != existing.ID {
		t.Errorf("expected existing artist %d, got %d", existing.ID, artist.ID)
	}
	if len(mockCat.artists) != 1 {
		t.Errorf("expected no new artist, have %d", len(mockCat.artists))
	}
}

func TestCreateTrack_UsesFirstMediaTypeWhenUnset(t *testing.T) {
	mockCat := NewMockCatalog()
	mockCat.mediaTypes = []*music.MediaType{
		{ID: 2, Name: "MPEG audio file"},
		{ID: 5, Name: "AAC audio file"},
	}
	service := NewService(mockCat, testConfigManager())

	track, err := service.CreateTrack(context.Background(), &music.Track{Name: "Sunrise"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if track.MediaTypeID != 2 {
		t.Errorf("expected first media type 2, got %d", track.MediaTypeID)
	}
	if track.ID != 1 {
		t.Errorf("expected id 1, got %d", track.ID)
	}
}

func TestCreateTrack_FailsWithoutMediaTypes(t *testing.T) {
	mockCat := NewMockCatalog()
	service := NewService(mockCat, testConfigManager())

	_, err := service.CreateTrack(context.Background(), &music.Track{Name: "Sunrise"})
	if !errors.Is(err, music.ErrNoMediaTypes) {
		t.Fatalf("expected ErrNoMediaTypes, got %v", err)
	}
	if len(mockCat.tracks) != 0 {
		t.Error("track must not be stored")
	}
}

func TestCreateTrack_ExplicitMediaTypeStillNeedsVocabulary(t *testing.T) {
	mockCat := NewMockCatalog()
	service := NewService(mockCat, testConfigManager())

	// Supplying a media type id does not sidestep the configuration check;
	// with an empty vocabulary the id cannot reference anything.
	_, err := service.CreateTrack(context.Background(), &music.Track{Name: "Sunrise", MediaTypeID: 3})
	if !errors.Is(err, music.ErrNoMediaTypes) {
		t.Fatalf("expected ErrNoMediaTypes, got %v", err)
	}
	if len(mockCat.tracks) != 0 {
		t.Error("track must not be stored")
	}
}

func TestCreateTrack_KeepsExplicitMediaType(t *testing.T) {
	mockCat := NewMockCatalog()
	mockCat.mediaTypes = []*music.MediaType{
		{ID: 2, Name: "MPEG audio file"},
		{ID: 5, Name: "AAC audio file"},
	}
	service := NewService(mockCat, testConfigManager())

	track, err := service.CreateTrack(context.Background(), &music.Track{Name: "Sunrise", MediaTypeID: 5})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if track.MediaTypeID != 5 {
		t.Errorf("expected media type 5 to be kept, got %d", track.MediaTypeID)
	}
}

func TestUpdateArtist_MissingIDIsSilentNoOp(t *testing.T) {
	mockCat := NewMockCatalog()
	service := NewService(mockCat, testConfigManager())

	err := service.UpdateArtist(context.Background(), &music.Artist{ID: 99, Name: "Ghost"})
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if len(mockCat.updatedArtists) != 0 {
		t.Error("update must not reach the catalog for a missing id")
	}
}

func TestUpdateArtist_ExistingIDIsUpdated(t *testing.T) {
	mockCat := NewMockCatalog()
	mockCat.artists[1] = &music.Artist{ID: 1, Name: "Old Name"}
	service := NewService(mockCat, testConfigManager())

	err := service.UpdateArtist(context.Background(), &music.Artist{ID: 1, Name: "New Name"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockCat.updatedArtists) != 1 {
		t.Fatalf("expected 1 update, got %d", len(mockCat.updatedArtists))
	}
}

func TestDeleteArtist_RefusedWhileAlbumsExist(t *testing.T) {
	mockCat := NewMockCatalog()
	mockCat.artists[1] = &music.Artist{ID: 1, Name: "Norah Jones"}
	mockCat.albumsPerArtist[1] = 2
	service := NewService(mockCat, testConfigManager())

	err := service.DeleteArtist(context.Background(), 1)
	var depErr *music.HasDependentsError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected HasDependentsError, got %v", err)
	}
	if depErr.Dependents != 2 {
		t.Errorf("expected 2 dependents, got %d", depErr.Dependents)
	}
	if len(mockCat.deletedArtists) != 0 {
		t.Error("artist must not be deleted")
	}
}

func TestDeleteArtist_WithoutAlbums(t *testing.T) {
	mockCat := NewMockCatalog()
	mockCat.artists[1] = &music.Artist{ID: 1, Name: "Norah Jones"}
	service := NewService(mockCat, testConfigManager())

	if err := service.DeleteArtist(context.Background(), 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockCat.deletedArtists) != 1 {
		t.Error("expected artist to be deleted")
	}
}

func TestDeleteAlbum_RefusedWhileTracksExist(t *testing.T) {
	mockCat := NewMockCatalog()
	mockCat.tracksPerAlbum[5] = 11
	service := NewService(mockCat, testConfigManager())

	err := service.DeleteAlbum(context.Background(), 5)
	var depErr *music.HasDependentsError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected HasDependentsError, got %v", err)
	}
	if len(mockCat.deletedAlbums) != 0 {
		t.Error("album must not be deleted")
	}
}

func TestGetArtistsPage_NormalizesPaging(t *testing.T) {
	tests := []struct {
		name       string
		skip, take int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 15, 0},
		{"negative skip", -3, 10, 10, 0},
		{"take clamped to max", 0, 500, 100, 0},
		{"plain page", 30, 15, 15, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockCat := NewMockCatalog()
			service := NewService(mockCat, testConfigManager())

			_, _, err := service.GetArtistsPage(context.Background(), tc.skip, tc.take, "")
			if err != nil {
				t.Fatalf("GetArtistsPage: %v", err)
			}
			if mockCat.lastLimit != tc.wantLimit {
				t.Errorf("limit: want %d, got %d", tc.wantLimit, mockCat.lastLimit)
			}
			if mockCat.lastOffset != tc.wantOffset {
				t.Errorf("offset: want %d, got %d", tc.wantOffset, mockCat.lastOffset)
			}
		})
	}
}

func TestGetArtistsPage_TrimsSearch(t *testing.T) {
	mockCat := NewMockCatalog()
	service := NewService(mockCat, testConfigManager())

	if _, _, err := service.GetArtistsPage(context.Background(), 0, 0, "  jones  "); err != nil {
		t.Fatalf("GetArtistsPage: %v", err)
	}
	if mockCat.lastFilter != "jones" {
		t.Errorf("expected trimmed filter, got %q", mockCat.lastFilter)
	}

	if _, _, err := service.GetArtistsPage(context.Background(), 0, 0, "   "); err != nil {
		t.Fatalf("GetArtistsPage: %v", err)
	}
	if mockCat.lastFilter != "" {
		t.Errorf("whitespace-only search must mean no filter, got %q", mockCat.lastFilter)
	}
}

func TestSeedMediaTypes_SkipsExistingNames(t *testing.T) {
	mockCat := NewMockCatalog()
	mockCat.mediaTypes = []*music.MediaType{{ID: 1, Name: "MPEG audio file"}}
	service := NewService(mockCat, testConfigManager())

	err := service.SeedMediaTypes(context.Background(), []string{"mpeg AUDIO file", "Video file", ""})
	if err != nil {
		t.Fatalf("SeedMediaTypes: %v", err)
	}
	if len(mockCat.addedMediaTypes) != 1 {
		t.Fatalf("expected 1 new media type, got %d", len(mockCat.addedMediaTypes))
	}
	if mockCat.addedMediaTypes[0].Name != "Video file" || mockCat.addedMediaTypes[0].ID != 2 {
		t.Errorf("unexpected media type added: %+v", mockCat.addedMediaTypes[0])
	}
}
