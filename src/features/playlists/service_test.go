package playlists

import (
	"context"
	"errors"
	"testing"

	"github.com/okvist/trackshelf/src/features/config"
	"github.com/okvist/trackshelf/src/music"
)

type membership struct {
	playlistID int
	trackID    int
}

// MockPlaylistRepo is a mock implementation of music.PlaylistRepository
type MockPlaylistRepo struct {
	music.PlaylistRepository // Embed interface to avoid implementing all methods for now, will panic if unused methods called
	playlists                map[int]*music.Playlist
	memberships              map[membership]bool

	addCalls    int
	removeCalls int
	updateCalls int

	lastLimit  int
	lastOffset int
}

func NewMockPlaylistRepo() *MockPlaylistRepo {
	return &MockPlaylistRepo{
		playlists:   make(map[int]*music.Playlist),
		memberships: make(map[membership]bool),
	}
}

func (m *MockPlaylistRepo) Create(ctx context.Context, playlist *music.Playlist) error {
	if _, ok := m.playlists[playlist.ID]; ok {
		return errors.New("playlist already exists")
	}
	m.playlists[playlist.ID] = playlist
	return nil
}

func (m *MockPlaylistRepo) GetByID(ctx context.Context, id int) (*music.Playlist, error) {
	return m.playlists[id], nil
}

func (m *MockPlaylistRepo) Update(ctx context.Context, playlist *music.Playlist) error {
	m.updateCalls++
	m.playlists[playlist.ID] = playlist
	return nil
}

func (m *MockPlaylistRepo) GetMaxID(ctx context.Context) (int, error) {
	max := 0
	for id := range m.playlists {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (m *MockPlaylistRepo) ContainsTrack(ctx context.Context, playlistID, trackID int) (bool, error) {
	return m.memberships[membership{playlistID, trackID}], nil
}

func (m *MockPlaylistRepo) AddTrackToPlaylist(ctx context.Context, playlistID, trackID int) error {
	key := membership{playlistID, trackID}
	if m.memberships[key] {
		return errors.New("UNIQUE constraint failed: playlist_track.playlist_id, playlist_track.track_id")
	}
	m.addCalls++
	m.memberships[key] = true
	return nil
}

func (m *MockPlaylistRepo) RemoveTrackFromPlaylist(ctx context.Context, playlistID, trackID int) error {
	m.removeCalls++
	delete(m.memberships, membership{playlistID, trackID})
	return nil
}

func (m *MockPlaylistRepo) GetTracksForPlaylistPaginated(ctx context.Context, playlistID, limit, offset int) ([]*music.Track, error) {
	m.lastLimit = limit
	m.lastOffset = offset
	return []*music.Track{}, nil
}

func (m *MockPlaylistRepo) GetTracksCountForPlaylist(ctx context.Context, playlistID int) (int, error) {
	count := 0
	for key := range m.memberships {
		if key.playlistID == playlistID {
			count++
		}
	}
	return count, nil
}

func testConfigManager() *config.Manager {
	return config.NewManager(&config.Config{
		Paging: config.Paging{DefaultPageSize: 15, MaxPageSize: 100},
	})
}

func TestCreatePlaylist_AssignsNextID(t *testing.T) {
	mockRepo := NewMockPlaylistRepo()
	mockRepo.playlists[6] = &music.Playlist{ID: 6, Name: "Morning"}
	service := NewService(mockRepo, testConfigManager())

	playlist, err := service.CreatePlaylist(context.Background(), "Evening")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if playlist.ID != 7 {
		t.Errorf("expected id 7, got %d", playlist.ID)
	}
}

func TestCreatePlaylist_RejectsEmptyName(t *testing.T) {
	mockRepo := NewMockPlaylistRepo()
	service := NewService(mockRepo, testConfigManager())

	if _, err := service.CreatePlaylist(context.Background(), "   "); err == nil {
		t.Fatal("expected validation error")
	}
	if len(mockRepo.playlists) != 0 {
		t.Error("playlist must not be stored")
	}
}

func TestAddTrackToPlaylist_IsIdempotent(t *testing.T) {
	mockRepo := NewMockPlaylistRepo()
	service := NewService(mockRepo, testConfigManager())
	ctx := context.Background()

	if err := service.AddTrackToPlaylist(ctx, 1, 9); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := service.AddTrackToPlaylist(ctx, 1, 9); err != nil {
		t.Fatalf("duplicate add must be a no-op, got %v", err)
	}
	if mockRepo.addCalls != 1 {
		t.Errorf("expected 1 insert, got %d", mockRepo.addCalls)
	}
	if !mockRepo.memberships[membership{1, 9}] {
		t.Error("membership missing")
	}
}

func TestRemoveTrackFromPlaylist_AbsentIsNoError(t *testing.T) {
	mockRepo := NewMockPlaylistRepo()
	service := NewService(mockRepo, testConfigManager())

	if err := service.RemoveTrackFromPlaylist(context.Background(), 1, 9); err != nil {
		t.Fatalf("removing an absent track must not fail, got %v", err)
	}
	if mockRepo.removeCalls != 1 {
		t.Errorf("expected delete to reach the repository, got %d calls", mockRepo.removeCalls)
	}
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	mockRepo := NewMockPlaylistRepo()
	service := NewService(mockRepo, testConfigManager())
	ctx := context.Background()

	if err := service.AddTrackToPlaylist(ctx, 2, 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := service.RemoveTrackFromPlaylist(ctx, 2, 4); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if mockRepo.memberships[membership{2, 4}] {
		t.Error("membership should be gone")
	}

	// Adding again after removal inserts a fresh row.
	if err := service.AddTrackToPlaylist(ctx, 2, 4); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if mockRepo.addCalls != 2 {
		t.Errorf("expected 2 inserts, got %d", mockRepo.addCalls)
	}
}

func TestUpdatePlaylistName_MissingIDIsSilentNoOp(t *testing.T) {
	mockRepo := NewMockPlaylistRepo()
	service := NewService(mockRepo, testConfigManager())

	if err := service.UpdatePlaylistName(context.Background(), 42, "Ghost"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if mockRepo.updateCalls != 0 {
		t.Error("update must not reach the repository for a missing id")
	}
}

func TestUpdatePlaylistName_Renames(t *testing.T) {
	mockRepo := NewMockPlaylistRepo()
	mockRepo.playlists[1] = &music.Playlist{ID: 1, Name: "Old"}
	service := NewService(mockRepo, testConfigManager())

	if err := service.UpdatePlaylistName(context.Background(), 1, "New"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mockRepo.playlists[1].Name != "New" {
		t.Errorf("expected rename, got %q", mockRepo.playlists[1].Name)
	}
}

func TestGetPlaylistTracksPage_NormalizesPaging(t *testing.T) {
	mockRepo := NewMockPlaylistRepo()
	service := NewService(mockRepo, testConfigManager())

	if _, _, err := service.GetPlaylistTracksPage(context.Background(), 1, -5, 0); err != nil {
		t.Fatalf("GetPlaylistTracksPage: %v", err)
	}
	if mockRepo.lastLimit != 15 || mockRepo.lastOffset != 0 {
		t.Errorf("expected limit 15 offset 0, got limit %d offset %d", mockRepo.lastLimit, mockRepo.lastOffset)
	}

	if _, _, err := service.GetPlaylistTracksPage(context.Background(), 1, 30, 999); err != nil {
		t.Fatalf("GetPlaylistTracksPage: %v", err)
	}
	if mockRepo.lastLimit != 100 || mockRepo.lastOffset != 30 {
		t.Errorf("expected clamped limit 100 offset 30, got limit %d offset %d", mockRepo.lastLimit, mockRepo.lastOffset)
	}
}

func TestGetPlaylistTracksPage_ReturnsTotalCount(t *testing.T) {
	mockRepo := NewMockPlaylistRepo()
	mockRepo.memberships[membership{1, 2}] = true
	mockRepo.memberships[membership{1, 7}] = true
	mockRepo.memberships[membership{3, 2}] = true
	service := NewService(mockRepo, testConfigManager())

	_, total, err := service.GetPlaylistTracksPage(context.Background(), 1, 0, 10)
	if err != nil {
		t.Fatalf("GetPlaylistTracksPage: %v", err)
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
}
