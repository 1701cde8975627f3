package library

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/okvist/trackshelf/src/music"
)

// Handler is the handler for the library feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the library feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetArtists is the handler for getting a page of artists.
func (h *Handler) GetArtists(c *fiber.Ctx) error {
	slog.Debug("GetArtists handler called")

	skip := c.QueryInt("skip", 0)
	take := c.QueryInt("take", 0)
	search := c.Query("search")

	artists, totalCount, err := h.service.GetArtistsPage(c.Context(), skip, take, search)
	if err != nil {
		slog.Error("Error loading artists", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading artists"})
	}

	return c.JSON(fiber.Map{
		"artists": artists,
		"pagination": fiber.Map{
			"skip":       skip,
			"take":       take,
			"totalCount": totalCount,
		},
	})
}

// GetAlbums is the handler for getting a page of albums.
func (h *Handler) GetAlbums(c *fiber.Ctx) error {
	slog.Debug("GetAlbums handler called")

	skip := c.QueryInt("skip", 0)
	take := c.QueryInt("take", 0)
	search := c.Query("search")

	albums, totalCount, err := h.service.GetAlbumsPage(c.Context(), skip, take, search)
	if err != nil {
		slog.Error("Error loading albums", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading albums"})
	}

	return c.JSON(fiber.Map{
		"albums": albums,
		"pagination": fiber.Map{
			"skip":       skip,
			"take":       take,
			"totalCount": totalCount,
		},
	})
}

// GetTracks is the handler for getting a page of tracks.
func (h *Handler) GetTracks(c *fiber.Ctx) error {
	slog.Debug("GetTracks handler called")

	skip := c.QueryInt("skip", 0)
	take := c.QueryInt("take", 0)
	search := c.Query("search")

	tracks, totalCount, err := h.service.GetTracksPage(c.Context(), skip, take, search)
	if err != nil {
		slog.Error("Error loading tracks", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading tracks"})
	}

	return c.JSON(fiber.Map{
		"tracks": tracks,
		"pagination": fiber.Map{
			"skip":       skip,
			"take":       take,
			"totalCount": totalCount,
		},
	})
}

// GetAllTracks is the handler for getting every track, for pickers.
func (h *Handler) GetAllTracks(c *fiber.Ctx) error {
	slog.Debug("GetAllTracks handler called")

	tracks, err := h.service.GetTracks(c.Context())
	if err != nil {
		slog.Error("Error loading tracks", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading tracks"})
	}

	return c.JSON(fiber.Map{"tracks": tracks})
}

// GetArtist is the handler for getting a single artist.
func (h *Handler) GetArtist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid artist id"})
	}

	artist, err := h.service.GetArtist(c.Context(), id)
	if err != nil {
		slog.Error("Error loading artist", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading artist"})
	}
	if artist == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Artist not found"})
	}

	return c.JSON(artist)
}

// GetAlbum is the handler for getting a single album.
func (h *Handler) GetAlbum(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid album id"})
	}

	album, err := h.service.GetAlbum(c.Context(), id)
	if err != nil {
		slog.Error("Error loading album", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading album"})
	}
	if album == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Album not found"})
	}

	return c.JSON(album)
}

// GetTrack is the handler for getting a single track.
func (h *Handler) GetTrack(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid track id"})
	}

	track, err := h.service.GetTrack(c.Context(), id)
	if err != nil {
		slog.Error("Error loading track", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading track"})
	}
	if track == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Track not found"})
	}

	return c.JSON(track)
}

// GetArtistsTree is the handler for the nested artist/album/track view.
func (h *Handler) GetArtistsTree(c *fiber.Ctx) error {
	slog.Debug("GetArtistsTree handler called")

	artists, err := h.service.GetArtistsTree(c.Context())
	if err != nil {
		slog.Error("Error loading artists tree", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading artists tree"})
	}

	return c.JSON(fiber.Map{"artists": artists})
}

// GetMediaTypes is the handler for listing the media type vocabulary.
func (h *Handler) GetMediaTypes(c *fiber.Ctx) error {
	mediaTypes, err := h.service.GetMediaTypes(c.Context())
	if err != nil {
		slog.Error("Error loading media types", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading media types"})
	}

	return c.JSON(fiber.Map{"mediaTypes": mediaTypes})
}

type createArtistRequest struct {
	Name string `json:"name"`
}

// CreateArtist is the handler for creating an artist.
func (h *Handler) CreateArtist(c *fiber.Ctx) error {
	var req createArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	artist, err := h.service.CreateArtist(c.Context(), req.Name)
	if err != nil {
		slog.Error("Error creating artist", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating artist"})
	}

	return c.Status(fiber.StatusCreated).JSON(artist)
}

type createAlbumRequest struct {
	Title    string `json:"title"`
	ArtistID int    `json:"artist_id"`
}

// CreateAlbum is the handler for creating an album.
func (h *Handler) CreateAlbum(c *fiber.Ctx) error {
	var req createAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	album, err := h.service.CreateAlbum(c.Context(), req.Title, req.ArtistID)
	if err != nil {
		slog.Error("Error creating album", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(album)
}

// CreateTrack is the handler for creating a track.
func (h *Handler) CreateTrack(c *fiber.Ctx) error {
	track := &music.Track{}
	if err := c.BodyParser(track); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	track, err := h.service.CreateTrack(c.Context(), track)
	if err != nil {
		if errors.Is(err, music.ErrNoMediaTypes) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		slog.Error("Error creating track", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(track)
}

// UpdateArtist is the handler for updating an artist. Unknown ids are
// accepted and ignored.
func (h *Handler) UpdateArtist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid artist id"})
	}

	var req createArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.UpdateArtist(c.Context(), &music.Artist{ID: id, Name: req.Name}); err != nil {
		slog.Error("Error updating artist", "error", err, "id", id)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateAlbum is the handler for updating an album. Unknown ids are accepted
// and ignored.
func (h *Handler) UpdateAlbum(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid album id"})
	}

	var req createAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.UpdateAlbum(c.Context(), &music.Album{ID: id, Title: req.Title, ArtistID: req.ArtistID}); err != nil {
		slog.Error("Error updating album", "error", err, "id", id)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateTrack is the handler for updating a track. Unknown ids are accepted
// and ignored.
func (h *Handler) UpdateTrack(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid track id"})
	}

	track := &music.Track{}
	if err := c.BodyParser(track); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	track.ID = id

	if err := h.service.UpdateTrack(c.Context(), track); err != nil {
		slog.Error("Error updating track", "error", err, "id", id)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetArtistDependents reports whether an artist still has albums.
func (h *Handler) GetArtistDependents(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid artist id"})
	}

	hasDependents, err := h.service.ArtistHasDependents(c.Context(), id)
	if err != nil {
		slog.Error("Error checking artist dependents", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error checking dependents"})
	}

	return c.JSON(fiber.Map{"hasDependents": hasDependents})
}

// GetAlbumDependents reports whether an album still has tracks.
func (h *Handler) GetAlbumDependents(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid album id"})
	}

	hasDependents, err := h.service.AlbumHasDependents(c.Context(), id)
	if err != nil {
		slog.Error("Error checking album dependents", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error checking dependents"})
	}

	return c.JSON(fiber.Map{"hasDependents": hasDependents})
}

// DeleteArtist is the handler for deleting an artist. Artists with albums
// are refused with a conflict.
func (h *Handler) DeleteArtist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid artist id"})
	}

	if err := h.service.DeleteArtist(c.Context(), id); err != nil {
		var depErr *music.HasDependentsError
		if errors.As(err, &depErr) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": depErr.Error()})
		}
		slog.Error("Error deleting artist", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting artist"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAlbum is the handler for deleting an album. Albums with tracks are
// refused with a conflict.
func (h *Handler) DeleteAlbum(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid album id"})
	}

	if err := h.service.DeleteAlbum(c.Context(), id); err != nil {
		var depErr *music.HasDependentsError
		if errors.As(err, &depErr) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": depErr.Error()})
		}
		slog.Error("Error deleting album", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting album"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteTrack is the handler for deleting a track.
func (h *Handler) DeleteTrack(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid track id"})
	}

	if err := h.service.DeleteTrack(c.Context(), id); err != nil {
		slog.Error("Error deleting track", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting track"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
