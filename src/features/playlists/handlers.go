package playlists

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for playlists.
type Handler struct {
	service *Service
}

// NewHandler creates a new playlists handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetPlaylists returns all playlists.
func (h *Handler) GetPlaylists(c *fiber.Ctx) error {
	playlists, err := h.service.GetPlaylists(c.Context())
	if err != nil {
		slog.Error("Failed to get playlists", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load playlists"})
	}

	return c.JSON(fiber.Map{"playlists": playlists})
}

// GetPlaylist returns a single playlist.
func (h *Handler) GetPlaylist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid playlist id"})
	}

	playlist, err := h.service.GetPlaylist(c.Context(), id)
	if err != nil {
		slog.Error("Failed to get playlist", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load playlist"})
	}
	if playlist == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Playlist not found"})
	}

	return c.JSON(playlist)
}

type playlistRequest struct {
	Name string `json:"name"`
}

// CreatePlaylist creates a new playlist.
func (h *Handler) CreatePlaylist(c *fiber.Ctx) error {
	var req playlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	playlist, err := h.service.CreatePlaylist(c.Context(), req.Name)
	if err != nil {
		slog.Error("Failed to create playlist", "error", err, "name", req.Name)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slog.Info("Playlist created", "id", playlist.ID, "name", playlist.Name)
	return c.Status(fiber.StatusCreated).JSON(playlist)
}

// UpdatePlaylist renames a playlist. Unknown ids are accepted and ignored.
func (h *Handler) UpdatePlaylist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid playlist id"})
	}

	var req playlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.UpdatePlaylistName(c.Context(), id, req.Name); err != nil {
		slog.Error("Failed to update playlist", "error", err, "id", id)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePlaylist deletes a playlist and its membership rows.
func (h *Handler) DeletePlaylist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid playlist id"})
	}

	if err := h.service.DeletePlaylist(c.Context(), id); err != nil {
		slog.Error("Failed to delete playlist", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete playlist"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetPlaylistTracks returns a page of a playlist's tracks.
func (h *Handler) GetPlaylistTracks(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid playlist id"})
	}

	skip := c.QueryInt("skip", 0)
	take := c.QueryInt("take", 0)

	tracks, totalCount, err := h.service.GetPlaylistTracksPage(c.Context(), id, skip, take)
	if err != nil {
		slog.Error("Failed to get playlist tracks", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load playlist tracks"})
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

// GetAllPlaylistTracks returns every track in a playlist, ordered by name.
func (h *Handler) GetAllPlaylistTracks(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid playlist id"})
	}

	tracks, err := h.service.GetPlaylistTracks(c.Context(), id)
	if err != nil {
		slog.Error("Failed to get playlist tracks", "error", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load playlist tracks"})
	}

	return c.JSON(fiber.Map{"tracks": tracks})
}

// AddTrack adds a track to a playlist.
func (h *Handler) AddTrack(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid playlist id"})
	}
	trackID, err := c.ParamsInt("trackId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid track id"})
	}

	if err := h.service.AddTrackToPlaylist(c.Context(), id, trackID); err != nil {
		slog.Error("Failed to add track to playlist", "error", err, "playlistID", id, "trackID", trackID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add track to playlist"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveTrack removes a track from a playlist.
func (h *Handler) RemoveTrack(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid playlist id"})
	}
	trackID, err := c.ParamsInt("trackId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid track id"})
	}

	if err := h.service.RemoveTrackFromPlaylist(c.Context(), id, trackID); err != nil {
		slog.Error("Failed to remove track from playlist", "error", err, "playlistID", id, "trackID", trackID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove track from playlist"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
