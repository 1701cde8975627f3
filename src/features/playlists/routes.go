package playlists

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the playlists feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	playlists := app.Group("/playlists")
	playlists.Get("/", handler.GetPlaylists)
	playlists.Post("/", handler.CreatePlaylist)
	playlists.Get("/:id", handler.GetPlaylist)
	playlists.Put("/:id", handler.UpdatePlaylist)
	playlists.Delete("/:id", handler.DeletePlaylist)
	playlists.Get("/:id/tracks", handler.GetPlaylistTracks)
	playlists.Get("/:id/tracks/all", handler.GetAllPlaylistTracks)
	playlists.Put("/:id/tracks/:trackId", handler.AddTrack)
	playlists.Delete("/:id/tracks/:trackId", handler.RemoveTrack)
}
