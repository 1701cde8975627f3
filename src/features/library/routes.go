package library

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the library feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	library := app.Group("/library")
	library.Get("/tree", handler.GetArtistsTree)
	library.Get("/media-types", handler.GetMediaTypes)
	library.Get("/artists", handler.GetArtists)
	library.Get("/albums", handler.GetAlbums)
	library.Get("/tracks", handler.GetTracks)
	library.Get("/tracks/all", handler.GetAllTracks)
	library.Get("/artists/:id", handler.GetArtist)
	library.Get("/albums/:id", handler.GetAlbum)
	library.Get("/tracks/:id", handler.GetTrack)
	library.Get("/artists/:id/dependents", handler.GetArtistDependents)
	library.Get("/albums/:id/dependents", handler.GetAlbumDependents)
	library.Post("/artists", handler.CreateArtist)
	library.Post("/albums", handler.CreateAlbum)
	library.Post("/tracks", handler.CreateTrack)
	library.Put("/artists/:id", handler.UpdateArtist)
	library.Put("/albums/:id", handler.UpdateAlbum)
	library.Put("/tracks/:id", handler.UpdateTrack)
	library.Delete("/artists/:id", handler.DeleteArtist)
	library.Delete("/albums/:id", handler.DeleteAlbum)
	library.Delete("/tracks/:id", handler.DeleteTrack)
}
