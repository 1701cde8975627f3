package metrics

import (
	"context"
	"log/slog"

	"github.com/okvist/trackshelf/src/music"
	"github.com/prometheus/client_golang/prometheus"
)

// CatalogCollector exposes catalog totals as Prometheus gauges. Counts are
// queried at scrape time, nothing is cached.
type CatalogCollector struct {
	catalog      music.Catalog
	playlistRepo music.PlaylistRepository

	artistsDesc     *prometheus.Desc
	albumsDesc      *prometheus.Desc
	tracksDesc      *prometheus.Desc
	playlistsDesc   *prometheus.Desc
	mediaTypesDesc  *prometheus.Desc
	membershipsDesc *prometheus.Desc
}

// NewCatalogCollector creates a collector over the catalog and playlist stores.
func NewCatalogCollector(catalog music.Catalog, playlistRepo music.PlaylistRepository) *CatalogCollector {
	return &CatalogCollector{
		catalog:      catalog,
		playlistRepo: playlistRepo,
		artistsDesc: prometheus.NewDesc(
			"trackshelf_artists_total", "Total number of artists in the catalog.", nil, nil),
		albumsDesc: prometheus.NewDesc(
			"trackshelf_albums_total", "Total number of albums in the catalog.", nil, nil),
		tracksDesc: prometheus.NewDesc(
			"trackshelf_tracks_total", "Total number of tracks in the catalog.", nil, nil),
		playlistsDesc: prometheus.NewDesc(
			"trackshelf_playlists_total", "Total number of playlists.", nil, nil),
		mediaTypesDesc: prometheus.NewDesc(
			"trackshelf_media_types_total", "Number of configured media types.", nil, nil),
		membershipsDesc: prometheus.NewDesc(
			"trackshelf_playlist_tracks_total", "Total number of playlist membership rows.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *CatalogCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.artistsDesc
	ch <- c.albumsDesc
	ch <- c.tracksDesc
	ch <- c.playlistsDesc
	ch <- c.mediaTypesDesc
	ch <- c.membershipsDesc
}

// Collect implements prometheus.Collector.
func (c *CatalogCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	if count, err := c.catalog.GetArtistsCount(ctx, ""); err == nil {
		ch <- prometheus.MustNewConstMetric(c.artistsDesc, prometheus.GaugeValue, float64(count))
	} else {
		slog.Error("metrics: artists count failed", "error", err)
	}

	if count, err := c.catalog.GetAlbumsCount(ctx, ""); err == nil {
		ch <- prometheus.MustNewConstMetric(c.albumsDesc, prometheus.GaugeValue, float64(count))
	} else {
		slog.Error("metrics: albums count failed", "error", err)
	}

	if count, err := c.catalog.GetTracksCount(ctx, ""); err == nil {
		ch <- prometheus.MustNewConstMetric(c.tracksDesc, prometheus.GaugeValue, float64(count))
	} else {
		slog.Error("metrics: tracks count failed", "error", err)
	}

	if mediaTypes, err := c.catalog.GetMediaTypes(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(c.mediaTypesDesc, prometheus.GaugeValue, float64(len(mediaTypes)))
	} else {
		slog.Error("metrics: media types count failed", "error", err)
	}

	playlists, err := c.playlistRepo.GetAll(ctx)
	if err != nil {
		slog.Error("metrics: playlists count failed", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.playlistsDesc, prometheus.GaugeValue, float64(len(playlists)))

	memberships := 0
	for _, playlist := range playlists {
		count, err := c.playlistRepo.GetTracksCountForPlaylist(ctx, playlist.ID)
		if err != nil {
			slog.Error("metrics: playlist tracks count failed", "playlistID", playlist.ID, "error", err)
			return
		}
		memberships += count
	}
	ch <- prometheus.MustNewConstMetric(c.membershipsDesc, prometheus.GaugeValue, float64(memberships))
}
