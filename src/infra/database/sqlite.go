package database

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/okvist/trackshelf/src/music"

	_ "github.com/mattn/go-sqlite3"
)

// SqliteCatalog is a SQLite implementation of the Catalog and
// PlaylistRepository interfaces.
type SqliteCatalog struct {
	db *sql.DB
}

// NewSqliteCatalog creates a new SqliteCatalog.
func NewSqliteCatalog(path string) (*SqliteCatalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return &SqliteCatalog{db: db}, nil
}

func createTables(db *sql.DB) error {
	// Deletes cascade explicitly in the store methods, so the schema
	// declares foreign keys without ON DELETE actions.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS artists (
			id INTEGER PRIMARY KEY,
			name TEXT
		);

		CREATE TABLE IF NOT EXISTS albums (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			artist_id INTEGER NOT NULL,
			FOREIGN KEY (artist_id) REFERENCES artists(id)
		);

		CREATE TABLE IF NOT EXISTS media_types (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tracks (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			album_id INTEGER,
			media_type_id INTEGER NOT NULL,
			genre_id INTEGER,
			composer TEXT,
			milliseconds INTEGER NOT NULL DEFAULT 0,
			bytes INTEGER NOT NULL DEFAULT 0,
			unit_price REAL NOT NULL DEFAULT 0,
			FOREIGN KEY (album_id) REFERENCES albums(id),
			FOREIGN KEY (media_type_id) REFERENCES media_types(id)
		);

		CREATE TABLE IF NOT EXISTS playlists (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS playlist_track (
			playlist_id INTEGER,
			track_id INTEGER,
			PRIMARY KEY (playlist_id, track_id),
			FOREIGN KEY (playlist_id) REFERENCES playlists(id),
			FOREIGN KEY (track_id) REFERENCES tracks(id)
		);

		CREATE INDEX IF NOT EXISTS idx_albums_artist ON albums(artist_id);
		CREATE INDEX IF NOT EXISTS idx_tracks_album ON tracks(album_id);
		CREATE INDEX IF NOT EXISTS idx_playlist_track_track ON playlist_track(track_id);
	`)
	return err
}

// AddArtist adds an artist to the database.
func (d *SqliteCatalog) AddArtist(ctx context.Context, artist *music.Artist) error {
	if err := artist.Validate(); err != nil {
		slog.Error("AddArtist: validation failed", "error", err, "artistID", artist.ID)
		return err
	}

	_, err := d.db.ExecContext(ctx, `
		INSERT INTO artists (id, name)
		VALUES (?, ?)
	`, artist.ID, nullableString(artist.Name))
	return err
}

// GetArtist gets an artist by id. Returns nil when the artist doesn't exist.
func (d *SqliteCatalog) GetArtist(ctx context.Context, id int) (*music.Artist, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM artists
		WHERE id = ?
	`, id)

	artist := &music.Artist{}
	var name sql.NullString

	err := row.Scan(&artist.ID, &name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	artist.Name = name.String

	return artist, nil
}

// UpdateArtist updates an artist in the database.
func (d *SqliteCatalog) UpdateArtist(ctx context.Context, artist *music.Artist) error {
	if err := artist.Validate(); err != nil {
		slog.Error("UpdateArtist: validation failed", "error", err, "artistID", artist.ID)
		return err
	}

	_, err := d.db.ExecContext(ctx, `
		UPDATE artists
		SET name = ?
		WHERE id = ?
	`, nullableString(artist.Name), artist.ID)
	return err
}

// DeleteArtist deletes an artist from the database. Dependent albums are the
// caller's problem; the service refuses the delete while any exist.
func (d *SqliteCatalog) DeleteArtist(ctx context.Context, id int) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
	return err
}

// GetArtistsPaginated gets a page of artists ordered by ascending id.
// A non-empty nameFilter never matches artists with a NULL or empty name;
// without a filter those artists page through like any other row.
func (d *SqliteCatalog) GetArtistsPaginated(ctx context.Context, limit, offset int, nameFilter string) ([]*music.Artist, error) {
	query := `SELECT id, name FROM artists`
	args := []interface{}{}

	if nameFilter != "" {
		query += ` WHERE name IS NOT NULL AND name != '' AND LOWER(name) LIKE '%' || LOWER(?) || '%'`
		args = append(args, nameFilter)
	}

	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := []*music.Artist{}

	for rows.Next() {
		artist := &music.Artist{}
		var name sql.NullString
		if err := rows.Scan(&artist.ID, &name); err != nil {
			return nil, err
		}
		artist.Name = name.String
		artists = append(artists, artist)
	}

	return artists, rows.Err()
}

// GetArtistsCount gets the count of artists matching the filter.
func (d *SqliteCatalog) GetArtistsCount(ctx context.Context, nameFilter string) (int, error) {
	query := `SELECT COUNT(*) FROM artists`
	args := []interface{}{}

	if nameFilter != "" {
		query += ` WHERE name IS NOT NULL AND name != '' AND LOWER(name) LIKE '%' || LOWER(?) || '%'`
		args = append(args, nameFilter)
	}

	var count int
	err := d.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetArtistByName finds an artist by name, comparing trimmed names
// case-insensitively. Returns nil when no artist matches.
func (d *SqliteCatalog) GetArtistByName(ctx context.Context, name string) (*music.Artist, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM artists
		WHERE name IS NOT NULL AND name != '' AND LOWER(TRIM(name)) = LOWER(TRIM(?))
	`, name)

	artist := &music.Artist{}
	var artistName sql.NullString

	err := row.Scan(&artist.ID, &artistName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	artist.Name = artistName.String

	return artist, nil
}

// GetMaxArtistID gets the highest artist id, or 0 when the table is empty.
func (d *SqliteCatalog) GetMaxArtistID(ctx context.Context) (int, error) {
	var max int
	err := d.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM artists`).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

// GetAlbumsCountForArtist counts the albums referencing an artist.
func (d *SqliteCatalog) GetAlbumsCountForArtist(ctx context.Context, artistID int) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM albums WHERE artist_id = ?`, artistID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetArtistsTree gets every artist with albums and tracks nested under them,
// ordered by name at each level for display.
func (d *SqliteCatalog) GetArtistsTree(ctx context.Context) ([]*music.Artist, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, name FROM artists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := []*music.Artist{}

	for rows.Next() {
		artist := &music.Artist{}
		var name sql.NullString
		if err := rows.Scan(&artist.ID, &name); err != nil {
			return nil, err
		}
		artist.Name = name.String
		artists = append(artists, artist)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, artist := range artists {
		albums, err := d.getAlbumsForArtistTree(ctx, artist.ID)
		if err != nil {
			return nil, err
		}
		artist.Albums = albums
	}

	return artists, nil
}

func (d *SqliteCatalog) getAlbumsForArtistTree(ctx context.Context, artistID int) ([]*music.Album, error) {
	albumRows, err := d.db.QueryContext(ctx, `
		SELECT id, title, artist_id
		FROM albums
		WHERE artist_id = ?
		ORDER BY title
	`, artistID)
	if err != nil {
		return nil, err
	}
	defer albumRows.Close()

	albums := []*music.Album{}
	for albumRows.Next() {
		album := &music.Album{}
		if err := albumRows.Scan(&album.ID, &album.Title, &album.ArtistID); err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	if err := albumRows.Err(); err != nil {
		return nil, err
	}

	for _, album := range albums {
		trackRows, err := d.db.QueryContext(ctx, `
			SELECT id, name, album_id, media_type_id, genre_id, composer, milliseconds, bytes, unit_price
			FROM tracks
			WHERE album_id = ?
			ORDER BY name
		`, album.ID)
		if err != nil {
			return nil, err
		}

		for trackRows.Next() {
			track, err := scanTrack(trackRows)
			if err != nil {
				trackRows.Close()
				return nil, err
			}
			album.Tracks = append(album.Tracks, track)
		}
		if err := trackRows.Err(); err != nil {
			trackRows.Close()
			return nil, err
		}
		trackRows.Close()
	}

	return albums, nil
}

// AddAlbum adds an album to the database.
func (d *SqliteCatalog) AddAlbum(ctx context.Context, album *music.Album) error {
	if err := album.Validate(); err != nil {
		slog.Error("AddAlbum: validation failed", "error", err, "albumID", album.ID)
		return err
	}

	_, err := d.db.ExecContext(ctx, `
		INSERT INTO albums (id, title, artist_id)
		VALUES (?, ?, ?)
	`, album.ID, album.Title, album.ArtistID)
	return err
}

// GetAlbum gets an album by id with its artist resolved.
// Returns nil when the album doesn't exist.
func (d *SqliteCatalog) GetAlbum(ctx context.Context, id int) (*music.Album, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT id, title, artist_id
		FROM albums
		WHERE id = ?
	`, id)

	album := &music.Album{}

	err := row.Scan(&album.ID, &album.Title, &album.ArtistID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	artist, err := d.GetArtist(ctx, album.ArtistID)
	if err != nil {
		return nil, err
	}
	album.Artist = artist

	return album, nil
}

// UpdateAlbum updates an album in the database.
func (d *SqliteCatalog) UpdateAlbum(ctx context.Context, album *music.Album) error {
	if err := album.Validate(); err != nil {
		slog.Error("UpdateAlbum: validation failed", "error", err, "albumID", album.ID)
		return err
	}

	_, err := d.db.ExecContext(ctx, `
		UPDATE albums
		SET title = ?, artist_id = ?
		WHERE id = ?
	`, album.Title, album.ArtistID, album.ID)
	return err
}

// DeleteAlbum deletes an album from the database.
func (d *SqliteCatalog) DeleteAlbum(ctx context.Context, id int) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM albums WHERE id = ?`, id)
	return err
}

// GetAlbumsPaginated gets a page of albums ordered by ascending id, with
// artists resolved for display.
func (d *SqliteCatalog) GetAlbumsPaginated(ctx context.Context, limit, offset int, titleFilter string) ([]*music.Album, error) {
	query := `SELECT id FROM albums`
	args := []interface{}{}

	if titleFilter != "" {
		query += ` WHERE LOWER(title) LIKE '%' || LOWER(?) || '%'`
		args = append(args, titleFilter)
	}

	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	albums := []*music.Album{}
	for _, id := range ids {
		album, err := d.GetAlbum(ctx, id)
		if err != nil {
			return nil, err
		}
		// Skip albums that weren't found (shouldn't happen in a consistent database)
		if album == nil {
			continue
		}
		albums = append(albums, album)
	}

	return albums, nil
}

// GetAlbumsCount gets the count of albums matching the filter.
func (d *SqliteCatalog) GetAlbumsCount(ctx context.Context, titleFilter string) (int, error) {
	query := `SELECT COUNT(*) FROM albums`
	args := []interface{}{}

	if titleFilter != "" {
		query += ` WHERE LOWER(title) LIKE '%' || LOWER(?) || '%'`
		args = append(args, titleFilter)
	}

	var count int
	err := d.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetMaxAlbumID gets the highest album id, or 0 when the table is empty.
func (d *SqliteCatalog) GetMaxAlbumID(ctx context.Context) (int, error) {
	var max int
	err := d.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM albums`).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

// GetTracksCountForAlbum counts the tracks referencing an album.
func (d *SqliteCatalog) GetTracksCountForAlbum(ctx context.Context, albumID int) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tracks WHERE album_id = ?`, albumID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// AddTrack adds a track to the database.
func (d *SqliteCatalog) AddTrack(ctx context.Context, track *music.Track) error {
	if err := track.Validate(); err != nil {
		slog.Error("AddTrack: validation failed", "error", err, "trackID", track.ID)
		return err
	}

	_, err := d.db.ExecContext(ctx, `
		INSERT INTO tracks (id, name, album_id, media_type_id, genre_id, composer, milliseconds, bytes, unit_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, track.ID, track.Name, nullableInt(track.AlbumID), track.MediaTypeID,
		nullableInt(track.GenreID), nullableString(track.Composer),
		track.Milliseconds, track.Bytes, track.UnitPrice)
	return err
}

// GetTrack gets a track by id with its album (and the album's artist)
// resolved. Returns nil when the track doesn't exist.
func (d *SqliteCatalog) GetTrack(ctx context.Context, id int) (*music.Track, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT id, name, album_id, media_type_id, genre_id, composer, milliseconds, bytes, unit_price
		FROM tracks
		WHERE id = ?
	`, id)

	track, err := scanTrack(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if track.AlbumID != nil {
		album, err := d.GetAlbum(ctx, *track.AlbumID)
		if err != nil {
			return nil, err
		}
		track.Album = album
	}

	return track, nil
}

// UpdateTrack updates a track in the database.
func (d *SqliteCatalog) UpdateTrack(ctx context.Context, track *music.Track) error {
	if err := track.Validate(); err != nil {
		slog.Error("UpdateTrack: validation failed", "error", err, "trackID", track.ID)
		return err
	}

	_, err := d.db.ExecContext(ctx, `
		UPDATE tracks
		SET name = ?, album_id = ?, media_type_id = ?, genre_id = ?, composer = ?,
			milliseconds = ?, bytes = ?, unit_price = ?
		WHERE id = ?
	`, track.Name, nullableInt(track.AlbumID), track.MediaTypeID, nullableInt(track.GenreID),
		nullableString(track.Composer), track.Milliseconds, track.Bytes, track.UnitPrice, track.ID)
	return err
}

// DeleteTrack deletes a track and its playlist membership rows in one
// transaction, so no playlist is left pointing at a missing track.
func (d *SqliteCatalog) DeleteTrack(ctx context.Context, id int) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM playlist_track WHERE track_id = ?`, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM tracks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetTracks gets every track ordered by name, for pickers and exports.
func (d *SqliteCatalog) GetTracks(ctx context.Context) ([]*music.Track, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id FROM tracks ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return d.hydrateTracks(ctx, rows)
}

// GetTracksPaginated gets a page of tracks ordered by ascending id, with
// albums and artists resolved for display.
func (d *SqliteCatalog) GetTracksPaginated(ctx context.Context, limit, offset int, nameFilter string) ([]*music.Track, error) {
	query := `SELECT id FROM tracks`
	args := []interface{}{}

	if nameFilter != "" {
		query += ` WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'`
		args = append(args, nameFilter)
	}

	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return d.hydrateTracks(ctx, rows)
}

// GetTracksCount gets the count of tracks matching the filter.
func (d *SqliteCatalog) GetTracksCount(ctx context.Context, nameFilter string) (int, error) {
	query := `SELECT COUNT(*) FROM tracks`
	args := []interface{}{}

	if nameFilter != "" {
		query += ` WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'`
		args = append(args, nameFilter)
	}

	var count int
	err := d.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetMaxTrackID gets the highest track id, or 0 when the table is empty.
func (d *SqliteCatalog) GetMaxTrackID(ctx context.Context) (int, error) {
	var max int
	err := d.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM tracks`).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

// AddMediaType adds a media type to the database.
func (d *SqliteCatalog) AddMediaType(ctx context.Context, mediaType *music.MediaType) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO media_types (id, name)
		VALUES (?, ?)
	`, mediaType.ID, mediaType.Name)
	return err
}

// GetMediaTypes gets every media type ordered by id.
func (d *SqliteCatalog) GetMediaTypes(ctx context.Context) ([]*music.MediaType, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, name FROM media_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mediaTypes := []*music.MediaType{}

	for rows.Next() {
		mediaType := &music.MediaType{}
		if err := rows.Scan(&mediaType.ID, &mediaType.Name); err != nil {
			return nil, err
		}
		mediaTypes = append(mediaTypes, mediaType)
	}

	return mediaTypes, rows.Err()
}

// GetMediaTypeByName finds a media type by name, case-insensitively.
// Returns nil when no media type matches.
func (d *SqliteCatalog) GetMediaTypeByName(ctx context.Context, name string) (*music.MediaType, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM media_types
		WHERE LOWER(name) = LOWER(?)
	`, name)

	mediaType := &music.MediaType{}

	err := row.Scan(&mediaType.ID, &mediaType.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return mediaType, nil
}

// GetMaxMediaTypeID gets the highest media type id, or 0 when the table is empty.
func (d *SqliteCatalog) GetMaxMediaTypeID(ctx context.Context) (int, error) {
	var max int
	err := d.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM media_types`).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

// Create adds a playlist to the database.
func (d *SqliteCatalog) Create(ctx context.Context, playlist *music.Playlist) error {
	if err := playlist.Validate(); err != nil {
		slog.Error("Create: playlist validation failed", "error", err, "playlistID", playlist.ID)
		return err
	}

	_, err := d.db.ExecContext(ctx, `
		INSERT INTO playlists (id, name)
		VALUES (?, ?)
	`, playlist.ID, playlist.Name)
	return err
}

// GetByID gets a playlist by id. Returns nil when the playlist doesn't exist.
func (d *SqliteCatalog) GetByID(ctx context.Context, id int) (*music.Playlist, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM playlists
		WHERE id = ?
	`, id)

	playlist := &music.Playlist{}

	err := row.Scan(&playlist.ID, &playlist.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return playlist, nil
}

// GetAll gets every playlist ordered by name.
func (d *SqliteCatalog) GetAll(ctx context.Context) ([]*music.Playlist, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, name FROM playlists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []*music.Playlist{}

	for rows.Next() {
		playlist := &music.Playlist{}
		if err := rows.Scan(&playlist.ID, &playlist.Name); err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}

	return playlists, rows.Err()
}

// Update updates a playlist in the database.
func (d *SqliteCatalog) Update(ctx context.Context, playlist *music.Playlist) error {
	if err := playlist.Validate(); err != nil {
		slog.Error("Update: playlist validation failed", "error", err, "playlistID", playlist.ID)
		return err
	}

	_, err := d.db.ExecContext(ctx, `
		UPDATE playlists
		SET name = ?
		WHERE id = ?
	`, playlist.Name, playlist.ID)
	return err
}

// Delete deletes a playlist and its membership rows in one transaction.
// Tracks themselves are untouched.
func (d *SqliteCatalog) Delete(ctx context.Context, id int) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM playlist_track WHERE playlist_id = ?`, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM playlists WHERE id = ?`, id)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetMaxID gets the highest playlist id, or 0 when the table is empty.
func (d *SqliteCatalog) GetMaxID(ctx context.Context) (int, error) {
	var max int
	err := d.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM playlists`).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

// AddTrackToPlaylist inserts a membership row. The composite primary key
// rejects duplicates; the service checks first so this only fails on races.
func (d *SqliteCatalog) AddTrackToPlaylist(ctx context.Context, playlistID, trackID int) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO playlist_track (playlist_id, track_id)
		VALUES (?, ?)
	`, playlistID, trackID)
	return err
}

// RemoveTrackFromPlaylist deletes a membership row. Removing a row that
// doesn't exist is not an error.
func (d *SqliteCatalog) RemoveTrackFromPlaylist(ctx context.Context, playlistID, trackID int) error {
	_, err := d.db.ExecContext(ctx, `
		DELETE FROM playlist_track
		WHERE playlist_id = ? AND track_id = ?
	`, playlistID, trackID)
	return err
}

// ContainsTrack reports whether a playlist already contains a track.
func (d *SqliteCatalog) ContainsTrack(ctx context.Context, playlistID, trackID int) (bool, error) {
	var count int
	err := d.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM playlist_track
		WHERE playlist_id = ? AND track_id = ?
	`, playlistID, trackID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetTracksForPlaylist gets every track in a playlist ordered by name.
func (d *SqliteCatalog) GetTracksForPlaylist(ctx context.Context, playlistID int) ([]*music.Track, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT t.id
		FROM tracks t
		JOIN playlist_track pt ON t.id = pt.track_id
		WHERE pt.playlist_id = ?
		ORDER BY t.name
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return d.hydrateTracks(ctx, rows)
}

// GetTracksForPlaylistPaginated gets a page of a playlist's tracks ordered by
// ascending track id, matching the catalog pages.
func (d *SqliteCatalog) GetTracksForPlaylistPaginated(ctx context.Context, playlistID, limit, offset int) ([]*music.Track, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT t.id
		FROM tracks t
		JOIN playlist_track pt ON t.id = pt.track_id
		WHERE pt.playlist_id = ?
		ORDER BY t.id
		LIMIT ? OFFSET ?
	`, playlistID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return d.hydrateTracks(ctx, rows)
}

// GetTracksCountForPlaylist counts the tracks in a playlist.
func (d *SqliteCatalog) GetTracksCountForPlaylist(ctx context.Context, playlistID int) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM playlist_track
		WHERE playlist_id = ?
	`, playlistID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// hydrateTracks resolves a result set of track ids into full tracks.
func (d *SqliteCatalog) hydrateTracks(ctx context.Context, rows *sql.Rows) ([]*music.Track, error) {
	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tracks := []*music.Track{}
	for _, id := range ids {
		track, err := d.GetTrack(ctx, id)
		if err != nil {
			return nil, err
		}
		// Skip tracks that weren't found (shouldn't happen in a consistent database)
		if track == nil {
			continue
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrack(row rowScanner) (*music.Track, error) {
	track := &music.Track{}
	var albumID, genreID sql.NullInt64
	var composer sql.NullString

	err := row.Scan(&track.ID, &track.Name, &albumID, &track.MediaTypeID,
		&genreID, &composer, &track.Milliseconds, &track.Bytes, &track.UnitPrice)
	if err != nil {
		return nil, err
	}

	if albumID.Valid {
		id := int(albumID.Int64)
		track.AlbumID = &id
	}
	if genreID.Valid {
		id := int(genreID.Int64)
		track.GenreID = &id
	}
	track.Composer = composer.String

	return track, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(i *int) interface{} {
	if i == nil {
		return nil
	}
	return *i
}
