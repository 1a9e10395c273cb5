// Package legacy reads the SQLite library database an earlier desktop build
// kept, so an existing collection can be folded into the snapshot once and
// the old database left behind. The importer only reads; nothing is ever
// written back to the database.
package legacy

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/libx/internal/models"
)

// ReadSnapshot assembles a snapshot from a legacy library database.
//
// Rows with empty ids are skipped rather than failing the import, matching
// how the snapshot store treats bad entries on load. Lang and theme have no
// legacy table and come back as defaults.
func ReadSnapshot(db *sql.DB) (*models.Snapshot, error) {
	snap := models.NewSnapshot()

	favorites, err := readMembers(db, "favorites")
	if err != nil {
		return nil, err
	}
	snap.Favorites = favorites

	downloads, err := readMembers(db, "downloads")
	if err != nil {
		return nil, err
	}
	snap.Downloaded = downloads

	playlists, err := readPlaylists(db)
	if err != nil {
		return nil, err
	}
	snap.Playlists = playlists

	return snap, nil
}

// readMembers reads a membership set table in insertion order.
func readMembers(db *sql.DB, table string) ([]string, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT track_id FROM %s ORDER BY position ASC", table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	ids := []string{}
	seen := map[string]struct{}{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}

func readPlaylists(db *sql.DB) ([]models.Playlist, error) {
	query := `
		SELECT id, name, icon, created_at
		FROM playlists
		ORDER BY created_at ASC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	playlists := []models.Playlist{}
	for rows.Next() {
		var (
			id        string
			name      string
			icon      sql.NullString
			createdAt sql.NullString
		)
		if err := rows.Scan(&id, &name, &icon, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}

		playlist := models.Playlist{
			ID:        id,
			Name:      name,
			Icon:      models.DefaultIcon,
			Tracks:    []models.Track{},
			CreatedAt: createdAt.String,
		}
		if icon.Valid && icon.String != "" {
			playlist.Icon = icon.String
		}

		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	for i := range playlists {
		tracks, err := readTracks(db, playlists[i].ID)
		if err != nil {
			return nil, err
		}
		playlists[i].Tracks = tracks
	}

	return playlists, nil
}

// readTracks reads a playlist's entries in their stored manual order.
func readTracks(db *sql.DB, playlistID string) ([]models.Track, error) {
	query := `
		SELECT track_id, name, artist, duration, added_at
		FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position ASC
	`

	rows, err := db.Query(query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks for playlist %s: %w", playlistID, err)
	}
	defer rows.Close()

	tracks := []models.Track{}
	seen := map[string]struct{}{}
	for rows.Next() {
		var (
			id       string
			name     sql.NullString
			artist   sql.NullString
			duration sql.NullString
			addedAt  sql.NullString
		)
		if err := rows.Scan(&id, &name, &artist, &duration, &addedAt); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}

		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		tracks = append(tracks, models.Track{
			ID:       id,
			Name:     name.String,
			Artist:   artist.String,
			Duration: duration.String,
			AddedAt:  addedAt.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tracks, nil
}
