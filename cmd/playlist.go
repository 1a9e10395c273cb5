// submodule cmd contains command definitions
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/libx/internal/models"
	"github.com/desertthunder/libx/internal/shared"
	"github.com/desertthunder/libx/internal/sorter"
	"github.com/urfave/cli/v3"
)

// playlistCommand handles playlist CRUD, track membership, and ordering
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create an empty playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Playlist name (1-100 characters)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "icon",
						Usage: "Playlist icon glyph",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist permanently",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID to delete",
						Required: true,
					},
				},
				Action: r.PlaylistDelete,
			},
			{
				Name:  "rename",
				Usage: "Update a playlist's name and/or icon",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "New name (blank keeps the current name)",
					},
					&cli.StringFlag{
						Name:  "icon",
						Usage: "New icon (blank keeps the current icon)",
					},
				},
				Action: r.PlaylistRename,
			},
			{
				Name:  "list",
				Usage: "List all playlists in creation order",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.PlaylistList,
			},
			{
				Name:  "show",
				Usage: "Show a playlist's tracks in manual order",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:  "add",
				Usage: "Add a track to a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "track-id",
						Usage:    "Track ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Track name",
					},
					&cli.StringFlag{
						Name:  "artist",
						Usage: "Track artist",
					},
					&cli.StringFlag{
						Name:  "duration",
						Usage: "Track duration as m:ss",
					},
				},
				Action: r.PlaylistAddTrack,
			},
			{
				Name:  "remove",
				Usage: "Remove a track from a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "track-id",
						Usage:    "Track ID",
						Required: true,
					},
				},
				Action: r.PlaylistRemoveTrack,
			},
			{
				Name:  "reorder",
				Usage: "Commit a new manual order for a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "order",
						Usage:    "Comma-separated track IDs in their final order",
						Required: true,
					},
				},
				Action: r.PlaylistReorder,
			},
			{
				Name:  "sort",
				Usage: "Print a playlist sorted by a key (display only, stored order untouched)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "key",
						Usage:    "Sort key: name, artist, date, duration",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "desc",
						Usage: "Sort descending",
					},
				},
				Action: r.PlaylistSort,
			},
		},
	}
}

// PlaylistCreate creates a playlist from the name and icon flags.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	icon := cmd.String("icon")
	if icon == "" {
		icon = r.config.Defaults.Icon
	}

	playlist, err := r.lib.CreatePlaylist(cmd.String("name"), icon)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	r.logger.Infof("created playlist %s (%s)", playlist.Name, playlist.ID)

	if cmd.Bool("json") {
		return r.writeJSON(playlist, true)
	}

	r.writePlainln("✓ Playlist created: %s %s", playlist.Icon, playlist.Name)
	r.writePlainln("  ID: %s", playlist.ID)
	return nil
}

// PlaylistDelete deletes a playlist. An unknown id is reported but not an error.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")

	if _, err := r.lib.Playlist(id); err != nil {
		r.writePlainln("Nothing to delete: no playlist with ID %s", id)
		return nil
	}

	r.lib.DeletePlaylist(id)
	r.logger.Infof("deleted playlist %s", id)
	r.writePlainln("✓ Playlist deleted")
	return nil
}

// PlaylistRename applies the provided name/icon updates.
func (r *Runner) PlaylistRename(ctx context.Context, cmd *cli.Command) error {
	playlist, err := r.lib.RenamePlaylist(cmd.String("id"), cmd.String("name"), cmd.String("icon"))
	if err != nil {
		return fmt.Errorf("failed to rename playlist: %w", err)
	}

	r.writePlainln("✓ Playlist updated: %s %s", playlist.Icon, playlist.Name)
	return nil
}

// PlaylistList prints all playlists in creation order.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	playlists := r.lib.Playlists()

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		r.writePlainln("No playlists yet. Create one with 'libx playlist create'.")
		return nil
	}

	for _, p := range playlists {
		r.writePlainln("%s %s (%d tracks) [%s]", p.Icon, p.Name, len(p.Tracks), p.ID)
	}
	return nil
}

// PlaylistShow prints one playlist with its tracks in manual order.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	playlist, err := r.lib.Playlist(cmd.String("id"))
	if err != nil {
		return fmt.Errorf("failed to load playlist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlist, cmd.Bool("pretty"))
	}

	r.writePlainln("%s %s (%d tracks)", playlist.Icon, playlist.Name, len(playlist.Tracks))
	r.printTracks(playlist.Tracks)
	return nil
}

// PlaylistAddTrack adds a caller-described track to a playlist.
func (r *Runner) PlaylistAddTrack(ctx context.Context, cmd *cli.Command) error {
	track := models.Track{
		ID:       cmd.String("track-id"),
		Name:     cmd.String("name"),
		Artist:   cmd.String("artist"),
		Duration: cmd.String("duration"),
	}

	playlist, err := r.lib.AddTrack(cmd.String("id"), track)
	if err != nil {
		return fmt.Errorf("failed to add track: %w", err)
	}

	r.writePlainln("✓ Added to %s (%d tracks)", playlist.Name, len(playlist.Tracks))
	return nil
}

// PlaylistRemoveTrack removes a track from a playlist.
func (r *Runner) PlaylistRemoveTrack(ctx context.Context, cmd *cli.Command) error {
	playlist, err := r.lib.RemoveTrack(cmd.String("id"), cmd.String("track-id"))
	if err != nil {
		return fmt.Errorf("failed to remove track: %w", err)
	}

	r.writePlainln("✓ Removed from %s (%d tracks)", playlist.Name, len(playlist.Tracks))
	return nil
}

// PlaylistReorder commits a complete final ordering for a playlist.
func (r *Runner) PlaylistReorder(ctx context.Context, cmd *cli.Command) error {
	order := []string{}
	for _, id := range strings.Split(cmd.String("order"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			order = append(order, id)
		}
	}

	playlist, err := r.lib.Reorder(cmd.String("id"), order)
	if err != nil {
		return fmt.Errorf("failed to reorder playlist: %w", err)
	}

	r.writePlainln("✓ New order committed for %s", playlist.Name)
	r.printTracks(playlist.Tracks)
	return nil
}

// PlaylistSort prints a display ordering without touching the stored order.
func (r *Runner) PlaylistSort(ctx context.Context, cmd *cli.Command) error {
	key, ok := sorter.ParseKey(cmd.String("key"))
	if !ok {
		return fmt.Errorf("%w: unknown sort key %q", shared.ErrInvalidFlag, cmd.String("key"))
	}

	dir := sorter.Ascending
	if cmd.Bool("desc") {
		dir = sorter.Descending
	}

	playlist, err := r.lib.Playlist(cmd.String("id"))
	if err != nil {
		return fmt.Errorf("failed to load playlist: %w", err)
	}

	r.writePlainln("%s %s sorted by %s (%s)", playlist.Icon, playlist.Name, key, dir)
	r.printTracks(sorter.Sort(playlist.Tracks, key, dir))
	return nil
}

func (r *Runner) printTracks(tracks []models.Track) {
	for i, t := range tracks {
		duration := t.Duration
		if duration == "" {
			duration = "0:00"
		}
		r.writePlainln("%d. %s - %s [%s] (%s)", i+1, t.Artist, t.Name, duration, t.ID)
	}
}
