package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// favoriteCommand handles the favorites membership set
func favoriteCommand(r *Runner) *cli.Command {
	idFlag := func(usage string) cli.Flag {
		return &cli.StringFlag{
			Name:     "id",
			Usage:    usage,
			Required: true,
		}
	}

	return &cli.Command{
		Name:    "favorite",
		Aliases: []string{"fav"},
		Usage:   "Favorites operations",
		Commands: []*cli.Command{
			{
				Name:   "toggle",
				Usage:  "Flip a track's favorite state",
				Flags:  []cli.Flag{idFlag("Track ID to toggle")},
				Action: r.FavoriteToggle,
			},
			{
				Name:   "add",
				Usage:  "Add a track to favorites (idempotent)",
				Flags:  []cli.Flag{idFlag("Track ID to add")},
				Action: r.FavoriteAdd,
			},
			{
				Name:   "remove",
				Usage:  "Remove a track from favorites (idempotent)",
				Flags:  []cli.Flag{idFlag("Track ID to remove")},
				Action: r.FavoriteRemove,
			},
			{
				Name:  "list",
				Usage: "List favorite track IDs in insertion order",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.FavoriteList,
			},
		},
	}
}

// downloadCommand handles the downloads membership set.
//
// There is no toggle here: downloading is monotonic and removal is its own
// explicit operation.
func downloadCommand(r *Runner) *cli.Command {
	idFlag := func(usage string) cli.Flag {
		return &cli.StringFlag{
			Name:     "id",
			Usage:    usage,
			Required: true,
		}
	}

	return &cli.Command{
		Name:    "download",
		Aliases: []string{"dl"},
		Usage:   "Downloaded-set operations",
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Mark a track as downloaded (idempotent)",
				Flags:  []cli.Flag{idFlag("Track ID to add")},
				Action: r.DownloadAdd,
			},
			{
				Name:   "remove",
				Usage:  "Remove a track from the downloaded set (idempotent)",
				Flags:  []cli.Flag{idFlag("Track ID to remove")},
				Action: r.DownloadRemove,
			},
			{
				Name:  "list",
				Usage: "List downloaded track IDs in insertion order",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.DownloadList,
			},
		},
	}
}

// FavoriteToggle flips membership and prints the resulting state.
func (r *Runner) FavoriteToggle(ctx context.Context, cmd *cli.Command) error {
	liked, err := r.lib.ToggleFavorite(cmd.String("id"))
	if err != nil {
		return fmt.Errorf("failed to toggle favorite: %w", err)
	}

	if liked {
		r.writePlainln("❤ Added to favorites")
	} else {
		r.writePlainln("♡ Removed from favorites")
	}
	return nil
}

func (r *Runner) FavoriteAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.lib.AddFavorite(cmd.String("id")); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	r.writePlainln("✓ Favorited")
	return nil
}

func (r *Runner) FavoriteRemove(ctx context.Context, cmd *cli.Command) error {
	if err := r.lib.RemoveFavorite(cmd.String("id")); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	r.writePlainln("✓ Unfavorited")
	return nil
}

func (r *Runner) FavoriteList(ctx context.Context, cmd *cli.Command) error {
	return r.listMembers(cmd, "favorites", r.lib.Favorites())
}

func (r *Runner) DownloadAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.lib.AddDownload(cmd.String("id")); err != nil {
		return fmt.Errorf("failed to add download: %w", err)
	}
	r.writePlainln("📥 Downloaded")
	return nil
}

func (r *Runner) DownloadRemove(ctx context.Context, cmd *cli.Command) error {
	if err := r.lib.RemoveDownload(cmd.String("id")); err != nil {
		return fmt.Errorf("failed to remove download: %w", err)
	}
	r.writePlainln("✓ Removed from downloads")
	return nil
}

func (r *Runner) DownloadList(ctx context.Context, cmd *cli.Command) error {
	return r.listMembers(cmd, "downloads", r.lib.Downloads())
}

func (r *Runner) listMembers(cmd *cli.Command, label string, ids []string) error {
	if cmd.Bool("json") {
		return r.writeJSON(ids, false)
	}

	if len(ids) == 0 {
		r.writePlainln("No %s yet.", label)
		return nil
	}

	for i, id := range ids {
		r.writePlainln("%d. %s", i+1, id)
	}
	return nil
}
