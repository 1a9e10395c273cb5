package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/libx/internal/legacy"
	"github.com/desertthunder/libx/internal/shared"
	"github.com/urfave/cli/v3"
)

// importCommand pulls library state out of older storage formats.
func importCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import library state from legacy storage",
		Commands: []*cli.Command{
			{
				Name:  "sqlite",
				Usage: "Merge a legacy SQLite database into the library",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "path",
						Usage:    "Path to the legacy SQLite database",
						Required: true,
					},
				},
				Action: r.ImportSQLite,
			},
		},
	}
}

// ImportSQLite merges a legacy SQLite database into the current library.
// Existing entries win: duplicate playlist IDs and set members are skipped.
func (r *Runner) ImportSQLite(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	db, err := shared.NewDatabase(path)
	if err != nil {
		return fmt.Errorf("failed to open legacy database: %w", err)
	}
	defer db.Close()

	snap, err := legacy.ReadSnapshot(db)
	if err != nil {
		return fmt.Errorf("failed to read legacy database: %w", err)
	}

	before := len(r.lib.Playlists())
	r.lib.Merge(snap)
	after := len(r.lib.Playlists())

	r.logger.Infof("imported legacy database %s", path)
	r.writePlainln("✓ Import complete: %d playlists added, %d favorites, %d downloads",
		after-before, len(r.lib.Favorites()), len(r.lib.Downloads()))
	return nil
}
