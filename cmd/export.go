package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/desertthunder/libx/internal/formatter"
	"github.com/desertthunder/libx/internal/shared"
	"github.com/urfave/cli/v3"
)

// exportCommand renders a playlist to csv, markdown, text, or json.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export a playlist to a file or stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Playlist ID to export",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: csv, markdown, text, json",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (stdout when omitted)",
			},
		},
		Action: r.Export,
	}
}

// Export renders the playlist in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	playlist, err := r.lib.Playlist(cmd.String("id"))
	if err != nil {
		return fmt.Errorf("failed to load playlist: %w", err)
	}

	var data []byte
	format := cmd.String("format")
	switch format {
	case "csv":
		data, err = formatter.ExportToCSV(playlist)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(playlist)
	case "text", "txt":
		data, err = formatter.ExportToText(playlist)
	case "json":
		data, err = json.MarshalIndent(playlist, "", "  ")
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return fmt.Errorf("failed to render playlist: %w", err)
	}

	path := cmd.String("output")
	if path == "" {
		return r.writePlain("%s", data)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	r.logger.Infof("exported playlist %s to %s", playlist.ID, path)
	r.writePlainln("✓ Exported %s to %s", playlist.Name, path)
	return nil
}
