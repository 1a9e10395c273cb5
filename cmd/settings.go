package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/libx/internal/models"
	"github.com/desertthunder/libx/internal/shared"
	"github.com/urfave/cli/v3"
)

// configCommand surfaces the snapshot settings (lang, theme) and the
// on-disk TOML config.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"cfg"},
		Usage:   "Settings and configuration",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show current settings",
				Action: r.ConfigShow,
			},
			{
				Name:      "lang",
				Usage:     "Set the interface language (ru or en)",
				ArgsUsage: "<lang>",
				Action:    r.ConfigLang,
			},
			{
				Name:      "theme",
				Usage:     "Set the theme (dark or light)",
				ArgsUsage: "<theme>",
				Action:    r.ConfigTheme,
			},
			{
				Name:  "init",
				Usage: "Write an example config.toml to the current directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination path for the config file",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}

func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	path := r.config.Storage.Path
	if path == "" {
		if resolved, err := shared.DefaultSnapshotPath(); err == nil {
			path = resolved
		}
	}

	r.writePlainln("Language: %s", r.lib.Lang())
	r.writePlainln("Theme:    %s", r.lib.Theme())
	r.writePlainln("Snapshot: %s", path)
	return nil
}

func (r *Runner) ConfigLang(ctx context.Context, cmd *cli.Command) error {
	lang := cmd.Args().First()
	if lang == "" {
		return fmt.Errorf("%w: lang (%s or %s)", shared.ErrMissingArgument, models.LangRU, models.LangEN)
	}

	if err := r.lib.SetLang(lang); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}

	r.writePlainln("✓ Language set to %s", lang)
	return nil
}

func (r *Runner) ConfigTheme(ctx context.Context, cmd *cli.Command) error {
	theme := cmd.Args().First()
	if theme == "" {
		return fmt.Errorf("%w: theme (%s or %s)", shared.ErrMissingArgument, models.ThemeDark, models.ThemeLight)
	}

	if err := r.lib.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	r.writePlainln("✓ Theme set to %s", theme)
	return nil
}

func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	r.writePlainln("✓ Wrote %s", path)
	return nil
}
