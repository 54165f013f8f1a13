package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/youniqx/heist-commitlint/internal/commands/completion_helper"
	"github.com/youniqx/heist-commitlint/internal/commands/shared"
	cfg "github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/i18n"
	"github.com/youniqx/heist-commitlint/internal/lint"
	"github.com/youniqx/heist-commitlint/internal/logger"
	"github.com/youniqx/heist-commitlint/internal/ui"
)

type ConfigCommandFactory struct {
	repo    shared.RepoLocator
	streams shared.Streams
}

func NewConfigCommandFactory(repo shared.RepoLocator, streams shared.Streams) *ConfigCommandFactory {
	return &ConfigCommandFactory{repo: repo, streams: streams}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, _ *cfg.Settings) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config.usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t),
			c.newValidateCommand(t),
			c.newInitCommand(t),
		},
	}
}

func formatFlag(t *i18n.Translations) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"o"},
		Usage:   t.GetMessage("config.flag_format", 0, nil),
		Value:   string(cfg.FormatTOML),
	}
}

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "show",
		Usage:         t.GetMessage("config.show_usage", 0, nil),
		Flags:         []cli.Flag{shared.ConfigFlag(t), formatFlag(t)},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := cfg.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}
			lintCfg, path, err := shared.LoadLintConfig(ctx, cmd.String(shared.FlagConfig), shared.ConfigDir(ctx, c.repo))
			if err != nil {
				return err
			}
			logger.Info(ctx, "showing configuration", "path", path)
			return cfg.Encode(c.streams.Out, lintCfg, format)
		},
	}
}

func (c *ConfigCommandFactory) newValidateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "validate",
		Usage:         t.GetMessage("config.validate_usage", 0, nil),
		ArgsUsage:     "[file]",
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lintCfg, path, err := shared.LoadLintConfig(ctx, cmd.Args().First(), shared.ConfigDir(ctx, c.repo))
			if err != nil {
				return err
			}
			// Binding the record to the rule catalogue catches unknown
			// presets, unknown rule names and values of the wrong kind.
			if _, err := lint.FromConfig(lintCfg); err != nil {
				return err
			}
			if path == "" {
				path = t.GetMessage("config.builtin", 0, nil)
			}
			ui.PrintSuccess(c.streams.Out, t.GetMessage("config.valid", 0, map[string]interface{}{"Path": path}))
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config.init_usage", 0, nil),
		Flags: []cli.Flag{
			formatFlag(t),
			&cli.BoolFlag{
				Name:  "force",
				Usage: t.GetMessage("config.flag_init_force", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := cfg.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			name := ".commitlintrc." + string(format)
			path := filepath.Join(shared.ConfigDir(ctx, c.repo), name)
			if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
				return errors.ErrConfigExists.WithContext("path", path)
			}

			var buf bytes.Buffer
			if err := cfg.Encode(&buf, cfg.Default(), format); err != nil {
				return err
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return errors.ErrConfigWrite.WithError(err).WithContext("path", path)
			}

			ui.PrintSuccess(c.streams.Out, t.GetMessage("config.created", 0, map[string]interface{}{"Path": path}))
			return nil
		},
	}
}
