package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/youniqx/heist-commitlint/internal/cli/registry"
	configcmd "github.com/youniqx/heist-commitlint/internal/commands/config"
	"github.com/youniqx/heist-commitlint/internal/commands/hook"
	lintcmd "github.com/youniqx/heist-commitlint/internal/commands/lint"
	"github.com/youniqx/heist-commitlint/internal/commands/pr"
	rulescmd "github.com/youniqx/heist-commitlint/internal/commands/rules"
	"github.com/youniqx/heist-commitlint/internal/commands/shared"
	cfg "github.com/youniqx/heist-commitlint/internal/config"
	apperrors "github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/git"
	"github.com/youniqx/heist-commitlint/internal/i18n"
	"github.com/youniqx/heist-commitlint/internal/logger"
	"github.com/youniqx/heist-commitlint/internal/providers"
	"github.com/youniqx/heist-commitlint/internal/ui"
	"github.com/youniqx/heist-commitlint/internal/vcs"
	"github.com/youniqx/heist-commitlint/internal/version"
)

const (
	exitLintFailed = 1
	exitUsage      = 2
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(os.Stderr, err, nil)
		os.Exit(exitUsage)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		os.Exit(handleError(err, translations))
	}
}

// handleError prints err and maps it to the exit status. Lint failures were
// already reported by the formatter.
func handleError(err error, t *i18n.Translations) int {
	if errors.Is(err, apperrors.ErrLintFailed) {
		return exitLintFailed
	}
	ui.StopActiveSpinner()
	ui.HandleAppError(os.Stderr, err, t)
	return exitUsage
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, apperrors.ErrSettings.WithError(err)
	}

	settings, err := cfg.LoadSettings(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(settings.Language, "")
	if err != nil {
		return nil, nil, apperrors.ErrSettings.WithError(err).WithContext("language", settings.Language)
	}

	streams := shared.StdStreams()
	gitService := git.NewGitService("")
	vcsProvider := func(ctx context.Context) (vcs.VCSClient, error) {
		return providers.NewVCSClient(ctx, gitService, settings)
	}

	registerCommand := registry.NewRegistry(settings, translations)
	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"lint", lintcmd.NewLintCommandFactory(gitService, streams)},
		{"pr", pr.NewPRCommandFactory(vcsProvider, gitService, streams)},
		{"rules", rulescmd.NewRulesCommandFactory(gitService, streams)},
		{"config", configcmd.NewConfigCommandFactory(gitService, streams)},
		{"hook", hook.NewHookCommandFactory(gitService, streams)},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, nil, fmt.Errorf("registering command %q: %w", f.name, err)
		}
	}

	commands := registerCommand.CreateCommands()
	withGlobalFlags(commands, settings, translations)

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "heist-commitlint",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag_debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:    shared.FlagVerbose,
				Aliases: []string{"V"},
				Usage:   translations.GetMessage("flag_verbose", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: translations.GetMessage("flag_no_color", 0, nil),
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: translations.GetMessage("flag_lang", 0, nil),
				Value: settings.Language,
			},
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}

// withGlobalFlags wraps every action so that the root flags are applied
// before the command runs.
func withGlobalFlags(commands []*cli.Command, settings *cfg.Settings, t *i18n.Translations) {
	for _, c := range commands {
		if c.Action != nil {
			action := c.Action
			c.Action = func(ctx context.Context, cmd *cli.Command) error {
				ctx, err := applyGlobalFlags(ctx, cmd.Root(), settings, t)
				if err != nil {
					return err
				}
				return action(ctx, cmd)
			}
		}
		withGlobalFlags(c.Commands, settings, t)
	}
}

func applyGlobalFlags(ctx context.Context, root *cli.Command, settings *cfg.Settings, t *i18n.Translations) (context.Context, error) {
	logger.Initialize(root.Bool("debug"), root.Bool(shared.FlagVerbose))
	ctx = logger.WithLogger(ctx, slog.Default())

	if root.Bool("no-color") || settings.NoColor {
		ui.SetColor(false)
	}

	if lang := root.String("lang"); lang != "" && lang != settings.Language {
		if err := t.SetLanguage(lang); err != nil {
			return ctx, apperrors.ErrSettings.WithError(err).WithContext("language", lang)
		}
	}

	logger.Debug(ctx, "starting", "version", version.FullVersion(), "language", root.String("lang"))
	return ctx, nil
}
