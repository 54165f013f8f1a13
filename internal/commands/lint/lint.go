package lint

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/youniqx/heist-commitlint/internal/commands/completion_helper"
	"github.com/youniqx/heist-commitlint/internal/commands/shared"
	cfg "github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/git"
	"github.com/youniqx/heist-commitlint/internal/i18n"
	"github.com/youniqx/heist-commitlint/internal/logger"
)

// GitReader is a minimal interface for testing purposes
type GitReader interface {
	RepoRoot(ctx context.Context) (string, error)
	EditMessagePath(ctx context.Context) (string, error)
	CommitMessages(ctx context.Context, from, to string) ([]git.CommitMessage, error)
	LastCommitMessage(ctx context.Context) (git.CommitMessage, error)
}

type LintCommandFactory struct {
	git     GitReader
	streams shared.Streams
}

func NewLintCommandFactory(git GitReader, streams shared.Streams) *LintCommandFactory {
	return &LintCommandFactory{git: git, streams: streams}
}

func (f *LintCommandFactory) CreateCommand(t *i18n.Translations, settings *cfg.Settings) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:      "edit",
			Aliases:   []string{"e"},
			Usage:     t.GetMessage("lint.flag_edit", 0, nil),
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:    "from",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("lint.flag_from", 0, nil),
		},
		&cli.StringFlag{
			Name:    "to",
			Aliases: []string{"t"},
			Usage:   t.GetMessage("lint.flag_to", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "last",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("lint.flag_last", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "stdin",
			Usage: t.GetMessage("lint.flag_stdin", 0, nil),
		},
	}

	return &cli.Command{
		Name:          "lint",
		Usage:         t.GetMessage("lint.usage", 0, nil),
		ArgsUsage:     "[file]",
		Flags:         append(flags, shared.LintFlags(t)...),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			start := time.Now()

			linter, err := shared.NewLinter(ctx, cmd, shared.ConfigDir(ctx, f.git))
			if err != nil {
				return err
			}

			messages, err := f.readMessages(ctx, cmd, t)
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				log.Warn("no commits in range",
					"from", cmd.String("from"),
					"to", cmd.String("to"))
				return nil
			}

			err = shared.Run(ctx, cmd, t, settings, f.streams.Out, linter, messages)
			log.Debug("lint command finished",
				"count", len(messages),
				"duration_ms", time.Since(start).Milliseconds())
			return err
		},
	}
}

// readMessages picks the input source. --edit wins over a range, a range
// over --last, --last over a file argument and a file over stdin.
func (f *LintCommandFactory) readMessages(ctx context.Context, cmd *cli.Command, t *i18n.Translations) ([]string, error) {
	switch {
	case cmd.IsSet("edit"):
		path := cmd.String("edit")
		if path == "" {
			var err error
			if path, err = f.git.EditMessagePath(ctx); err != nil {
				return nil, err
			}
		}
		msg, err := readFile(path)
		if err != nil {
			return nil, err
		}
		return []string{msg}, nil

	case cmd.String("from") != "" || cmd.String("to") != "":
		commits, err := f.git.CommitMessages(ctx, cmd.String("from"), cmd.String("to"))
		if err != nil {
			return nil, err
		}
		messages := make([]string, 0, len(commits))
		for _, c := range commits {
			logger.Debug(ctx, "linting commit", "hash", c.Hash)
			messages = append(messages, c.Message)
		}
		return messages, nil

	case cmd.Bool("last"):
		c, err := f.git.LastCommitMessage(ctx)
		if err != nil {
			return nil, err
		}
		return []string{c.Message}, nil

	case cmd.Args().Present():
		msg, err := readFile(cmd.Args().First())
		if err != nil {
			return nil, err
		}
		return []string{msg}, nil

	case cmd.Bool("stdin") || f.streams.Piped:
		data, err := io.ReadAll(f.streams.In)
		if err != nil {
			return nil, errors.ErrReadEditMsg.WithError(err).WithContext("path", "-")
		}
		return []string{string(data)}, nil
	}

	return nil, errors.ErrEmptyMessage.WithSuggestion(t.GetMessage("lint.no_input", 0, nil))
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.ErrReadEditMsg.WithError(err).WithContext("path", path)
	}
	return string(data), nil
}
