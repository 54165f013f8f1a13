// Package shared holds the flags and the lint-and-report flow used by the
// lint and pr commands.
package shared

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/format"
	"github.com/youniqx/heist-commitlint/internal/i18n"
	"github.com/youniqx/heist-commitlint/internal/lint"
	"github.com/youniqx/heist-commitlint/internal/logger"
)

const (
	FlagConfig           = "config"
	FlagFormat           = "format"
	FlagStrict           = "strict"
	FlagNoDefaultIgnores = "no-default-ignores"
	FlagVerbose          = "verbose"
)

// Streams are the standard streams a command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Piped is true when In is not a terminal.
	Piped bool
}

func StdStreams() Streams {
	piped := false
	if fi, err := os.Stdin.Stat(); err == nil {
		piped = fi.Mode()&os.ModeCharDevice == 0
	}
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr, Piped: piped}
}

// RepoLocator is a minimal interface for testing purposes
type RepoLocator interface {
	RepoRoot(ctx context.Context) (string, error)
}

// ConfigDir is the directory searched for a config file: the repository
// root, or the working directory outside a repository.
func ConfigDir(ctx context.Context, repo RepoLocator) string {
	root, err := repo.RepoRoot(ctx)
	if err != nil {
		logger.Debug(ctx, "not in a git repository, using working directory", "error", err)
		return "."
	}
	return root
}

// ConfigFlag is the --config flag shared by every command that reads the
// lint configuration.
func ConfigFlag(t *i18n.Translations) cli.Flag {
	return &cli.StringFlag{
		Name:      FlagConfig,
		Aliases:   []string{"g"},
		Usage:     t.GetMessage("lint.flag_config", 0, nil),
		TakesFile: true,
	}
}

// LintFlags are the flags controlling evaluation and output.
func LintFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		ConfigFlag(t),
		&cli.StringFlag{
			Name:    FlagFormat,
			Aliases: []string{"o"},
			Usage:   t.GetMessage("lint.flag_format", 0, nil),
			Value:   format.Text,
		},
		&cli.BoolFlag{
			Name:  FlagStrict,
			Usage: t.GetMessage("lint.flag_strict", 0, nil),
		},
		&cli.BoolFlag{
			Name:  FlagNoDefaultIgnores,
			Usage: t.GetMessage("lint.flag_no_default_ignores", 0, nil),
		},
	}
}

// LoadLintConfig reads path when given, otherwise looks for a config file
// in dir and falls back to the built-in record.
func LoadLintConfig(ctx context.Context, path, dir string) (*config.LintConfig, string, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		return cfg, path, err
	}

	cfg, found, err := config.Load(dir)
	if err != nil {
		return nil, "", err
	}
	if found == "" {
		logger.Debug(ctx, "no config file found, using built-in rules", "dir", dir)
	} else {
		logger.Debug(ctx, "loaded config file", "path", found)
	}
	return cfg, found, nil
}

// NewLinter loads the configuration selected by the flags of cmd.
func NewLinter(ctx context.Context, cmd *cli.Command, dir string) (*lint.Linter, error) {
	cfg, _, err := LoadLintConfig(ctx, cmd.String(FlagConfig), dir)
	if err != nil {
		return nil, err
	}
	return lint.FromConfig(cfg, lint.WithDefaultIgnores(!cmd.Bool(FlagNoDefaultIgnores)))
}

// Run lints messages, writes the report to out and returns ErrLintFailed
// when the report does not pass.
func Run(ctx context.Context, cmd *cli.Command, t *i18n.Translations, settings *config.Settings, out io.Writer, linter *lint.Linter, messages []string) error {
	formatter, err := format.New(cmd.String(FlagFormat), t, settings.HelpURL, cmd.Bool(FlagVerbose))
	if err != nil {
		return err
	}

	report, err := linter.LintAll(ctx, messages)
	if err != nil {
		return err
	}

	logger.Info(ctx, "lint finished",
		"total", len(report.Results),
		"errors", report.ErrorCount,
		"warnings", report.WarningCount)

	if err := formatter.Format(out, report); err != nil {
		return errors.NewAppError(errors.TypeInternal, "Failed to write report", err)
	}

	if report.Failed(cmd.Bool(FlagStrict)) {
		return errors.ErrLintFailed.
			WithContext("errors", report.ErrorCount).
			WithContext("warnings", report.WarningCount)
	}
	return nil
}
