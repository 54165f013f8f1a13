package pr

import (
	"context"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/youniqx/heist-commitlint/internal/commands/completion_helper"
	"github.com/youniqx/heist-commitlint/internal/commands/shared"
	cfg "github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/i18n"
	"github.com/youniqx/heist-commitlint/internal/logger"
	"github.com/youniqx/heist-commitlint/internal/ui"
	"github.com/youniqx/heist-commitlint/internal/vcs"
)

// VCSProvider returns a VCS client on demand, so that the remote and the
// token are only resolved when the command runs.
type VCSProvider func(ctx context.Context) (vcs.VCSClient, error)

type PRCommandFactory struct {
	provider VCSProvider
	repo     shared.RepoLocator
	streams  shared.Streams
}

func NewPRCommandFactory(provider VCSProvider, repo shared.RepoLocator, streams shared.Streams) *PRCommandFactory {
	return &PRCommandFactory{provider: provider, repo: repo, streams: streams}
}

func (f *PRCommandFactory) CreateCommand(t *i18n.Translations, settings *cfg.Settings) *cli.Command {
	return &cli.Command{
		Name:          "pr",
		Usage:         t.GetMessage("pr.usage", 0, nil),
		ArgsUsage:     "<number>",
		Flags:         shared.LintFlags(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			start := time.Now()

			arg := cmd.Args().First()
			number, err := strconv.Atoi(arg)
			if err != nil || number <= 0 {
				return errors.ErrInvalidPullRequestNumber.
					WithContext("pr_number", arg).
					WithSuggestion(t.GetMessage("pr.invalid_number", 0, map[string]interface{}{"Number": arg}))
			}

			linter, err := shared.NewLinter(ctx, cmd, shared.ConfigDir(ctx, f.repo))
			if err != nil {
				return err
			}

			client, err := f.provider(ctx)
			if err != nil {
				return err
			}

			var commits []vcs.Commit
			spinner := ui.NewSpinner().
				WithMessage(t.GetMessage("pr.fetching", 0, map[string]interface{}{"Number": number})).
				WithWriter(f.streams.Err).
				Build()
			spinner.Start()
			commits, err = client.PullRequestCommits(ctx, number)
			if err != nil {
				spinner.Stop()
				log.Error("failed to fetch pull request commits",
					"error", err,
					"pr_number", number,
					"duration_ms", time.Since(start).Milliseconds())
				return err
			}
			spinner.Success(t.GetMessage("pr.fetched", 0, map[string]interface{}{"Count": len(commits)}))

			if len(commits) == 0 {
				return errors.ErrNoMessages.WithContext("pr_number", number)
			}

			messages := make([]string, 0, len(commits))
			for _, c := range commits {
				messages = append(messages, c.Message)
			}
			return shared.Run(ctx, cmd, t, settings, f.streams.Out, linter, messages)
		},
	}
}
