package providers

import (
	"context"

	"github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/logger"
	"github.com/youniqx/heist-commitlint/internal/vcs"
	"github.com/youniqx/heist-commitlint/internal/vcs/github"
)

// RepoInfoReader is a minimal interface for testing purposes
type RepoInfoReader interface {
	GetRepoInfo(ctx context.Context) (string, string, string, error)
}

// NewVCSClient creates a VCSClient for the origin remote of the repository.
// Without a token requests are unauthenticated, which is enough for public
// repositories but hits GitHub's rate limit quickly.
func NewVCSClient(ctx context.Context, repo RepoInfoReader, settings *config.Settings) (vcs.VCSClient, error) {
	owner, name, provider, err := repo.GetRepoInfo(ctx)
	if err != nil {
		return nil, err
	}

	switch provider {
	case "github":
		if settings.GitHubToken == "" {
			logger.Warn(ctx, "no GitHub token configured, using unauthenticated requests",
				"env", config.EnvGitHubToken)
		}
		return github.NewGitHubClient(owner, name, settings.GitHubToken), nil
	default:
		return nil, errors.ErrVCSNotSupported.WithContext("provider", provider)
	}
}
