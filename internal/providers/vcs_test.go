package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/vcs/github"
)

type stubRepoInfo struct {
	owner, repo, provider string
	err                   error
}

func (s stubRepoInfo) GetRepoInfo(context.Context) (string, string, string, error) {
	return s.owner, s.repo, s.provider, s.err
}

func TestNewVCSClient(t *testing.T) {
	t.Run("should create a github client", func(t *testing.T) {
		client, err := NewVCSClient(context.Background(),
			stubRepoInfo{owner: "youniqx", repo: "heist", provider: "github"},
			&config.Settings{GitHubToken: "ghp_test"})

		require.NoError(t, err)
		assert.IsType(t, &github.GitHubClient{}, client)
	})

	t.Run("should work without a token", func(t *testing.T) {
		client, err := NewVCSClient(context.Background(),
			stubRepoInfo{owner: "youniqx", repo: "heist", provider: "github"},
			&config.Settings{})

		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("should reject other providers", func(t *testing.T) {
		_, err := NewVCSClient(context.Background(),
			stubRepoInfo{owner: "group", repo: "heist", provider: "gitlab"},
			&config.Settings{})

		assert.ErrorIs(t, err, errors.ErrVCSNotSupported)
	})

	t.Run("should return repo info errors", func(t *testing.T) {
		_, err := NewVCSClient(context.Background(),
			stubRepoInfo{err: errors.ErrGetRepoURL},
			&config.Settings{})

		assert.ErrorIs(t, err, errors.ErrGetRepoURL)
	})
}
