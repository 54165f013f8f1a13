package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockPRService struct {
	mock.Mock
}

func (m *MockPRService) ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	var resp *github.Response
	if r := args.Get(1); r != nil {
		resp = r.(*github.Response)
	}
	return args.Get(0).([]*github.RepositoryCommit), resp, args.Error(2)
}
