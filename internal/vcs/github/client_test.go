package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/vcs"
)

func repoCommit(sha, message string) *github.RepositoryCommit {
	return &github.RepositoryCommit{
		SHA:    github.Ptr(sha),
		Commit: &github.Commit{Message: github.Ptr(message)},
	}
}

func pageOpts(page int) interface{} {
	return mock.MatchedBy(func(opts *github.ListOptions) bool {
		return opts.Page == page && opts.PerPage == perPage
	})
}

func TestGitHubClient_PullRequestCommits(t *testing.T) {
	t.Run("should follow pagination", func(t *testing.T) {
		// arrange
		mockPR := &MockPRService{}
		client := NewGitHubClientWithServices(mockPR, "test-owner", "test-repo")

		mockPR.On("ListCommits", mock.Anything, "test-owner", "test-repo", 42, pageOpts(0)).
			Return([]*github.RepositoryCommit{repoCommit("a1", "feat(agent): one")}, &github.Response{NextPage: 2}, nil).Once()
		mockPR.On("ListCommits", mock.Anything, "test-owner", "test-repo", 42, pageOpts(2)).
			Return([]*github.RepositoryCommit{repoCommit("b2", "fix(operator): two")}, &github.Response{}, nil).Once()

		// act
		commits, err := client.PullRequestCommits(context.Background(), 42)

		// assert
		require.NoError(t, err)
		assert.Equal(t, []vcs.Commit{
			{SHA: "a1", Message: "feat(agent): one"},
			{SHA: "b2", Message: "fix(operator): two"},
		}, commits)
		mockPR.AssertExpectations(t)
	})

	tests := []struct {
		name    string
		resp    *github.Response
		wantErr error
	}{
		{
			name:    "not found",
			resp:    &github.Response{Response: &http.Response{StatusCode: http.StatusNotFound}},
			wantErr: domainErrors.ErrPullRequestNotFound,
		},
		{
			name:    "rate limited",
			resp:    &github.Response{Response: &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}},
			wantErr: domainErrors.ErrGitHubRateLimit,
		},
		{
			name: "primary rate limit",
			resp: &github.Response{
				Response: &http.Response{StatusCode: http.StatusForbidden},
				Rate:     github.Rate{Limit: 60, Remaining: 0},
			},
			wantErr: domainErrors.ErrGitHubRateLimit,
		},
		{
			name: "forbidden",
			resp: &github.Response{
				Response: &http.Response{StatusCode: http.StatusForbidden},
				Rate:     github.Rate{Limit: 5000, Remaining: 4000},
			},
			wantErr: domainErrors.ErrGitHubInsufficientPerms,
		},
		{
			name:    "bad token",
			resp:    &github.Response{Response: &http.Response{StatusCode: http.StatusUnauthorized}},
			wantErr: domainErrors.ErrGitHubTokenInvalid,
		},
		{
			name:    "transport error",
			resp:    nil,
			wantErr: domainErrors.ErrListPullRequestCommits,
		},
	}

	for _, tt := range tests {
		t.Run("should map "+tt.name, func(t *testing.T) {
			mockPR := &MockPRService{}
			client := NewGitHubClientWithServices(mockPR, "test-owner", "test-repo")
			mockPR.On("ListCommits", mock.Anything, "test-owner", "test-repo", 7, mock.Anything).
				Return([]*github.RepositoryCommit(nil), tt.resp, errors.New("request failed"))

			commits, err := client.PullRequestCommits(context.Background(), 7)

			assert.Nil(t, commits)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGitHubClient_AgainstAPI(t *testing.T) {
	// two pages served the way the REST API links them
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/repos/youniqx/heist/pulls/9/commits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		page := r.URL.Query().Get("page")
		var body []*github.RepositoryCommit
		if page == "" || page == "1" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/repos/youniqx/heist/pulls/9/commits?page=2&per_page=100>; rel="next"`, srv.URL))
			body = []*github.RepositoryCommit{repoCommit("c1", "feat(agent): first\n\nSigned-off-by: Jane <jane@example.com>")}
		} else {
			body = []*github.RepositoryCommit{repoCommit("c2", "docs: second")}
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	})

	gh := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base
	client := NewGitHubClientWithServices(gh.PullRequests, "youniqx", "heist")

	commits, err := client.PullRequestCommits(context.Background(), 9)

	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "c1", commits[0].SHA)
	assert.Equal(t, "feat(agent): first\n\nSigned-off-by: Jane <jane@example.com>", commits[0].Message)
	assert.Equal(t, "docs: second", commits[1].Message)
}
