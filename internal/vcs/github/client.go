package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	domainErrors "github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/logger"
	"github.com/youniqx/heist-commitlint/internal/vcs"
)

var _ vcs.VCSClient = (*GitHubClient)(nil)

// perPage is the largest page size the commits endpoint accepts.
const perPage = 100

type PullRequestsService interface {
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

type GitHubClient struct {
	prService PullRequestsService
	owner     string
	repo      string
}

func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return NewGitHubClientWithServices(client.PullRequests, owner, repo)
}

func NewGitHubClientWithServices(prService PullRequestsService, owner, repo string) *GitHubClient {
	return &GitHubClient{
		prService: prService,
		owner:     owner,
		repo:      repo,
	}
}

// PullRequestCommits pages through the commits of pull request number.
func (ghc *GitHubClient) PullRequestCommits(ctx context.Context, number int) ([]vcs.Commit, error) {
	log := logger.FromContext(ctx)

	log.Debug("fetching github pull request commits",
		"owner", ghc.owner,
		"repo", ghc.repo,
		"pr_number", number)

	var commits []vcs.Commit
	opts := &github.ListOptions{PerPage: perPage}
	for {
		page, resp, err := ghc.prService.ListCommits(ctx, ghc.owner, ghc.repo, number, opts)
		if err != nil {
			return nil, ghc.wrapError(resp, err, number)
		}

		for _, c := range page {
			commits = append(commits, vcs.Commit{
				SHA:     c.GetSHA(),
				Message: c.GetCommit().GetMessage(),
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	log.Debug("fetched github pull request commits",
		"pr_number", number,
		"count", len(commits))
	return commits, nil
}

func (ghc *GitHubClient) wrapError(resp *github.Response, err error, number int) error {
	repo := fmt.Sprintf("%s/%s", ghc.owner, ghc.repo)
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return domainErrors.ErrGitHubRateLimit.
				WithContext("retry_after", resp.Header.Get("Retry-After")).
				WithContext("operation", "list PR commits")
		case http.StatusForbidden:
			if resp.Rate.Remaining == 0 && resp.Rate.Limit > 0 {
				return domainErrors.ErrGitHubRateLimit.
					WithContext("operation", "list PR commits")
			}
			return domainErrors.ErrGitHubInsufficientPerms.
				WithContext("operation", "list PR commits").
				WithContext("repo", repo)
		case http.StatusUnauthorized:
			return domainErrors.ErrGitHubTokenInvalid.
				WithContext("operation", "list PR commits")
		case http.StatusNotFound:
			return domainErrors.ErrPullRequestNotFound.
				WithContext("pr_number", number).
				WithContext("repo", repo)
		}
	}
	return domainErrors.ErrListPullRequestCommits.
		WithError(err).
		WithContext("pr_number", number).
		WithContext("repo", repo)
}
