package vcs

import "context"

// Commit is a commit as reported by a hosting provider.
type Commit struct {
	SHA     string
	Message string
}

// VCSClient reads pull request data from a hosting provider.
type VCSClient interface {
	// PullRequestCommits returns the commits of a pull request, oldest first.
	PullRequestCommits(ctx context.Context, number int) ([]Commit, error)
}
