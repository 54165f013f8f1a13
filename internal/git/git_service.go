package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/logger"
)

const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
	logFormat = "--format=%H%x1f%B%x1e"
)

// HookScript is written to .git/hooks/commit-msg by InstallHook.
const HookScript = `#!/bin/sh
# Installed by heist-commitlint. Remove this file to disable the check.
exec heist-commitlint lint --edit "$1"
`

// CommitMessage is one entry of git log.
type CommitMessage struct {
	Hash    string
	Message string
}

// GitService runs git in dir. An empty dir is the working directory of the
// process.
type GitService struct {
	dir string
}

func NewGitService(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug(ctx, "running git", "args", strings.Join(args, " "))
	output, err := cmd.Output()
	if err != nil {
		return "", &gitError{err: err, stderr: strings.TrimSpace(stderr.String())}
	}
	return string(output), nil
}

type gitError struct {
	err    error
	stderr string
}

func (e *gitError) Error() string {
	if e.stderr == "" {
		return e.err.Error()
	}
	return e.err.Error() + ": " + e.stderr
}

func (e *gitError) Unwrap() error {
	return e.err
}

func wrap(sentinel *errors.AppError, err error) *errors.AppError {
	appErr := sentinel.WithError(err)
	if ge, ok := err.(*gitError); ok && ge.stderr != "" {
		appErr = appErr.WithContext("stderr", ge.stderr)
	}
	return appErr
}

// RepoRoot returns the absolute path of the working tree root.
func (s *GitService) RepoRoot(ctx context.Context) (string, error) {
	output, err := s.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", wrap(errors.ErrNotInGitRepo, err)
	}
	return strings.TrimSpace(output), nil
}

// GitDir returns the absolute path of the .git directory.
func (s *GitService) GitDir(ctx context.Context) (string, error) {
	output, err := s.run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", wrap(errors.ErrNotInGitRepo, err)
	}
	return strings.TrimSpace(output), nil
}

// EditMessagePath is the file git leaves the message being committed in.
func (s *GitService) EditMessagePath(ctx context.Context) (string, error) {
	gitDir, err := s.GitDir(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "COMMIT_EDITMSG"), nil
}

// HooksDir honors core.hooksPath.
func (s *GitService) HooksDir(ctx context.Context) (string, error) {
	output, err := s.run(ctx, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", wrap(errors.ErrNotInGitRepo, err)
	}
	dir := strings.TrimSpace(output)
	if !filepath.IsAbs(dir) {
		base := s.dir
		if base == "" {
			if base, err = os.Getwd(); err != nil {
				return "", errors.ErrNotInGitRepo.WithError(err)
			}
		}
		dir = filepath.Join(base, dir)
	}
	return dir, nil
}

// GetRepoInfo returns owner, repository name and provider of origin.
func (s *GitService) GetRepoInfo(ctx context.Context) (string, string, string, error) {
	output, err := s.run(ctx, "remote", "get-url", "origin")
	if err != nil {
		return "", "", "", wrap(errors.ErrGetRepoURL, err)
	}
	return parseRepoURL(strings.TrimSpace(output))
}

// CommitMessages lists the messages of from..to, oldest first. An empty to
// means HEAD; an empty from lists every commit reachable from to.
func (s *GitService) CommitMessages(ctx context.Context, from, to string) ([]CommitMessage, error) {
	if to == "" {
		to = "HEAD"
	}
	rangeSpec := to
	if from != "" {
		rangeSpec = from + ".." + to
	}

	output, err := s.run(ctx, "log", "--reverse", logFormat, rangeSpec, "--")
	if err != nil {
		return nil, wrap(errors.ErrGetCommits, err).WithContext("range", rangeSpec)
	}
	return parseLog(output), nil
}

// LastCommitMessage returns the full message of HEAD.
func (s *GitService) LastCommitMessage(ctx context.Context) (CommitMessage, error) {
	output, err := s.run(ctx, "log", "-1", logFormat)
	if err != nil {
		return CommitMessage{}, wrap(errors.ErrGetCommits, err)
	}
	commits := parseLog(output)
	if len(commits) == 0 {
		return CommitMessage{}, errors.ErrNoMessages
	}
	return commits[0], nil
}

func parseLog(output string) []CommitMessage {
	var commits []CommitMessage
	for _, record := range strings.Split(output, recordSep) {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}
		hash, message, ok := strings.Cut(record, fieldSep)
		if !ok {
			continue
		}
		commits = append(commits, CommitMessage{
			Hash:    hash,
			Message: strings.TrimRight(message, "\n"),
		})
	}
	return commits
}

// InstallHook writes the commit-msg hook and returns its path. An existing
// hook is only replaced with force.
func (s *GitService) InstallHook(ctx context.Context, force bool) (string, error) {
	dir, err := s.HooksDir(ctx)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "commit-msg")

	if _, err := os.Stat(path); err == nil && !force {
		return "", errors.ErrHookExists.WithContext("path", path)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.ErrWriteHook.WithError(err).WithContext("path", path)
	}
	if err := os.WriteFile(path, []byte(HookScript), 0o755); err != nil {
		return "", errors.ErrWriteHook.WithError(err).WithContext("path", path)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o755); err != nil {
		return "", errors.ErrWriteHook.WithError(err).WithContext("path", path)
	}

	logger.Info(ctx, "commit-msg hook installed", "path", path)
	return path, nil
}

var (
	sshRegex   = regexp.MustCompile(`^(?:ssh://)?git@([^:/]+)[:/]([^/]+)/(.+?)(?:\.git)?$`)
	httpsRegex = regexp.MustCompile(`^https?://(?:[^@/]+@)?([^/]+)/([^/]+)/(.+?)(?:\.git)?/?$`)
)

func parseRepoURL(url string) (string, string, string, error) {
	var matches []string
	if m := sshRegex.FindStringSubmatch(url); m != nil {
		matches = m
	} else if m := httpsRegex.FindStringSubmatch(url); m != nil {
		matches = m
	}

	if len(matches) >= 4 {
		return matches[2], matches[3], detectProvider(matches[1]), nil
	}

	return "", "", "", errors.ErrExtractRepoInfo.WithContext("url", url)
}

func detectProvider(host string) string {
	if strings.Contains(host, "github") {
		return "github"
	}
	if strings.Contains(host, "gitlab") {
		return "gitlab"
	}
	return "unknown"
}
