package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeLint          ErrorType = "LINT"
	TypeGit           ErrorType = "GIT"
	TypeVCS           ErrorType = "VCS"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
		if rule, ok := e.Context["rule"].(string); ok && rule != "" {
			msg += fmt.Sprintf(" [%s]", rule)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the same kind of AppError. Copies produced by
// the With* helpers still match the sentinel they were derived from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrConfigRead = NewAppError(TypeConfiguration, "Failed to read lint configuration", nil).
			WithSuggestion("Check the file exists and is readable")

	ErrConfigDecode = NewAppError(TypeConfiguration, "Failed to decode lint configuration", nil).
			WithSuggestion("Validate the file with: heist-commitlint config validate <file>")

	ErrConfigFormat = NewAppError(TypeConfiguration, "Unsupported configuration format", nil).
			WithSuggestion("Use a .toml, .yaml or .yml file")

	ErrConfigWrite = NewAppError(TypeConfiguration, "Failed to write lint configuration", nil)

	ErrConfigExists = NewAppError(TypeConfiguration, "Configuration file already exists", nil).
			WithSuggestion("Overwrite it with: heist-commitlint config init --force")

	ErrUnknownPreset = NewAppError(TypeConfiguration, "Unknown preset", nil).
				WithSuggestion("Only @commitlint/config-conventional is built in")

	ErrUnknownRule = NewAppError(TypeConfiguration, "Unknown rule", nil).
			WithSuggestion("List the available rules with: heist-commitlint rules --all")

	ErrInvalidSeverity = NewAppError(TypeConfiguration, "Rule severity must be 0 (off), 1 (warning) or 2 (error)", nil)

	ErrMissingSeverity = NewAppError(TypeConfiguration, "Rule level is required", nil).
			WithSuggestion("Set level to off, warning or error for every rule entry")

	ErrInvalidApplicability = NewAppError(TypeConfiguration, "Rule applicability must be 'always' or 'never'", nil)

	ErrInvalidRuleValue = NewAppError(TypeConfiguration, "Rule value has the wrong type", nil)

	ErrEmptyScopeEnum = NewAppError(TypeConfiguration, "scope-enum needs at least one allowed scope", nil)

	ErrNonPositiveLength = NewAppError(TypeConfiguration, "Length bound must be a positive integer", nil)

	ErrSettings = NewAppError(TypeConfiguration, "Failed to load application settings", nil)

	ErrOutputFormat = NewAppError(TypeConfiguration, "Unsupported output format", nil)
)

// Lint errors
var (
	ErrEmptyMessage = NewAppError(TypeLint, "Commit message is empty", nil).
			WithSuggestion("Pass a message on stdin, as a file argument or with --edit")

	ErrNoMessages = NewAppError(TypeLint, "No commit messages to lint", nil).
			WithSuggestion("Check the --from/--to range: git log <from>..<to>")

	ErrLintFailed = NewAppError(TypeLint, "Commit message does not follow the conventions", nil)
)

// Git errors
var (
	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Run the command inside the heist repository")

	ErrGetRepoURL = NewAppError(TypeGit, "Failed to get repository URL", nil).
			WithSuggestion("Add a remote: git remote add origin <url>")

	ErrExtractRepoInfo = NewAppError(TypeGit, "Failed to extract repository info", nil)

	ErrGetCommits = NewAppError(TypeGit, "Failed to get commits", nil).
			WithSuggestion("Make sure the range exists: git log <from>..<to>")

	ErrReadEditMsg = NewAppError(TypeGit, "Failed to read commit message file", nil)

	ErrHookExists = NewAppError(TypeGit, "commit-msg hook already exists", nil).
			WithSuggestion("Overwrite it with: heist-commitlint hook install --force")

	ErrWriteHook = NewAppError(TypeGit, "Failed to write commit-msg hook", nil)
)

// VCS errors
var (
	ErrVCSNotSupported = NewAppError(TypeVCS, "VCS provider not supported", nil).
				WithSuggestion("Currently only GitHub is supported")

	ErrInvalidPullRequestNumber = NewAppError(TypeVCS, "Invalid pull request number", nil).
					WithSuggestion("Pass the number of the pull request, for example: heist-commitlint pr 42")

	ErrPullRequestNotFound = NewAppError(TypeVCS, "pull request not found", nil).
				WithSuggestion("Check the pull request number and token permissions")

	ErrListPullRequestCommits = NewAppError(TypeVCS, "failed to list pull request commits", nil)

	ErrGitHubRateLimit = NewAppError(TypeVCS, "GitHub API rate limit exceeded", nil).
				WithSuggestion("Wait a few minutes or use a personal access token for higher limits")

	ErrGitHubTokenInvalid = NewAppError(TypeVCS, "GitHub token is invalid or expired", nil).
				WithSuggestion("Create a new token at https://github.com/settings/tokens")

	ErrGitHubInsufficientPerms = NewAppError(TypeVCS, "GitHub token lacks the required permissions", nil).
					WithSuggestion("The token needs read access to pull requests of the repository")
)
