// Package lint evaluates commit messages against an effective rule set.
package lint

import (
	"context"

	"github.com/youniqx/heist-commitlint/internal/commit"
	"github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/logger"
	"github.com/youniqx/heist-commitlint/internal/rules"
)

// Problem is a failed rule.
type Problem struct {
	Level   config.Severity `json:"level"`
	Valid   bool            `json:"valid"`
	Name    string          `json:"name"`
	Message string          `json:"message"`
}

// Outcome is the result of linting one message.
type Outcome struct {
	Input    string    `json:"input"`
	Valid    bool      `json:"valid"`
	Ignored  bool      `json:"ignored,omitempty"`
	Errors   []Problem `json:"errors"`
	Warnings []Problem `json:"warnings"`
}

type boundRule struct {
	rule   rules.Rule
	config config.RuleConfig
}

type Linter struct {
	rules          []boundRule
	ignoreDefaults bool
}

type Option func(*Linter)

// WithDefaultIgnores toggles skipping of merge, revert and autosquash
// commits. It is on by default.
func WithDefaultIgnores(enabled bool) Option {
	return func(l *Linter) {
		l.ignoreDefaults = enabled
	}
}

// New binds every rule of rs to its implementation. Unknown rule names and
// values of the wrong shape are configuration errors.
func New(rs config.RuleSet, opts ...Option) (*Linter, error) {
	l := &Linter{ignoreDefaults: true}
	for _, opt := range opts {
		opt(l)
	}

	for _, name := range rs.Names() {
		rc := rs[name]
		rule, ok := rules.Lookup(name)
		if !ok {
			return nil, errors.ErrUnknownRule.WithContext("rule", name)
		}
		if !rc.Level.Valid() {
			return nil, errors.ErrInvalidSeverity.WithContext("rule", name)
		}
		if !rc.When.Valid() {
			return nil, errors.ErrInvalidApplicability.WithContext("rule", name)
		}
		if rc.Level == config.SeverityOff {
			continue
		}
		if err := rule.ValidateValue(rc.Value); err != nil {
			return nil, err
		}
		l.rules = append(l.rules, boundRule{rule: rule, config: rc})
	}
	return l, nil
}

// FromConfig resolves the effective rule set of cfg and builds a Linter.
func FromConfig(cfg *config.LintConfig, opts ...Option) (*Linter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rs, err := cfg.Effective()
	if err != nil {
		return nil, err
	}
	return New(rs, opts...)
}

// Lint checks a single raw message.
func (l *Linter) Lint(ctx context.Context, raw string) (Outcome, error) {
	c := commit.Parse(raw)
	if c.Message == "" {
		return Outcome{}, errors.ErrEmptyMessage
	}

	out := Outcome{
		Input:    c.Header,
		Valid:    true,
		Errors:   []Problem{},
		Warnings: []Problem{},
	}

	if l.ignoreDefaults && commit.IsIgnored(c.Message) {
		logger.Debug(ctx, "message ignored", "header", c.Header)
		out.Ignored = true
		return out, nil
	}

	for _, br := range l.rules {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		valid, msg := br.rule.Check(c, br.config.When, br.config.Value)
		if valid {
			continue
		}

		p := Problem{Level: br.config.Level, Valid: false, Name: br.rule.Name, Message: msg}
		logger.Debug(ctx, "rule failed", "rule", p.Name, "level", p.Level.String())
		if p.Level == config.SeverityError {
			out.Errors = append(out.Errors, p)
			out.Valid = false
		} else {
			out.Warnings = append(out.Warnings, p)
		}
	}
	return out, nil
}
