package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/youniqx/heist-commitlint/internal/commit"
	"github.com/youniqx/heist-commitlint/internal/config"
)

var (
	scopeDelimiter = regexp.MustCompile(`/|\\|, ?`)
	startsLetter   = regexp.MustCompile(`^[a-zA-Z]`)
)

func length(s string) int {
	return utf8.RuneCountInString(s)
}

func maxLineLength(s string, limit int) bool {
	for _, line := range strings.Split(s, "\n") {
		if length(line) > limit {
			return false
		}
	}
	return true
}

func negated(when config.Applicability) bool {
	return when == config.Never
}

func splitScopes(scope string) []string {
	return scopeDelimiter.Split(scope, -1)
}

// emptyRule builds the <field>-empty rule: "never" means the field may not be
// empty, "always" means it must be.
func emptyRule(field string, get func(c commit.Commit) string) CheckFunc {
	return func(c commit.Commit, when config.Applicability, _ any) (bool, string) {
		notEmpty := strings.TrimSpace(get(c)) != ""
		if when == config.Always {
			return !notEmpty, field + " must be empty"
		}
		return notEmpty, field + " may not be empty"
	}
}

// maxLengthRule builds a <field>-max-length rule. Empty fields pass.
func maxLengthRule(field string, get func(c commit.Commit) string) CheckFunc {
	return func(c commit.Commit, _ config.Applicability, value any) (bool, string) {
		limit, _ := value.(int)
		s := get(c)
		return s == "" || length(s) <= limit, fmt.Sprintf("%s must not be longer than %d characters", field, limit)
	}
}

// minLengthRule builds a <field>-min-length rule. Empty fields pass.
func minLengthRule(field string, get func(c commit.Commit) string) CheckFunc {
	return func(c commit.Commit, _ config.Applicability, value any) (bool, string) {
		limit, _ := value.(int)
		s := get(c)
		return s == "" || length(s) >= limit, fmt.Sprintf("%s must not be shorter than %d characters", field, limit)
	}
}

// caseRule builds a <field>-case rule. Values that fail guard pass.
func caseRule(field string, get func(c commit.Commit) []string, guard func(string) bool) CheckFunc {
	return func(c commit.Commit, when config.Applicability, value any) (bool, string) {
		targets, _ := caseTargets(value)
		msg := field + " must "
		if negated(when) {
			msg += "not "
		}
		msg += "be " + strings.Join(targets, ", ")

		for _, s := range get(c) {
			if s == "" || (guard != nil && !guard(s)) {
				continue
			}
			matches := slices.ContainsFunc(targets, func(target string) bool {
				return ensureCase(s, target)
			})
			if negated(when) == matches {
				return false, msg
			}
		}
		return true, msg
	}
}

// enumRule builds a <field>-enum rule. Empty fields and empty sets pass.
func enumRule(field string, get func(c commit.Commit) []string) CheckFunc {
	return func(c commit.Commit, when config.Applicability, value any) (bool, string) {
		allowed, _ := value.([]string)
		msg := field + " must "
		if negated(when) {
			msg += "not "
		}
		msg += "be one of [" + strings.Join(allowed, ", ") + "]"

		values := get(c)
		if len(allowed) == 0 || len(values) == 0 {
			return true, msg
		}
		for _, v := range values {
			if slices.Contains(allowed, v) == negated(when) {
				return false, msg
			}
		}
		return true, msg
	}
}

// fullStopRule builds a <field>-full-stop rule.
func fullStopRule(field string, get func(c commit.Commit) string) CheckFunc {
	return func(c commit.Commit, when config.Applicability, value any) (bool, string) {
		stop, _ := value.(string)
		s := get(c)
		if s == "" {
			return true, ""
		}
		hasStop := strings.HasSuffix(s, stop)
		if negated(when) {
			return !hasStop, field + " may not end with full stop"
		}
		return hasStop, field + " must end with full stop"
	}
}

func single(get func(c commit.Commit) string) func(c commit.Commit) []string {
	return func(c commit.Commit) []string {
		if s := get(c); s != "" {
			return []string{s}
		}
		return nil
	}
}

func letterFirst(s string) bool {
	return startsLetter.MatchString(s)
}
