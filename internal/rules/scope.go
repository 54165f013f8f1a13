package rules

import "github.com/youniqx/heist-commitlint/internal/commit"

func scope(c commit.Commit) string { return c.Scope }

// A scope like "operator/agent" or "operator, agent" names several segments.
func scopes(c commit.Commit) []string {
	if c.Scope == "" {
		return nil
	}
	return splitScopes(c.Scope)
}

func init() {
	Register(Rule{Name: "scope-case", Value: CaseValue, Check: caseRule("scope", scopes, nil)})
	Register(Rule{Name: "scope-empty", Value: NoValue, Check: emptyRule("scope", scope)})
	Register(Rule{Name: "scope-enum", Value: StringsValue, Check: enumRule("scope", scopes)})
	Register(Rule{Name: "scope-max-length", Value: IntValue, Check: maxLengthRule("scope", scope)})
	Register(Rule{Name: "scope-min-length", Value: IntValue, Check: minLengthRule("scope", scope)})
}
