// Package rules holds the commit message rule catalogue. Every rule file
// registers its rules in init.
package rules

import (
	"fmt"
	"sort"

	"github.com/youniqx/heist-commitlint/internal/commit"
	"github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/errors"
)

// ValueKind describes the parameter a rule expects.
type ValueKind int

const (
	NoValue ValueKind = iota
	StringValue
	StringsValue
	CaseValue
	IntValue
)

func (k ValueKind) String() string {
	switch k {
	case StringValue:
		return "string"
	case StringsValue:
		return "list of strings"
	case CaseValue:
		return "case name or list of case names"
	case IntValue:
		return "positive integer"
	default:
		return "none"
	}
}

// CheckFunc reports whether c satisfies the rule and the message to show
// when it does not.
type CheckFunc func(c commit.Commit, when config.Applicability, value any) (bool, string)

type Rule struct {
	Name  string
	Value ValueKind
	Check CheckFunc
}

var registry = map[string]Rule{}

// Register adds r to the catalogue. Registering a name twice panics.
func Register(r Rule) {
	if _, exists := registry[r.Name]; exists {
		panic(fmt.Sprintf("rules: %s registered twice", r.Name))
	}
	registry[r.Name] = r
}

func Lookup(name string) (Rule, bool) {
	r, ok := registry[name]
	return r, ok
}

// List returns every registered rule sorted by name.
func List() []Rule {
	out := make([]Rule, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ValidateValue checks v against the parameter kind of the rule.
func (r Rule) ValidateValue(v any) error {
	bad := errors.ErrInvalidRuleValue.
		WithContext("rule", r.Name).
		WithSuggestion(fmt.Sprintf("%s takes a %s", r.Name, r.Value))

	switch r.Value {
	case NoValue:
		return nil
	case StringValue:
		if _, ok := v.(string); !ok {
			return bad
		}
	case StringsValue:
		if _, ok := v.([]string); !ok {
			return bad
		}
	case CaseValue:
		targets, ok := caseTargets(v)
		if !ok || len(targets) == 0 {
			return bad
		}
		for _, target := range targets {
			if !knownCase(target) {
				return bad.WithContext("case", target)
			}
		}
	case IntValue:
		n, ok := v.(int)
		if !ok {
			return bad
		}
		if n <= 0 {
			return errors.ErrNonPositiveLength.WithContext("rule", r.Name)
		}
	}
	return nil
}

func caseTargets(v any) ([]string, bool) {
	switch val := v.(type) {
	case string:
		return []string{val}, true
	case []string:
		return val, true
	default:
		return nil, false
	}
}
