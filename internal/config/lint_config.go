package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/youniqx/heist-commitlint/internal/errors"
)

// Severity is the enforcement level of a rule.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return strconv.Itoa(int(s))
	}
}

func (s Severity) Valid() bool {
	return s >= SeverityOff && s <= SeverityError
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.ErrInvalidSeverity.WithContext("level", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts the numeric commitlint levels as well as their names.
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "0", "off":
		*s = SeverityOff
	case "1", "warn", "warning":
		*s = SeverityWarning
	case "2", "error":
		*s = SeverityError
	default:
		return errors.ErrInvalidSeverity.WithContext("level", string(text))
	}
	return nil
}

// Applicability says whether a rule condition must hold or must not hold.
type Applicability string

const (
	Always Applicability = "always"
	Never  Applicability = "never"
)

func (a Applicability) Valid() bool {
	return a == Always || a == Never
}

// RuleConfig is the (severity, applicability, parameter) triple of a rule.
// Value is nil, a string, an int or a []string.
type RuleConfig struct {
	Level Severity      `toml:"level" yaml:"level" json:"level"`
	When  Applicability `toml:"when" yaml:"when" json:"when"`
	Value any           `toml:"value,omitempty" yaml:"value,omitempty" json:"value,omitempty"`
}

// RuleSet maps rule names to their configuration.
type RuleSet map[string]RuleConfig

// Names returns the rule names in lexical order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (rs RuleSet) clone() RuleSet {
	out := make(RuleSet, len(rs))
	for name, rc := range rs {
		if values, ok := rc.Value.([]string); ok {
			rc.Value = append([]string(nil), values...)
		}
		out[name] = rc
	}
	return out
}

// LintConfig is the declarative lint configuration: presets to inherit from
// and rule overrides applied on top of them.
type LintConfig struct {
	Extends []string `toml:"extends" yaml:"extends" json:"extends"`
	Rules   RuleSet  `toml:"rules" yaml:"rules" json:"rules"`
}

const (
	RuleScopeEnum       = "scope-enum"
	RuleSignedOffBy     = "signed-off-by"
	RuleTrailerExists   = "trailer-exists"
	RuleHeaderMaxLength = "header-max-length"

	SignOffTrailer = "Signed-off-by:"
)

// Default returns the heist commit conventions.
func Default() *LintConfig {
	return &LintConfig{
		Extends: []string{PresetConventional},
		Rules: RuleSet{
			RuleScopeEnum: {
				Level: SeverityError,
				When:  Always,
				Value: []string{"operator", "agent", "vault-api", "deps"},
			},
			RuleSignedOffBy: {
				Level: SeverityError,
				When:  Always,
				Value: SignOffTrailer,
			},
			RuleTrailerExists: {
				Level: SeverityError,
				When:  Always,
				Value: SignOffTrailer,
			},
			RuleHeaderMaxLength: {
				Level: SeverityError,
				When:  Always,
				Value: 180,
			},
		},
	}
}

// Validate checks the shape of every rule entry. Whether a rule name is known
// is decided by the lint engine.
func (c *LintConfig) Validate() error {
	for _, name := range c.Extends {
		if strings.TrimSpace(name) == "" {
			return errors.ErrUnknownPreset.WithContext("preset", name)
		}
	}
	for _, name := range c.Rules.Names() {
		if err := validateRule(name, c.Rules[name]); err != nil {
			return err
		}
	}
	return nil
}

func validateRule(name string, rc RuleConfig) error {
	if !rc.Level.Valid() {
		return errors.ErrInvalidSeverity.WithContext("rule", name)
	}
	if !rc.When.Valid() {
		return errors.ErrInvalidApplicability.WithContext("rule", name)
	}

	switch {
	case name == RuleScopeEnum:
		values, ok := rc.Value.([]string)
		if !ok {
			return errors.ErrInvalidRuleValue.WithContext("rule", name).
				WithSuggestion("scope-enum takes a list of scopes")
		}
		if len(values) == 0 {
			return errors.ErrEmptyScopeEnum.WithContext("rule", name)
		}
	case isLengthRule(name):
		n, ok := rc.Value.(int)
		if !ok {
			return errors.ErrInvalidRuleValue.WithContext("rule", name).
				WithSuggestion(fmt.Sprintf("%s takes an integer", name))
		}
		if n <= 0 {
			return errors.ErrNonPositiveLength.WithContext("rule", name)
		}
	case name == RuleSignedOffBy || name == RuleTrailerExists:
		if s, ok := rc.Value.(string); !ok || s == "" {
			return errors.ErrInvalidRuleValue.WithContext("rule", name).
				WithSuggestion(fmt.Sprintf("%s takes the trailer text, e.g. %q", name, SignOffTrailer))
		}
	}
	return nil
}

func isLengthRule(name string) bool {
	return strings.HasSuffix(name, "-max-length") ||
		strings.HasSuffix(name, "-min-length") ||
		strings.HasSuffix(name, "-max-line-length")
}

// Effective resolves the rule set applied at lint time: the rules of every
// preset in Extends, in order, then the rules of c replacing any rule with
// the same name. c is left untouched.
func (c *LintConfig) Effective() (RuleSet, error) {
	out := RuleSet{}
	for _, name := range c.Extends {
		preset, err := ResolvePreset(name)
		if err != nil {
			return nil, err
		}
		for rule, rc := range preset {
			out[rule] = rc
		}
	}
	for rule, rc := range c.Rules.clone() {
		out[rule] = rc
	}
	return out, nil
}
