package config

import "github.com/youniqx/heist-commitlint/internal/errors"

const PresetConventional = "@commitlint/config-conventional"

var presets = map[string]func() RuleSet{
	PresetConventional:  conventional,
	"config-conventional": conventional,
}

// ResolvePreset returns a fresh copy of the rules of a built-in preset.
func ResolvePreset(name string) (RuleSet, error) {
	preset, ok := presets[name]
	if !ok {
		return nil, errors.ErrUnknownPreset.WithContext("preset", name)
	}
	return preset(), nil
}

func conventional() RuleSet {
	return RuleSet{
		"body-leading-blank":     {Level: SeverityWarning, When: Always},
		"body-max-line-length":   {Level: SeverityError, When: Always, Value: 100},
		"footer-leading-blank":   {Level: SeverityWarning, When: Always},
		"footer-max-line-length": {Level: SeverityError, When: Always, Value: 100},
		"header-max-length":      {Level: SeverityError, When: Always, Value: 100},
		"header-trim":            {Level: SeverityError, When: Always},
		"subject-case": {
			Level: SeverityError,
			When:  Never,
			Value: []string{"sentence-case", "start-case", "pascal-case", "upper-case"},
		},
		"subject-empty":     {Level: SeverityError, When: Never},
		"subject-full-stop": {Level: SeverityError, When: Never, Value: "."},
		"type-case":         {Level: SeverityError, When: Always, Value: "lower-case"},
		"type-empty":        {Level: SeverityError, When: Never},
		"type-enum": {
			Level: SeverityError,
			When:  Always,
			Value: []string{"build", "chore", "ci", "docs", "feat", "fix", "perf", "refactor", "revert", "style", "test"},
		},
	}
}
