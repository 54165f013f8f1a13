package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/youniqx/heist-commitlint/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"@commitlint/config-conventional"}, cfg.Extends)
	assert.Equal(t, RuleSet{
		"scope-enum":        {Level: SeverityError, When: Always, Value: []string{"operator", "agent", "vault-api", "deps"}},
		"signed-off-by":     {Level: SeverityError, When: Always, Value: "Signed-off-by:"},
		"trailer-exists":    {Level: SeverityError, When: Always, Value: "Signed-off-by:"},
		"header-max-length": {Level: SeverityError, When: Always, Value: 180},
	}, cfg.Rules)
	assert.NoError(t, cfg.Validate())
}

func TestEffective(t *testing.T) {
	t.Run("overrides replace preset rules with the same name", func(t *testing.T) {
		// arrange
		cfg := Default()

		// act
		rules, err := cfg.Effective()

		// assert
		require.NoError(t, err)
		assert.Equal(t, 180, rules["header-max-length"].Value)
		assert.Equal(t, []string{"operator", "agent", "vault-api", "deps"}, rules["scope-enum"].Value)
		assert.Equal(t, Never, rules["subject-case"].When)
		assert.Len(t, rules, 15, "12 preset rules, one replaced, three added")
	})

	t.Run("does not mutate the record", func(t *testing.T) {
		cfg := Default()

		rules, err := cfg.Effective()
		require.NoError(t, err)
		rules["scope-enum"].Value.([]string)[0] = "changed"
		delete(rules, "signed-off-by")

		assert.Equal(t, Default(), cfg)
	})

	t.Run("presets are applied in order", func(t *testing.T) {
		cfg := &LintConfig{Extends: []string{PresetConventional, "config-conventional"}}

		rules, err := cfg.Effective()

		require.NoError(t, err)
		assert.Equal(t, 100, rules["header-max-length"].Value)
	})

	t.Run("unknown preset", func(t *testing.T) {
		cfg := &LintConfig{Extends: []string{"@commitlint/config-angular"}}

		_, err := cfg.Effective()

		assert.True(t, errors.Is(err, domainErrors.ErrUnknownPreset))
	})

	t.Run("without extends only the overrides apply", func(t *testing.T) {
		cfg := &LintConfig{Rules: RuleSet{"type-empty": {Level: SeverityError, When: Never}}}

		rules, err := cfg.Effective()

		require.NoError(t, err)
		assert.Equal(t, []string{"type-empty"}, rules.Names())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rules   RuleSet
		wantErr *domainErrors.AppError
	}{
		{
			name:    "severity out of range",
			rules:   RuleSet{"type-empty": {Level: 3, When: Never}},
			wantErr: domainErrors.ErrInvalidSeverity,
		},
		{
			name:    "bad applicability",
			rules:   RuleSet{"type-empty": {Level: SeverityError, When: "sometimes"}},
			wantErr: domainErrors.ErrInvalidApplicability,
		},
		{
			name:    "empty scope-enum",
			rules:   RuleSet{"scope-enum": {Level: SeverityError, When: Always, Value: []string{}}},
			wantErr: domainErrors.ErrEmptyScopeEnum,
		},
		{
			name:    "scope-enum with a string",
			rules:   RuleSet{"scope-enum": {Level: SeverityError, When: Always, Value: "agent"}},
			wantErr: domainErrors.ErrInvalidRuleValue,
		},
		{
			name:    "zero header-max-length",
			rules:   RuleSet{"header-max-length": {Level: SeverityError, When: Always, Value: 0}},
			wantErr: domainErrors.ErrNonPositiveLength,
		},
		{
			name:    "header-max-length as string",
			rules:   RuleSet{"header-max-length": {Level: SeverityError, When: Always, Value: "180"}},
			wantErr: domainErrors.ErrInvalidRuleValue,
		},
		{
			name:    "trailer-exists without text",
			rules:   RuleSet{"trailer-exists": {Level: SeverityError, When: Always}},
			wantErr: domainErrors.ErrInvalidRuleValue,
		},
		{
			name:  "disabled rule is still a valid entry",
			rules: RuleSet{"body-leading-blank": {Level: SeverityOff, When: Always}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &LintConfig{Rules: tt.rules}

			err := cfg.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSeverityText(t *testing.T) {
	for _, in := range []string{"2", "error", "ERROR"} {
		var s Severity
		require.NoError(t, s.UnmarshalText([]byte(in)))
		assert.Equal(t, SeverityError, s)
	}

	var s Severity
	assert.Error(t, s.UnmarshalText([]byte("fatal")))

	text, err := SeverityWarning.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warning", string(text))

	_, err = Severity(7).MarshalText()
	assert.Error(t, err)
}
