package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youniqx/heist-commitlint/internal/commit"
	"github.com/youniqx/heist-commitlint/internal/config"
)

func check(t *testing.T, name, raw string, when config.Applicability, value any) (bool, string) {
	t.Helper()
	r, ok := Lookup(name)
	require.True(t, ok, "rule %s is not registered", name)
	require.NoError(t, r.ValidateValue(value))
	return r.Check(commit.Parse(raw), when, value)
}

var heistScopes = []string{"operator", "agent", "vault-api", "deps"}

func TestScopeEnum(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		when  config.Applicability
		valid bool
	}{
		{name: "allowed scope", raw: "feat(agent): x", when: config.Always, valid: true},
		{name: "scope with dash", raw: "fix(vault-api): x", when: config.Always, valid: true},
		{name: "not allowed", raw: "ci(ci): x", when: config.Always, valid: false},
		{name: "no scope", raw: "chore: x", when: config.Always, valid: true},
		{name: "all segments allowed", raw: "chore(operator/agent): x", when: config.Always, valid: true},
		{name: "one segment not allowed", raw: "chore(operator, docs): x", when: config.Always, valid: false},
		{name: "never with allowed scope", raw: "feat(deps): x", when: config.Never, valid: false},
		{name: "never with other scope", raw: "feat(docs): x", when: config.Never, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := check(t, "scope-enum", tt.raw, tt.when, heistScopes)

			assert.Equal(t, tt.valid, valid)
			assert.Contains(t, msg, "be one of [operator, agent, vault-api, deps]")
		})
	}
}

func TestHeaderMaxLength(t *testing.T) {
	t.Run("at the bound", func(t *testing.T) {
		raw := "feat(agent): " + strings.Repeat("a", 180-len("feat(agent): "))

		valid, _ := check(t, "header-max-length", raw, config.Always, 180)

		assert.True(t, valid)
	})

	t.Run("one over the bound", func(t *testing.T) {
		raw := "feat(agent): " + strings.Repeat("a", 181-len("feat(agent): "))

		valid, msg := check(t, "header-max-length", raw, config.Always, 180)

		assert.False(t, valid)
		assert.Equal(t, "header must not be longer than 180 characters, current length is 181", msg)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		raw := "fix(agent): " + strings.Repeat("ü", 10)

		valid, msg := check(t, "header-max-length", raw, config.Always, 22)

		assert.True(t, valid, msg)
	})
}

func TestSignedOffBy(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "signed", raw: "fix: x\n\nSigned-off-by: Jane <jane@example.com>", valid: true},
		{name: "signed with trailing comments", raw: "fix: x\n\nSigned-off-by: Jane <jane@example.com>\n\n# Please enter the commit message\n", valid: true},
		{name: "not last line", raw: "fix: x\n\nSigned-off-by: Jane <jane@example.com>\n\nmore text", valid: false},
		{name: "missing", raw: "fix: x\n\nbody", valid: false},
		{name: "lowercase key", raw: "fix: x\n\nsigned-off-by: Jane <jane@example.com>", valid: false},
		{name: "followed by another trailer", raw: "fix: x\n\nSigned-off-by: Jane <jane@example.com>\nCo-authored-by: Joe <joe@example.com>", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := check(t, "signed-off-by", tt.raw, config.Always, "Signed-off-by:")

			assert.Equal(t, tt.valid, valid)
			assert.Equal(t, "message must be signed off", msg)
		})
	}

	t.Run("never", func(t *testing.T) {
		valid, msg := check(t, "signed-off-by", "fix: x\n\nSigned-off-by: J <j@example.com>", config.Never, "Signed-off-by:")

		assert.False(t, valid)
		assert.Equal(t, "message must not be signed off", msg)
	})
}

func TestTrailerExists(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		valid, _ := check(t, "trailer-exists", "fix: x\n\nbody\n\nSigned-off-by: Jane <jane@example.com>", config.Always, "Signed-off-by:")

		assert.True(t, valid)
	})

	t.Run("sign-off inside the body is not a trailer", func(t *testing.T) {
		valid, msg := check(t, "trailer-exists", "fix: x\n\nSigned-off-by: Jane <jane@example.com>\nthen prose\nand more prose\nand even more prose\n\nlast paragraph", config.Always, "Signed-off-by:")

		assert.False(t, valid)
		assert.Equal(t, "message must have `Signed-off-by:` trailer", msg)
	})

	t.Run("any position in the trailer block", func(t *testing.T) {
		valid, _ := check(t, "trailer-exists", "fix: x\n\nSigned-off-by: Jane <jane@example.com>\nCo-authored-by: Joe <joe@example.com>", config.Always, "Signed-off-by:")

		assert.True(t, valid)
	})

	t.Run("never", func(t *testing.T) {
		valid, _ := check(t, "trailer-exists", "fix: x\n\nbody", config.Never, "Signed-off-by:")

		assert.True(t, valid)
	})
}

func TestCaseRules(t *testing.T) {
	conventionalSubject := []string{"sentence-case", "start-case", "pascal-case", "upper-case"}

	tests := []struct {
		name  string
		rule  string
		raw   string
		when  config.Applicability
		value any
		valid bool
	}{
		{name: "lower subject passes never", rule: "subject-case", raw: "feat: add sync command", when: config.Never, value: conventionalSubject, valid: true},
		{name: "sentence subject fails never", rule: "subject-case", raw: "feat: Add sync command", when: config.Never, value: conventionalSubject, valid: false},
		{name: "upper subject fails never", rule: "subject-case", raw: "feat: ADD SYNC", when: config.Never, value: conventionalSubject, valid: false},
		{name: "subject starting with digit is skipped", rule: "subject-case", raw: "feat: 2FA support", when: config.Never, value: conventionalSubject, valid: true},
		{name: "quoted text is ignored", rule: "subject-case", raw: "feat: add `Vault` client", when: config.Always, value: "lower-case", valid: true},
		{name: "lower type", rule: "type-case", raw: "feat: x", when: config.Always, value: "lower-case", valid: true},
		{name: "upper type", rule: "type-case", raw: "FEAT: x", when: config.Always, value: "lower-case", valid: false},
		{name: "kebab scope", rule: "scope-case", raw: "fix(vault-api): x", when: config.Always, value: "kebab-case", valid: true},
		{name: "camel scope is not kebab", rule: "scope-case", raw: "fix(vaultApi): x", when: config.Always, value: "kebab-case", valid: false},
		{name: "several targets", rule: "scope-case", raw: "fix(vaultApi): x", when: config.Always, value: []string{"kebab-case", "camel-case"}, valid: true},
		{name: "pascal header", rule: "header-case", raw: "AddSync", when: config.Always, value: "pascal-case", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := check(t, tt.rule, tt.raw, tt.when, tt.value)

			assert.Equal(t, tt.valid, valid, msg)
		})
	}
}

func TestToCase(t *testing.T) {
	tests := []struct {
		input, target, want string
	}{
		{"add sync command", "camel-case", "addSyncCommand"},
		{"add sync command", "pascal-case", "AddSyncCommand"},
		{"add sync command", "kebab-case", "add-sync-command"},
		{"addSyncCommand", "snake-case", "add_sync_command"},
		{"add sync command", "start-case", "Add Sync Command"},
		{"add sync command", "sentence-case", "Add sync command"},
		{"VaultAPI client", "kebab-case", "vault-api-client"},
		{"XMLHttp", "kebab-case", "xml-http"},
		{"Add", "upper-case", "ADD"},
		{"ADD", "lower-case", "add"},
	}

	for _, tt := range tests {
		t.Run(tt.target+"/"+tt.input, func(t *testing.T) {
			got, ok := toCase(tt.input, tt.target)

			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := toCase("x", "title-case")
	assert.False(t, ok)
}

func TestEmptyRules(t *testing.T) {
	valid, msg := check(t, "type-empty", "no type here", config.Never, nil)
	assert.False(t, valid)
	assert.Equal(t, "type may not be empty", msg)

	valid, _ = check(t, "subject-empty", "feat: x", config.Never, nil)
	assert.True(t, valid)

	valid, msg = check(t, "scope-empty", "feat(agent): x", config.Always, nil)
	assert.False(t, valid)
	assert.Equal(t, "scope must be empty", msg)

	valid, _ = check(t, "body-empty", "feat: x", config.Never, nil)
	assert.False(t, valid)

	valid, _ = check(t, "footer-empty", "feat: x\n\nSigned-off-by: J <j@example.com>", config.Never, nil)
	assert.True(t, valid)
}

func TestTypeEnum(t *testing.T) {
	types := []string{"build", "chore", "ci", "docs", "feat", "fix", "perf", "refactor", "revert", "style", "test"}

	valid, _ := check(t, "type-enum", "feat(agent): x", config.Always, types)
	assert.True(t, valid)

	valid, msg := check(t, "type-enum", "feature(agent): x", config.Always, types)
	assert.False(t, valid)
	assert.Equal(t, "type must be one of [build, chore, ci, docs, feat, fix, perf, refactor, revert, style, test]", msg)
}

func TestFullStop(t *testing.T) {
	valid, msg := check(t, "subject-full-stop", "fix: handle nil.", config.Never, ".")
	assert.False(t, valid)
	assert.Equal(t, "subject may not end with full stop", msg)

	valid, _ = check(t, "header-full-stop", "fix: handle nil.", config.Always, ".")
	assert.True(t, valid)
}

func TestLeadingBlank(t *testing.T) {
	valid, msg := check(t, "body-leading-blank", "fix: x\nbody right below", config.Always, nil)
	assert.False(t, valid)
	assert.Equal(t, "body must have leading blank line", msg)

	valid, _ = check(t, "body-leading-blank", "fix: x\n\nbody", config.Always, nil)
	assert.True(t, valid)

	valid, msg = check(t, "footer-leading-blank", "fix: x\n\nbody\nBREAKING CHANGE: gone", config.Always, nil)
	assert.False(t, valid)
	assert.Equal(t, "footer must have leading blank line", msg)

	valid, _ = check(t, "footer-leading-blank", "fix: x\n\nbody\n\nSigned-off-by: J <j@example.com>", config.Always, nil)
	assert.True(t, valid)
}

func TestLineLengths(t *testing.T) {
	long := strings.Repeat("x", 101)

	valid, msg := check(t, "body-max-line-length", "fix: x\n\nshort\n"+long, config.Always, 100)
	assert.False(t, valid)
	assert.Equal(t, "body's lines must not be longer than 100 characters", msg)

	valid, _ = check(t, "footer-max-line-length", "fix: x\n\nSigned-off-by: "+long, config.Always, 100)
	assert.False(t, valid)

	valid, _ = check(t, "body-min-length", "fix: x\n\nabc", config.Always, 5)
	assert.False(t, valid)
}

func TestHeaderTrim(t *testing.T) {
	valid, msg := check(t, "header-trim", " fix: x", config.Always, nil)
	assert.False(t, valid)
	assert.Equal(t, "header must not start with whitespace", msg)

	valid, msg = check(t, "header-trim", "fix: x ", config.Always, nil)
	assert.False(t, valid)
	assert.Equal(t, "header must not end with whitespace", msg)

	valid, _ = check(t, "header-trim", "fix: x", config.Always, nil)
	assert.True(t, valid)
}

func TestValidateValue(t *testing.T) {
	r, _ := Lookup("header-max-length")
	assert.Error(t, r.ValidateValue("100"))
	assert.Error(t, r.ValidateValue(0))
	assert.NoError(t, r.ValidateValue(100))

	r, _ = Lookup("subject-case")
	assert.Error(t, r.ValidateValue([]string{"title-case"}))
	assert.Error(t, r.ValidateValue(42))
	assert.NoError(t, r.ValidateValue("lower-case"))

	r, _ = Lookup("scope-enum")
	assert.Error(t, r.ValidateValue("agent"))
}

func TestList(t *testing.T) {
	list := List()

	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name)
	}

	rs, err := config.Default().Effective()
	require.NoError(t, err)
	for _, name := range rs.Names() {
		_, ok := Lookup(name)
		assert.True(t, ok, "effective rule %s has no implementation", name)
	}
}
