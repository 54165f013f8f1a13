package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	t.Run("filters below warn by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, false)

		log.Info("loaded config")
		log.Warn("rule disabled", "rule", "body-max-line-length")

		out := buf.String()
		assert.NotContains(t, out, "loaded config")
		assert.Contains(t, out, "[WARN]  rule disabled rule=body-max-line-length")
	})

	t.Run("verbose enables info", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, true)

		log.Info("linting", "count", 3)

		assert.Contains(t, buf.String(), "[INFO]  linting count=3")
	})

	t.Run("groups and attrs are prefixed", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, true).WithGroup("lint").With("rule", "scope-enum")

		log.Info("failed", "scope", "ci")

		assert.Contains(t, buf.String(), "lint.rule=scope-enum lint.scope=ci")
	})
}

func TestContextLogger(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false, false))
	ctx = With(ctx, "commit", "abc123")

	Error(ctx, "lint failed", errors.New("boom"))
	Debug(ctx, "hidden")

	assert.Contains(t, buf.String(), "[ERROR] lint failed commit=abc123 error=boom")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestFromContext_Default(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}
