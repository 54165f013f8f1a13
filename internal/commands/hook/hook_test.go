package hook

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/youniqx/heist-commitlint/internal/commands/shared"
	cfg "github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/i18n"
)

type MockHookInstaller struct {
	mock.Mock
}

func (m *MockHookInstaller) InstallHook(ctx context.Context, force bool) (string, error) {
	args := m.Called(ctx, force)
	return args.String(0), args.Error(1)
}

func runHook(t *testing.T, installer HookInstaller, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	out := new(bytes.Buffer)

	cmd := NewHookCommandFactory(installer, shared.Streams{Out: out}).CreateCommand(translations, &cfg.Settings{})
	err = cmd.Run(context.Background(), append([]string{"hook"}, args...))
	return out.String(), err
}

func TestHookInstall(t *testing.T) {
	t.Run("should report the installed path", func(t *testing.T) {
		// Arrange
		installer := new(MockHookInstaller)
		installer.On("InstallHook", mock.Anything, false).Return("/repo/.git/hooks/commit-msg", nil).Once()

		// Act
		out, err := runHook(t, installer, "install")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "✔ commit-msg hook installed at /repo/.git/hooks/commit-msg\n", out)
		installer.AssertExpectations(t)
	})

	t.Run("should pass --force", func(t *testing.T) {
		installer := new(MockHookInstaller)
		installer.On("InstallHook", mock.Anything, true).Return("/repo/.git/hooks/commit-msg", nil).Once()

		_, err := runHook(t, installer, "install", "--force")

		require.NoError(t, err)
		installer.AssertExpectations(t)
	})

	t.Run("should return installer errors", func(t *testing.T) {
		installer := new(MockHookInstaller)
		installer.On("InstallHook", mock.Anything, false).Return("", errors.ErrHookExists).Once()

		out, err := runHook(t, installer, "install")

		assert.ErrorIs(t, err, errors.ErrHookExists)
		assert.Empty(t, out)
	})
}
