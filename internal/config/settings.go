package config

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/logger"
)

// Settings are per-user CLI preferences. They never change lint results.
type Settings struct {
	Language    string `json:"language"`
	NoColor     bool   `json:"no_color"`
	HelpURL     string `json:"help_url"`
	GitHubToken string `json:"github_token,omitempty"`
	PathFile    string `json:"-"`
}

const (
	defaultLang    = "en"
	DefaultHelpURL = "https://github.com/conventional-changelog/commitlint/#what-is-commitlint"

	settingsDir  = ".heist-commitlint"
	settingsFile = "config.json"

	EnvLang        = "COMMITLINT_LANG"
	EnvGitHubToken = "GITHUB_TOKEN"
)

// LoadSettings reads $home/.heist-commitlint/config.json, writing a default
// file on first use. Environment variables take precedence over the file.
func LoadSettings(home string) (*Settings, error) {
	var path string
	if filepath.Ext(home) == ".json" {
		path = home
	} else {
		path = filepath.Join(home, settingsDir, settingsFile)
	}

	settings, err := readSettings(path)
	if err != nil {
		return nil, err
	}

	if lang := os.Getenv(EnvLang); lang != "" {
		settings.Language = lang
	}
	if token := os.Getenv(EnvGitHubToken); token != "" {
		settings.GitHubToken = token
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func readSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) || stderrors.Is(err, syscall.ENOTDIR) {
		return createDefaultSettings(path)
	}
	if err != nil {
		return nil, errors.ErrSettings.WithError(err).WithContext("path", path)
	}

	settings := &Settings{}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, errors.ErrSettings.WithError(fmt.Errorf("error decoding JSON: %w", err)).WithContext("path", path)
	}
	settings.PathFile = path
	if settings.Language == "" {
		settings.Language = defaultLang
	}
	if settings.HelpURL == "" {
		settings.HelpURL = DefaultHelpURL
	}
	return settings, nil
}

// createDefaultSettings writes the default file. The defaults are returned
// even when the file cannot be written.
func createDefaultSettings(path string) (*Settings, error) {
	settings := &Settings{
		Language: defaultLang,
		HelpURL:  DefaultHelpURL,
		PathFile: path,
	}
	if err := SaveSettings(settings); err != nil {
		logger.Debug(context.Background(), "could not write default settings, using defaults", "path", path, "error", err)
	}
	return settings, nil
}

// SaveSettings writes settings back to PathFile.
func SaveSettings(settings *Settings) error {
	if err := settings.validate(); err != nil {
		return err
	}
	if settings.PathFile == "" {
		return errors.ErrSettings.WithError(fmt.Errorf("settings path is not set"))
	}

	if err := os.MkdirAll(filepath.Dir(settings.PathFile), 0755); err != nil {
		return errors.ErrSettings.WithError(err).WithContext("path", settings.PathFile)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return errors.ErrSettings.WithError(err)
	}
	if err := os.WriteFile(settings.PathFile, data, 0600); err != nil {
		return errors.ErrSettings.WithError(err).WithContext("path", settings.PathFile)
	}
	return nil
}

func (s *Settings) validate() error {
	if s.Language == "" {
		return errors.ErrSettings.WithError(fmt.Errorf("language cannot be empty"))
	}
	return nil
}
