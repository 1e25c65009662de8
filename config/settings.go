package config

import (
	"strings"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

// ErrInvalidSettings is returned when a runtime setting fails validation.
var ErrInvalidSettings = eris.New("invalid settings")

// Settings holds runtime options read from the environment.
type Settings struct {
	LogLevel  string `config:"LOG_LEVEL"`
	LogFormat string `config:"LOG_FORMAT"`
	ShowFPS   bool   `config:"NEBULA_SHOW_FPS"`
	TPS       int    `config:"NEBULA_TPS"`
}

// DefaultSettings returns the settings used when nothing is set in the environment
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "text",
		ShowFPS:   false,
		TPS:       60,
	}
}

// LoadSettings overlays environment variables on the defaults and validates the result.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()
	if err := jlconfig.FromEnv().To(&s); err != nil {
		return Settings{}, eris.Wrap(err, "failed to read settings from environment")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that every setting holds a usable value.
func (s Settings) Validate() error {
	if s.TPS <= 0 {
		return eris.Wrapf(ErrInvalidSettings, "NEBULA_TPS must be positive, got %d", s.TPS)
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return eris.Wrapf(ErrInvalidSettings, "LOG_LEVEL is not a log level, got %q", s.LogLevel)
	}
	switch strings.ToLower(s.LogFormat) {
	case "text", "json":
	default:
		return eris.Wrapf(ErrInvalidSettings, "LOG_FORMAT must be text or json, got %q", s.LogFormat)
	}
	return nil
}
