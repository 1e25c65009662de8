package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"nebula-vault/config"
)

// Log is the process-wide logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures the global logger from the runtime settings.
// It should be called once from main before the game is built.
func Init(settings config.Settings) {
	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// json for collected logs, text while developing
	if strings.ToLower(settings.LogFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// stdout belongs to command output such as the frame subcommand
	Log.SetOutput(os.Stderr)
}

// For returns an entry tagged with the component that is logging.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
