package vitals

import (
	"log/slog"

	"mortalidad.saluddatos.org/internal/appconf"
)

// Config holds the settings for the dataset manager.
type Config struct {
	DataDir      string // directory holding the CSV exports
	DBPath       string // SQLite database path (":memory:" for tests)
	Env          appconf.Environment
	Verbose      bool
	WatchEnabled bool // reload when files under DataDir change
	Logger       *slog.Logger
}

func (config Config) logger() *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	return slog.Default()
}
