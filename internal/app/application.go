package app

import (
	"log/slog"

	"mortalidad.saluddatos.org/internal/appconf"
	"mortalidad.saluddatos.org/internal/vitals"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config       appconf.Config
	VitalsConfig vitals.Config
	Logger       *slog.Logger
	Manager      *vitals.Manager
}
