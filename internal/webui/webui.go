package webui

import (
	"mortalidad.saluddatos.org/internal/app"
)

// WebUI serves the debug pages and static geographic assets.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
