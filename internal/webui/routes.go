package webui

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/julienschmidt/httprouter"

	"mortalidad.saluddatos.org/internal/vitals"
)

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/debug", http.HandlerFunc(webUI.debugIndexHandler))
	router.Handler(http.MethodGet, "/geo/departments.geojson", http.HandlerFunc(webUI.geoJSONHandler))
}

// geoJSONHandler serves the department boundary file used by map clients.
func (webUI *WebUI) geoJSONHandler(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(webUI.VitalsConfig.DataDir, vitals.GeoJSONFileName)

	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, path)
}
