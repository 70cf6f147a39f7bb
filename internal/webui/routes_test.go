package webui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortalidad.saluddatos.org/internal/app"
	"mortalidad.saluddatos.org/internal/appconf"
	"mortalidad.saluddatos.org/internal/vitals"
)

func createTestWebUI(t *testing.T) *WebUI {
	vitalsConfig := vitals.Config{
		DataDir: filepath.Join("..", "..", "testdata"),
		DBPath:  ":memory:",
		Env:     appconf.Test,
	}

	manager, err := vitals.InitManager(vitalsConfig)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	return NewWebUI(&app.Application{
		VitalsConfig: vitalsConfig,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Manager:      manager,
	})
}

func serveWebUI(t *testing.T, endpoint string) *http.Response {
	ui := createTestWebUI(t)

	router := httprouter.New()
	ui.SetWebUIRoutes(router)

	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func TestDebugIndexHandler(t *testing.T) {
	resp := serveWebUI(t, "/debug?dataType=departments")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Antioquia")
}

func TestDebugIndexHandlerUnknownDataType(t *testing.T) {
	resp := serveWebUI(t, "/debug?dataType=nope")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Please use one of the following")
}

func TestGeoJSONHandler(t *testing.T) {
	resp := serveWebUI(t, "/geo/departments.geojson")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "FeatureCollection")
}

func TestGeoJSONHandlerMissingFile(t *testing.T) {
	ui := createTestWebUI(t)
	ui.VitalsConfig.DataDir = filepath.Join("..", "..", "testdata", "does-not-exist")

	router := httprouter.New()
	ui.SetWebUIRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/geo/departments.geojson", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
