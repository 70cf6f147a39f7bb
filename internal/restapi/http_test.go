package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"mortalidad.saluddatos.org/internal/app"
	"mortalidad.saluddatos.org/internal/appconf"
	"mortalidad.saluddatos.org/internal/models"
	"mortalidad.saluddatos.org/internal/vitals"
)

// createTestApi creates a RestAPI instance backed by the fixture dataset and
// an in-memory database.
func createTestApi(t *testing.T) *RestAPI {
	manager, err := vitals.InitManager(vitals.Config{
		DataDir: filepath.Join("..", "..", "testdata"),
		DBPath:  ":memory:",
		Env:     appconf.Test,
	})
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	application := &app.Application{
		Config: appconf.Config{
			Env:     appconf.Test,
			ApiKeys: []string{"TEST"},
		},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Manager: manager,
	}

	return &RestAPI{Application: application}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)

	server := httptest.NewServer(api.Handler(router))
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// newRecorderFor routes a single request through the API and records the response.
func newRecorderFor(api *RestAPI, req *http.Request) *httptest.ResponseRecorder {
	router := httprouter.New()
	api.SetRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// responseData casts the decoded Data payload to a map.
func responseData(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "could not cast data to expected type")
	return data
}

// responseList extracts the list payload from a list response.
func responseList(t *testing.T, model models.ResponseModel) []interface{} {
	data := responseData(t, model)
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "could not find list in response data")
	return list
}

// responseEntry extracts the entry payload from an entry response.
func responseEntry(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data := responseData(t, model)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "could not find entry in response data")
	return entry
}
