package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopCausesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/vitals/top-causes.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := responseList(t, model)
	require.Len(t, list, 4)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "I219", first["causeCode"])
	assert.Equal(t, "Infarto agudo del miocardio", first["causeName"])
	assert.Equal(t, float64(4), first["total"])

	data := responseData(t, model)
	assert.Equal(t, false, data["limitExceeded"])
}

func TestTopCausesHandlerRespectsLimit(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/vitals/top-causes.json?key=TEST&limit=2")

	list := responseList(t, model)
	assert.Len(t, list, 2)

	data := responseData(t, model)
	assert.Equal(t, true, data["limitExceeded"])
}

func TestTopCausesHandlerRejectsMalformedLimit(t *testing.T) {
	api := createTestApi(t)

	req, err := http.NewRequest("GET", "/api/vitals/top-causes.json?key=TEST&limit=abc", nil)
	require.NoError(t, err)

	rr := newRecorderFor(api, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
