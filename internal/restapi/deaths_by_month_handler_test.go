package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeathsByMonthHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/vitals/deaths-by-month.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := responseList(t, model)
	require.Len(t, list, 12)

	byMonth := make(map[float64]float64)
	for _, item := range list {
		row := item.(map[string]interface{})
		byMonth[row["month"].(float64)] = row["total"].(float64)
	}

	assert.Equal(t, float64(3), byMonth[1])
	assert.Equal(t, float64(2), byMonth[2])
	assert.Equal(t, float64(0), byMonth[8])
	assert.Equal(t, float64(1), byMonth[12])
}

func TestDeathsByMonthHandlerWithDepartmentFilter(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/vitals/deaths-by-month.json?key=TEST&department=76")

	list := responseList(t, model)
	require.Len(t, list, 12)

	var total float64
	for _, item := range list {
		row := item.(map[string]interface{})
		total += row["total"].(float64)
	}
	assert.Equal(t, float64(3), total)
}
