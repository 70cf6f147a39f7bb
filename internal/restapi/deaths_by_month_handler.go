package restapi

import (
	"net/http"

	"mortalidad.saluddatos.org/internal/models"
	"mortalidad.saluddatos.org/internal/utils"
)

func (api *RestAPI) deathsByMonthHandler(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := utils.FilterFromQuery(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	totals, err := api.Manager.VitalsDB.CountDeathsByMonth(r.Context(), filter)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	results := make([]models.MonthCount, 0, len(totals))
	for _, t := range totals {
		results = append(results, models.MonthCount{Month: t.Month, Total: t.Total})
	}

	response := models.NewListResponse(results, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
