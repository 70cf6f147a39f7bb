package restapi

import (
	"net/http"

	"mortalidad.saluddatos.org/internal/models"
	"mortalidad.saluddatos.org/internal/utils"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := utils.FilterFromQuery(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	summary, err := api.Manager.VitalsDB.Summary(r.Context(), filter)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.SummaryModel{
		TotalDeaths:    summary.TotalDeaths,
		Departments:    summary.Departments,
		Municipalities: summary.Municipalities,
		Causes:         summary.Causes,
	}

	response := models.NewEntryResponse(entry, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
