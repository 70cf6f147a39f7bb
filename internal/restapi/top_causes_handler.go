package restapi

import (
	"net/http"

	"mortalidad.saluddatos.org/internal/models"
	"mortalidad.saluddatos.org/internal/utils"
)

const (
	defaultTopCausesLimit = 10
	maxListLimit          = 100
)

func (api *RestAPI) topCausesHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	filter, fieldErrors := utils.FilterFromQuery(queryParams)
	limit, fieldErrors := utils.ParseLimitParam(queryParams, "limit", defaultTopCausesLimit, maxListLimit, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	// Fetch one extra row to detect truncation.
	totals, err := api.Manager.VitalsDB.TopCauses(r.Context(), filter, limit+1)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	limitExceeded := len(totals) > limit
	if limitExceeded {
		totals = totals[:limit]
	}

	results := make([]models.CauseCount, 0, len(totals))
	causes := make([]models.CauseReference, 0, len(totals))
	for _, t := range totals {
		results = append(results, models.CauseCount{
			CauseCode: t.CauseCode,
			CauseName: t.CauseName,
			Total:     t.Total,
		})
		if t.CauseCode != "" {
			causes = append(causes, models.NewCauseReference(t.CauseCode, t.CauseName))
		}
	}

	references := models.NewEmptyReferences()
	references.Causes = causes

	response := models.NewListResponseWithRange(results, references, limitExceeded)
	api.sendResponse(w, r, response)
}
