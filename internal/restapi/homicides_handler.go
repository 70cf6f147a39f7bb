package restapi

import (
	"net/http"

	"mortalidad.saluddatos.org/internal/models"
	"mortalidad.saluddatos.org/internal/utils"
)

const defaultHomicidesLimit = 5

// homicidesByMunicipalityHandler reports the municipalities with the most
// homicide records (the dashboard's "most violent cities" view).
func (api *RestAPI) homicidesByMunicipalityHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	filter, fieldErrors := utils.FilterFromQuery(queryParams)
	limit, fieldErrors := utils.ParseLimitParam(queryParams, "limit", defaultHomicidesLimit, maxListLimit, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	totals, err := api.Manager.VitalsDB.HomicidesByMunicipality(r.Context(), filter, limit)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	results := make([]models.MunicipalityCount, 0, len(totals))
	departmentCodes := make(map[string]bool)
	for _, t := range totals {
		results = append(results, models.MunicipalityCount{
			MunicipalityCode: t.MunicipalityCode,
			MunicipalityName: t.MunicipalityName,
			DepartmentCode:   t.DepartmentCode,
			Total:            t.Total,
		})
		departmentCodes[t.DepartmentCode] = true
	}

	references := models.NewEmptyReferences()
	references.Municipalities = municipalityReferences(totals)
	references.Departments = api.lookupDepartmentReferences(r.Context(), departmentCodes)

	response := models.NewListResponse(results, references)
	api.sendResponse(w, r, response)
}
