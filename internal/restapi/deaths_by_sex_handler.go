package restapi

import (
	"net/http"

	"mortalidad.saluddatos.org/internal/models"
	"mortalidad.saluddatos.org/internal/utils"
)

func (api *RestAPI) deathsBySexHandler(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := utils.FilterFromQuery(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	totals, err := api.Manager.VitalsDB.CountDeathsBySex(r.Context(), filter)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	results := make([]models.SexCount, 0, len(totals))
	departments := make(map[string]string)
	for _, t := range totals {
		results = append(results, models.SexCount{
			DepartmentCode: t.DepartmentCode,
			DepartmentName: t.DepartmentName,
			Sex:            t.Sex,
			Total:          t.Total,
		})
		departments[t.DepartmentCode] = t.DepartmentName
	}

	references := models.NewEmptyReferences()
	references.Departments = departmentReferences(departments)

	response := models.NewListResponse(results, references)
	api.sendResponse(w, r, response)
}
