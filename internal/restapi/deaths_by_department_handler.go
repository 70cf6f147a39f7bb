package restapi

import (
	"net/http"

	"mortalidad.saluddatos.org/internal/models"
	"mortalidad.saluddatos.org/internal/utils"
)

func (api *RestAPI) deathsByDepartmentHandler(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := utils.FilterFromQuery(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	totals, err := api.Manager.VitalsDB.CountDeathsByDepartment(r.Context(), filter)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	results := make([]models.DepartmentCount, 0, len(totals))
	departments := make(map[string]string, len(totals))
	for _, t := range totals {
		results = append(results, models.DepartmentCount{
			DepartmentCode: t.DepartmentCode,
			DepartmentName: t.DepartmentName,
			Total:          t.Total,
		})
		departments[t.DepartmentCode] = t.DepartmentName
	}

	references := models.NewEmptyReferences()
	references.Departments = departmentReferences(departments)

	response := models.NewListResponse(results, references)
	api.sendResponse(w, r, response)
}
