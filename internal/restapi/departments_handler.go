package restapi

import (
	"net/http"

	"mortalidad.saluddatos.org/internal/models"
)

// departmentsHandler lists the departments present in the dataset; clients
// use it to populate the department filter.
func (api *RestAPI) departmentsHandler(w http.ResponseWriter, r *http.Request) {
	departments, err := api.Manager.VitalsDB.ListDepartments(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	results := make([]models.DepartmentReference, 0, len(departments))
	for _, d := range departments {
		results = append(results, models.NewDepartmentReference(d.Code, d.Name))
	}

	response := models.NewListResponse(results, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
