package restapi

import (
	"database/sql"
	"errors"
	"net/http"

	"mortalidad.saluddatos.org/internal/models"
	"mortalidad.saluddatos.org/internal/utils"
	"mortalidad.saluddatos.org/vitalsdb"
)

func (api *RestAPI) departmentHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	code := utils.NormalizeDepartmentCode(id)

	department, err := api.Manager.VitalsDB.FindDepartment(r.Context(), code)
	if errors.Is(err, sql.ErrNoRows) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	summary, err := api.Manager.VitalsDB.Summary(r.Context(), vitalsdb.Filter{DepartmentCode: code})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.DepartmentDetail{
		Code:           department.Code,
		Name:           department.Name,
		TotalDeaths:    summary.TotalDeaths,
		Municipalities: summary.Municipalities,
		Causes:         summary.Causes,
	}

	references := models.NewEmptyReferences()
	references.Departments = []models.DepartmentReference{
		models.NewDepartmentReference(department.Code, department.Name),
	}

	response := models.NewEntryResponse(entry, references)
	api.sendResponse(w, r, response)
}
