package restapi

import (
	"context"

	"mortalidad.saluddatos.org/internal/models"
	"mortalidad.saluddatos.org/vitalsdb"
)

// departmentReferences deduplicates department code/name pairs into reference entries.
func departmentReferences(codes map[string]string) []models.DepartmentReference {
	refs := make([]models.DepartmentReference, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for code, name := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		refs = append(refs, models.NewDepartmentReference(code, name))
	}
	return refs
}

// lookupDepartmentReferences resolves department names for the given codes.
// Codes that cannot be resolved are skipped.
func (api *RestAPI) lookupDepartmentReferences(ctx context.Context, codes map[string]bool) []models.DepartmentReference {
	refs := make([]models.DepartmentReference, 0, len(codes))
	for code := range codes {
		department, err := api.Manager.VitalsDB.FindDepartment(ctx, code)
		if err != nil {
			continue
		}
		refs = append(refs, models.NewDepartmentReference(department.Code, department.Name))
	}
	return refs
}

// municipalityReferences converts per-municipality totals into reference entries.
func municipalityReferences(totals []vitalsdb.MunicipalityTotal) []models.MunicipalityReference {
	refs := make([]models.MunicipalityReference, 0, len(totals))
	for _, t := range totals {
		refs = append(refs, models.NewMunicipalityReference(t.MunicipalityCode, t.DepartmentCode, t.MunicipalityName))
	}
	return refs
}
