package utils

import (
	"net/url"
	"strings"

	"mortalidad.saluddatos.org/vitalsdb"
)

// FilterFromQuery builds the shared aggregation filter from the request's
// query parameters: department (DIVIPOLA code), sex, and month (1-12).
func FilterFromQuery(params url.Values) (vitalsdb.Filter, map[string][]string) {
	fieldErrors := make(map[string][]string)

	filter := vitalsdb.Filter{
		DepartmentCode: NormalizeDepartmentCode(params.Get("department")),
		Sex:            strings.TrimSpace(params.Get("sex")),
	}

	month, fieldErrors := ParseIntParam(params, "month", fieldErrors)
	if month != 0 && (month < 1 || month > 12) {
		fieldErrors["month"] = append(fieldErrors["month"], `Invalid field value for field "month".`)
	}
	filter.Month = month

	return filter, fieldErrors
}
