package vitalsdb

import "strings"

// Filter narrows aggregations to a slice of the dataset. Zero values mean
// "no filtering" for the corresponding dimension.
type Filter struct {
	DepartmentCode string
	Sex            string
	Month          int
}

// conditions returns the SQL conditions and arguments for the filter.
func (f Filter) conditions() ([]string, []any) {
	var conds []string
	var args []any

	if f.DepartmentCode != "" {
		conds = append(conds, "deaths.department_code = ?")
		args = append(args, f.DepartmentCode)
	}
	if f.Sex != "" {
		conds = append(conds, "deaths.sex = ?")
		args = append(args, f.Sex)
	}
	if f.Month > 0 {
		conds = append(conds, "deaths.month = ?")
		args = append(args, f.Month)
	}

	return conds, args
}

// whereClause composes the filter conditions plus any extra conditions into
// a WHERE clause. Returns an empty string when nothing filters.
func (f Filter) whereClause(extra ...string) (string, []any) {
	conds, args := f.conditions()
	conds = append(conds, extra...)
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
