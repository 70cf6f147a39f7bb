package vitalsdb

import (
	"context"
	"database/sql"
	"errors"
)

// UnknownDepartmentName is the label used when a department code has no
// DIVIPOLA entry.
const UnknownDepartmentName = "Departamento desconocido"

// UnknownMunicipalityName is the label used when a municipality code has no
// DIVIPOLA entry.
const UnknownMunicipalityName = "Municipio desconocido"

// UnclassifiedCauseName is the label used for records without a cause code.
const UnclassifiedCauseName = "No clasificada"

// causeNameExpr resolves a display name for a cause: catalog name when
// known, the raw code otherwise, and the unclassified label for empty codes.
const causeNameExpr = `CASE
		WHEN deaths.cause_code = '' THEN '` + UnclassifiedCauseName + `'
		ELSE COALESCE(causes.name, deaths.cause_code)
	END`

// Summary returns the dataset-wide counts for the given filter.
func (c *Client) Summary(ctx context.Context, filter Filter) (Summary, error) {
	where, args := filter.whereClause()

	var summary Summary
	err := c.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COUNT(DISTINCT deaths.department_code),
			COUNT(DISTINCT deaths.municipality_code),
			COUNT(DISTINCT CASE WHEN deaths.cause_code <> '' THEN deaths.cause_code END)
		FROM deaths`+where,
		args...,
	).Scan(&summary.TotalDeaths, &summary.Departments, &summary.Municipalities, &summary.Causes)
	if err != nil {
		return Summary{}, err
	}

	return summary, nil
}

// CountDeathsByDepartment returns per-department totals, largest first.
func (c *Client) CountDeathsByDepartment(ctx context.Context, filter Filter) ([]DepartmentTotal, error) {
	where, args := filter.whereClause()

	rows, err := c.DB.QueryContext(ctx, `
		SELECT deaths.department_code,
			COALESCE(departments.name, '`+UnknownDepartmentName+`'),
			COUNT(*) AS total
		FROM deaths
		LEFT JOIN departments ON departments.code = deaths.department_code`+where+`
		GROUP BY deaths.department_code
		ORDER BY total DESC, deaths.department_code`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var totals []DepartmentTotal
	for rows.Next() {
		var t DepartmentTotal
		if err := rows.Scan(&t.DepartmentCode, &t.DepartmentName, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// CountDeathsByMonth returns totals for months 1 through 12. Months without
// records are zero-filled; records with an unknown month are excluded.
func (c *Client) CountDeathsByMonth(ctx context.Context, filter Filter) ([]MonthTotal, error) {
	where, args := filter.whereClause("deaths.month BETWEEN 1 AND 12")

	rows, err := c.DB.QueryContext(ctx, `
		SELECT deaths.month, COUNT(*)
		FROM deaths`+where+`
		GROUP BY deaths.month
		ORDER BY deaths.month`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	byMonth := make(map[int]int64)
	for rows.Next() {
		var month int
		var total int64
		if err := rows.Scan(&month, &total); err != nil {
			return nil, err
		}
		byMonth[month] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totals := make([]MonthTotal, 0, 12)
	for month := 1; month <= 12; month++ {
		totals = append(totals, MonthTotal{Month: month, Total: byMonth[month]})
	}

	return totals, nil
}

// CountDeathsBySex returns department/sex totals for the stacked by-sex view.
func (c *Client) CountDeathsBySex(ctx context.Context, filter Filter) ([]SexTotal, error) {
	where, args := filter.whereClause()

	rows, err := c.DB.QueryContext(ctx, `
		SELECT deaths.department_code,
			COALESCE(departments.name, '`+UnknownDepartmentName+`'),
			deaths.sex,
			COUNT(*)
		FROM deaths
		LEFT JOIN departments ON departments.code = deaths.department_code`+where+`
		GROUP BY deaths.department_code, deaths.sex
		ORDER BY deaths.department_code, deaths.sex`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var totals []SexTotal
	for rows.Next() {
		var t SexTotal
		if err := rows.Scan(&t.DepartmentCode, &t.DepartmentName, &t.Sex, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// CountDeathsByAgeGroup returns totals per age group in age order.
func (c *Client) CountDeathsByAgeGroup(ctx context.Context, filter Filter) ([]AgeGroupTotal, error) {
	where, args := filter.whereClause()

	rows, err := c.DB.QueryContext(ctx, `
		SELECT MIN(deaths.age_group_code), deaths.age_group_label, COUNT(*)
		FROM deaths`+where+`
		GROUP BY deaths.age_group_label
		ORDER BY MIN(deaths.age_group_code)`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var totals []AgeGroupTotal
	for rows.Next() {
		var t AgeGroupTotal
		if err := rows.Scan(&t.AgeGroupCode, &t.AgeGroupLabel, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// TopCauses returns the most frequent causes of death, largest first.
func (c *Client) TopCauses(ctx context.Context, filter Filter, limit int) ([]CauseTotal, error) {
	where, args := filter.whereClause()
	args = append(args, limit)

	rows, err := c.DB.QueryContext(ctx, `
		SELECT deaths.cause_code, `+causeNameExpr+`, COUNT(*) AS total
		FROM deaths
		LEFT JOIN causes ON causes.code = deaths.cause_code`+where+`
		GROUP BY deaths.cause_code
		ORDER BY total DESC, deaths.cause_code
		LIMIT ?`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var totals []CauseTotal
	for rows.Next() {
		var t CauseTotal
		if err := rows.Scan(&t.CauseCode, &t.CauseName, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// HomicidesByMunicipality returns the municipalities with the most homicide
// records (cause codes in the X9 block), largest first.
func (c *Client) HomicidesByMunicipality(ctx context.Context, filter Filter, limit int) ([]MunicipalityTotal, error) {
	where, args := filter.whereClause("deaths.cause_code LIKE 'X9%'")
	args = append(args, limit)

	rows, err := c.DB.QueryContext(ctx, `
		SELECT deaths.municipality_code,
			COALESCE(municipalities.name, '`+UnknownMunicipalityName+`'),
			deaths.department_code,
			COUNT(*) AS total
		FROM deaths
		LEFT JOIN municipalities ON municipalities.code = deaths.municipality_code`+where+`
		GROUP BY deaths.municipality_code
		ORDER BY total DESC, deaths.municipality_code
		LIMIT ?`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var totals []MunicipalityTotal
	for rows.Next() {
		var t MunicipalityTotal
		if err := rows.Scan(&t.MunicipalityCode, &t.MunicipalityName, &t.DepartmentCode, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// LowestMortalityMunicipalities returns the municipalities with the fewest
// recorded deaths, smallest first.
func (c *Client) LowestMortalityMunicipalities(ctx context.Context, filter Filter, limit int) ([]MunicipalityTotal, error) {
	where, args := filter.whereClause()
	args = append(args, limit)

	rows, err := c.DB.QueryContext(ctx, `
		SELECT deaths.municipality_code,
			COALESCE(municipalities.name, '`+UnknownMunicipalityName+`'),
			deaths.department_code,
			COUNT(*) AS total
		FROM deaths
		LEFT JOIN municipalities ON municipalities.code = deaths.municipality_code`+where+`
		GROUP BY deaths.municipality_code
		ORDER BY total ASC, deaths.municipality_code
		LIMIT ?`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var totals []MunicipalityTotal
	for rows.Next() {
		var t MunicipalityTotal
		if err := rows.Scan(&t.MunicipalityCode, &t.MunicipalityName, &t.DepartmentCode, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// ListDepartments returns all departments referenced by the dataset, named
// via DIVIPOLA, sorted by name.
func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT DISTINCT deaths.department_code,
			COALESCE(departments.name, '`+UnknownDepartmentName+`') AS name
		FROM deaths
		LEFT JOIN departments ON departments.code = deaths.department_code
		ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var departments []Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.Code, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

// FindDepartment looks up a department by its DIVIPOLA code. It returns
// sql.ErrNoRows when the code appears in neither DIVIPOLA nor the dataset.
func (c *Client) FindDepartment(ctx context.Context, code string) (Department, error) {
	var d Department
	err := c.DB.QueryRowContext(ctx,
		`SELECT code, name FROM departments WHERE code = ?`, code,
	).Scan(&d.Code, &d.Name)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Department{}, err
	}

	// Not in DIVIPOLA; the dataset may still reference it.
	var count int64
	err = c.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM deaths WHERE department_code = ?`, code,
	).Scan(&count)
	if err != nil {
		return Department{}, err
	}
	if count == 0 {
		return Department{}, sql.ErrNoRows
	}

	return Department{Code: code, Name: UnknownDepartmentName}, nil
}

// ListCauses returns the cause catalog sorted by code.
func (c *Client) ListCauses(ctx context.Context) ([]Cause, error) {
	rows, err := c.DB.QueryContext(ctx, `SELECT code, name FROM causes ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var causes []Cause
	for rows.Next() {
		var cause Cause
		if err := rows.Scan(&cause.Code, &cause.Name); err != nil {
			return nil, err
		}
		causes = append(causes, cause)
	}

	return causes, rows.Err()
}
