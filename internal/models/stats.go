package models

// SummaryModel mirrors the dashboard's quick summary card: total records and
// the number of distinct places and causes detected in the dataset.
type SummaryModel struct {
	TotalDeaths    int64 `json:"totalDeaths"`
	Departments    int64 `json:"departments"`
	Municipalities int64 `json:"municipalities"`
	Causes         int64 `json:"causes"`
}

// DepartmentCount is the number of deaths recorded in one department.
type DepartmentCount struct {
	DepartmentCode string `json:"departmentCode"`
	DepartmentName string `json:"departmentName"`
	Total          int64  `json:"total"`
}

// MonthCount is the number of deaths recorded in one calendar month (1-12).
type MonthCount struct {
	Month int   `json:"month"`
	Total int64 `json:"total"`
}

// SexCount is the number of deaths for one department and sex combination,
// feeding the stacked by-sex view.
type SexCount struct {
	DepartmentCode string `json:"departmentCode"`
	DepartmentName string `json:"departmentName"`
	Sex            string `json:"sex"`
	Total          int64  `json:"total"`
}

// AgeGroupCount is the number of deaths in one age group.
type AgeGroupCount struct {
	AgeGroupCode  int    `json:"ageGroupCode"`
	AgeGroupLabel string `json:"ageGroupLabel"`
	Total         int64  `json:"total"`
}

// CauseCount is the number of deaths attributed to one cause of death.
type CauseCount struct {
	CauseCode string `json:"causeCode"`
	CauseName string `json:"causeName"`
	Total     int64  `json:"total"`
}

// MunicipalityCount is the number of deaths recorded in one municipality.
type MunicipalityCount struct {
	MunicipalityCode string `json:"municipalityCode"`
	MunicipalityName string `json:"municipalityName"`
	DepartmentCode   string `json:"departmentCode"`
	Total            int64  `json:"total"`
}

// DepartmentDetail is the entry payload for a single department: its
// reference data plus its own summary numbers.
type DepartmentDetail struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	TotalDeaths    int64  `json:"totalDeaths"`
	Municipalities int64  `json:"municipalities"`
	Causes         int64  `json:"causes"`
}
