package vitalsdb

// Death represents one non-fetal mortality record from the 2019 dataset
type Death struct {
	DepartmentCode   string // COD_DEPARTAMENTO, zero padded to two digits
	MunicipalityCode string // COD_MUNICIPIO, zero padded to five digits
	Month            int    // MES (1-12, 0 when unknown)
	Sex              string // SEXO
	AgeGroupCode     int    // GRUPO_EDAD1 (-1 when unknown)
	AgeGroupLabel    string
	CauseCode        string // COD_MUERTE (CIE-10)
}

// Department represents one department from the DIVIPOLA listing
type Department struct {
	Code string
	Name string
}

// Municipality represents one municipality from the DIVIPOLA listing
type Municipality struct {
	Code           string
	DepartmentCode string
	Name           string
}

// Cause represents one entry of the cause-of-death catalog
type Cause struct {
	Code string
	Name string
}

// Summary holds the dataset-wide counts shown on the dashboard summary card
type Summary struct {
	TotalDeaths    int64
	Departments    int64
	Municipalities int64
	Causes         int64
}

// DepartmentTotal is the result row of the deaths-by-department aggregation
type DepartmentTotal struct {
	DepartmentCode string
	DepartmentName string
	Total          int64
}

// MonthTotal is the result row of the deaths-by-month aggregation
type MonthTotal struct {
	Month int
	Total int64
}

// SexTotal is the result row of the deaths-by-sex aggregation
type SexTotal struct {
	DepartmentCode string
	DepartmentName string
	Sex            string
	Total          int64
}

// AgeGroupTotal is the result row of the age distribution aggregation
type AgeGroupTotal struct {
	AgeGroupCode  int
	AgeGroupLabel string
	Total         int64
}

// CauseTotal is the result row of the top-causes aggregation
type CauseTotal struct {
	CauseCode string
	CauseName string
	Total     int64
}

// MunicipalityTotal is the result row of the per-municipality aggregations
type MunicipalityTotal struct {
	MunicipalityCode string
	MunicipalityName string
	DepartmentCode   string
	Total            int64
}
