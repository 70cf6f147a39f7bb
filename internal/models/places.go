package models

// DepartmentReference identifies a department by its DIVIPOLA code.
type DepartmentReference struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewDepartmentReference creates a DepartmentReference
func NewDepartmentReference(code, name string) DepartmentReference {
	return DepartmentReference{Code: code, Name: name}
}

// MunicipalityReference identifies a municipality by its five digit DIVIPOLA code.
type MunicipalityReference struct {
	Code           string `json:"code"`
	DepartmentCode string `json:"departmentCode"`
	Name           string `json:"name"`
}

// NewMunicipalityReference creates a MunicipalityReference
func NewMunicipalityReference(code, departmentCode, name string) MunicipalityReference {
	return MunicipalityReference{Code: code, DepartmentCode: departmentCode, Name: name}
}
