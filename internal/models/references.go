package models

// ReferencesModel carries the reference data mentioned by a response payload
type ReferencesModel struct {
	Causes         []CauseReference        `json:"causes"`
	Departments    []DepartmentReference   `json:"departments"`
	Municipalities []MunicipalityReference `json:"municipalities"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Causes:         []CauseReference{},
		Departments:    []DepartmentReference{},
		Municipalities: []MunicipalityReference{},
	}
}
