package models

// CauseReference identifies a cause of death by its CIE-10 code.
type CauseReference struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewCauseReference creates a CauseReference
func NewCauseReference(code, name string) CauseReference {
	return CauseReference{Code: code, Name: name}
}
