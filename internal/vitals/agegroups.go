package vitals

// DANE encodes the age at death as a two digit group code (GRUPO_EDAD1).
// The dashboard collapses the 30 codes into the coarser published labels.
const (
	AgeGroupUnknownCode  = -1
	AgeGroupUnknownLabel = "Edad desconocida / Sin información"
)

// AgeGroupLabel maps a GRUPO_EDAD1 code to its published Spanish label.
func AgeGroupLabel(code int) string {
	switch {
	case code >= 0 && code <= 4:
		return "Mortalidad neonatal 0-4"
	case code == 5 || code == 6:
		return "Mortalidad infantil 1-11 meses"
	case code == 7 || code == 8:
		return "Primera infancia 1-4"
	case code == 9 || code == 10:
		return "Niñez 5-14"
	case code == 11:
		return "Adolescencia 15-19"
	case code == 12 || code == 13:
		return "Juventud 20-29"
	case code >= 14 && code <= 16:
		return "Adultez temprana 30-44"
	case code >= 17 && code <= 19:
		return "Adultez intermedia 45-59"
	case code >= 20 && code <= 24:
		return "Vejez 60-84"
	case code >= 25 && code <= 28:
		return "Longevidad 85+"
	default:
		return AgeGroupUnknownLabel
	}
}
