package vitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeGroupLabel(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Mortalidad neonatal 0-4"},
		{4, "Mortalidad neonatal 0-4"},
		{5, "Mortalidad infantil 1-11 meses"},
		{7, "Primera infancia 1-4"},
		{9, "Niñez 5-14"},
		{11, "Adolescencia 15-19"},
		{12, "Juventud 20-29"},
		{14, "Adultez temprana 30-44"},
		{17, "Adultez intermedia 45-59"},
		{20, "Vejez 60-84"},
		{24, "Vejez 60-84"},
		{25, "Longevidad 85+"},
		{28, "Longevidad 85+"},
		{29, AgeGroupUnknownLabel},
		{AgeGroupUnknownCode, AgeGroupUnknownLabel},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, AgeGroupLabel(tc.code), "code %d", tc.code)
	}
}
