package vitalsdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortalidad.saluddatos.org/internal/appconf"
)

func createTestClient(t *testing.T) *Client {
	client, err := NewClient(NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

// seedTestClient loads a small but representative slice of the 2019 dataset:
// three DIVIPOLA departments plus one department (88) absent from DIVIPOLA,
// and one record without a cause code.
func seedTestClient(t *testing.T) *Client {
	client := createTestClient(t)

	deaths := []Death{
		{DepartmentCode: "05", MunicipalityCode: "05001", Month: 1, Sex: "Masculino", AgeGroupCode: 21, AgeGroupLabel: "Vejez 60-84", CauseCode: "I219"},
		{DepartmentCode: "05", MunicipalityCode: "05001", Month: 1, Sex: "Femenino", AgeGroupCode: 22, AgeGroupLabel: "Vejez 60-84", CauseCode: "I219"},
		{DepartmentCode: "05", MunicipalityCode: "05001", Month: 2, Sex: "Masculino", AgeGroupCode: 10, AgeGroupLabel: "Niñez 5-14", CauseCode: "X954"},
		{DepartmentCode: "05", MunicipalityCode: "05088", Month: 3, Sex: "Femenino", AgeGroupCode: 23, AgeGroupLabel: "Vejez 60-84", CauseCode: "J189"},
		{DepartmentCode: "11", MunicipalityCode: "11001", Month: 1, Sex: "Masculino", AgeGroupCode: 24, AgeGroupLabel: "Vejez 60-84", CauseCode: "I219"},
		{DepartmentCode: "11", MunicipalityCode: "11001", Month: 4, Sex: "Femenino", AgeGroupCode: 25, AgeGroupLabel: "Longevidad 85+", CauseCode: "X954"},
		{DepartmentCode: "11", MunicipalityCode: "11001", Month: 5, Sex: "No disponible", AgeGroupCode: 21, AgeGroupLabel: "Vejez 60-84", CauseCode: "J189"},
		{DepartmentCode: "76", MunicipalityCode: "76001", Month: 2, Sex: "Masculino", AgeGroupCode: 22, AgeGroupLabel: "Vejez 60-84", CauseCode: "I219"},
		{DepartmentCode: "76", MunicipalityCode: "76001", Month: 6, Sex: "Femenino", AgeGroupCode: 21, AgeGroupLabel: "Vejez 60-84", CauseCode: "X950"},
		{DepartmentCode: "76", MunicipalityCode: "76001", Month: 12, Sex: "Masculino", AgeGroupCode: 9, AgeGroupLabel: "Niñez 5-14", CauseCode: "J189"},
		{DepartmentCode: "88", MunicipalityCode: "88001", Month: 7, Sex: "Masculino", AgeGroupCode: 21, AgeGroupLabel: "Vejez 60-84", CauseCode: ""},
	}

	departments := []Department{
		{Code: "05", Name: "Antioquia"},
		{Code: "11", Name: "Bogotá D.C."},
		{Code: "76", Name: "Valle del Cauca"},
	}

	municipalities := []Municipality{
		{Code: "05001", DepartmentCode: "05", Name: "Medellín"},
		{Code: "05088", DepartmentCode: "05", Name: "Bello"},
		{Code: "11001", DepartmentCode: "11", Name: "Bogotá D.C."},
		{Code: "76001", DepartmentCode: "76", Name: "Cali"},
	}

	causes := []Cause{
		{Code: "I219", Name: "Infarto agudo del miocardio"},
		{Code: "J189", Name: "Neumonía por organismo no especificado"},
		{Code: "X954", Name: "Agresión con disparo de otras armas de fuego"},
		{Code: "X950", Name: "Agresión con disparo de arma corta"},
	}

	err := client.ImportDataset(context.Background(), deaths, departments, municipalities, causes)
	require.NoError(t, err)

	return client
}

func TestSummary(t *testing.T) {
	client := seedTestClient(t)

	summary, err := client.Summary(context.Background(), Filter{})
	require.NoError(t, err)

	assert.Equal(t, int64(11), summary.TotalDeaths)
	assert.Equal(t, int64(4), summary.Departments)
	assert.Equal(t, int64(5), summary.Municipalities)
	assert.Equal(t, int64(4), summary.Causes)
}

func TestSummaryWithFilter(t *testing.T) {
	client := seedTestClient(t)
	ctx := context.Background()

	byDept, err := client.Summary(ctx, Filter{DepartmentCode: "05"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), byDept.TotalDeaths)
	assert.Equal(t, int64(2), byDept.Municipalities)

	bySex, err := client.Summary(ctx, Filter{Sex: "Femenino"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), bySex.TotalDeaths)

	byMonth, err := client.Summary(ctx, Filter{Month: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), byMonth.TotalDeaths)
}

func TestCountDeathsByDepartment(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.CountDeathsByDepartment(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, totals, 4)

	assert.Equal(t, DepartmentTotal{DepartmentCode: "05", DepartmentName: "Antioquia", Total: 4}, totals[0])
	assert.Equal(t, DepartmentTotal{DepartmentCode: "11", DepartmentName: "Bogotá D.C.", Total: 3}, totals[1])
	assert.Equal(t, DepartmentTotal{DepartmentCode: "76", DepartmentName: "Valle del Cauca", Total: 3}, totals[2])
	assert.Equal(t, DepartmentTotal{DepartmentCode: "88", DepartmentName: UnknownDepartmentName, Total: 1}, totals[3])
}

func TestCountDeathsByMonthZeroFillsMissingMonths(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.CountDeathsByMonth(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, totals, 12)

	byMonth := make(map[int]int64)
	for _, total := range totals {
		byMonth[total.Month] = total.Total
	}

	assert.Equal(t, int64(3), byMonth[1])
	assert.Equal(t, int64(2), byMonth[2])
	assert.Equal(t, int64(1), byMonth[7])
	assert.Equal(t, int64(0), byMonth[8])
	assert.Equal(t, int64(1), byMonth[12])
}

func TestCountDeathsBySex(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.CountDeathsBySex(context.Background(), Filter{DepartmentCode: "05"})
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "Femenino", totals[0].Sex)
	assert.Equal(t, int64(2), totals[0].Total)
	assert.Equal(t, "Masculino", totals[1].Sex)
	assert.Equal(t, int64(2), totals[1].Total)
	assert.Equal(t, "Antioquia", totals[0].DepartmentName)
}

func TestCountDeathsByAgeGroup(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.CountDeathsByAgeGroup(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, totals, 3)

	// Groups come back in age order, not by count.
	assert.Equal(t, "Niñez 5-14", totals[0].AgeGroupLabel)
	assert.Equal(t, int64(2), totals[0].Total)
	assert.Equal(t, "Vejez 60-84", totals[1].AgeGroupLabel)
	assert.Equal(t, int64(8), totals[1].Total)
	assert.Equal(t, "Longevidad 85+", totals[2].AgeGroupLabel)
	assert.Equal(t, int64(1), totals[2].Total)
}

func TestCountDeathsByAgeGroupUsesSmallestCodePerGroup(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.CountDeathsByAgeGroup(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, totals, 3)

	// A label spans several codes; the smallest one represents the group.
	assert.Equal(t, 9, totals[0].AgeGroupCode)
	assert.Equal(t, 21, totals[1].AgeGroupCode)
	assert.Equal(t, 25, totals[2].AgeGroupCode)
}

func TestTopCauses(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.TopCauses(context.Background(), Filter{}, 10)
	require.NoError(t, err)
	require.Len(t, totals, 5)

	assert.Equal(t, CauseTotal{CauseCode: "I219", CauseName: "Infarto agudo del miocardio", Total: 4}, totals[0])
	assert.Equal(t, CauseTotal{CauseCode: "J189", CauseName: "Neumonía por organismo no especificado", Total: 3}, totals[1])
	assert.Equal(t, CauseTotal{CauseCode: "X954", CauseName: "Agresión con disparo de otras armas de fuego", Total: 2}, totals[2])
}

func TestTopCausesRespectsLimit(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.TopCauses(context.Background(), Filter{}, 2)
	require.NoError(t, err)
	assert.Len(t, totals, 2)
}

func TestTopCausesLabelsMissingCode(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.TopCauses(context.Background(), Filter{DepartmentCode: "88"}, 10)
	require.NoError(t, err)
	require.Len(t, totals, 1)

	assert.Equal(t, "", totals[0].CauseCode)
	assert.Equal(t, UnclassifiedCauseName, totals[0].CauseName)
}

func TestHomicidesByMunicipality(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.HomicidesByMunicipality(context.Background(), Filter{}, 10)
	require.NoError(t, err)
	require.Len(t, totals, 3)

	// Only X9-block cause codes count as homicides.
	assert.Equal(t, "05001", totals[0].MunicipalityCode)
	assert.Equal(t, "Medellín", totals[0].MunicipalityName)
	assert.Equal(t, "05", totals[0].DepartmentCode)
	assert.Equal(t, int64(1), totals[0].Total)
	assert.Equal(t, "11001", totals[1].MunicipalityCode)
	assert.Equal(t, "76001", totals[2].MunicipalityCode)
}

func TestLowestMortalityMunicipalities(t *testing.T) {
	client := seedTestClient(t)

	totals, err := client.LowestMortalityMunicipalities(context.Background(), Filter{}, 2)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "05088", totals[0].MunicipalityCode)
	assert.Equal(t, "Bello", totals[0].MunicipalityName)
	assert.Equal(t, int64(1), totals[0].Total)

	assert.Equal(t, "88001", totals[1].MunicipalityCode)
	assert.Equal(t, UnknownMunicipalityName, totals[1].MunicipalityName)
}

func TestListDepartments(t *testing.T) {
	client := seedTestClient(t)

	departments, err := client.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 4)

	assert.Equal(t, Department{Code: "05", Name: "Antioquia"}, departments[0])
	assert.Equal(t, Department{Code: "11", Name: "Bogotá D.C."}, departments[1])
	assert.Equal(t, Department{Code: "88", Name: UnknownDepartmentName}, departments[2])
	assert.Equal(t, Department{Code: "76", Name: "Valle del Cauca"}, departments[3])
}

func TestFindDepartment(t *testing.T) {
	client := seedTestClient(t)
	ctx := context.Background()

	dept, err := client.FindDepartment(ctx, "05")
	require.NoError(t, err)
	assert.Equal(t, Department{Code: "05", Name: "Antioquia"}, dept)

	// Department 88 appears in the dataset but not in DIVIPOLA.
	dept, err = client.FindDepartment(ctx, "88")
	require.NoError(t, err)
	assert.Equal(t, Department{Code: "88", Name: UnknownDepartmentName}, dept)

	_, err = client.FindDepartment(ctx, "99")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListCauses(t *testing.T) {
	client := seedTestClient(t)

	causes, err := client.ListCauses(context.Background())
	require.NoError(t, err)
	require.Len(t, causes, 4)
	assert.Equal(t, "I219", causes[0].Code)
}

func TestImportDatasetReplacesPreviousData(t *testing.T) {
	client := seedTestClient(t)
	ctx := context.Background()

	err := client.ImportDataset(ctx,
		[]Death{{DepartmentCode: "05", MunicipalityCode: "05001", Month: 1, Sex: "Masculino", AgeGroupCode: 21, AgeGroupLabel: "Vejez 60-84", CauseCode: "I219"}},
		nil, nil, nil)
	require.NoError(t, err)

	summary, err := client.Summary(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalDeaths)
}
