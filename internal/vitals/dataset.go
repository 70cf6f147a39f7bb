package vitals

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mortalidad.saluddatos.org/vitalsdb"
)

// File names expected under the data directory. They are CSV exports of the
// published DANE workbooks (NoFetal2019, Divipola, CodigosDeMuerte).
const (
	DeathsFileName  = "nofetal2019.csv"
	PlacesFileName  = "divipola.csv"
	CausesFileName  = "codigos_muerte.csv"
	GeoJSONFileName = "colombia_departamentos.geojson"
)

// UnknownSex is the fallback when a record carries no sex value.
const UnknownSex = "No disponible"

// Dataset holds the parsed inputs.
type Dataset struct {
	Deaths         []vitalsdb.Death
	Departments    []vitalsdb.Department
	Municipalities []vitalsdb.Municipality
	Causes         []vitalsdb.Cause
	SkippedRows    int // malformed death rows dropped during parsing
}

// The published workbooks are not consistent about column names, so each
// field is located by a list of candidate headers.
var (
	deathDeptCandidates  = []string{"COD_DEPARTAMENTO", "COD_DPTO", "COD_DEPTO", "COD_DANE"}
	deathMuniCandidates  = []string{"COD_MUNICIPIO", "COD_MPIO", "COD_MPIO_A", "COD_MUN"}
	deathSexCandidates   = []string{"SEXO"}
	deathMonthCandidates = []string{"MES"}
	deathAgeCandidates   = []string{"GRUPO_EDAD1", "GRUPO_EDAD"}
	deathCauseCandidates = []string{"COD_MUERTE", "COD_MUER"}

	placeDeptCodeCandidates = []string{"COD_DEPARTAMENTO", "COD_DEPTO", "COD_DANE"}
	placeMuniCodeCandidates = []string{"COD_MUNICIPIO", "COD_MPIO"}
	placeDeptNameCandidates = []string{"DEPARTAMENTO", "NOMBRE_DEPARTAMENTO", "NOMBRE_DPT"}
	placeMuniNameCandidates = []string{"MUNICIPIO", "NOMBRE_MUNICIPIO"}

	causeCodeCandidates = []string{"CODIGO", "CÓDIGO", "CODIGO_CIE10", "CÓDIGO_CIE10"}
	causeNameCandidates = []string{"NOMBRE", "NOMBRE_CAUSA", "DESCRIPCION", "NOMBRE_CIE"}
)

// LoadDataset reads the three CSV files from dataDir. The deaths file is
// required; DIVIPOLA and the cause catalog are optional and degrade to the
// unknown-name fallbacks when missing.
func LoadDataset(dataDir string) (*Dataset, error) {
	dataset := &Dataset{}

	deaths, skipped, err := loadDeaths(filepath.Join(dataDir, DeathsFileName))
	if err != nil {
		return nil, fmt.Errorf("error loading mortality records: %w", err)
	}
	dataset.Deaths = deaths
	dataset.SkippedRows = skipped

	departments, municipalities, err := loadPlaces(filepath.Join(dataDir, PlacesFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading DIVIPOLA listing: %w", err)
	}
	dataset.Departments = departments
	dataset.Municipalities = municipalities

	causes, err := loadCauses(filepath.Join(dataDir, CausesFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading cause catalog: %w", err)
	}
	dataset.Causes = causes

	return dataset, nil
}

func loadDeaths(path string) ([]vitalsdb.Death, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close() // nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("error reading headers: %w", err)
	}

	deptCol := findColumn(headers, deathDeptCandidates)
	muniCol := findColumn(headers, deathMuniCandidates)
	sexCol := findColumn(headers, deathSexCandidates)
	monthCol := findColumn(headers, deathMonthCandidates)
	ageCol := findColumn(headers, deathAgeCandidates)
	causeCol := findColumn(headers, deathCauseCandidates)

	if deptCol < 0 || muniCol < 0 {
		return nil, 0, fmt.Errorf("no department/municipality columns found in %s", filepath.Base(path))
	}

	var deaths []vitalsdb.Death
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		death := vitalsdb.Death{
			DepartmentCode:   normalizeCode(fieldAt(row, deptCol), 2),
			MunicipalityCode: normalizeCode(fieldAt(row, muniCol), 5),
			Month:            parseMonth(fieldAt(row, monthCol)),
			Sex:              parseSex(fieldAt(row, sexCol)),
			CauseCode:        strings.TrimSpace(fieldAt(row, causeCol)),
		}
		death.AgeGroupCode = parseAgeGroupCode(fieldAt(row, ageCol))
		death.AgeGroupLabel = AgeGroupLabel(death.AgeGroupCode)

		deaths = append(deaths, death)
	}

	return deaths, skipped, nil
}

func loadPlaces(path string) ([]vitalsdb.Department, []vitalsdb.Municipality, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("error reading headers: %w", err)
	}

	deptCodeCol := findColumn(headers, placeDeptCodeCandidates)
	muniCodeCol := findColumn(headers, placeMuniCodeCandidates)
	deptNameCol := findColumn(headers, placeDeptNameCandidates)
	muniNameCol := findColumn(headers, placeMuniNameCandidates)

	if deptCodeCol < 0 || muniCodeCol < 0 || deptNameCol < 0 || muniNameCol < 0 {
		return nil, nil, fmt.Errorf("incomplete DIVIPOLA columns in %s", filepath.Base(path))
	}

	seenDepartments := make(map[string]bool)
	var departments []vitalsdb.Department
	var municipalities []vitalsdb.Municipality

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		deptCode := normalizeCode(fieldAt(row, deptCodeCol), 2)
		muniCode := normalizeCode(fieldAt(row, muniCodeCol), 5)
		deptName := strings.TrimSpace(fieldAt(row, deptNameCol))
		muniName := strings.TrimSpace(fieldAt(row, muniNameCol))

		if deptCode != "" && deptName != "" && !seenDepartments[deptCode] {
			seenDepartments[deptCode] = true
			departments = append(departments, vitalsdb.Department{Code: deptCode, Name: deptName})
		}
		if muniCode != "" && muniName != "" {
			municipalities = append(municipalities, vitalsdb.Municipality{
				Code:           muniCode,
				DepartmentCode: deptCode,
				Name:           muniName,
			})
		}
	}

	return departments, municipalities, nil
}

func loadCauses(path string) ([]vitalsdb.Cause, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading headers: %w", err)
	}

	codeCol := findColumn(headers, causeCodeCandidates)
	nameCol := findColumn(headers, causeNameCandidates)
	if codeCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("incomplete cause catalog columns in %s", filepath.Base(path))
	}

	var causes []vitalsdb.Cause
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		code := strings.TrimSpace(fieldAt(row, codeCol))
		name := strings.TrimSpace(fieldAt(row, nameCol))
		if code == "" {
			continue
		}
		causes = append(causes, vitalsdb.Cause{Code: code, Name: name})
	}

	return causes, nil
}

// findColumn returns the index of the first header matching one of the
// candidates, or -1. Matching ignores case and surrounding whitespace.
func findColumn(headers []string, candidates []string) int {
	for _, candidate := range candidates {
		for i, header := range headers {
			if strings.EqualFold(strings.TrimSpace(header), candidate) {
				return i
			}
		}
	}
	return -1
}

func fieldAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// normalizeCode trims a DIVIPOLA code, drops a spreadsheet float suffix
// ("5.0"), and left pads with zeros to the given width.
func normalizeCode(raw string, width int) string {
	code := strings.TrimSpace(raw)
	if code == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(code, 64); err == nil {
		code = strconv.Itoa(int(f))
	}
	for len(code) < width {
		code = "0" + code
	}
	return code
}

func parseMonth(raw string) int {
	month, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || month < 1 || month > 12 {
		return 0
	}
	return month
}

func parseSex(raw string) string {
	sex := strings.TrimSpace(raw)
	if sex == "" {
		return UnknownSex
	}
	return sex
}

func parseAgeGroupCode(raw string) int {
	code := strings.TrimSpace(raw)
	if code == "" {
		return AgeGroupUnknownCode
	}
	if f, err := strconv.ParseFloat(code, 64); err == nil {
		return int(f)
	}
	return AgeGroupUnknownCode
}
