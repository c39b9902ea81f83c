package source

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/labreport/model"
)

func openTestDB(t *testing.T) *SQL {
	t.Helper()
	ctx := context.Background()

	src, err := Open(ctx, "sqlite", filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })

	require.NoError(t, Bootstrap(ctx, src.DB(), src.Dialect()))
	return src
}

func seed(t *testing.T, src *SQL) (ids map[string]int64) {
	t.Helper()
	ctx := context.Background()
	ids = make(map[string]int64)

	patients := []Patient{
		{Name: "carlos Ruiz", Identification: "300", DateOfBirth: "1990-01-01", Gender: "M", Address: "Calle 3", Phone: "555-3"},
		{Name: "Ana Pérez", Identification: "100", DateOfBirth: "1985-05-05", Gender: "F", Address: "Calle 1", Phone: "555-1"},
		{Name: "Beatriz Soto", Identification: "200", DateOfBirth: "1970-07-07", Gender: "F", Address: "Calle 2", Phone: "555-2"},
	}
	for _, p := range patients {
		id, err := src.AddPatient(ctx, p)
		require.NoError(t, err)
		ids[p.Name] = id
	}

	hb, err := src.AddTest(ctx, Test{Name: "Hemoglobina", Code: "HB-01", Description: "Medición de hemoglobina", Category: "Hematología", Method: "Espectrofotometría", Duration: "1h", Status: "activo"})
	require.NoError(t, err)
	gl, err := src.AddTest(ctx, Test{Name: "Glucosa", Code: "GL-02", Description: "Glucosa en ayunas", Category: "Química", Method: "Enzimático", Duration: "2h", Status: "activo"})
	require.NoError(t, err)

	results := []struct {
		key string
		pt  PatientTest
	}{
		{"ana-hb", PatientTest{PatientID: ids["Ana Pérez"], TestID: hb, TestDate: "2024-01-10", Result: "normal", ResultDate: "2024-01-11", Laboratory: "Central"}},
		{"ana-gl", PatientTest{PatientID: ids["Ana Pérez"], TestID: gl, TestDate: "2024-03-01", Result: "alto", ResultDate: "2024-03-02", Laboratory: "Norte"}},
		{"bea-hb", PatientTest{PatientID: ids["Beatriz Soto"], TestID: hb, TestDate: "2024-01-10", Result: "bajo", ResultDate: "2024-01-12", Laboratory: "Central"}},
	}
	for _, r := range results {
		id, err := src.AddPatientTest(ctx, r.pt)
		require.NoError(t, err)
		ids[r.key] = id
	}
	return ids
}

func values(records []model.Record, key string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i], _ = r.Get(key)
	}
	return out
}

func TestParseDriver(t *testing.T) {
	tests := []struct {
		in      string
		driver  string
		dialect Dialect
	}{
		{"sqlite", "sqlite", SQLite},
		{"", "sqlite", SQLite},
		{"MySQL", "mysql", MySQL},
		{"postgres", "pgx", Postgres},
		{"pgx", "pgx", Postgres},
	}
	for _, tt := range tests {
		driver, dialect, err := ParseDriver(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.driver, driver)
		assert.Equal(t, tt.dialect, dialect)
	}

	_, _, err := ParseDriver("oracle")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestRebind(t *testing.T) {
	q := "SELECT * FROM t WHERE a = ? AND b LIKE ?"
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, q, MySQL.Rebind(q))
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b LIKE $2", Postgres.Rebind(q))
}

func TestBootstrap_Idempotent(t *testing.T) {
	src := openTestDB(t)
	require.NoError(t, Bootstrap(context.Background(), src.DB(), src.Dialect()))
}

func TestSQL_Patients(t *testing.T) {
	src := openTestDB(t)
	seed(t, src)

	records, err := src.Patients(context.Background(), "")
	require.NoError(t, err)

	// byte-wise order puts lower case after upper case
	assert.Equal(t, []string{"Ana Pérez", "Beatriz Soto", "carlos Ruiz"}, values(records, "name"))
	assert.Equal(t, []string{"id", "name", "identification_number", "date_of_birth", "gender", "address", "phone"}, records[0].Keys())
	assert.Equal(t, []string{"100", "200", "300"}, values(records, "identification_number"))
}

func TestSQL_PatientsSearch(t *testing.T) {
	src := openTestDB(t)
	seed(t, src)

	records, err := src.Patients(context.Background(), "Soto")
	require.NoError(t, err)
	assert.Equal(t, []string{"Beatriz Soto"}, values(records, "name"))

	records, err = src.Patients(context.Background(), "300")
	require.NoError(t, err)
	assert.Equal(t, []string{"carlos Ruiz"}, values(records, "name"))
}

func TestSQL_Tests(t *testing.T) {
	src := openTestDB(t)
	ids := seed(t, src)

	records, err := src.Tests(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, records, 3)

	// newest first, same date by id
	assert.Equal(t, []string{"2024-03-01", "2024-01-10", "2024-01-10"}, values(records, "test_date"))
	assert.Equal(t, []string{"Ana Pérez", "Ana Pérez", "Beatriz Soto"}, values(records, "patient_name"))
	id, _ := records[1].Get("id")
	assert.Equal(t, itoa(ids["ana-hb"]), id)

	records, err = src.Tests(context.Background(), "Gluc")
	require.NoError(t, err)
	assert.Equal(t, []string{"GL-02"}, values(records, "test_code"))
}

func TestSQL_TestDetail(t *testing.T) {
	src := openTestDB(t)
	ids := seed(t, src)

	records, err := src.TestDetail(context.Background(), ids["bea-hb"])
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	for key, want := range map[string]string{
		"prueba_id":        itoa(ids["bea-hb"]),
		"patient_id":       itoa(ids["Beatriz Soto"]),
		"patient_name":     "Beatriz Soto",
		"test_name":        "Hemoglobina",
		"test_method":      "Espectrofotometría",
		"test_description": "Medición de hemoglobina",
		"result":           "bajo",
		"laboratory":       "Central",
	} {
		got, err := rec.Value(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	records, err = src.TestDetail(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQL_NullBecomesEmpty(t *testing.T) {
	src := openTestDB(t)
	ctx := context.Background()

	_, err := src.DB().ExecContext(ctx, `CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)`)
	require.NoError(t, err)
	_, err = src.DB().ExecContext(ctx, `INSERT INTO notes (id, body) VALUES (1, NULL)`)
	require.NoError(t, err)

	records, err := src.query(ctx, "notes", "SELECT id, body FROM notes")
	require.NoError(t, err)
	require.Len(t, records, 1)

	body, err := records[0].Value("body")
	require.NoError(t, err)
	assert.Equal(t, "", body)
}

func TestStatic(t *testing.T) {
	s := &Static{
		PatientRecords: []model.Record{
			model.NewRecord("name", "Ana", "identification_number", "1"),
			model.NewRecord("name", "Beto", "identification_number", "2"),
		},
		TestRecords: []model.Record{
			model.NewRecord("patient_name", "Ana", "test_name", "Glucosa"),
		},
		Details: map[int64]model.Record{7: model.NewRecord("prueba_id", "7")},
	}
	ctx := context.Background()

	all, err := s.Patients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	some, err := s.Patients(ctx, "Bet")
	require.NoError(t, err)
	assert.Equal(t, []string{"Beto"}, values(some, "name"))

	tests, err := s.Tests(ctx, "Gluc")
	require.NoError(t, err)
	assert.Len(t, tests, 1)

	detail, err := s.TestDetail(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, detail, 1)

	missing, err := s.TestDetail(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

var _ Source = (*SQL)(nil)
var _ Source = (*Static)(nil)

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
