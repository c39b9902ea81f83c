package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// tables holds the report tables in creation order. {{id}} is replaced with the dialect's
// auto-increment primary key.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS patients (
    id {{id}},
    name TEXT NOT NULL,
    identification_number TEXT NOT NULL,
    date_of_birth TEXT NOT NULL,
    gender TEXT NOT NULL,
    address TEXT NOT NULL,
    phone TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS pruebas (
    id {{id}},
    name TEXT NOT NULL,
    code TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    method TEXT NOT NULL,
    duration TEXT NOT NULL,
    status TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS pruebas_paciente (
    id {{id}},
    patient_id INTEGER NOT NULL,
    test_id INTEGER NOT NULL,
    test_date TEXT NOT NULL,
    result TEXT NOT NULL,
    result_date TEXT NOT NULL,
    laboratory TEXT NOT NULL
)`,
}

func (d Dialect) primaryKey() string {
	switch d {
	case MySQL:
		return "INTEGER AUTO_INCREMENT PRIMARY KEY"
	case Postgres:
		return "SERIAL PRIMARY KEY"
	default:
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}

// Bootstrap creates the tables the reports read when they do not exist yet. It never
// alters existing tables.
func Bootstrap(ctx context.Context, db *sql.DB, d Dialect) error {
	for _, ddl := range tables {
		stmt := strings.ReplaceAll(ddl, "{{id}}", d.primaryKey())
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}

// Patient is a row of the patients table
type Patient struct {
	Name           string
	Identification string
	DateOfBirth    string
	Gender         string
	Address        string
	Phone          string
}

// Test is a row of the test catalogue
type Test struct {
	Name        string
	Code        string
	Description string
	Category    string
	Method      string
	Duration    string
	Status      string
}

// PatientTest is a test performed on a patient
type PatientTest struct {
	PatientID  int64
	TestID     int64
	TestDate   string
	Result     string
	ResultDate string
	Laboratory string
}

// AddPatient inserts a patient and returns its id.
func (s *SQL) AddPatient(ctx context.Context, p Patient) (int64, error) {
	return s.insert(ctx, `INSERT INTO patients (name, identification_number, date_of_birth, gender, address, phone)
VALUES (?, ?, ?, ?, ?, ?)`, p.Name, p.Identification, p.DateOfBirth, p.Gender, p.Address, p.Phone)
}

// AddTest inserts a catalogue test and returns its id.
func (s *SQL) AddTest(ctx context.Context, t Test) (int64, error) {
	return s.insert(ctx, `INSERT INTO pruebas (name, code, description, category, method, duration, status)
VALUES (?, ?, ?, ?, ?, ?, ?)`, t.Name, t.Code, t.Description, t.Category, t.Method, t.Duration, t.Status)
}

// AddPatientTest records a test result for a patient and returns its id.
func (s *SQL) AddPatientTest(ctx context.Context, pt PatientTest) (int64, error) {
	return s.insert(ctx, `INSERT INTO pruebas_paciente (patient_id, test_id, test_date, result, result_date, laboratory)
VALUES (?, ?, ?, ?, ?, ?)`, pt.PatientID, pt.TestID, pt.TestDate, pt.Result, pt.ResultDate, pt.Laboratory)
}

func (s *SQL) insert(ctx context.Context, stmt string, args ...any) (int64, error) {
	stmt = s.dialect.Rebind(stmt)
	if s.dialect == Postgres {
		var id int64
		if err := s.db.QueryRowContext(ctx, stmt+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert: %w", err)
		}
		return id, nil
	}

	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("insert: %w", err)
	}
	return res.LastInsertId()
}
