package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/tsawler/labreport/model"
)

// SQL is a Source backed by a relational database.
type SQL struct {
	db      *sql.DB
	dialect Dialect
	log     *zap.Logger
}

// Option configures an SQL source
type Option func(*SQL)

// WithLogger sets the logger used for query events.
func WithLogger(log *zap.Logger) Option {
	return func(s *SQL) {
		if log != nil {
			s.log = log
		}
	}
}

// New wraps an open database handle.
func New(db *sql.DB, dialect Dialect, opts ...Option) *SQL {
	s := &SQL{db: db, dialect: dialect, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open connects to the database named by driver and dsn and verifies the connection.
func Open(ctx context.Context, driver, dsn string, opts ...Option) (*SQL, error) {
	name, dialect, err := ParseDriver(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dialect == SQLite {
		// one writer at a time; in-memory databases must share a connection
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", dialect, err)
	}
	return New(db, dialect, opts...), nil
}

// Close closes the database handle.
func (s *SQL) Close() error {
	return s.db.Close()
}

// DB returns the underlying handle.
func (s *SQL) DB() *sql.DB {
	return s.db
}

// Dialect returns the SQL dialect of the source.
func (s *SQL) Dialect() Dialect {
	return s.dialect
}

const patientsQuery = `
SELECT id, name, identification_number, date_of_birth, gender, address, phone
FROM patients`

const testsQuery = `
SELECT
    pp.id,
    p.name AS patient_name,
    p.identification_number,
    t.name AS test_name,
    t.code AS test_code,
    pp.test_date,
    pp.result,
    pp.result_date,
    pp.laboratory,
    t.description AS test_description,
    t.category AS test_category
FROM pruebas_paciente pp
JOIN patients p ON pp.patient_id = p.id
JOIN pruebas t ON pp.test_id = t.id`

const detailQuery = `
SELECT
    pp.id AS prueba_id,
    pp.test_date,
    pp.result,
    pp.result_date,
    pp.laboratory,
    p.id AS patient_id,
    p.name AS patient_name,
    p.identification_number,
    p.date_of_birth,
    p.gender,
    p.address,
    p.phone,
    t.id AS test_id,
    t.name AS test_name,
    t.code AS test_code,
    t.description AS test_description,
    t.category AS test_category,
    t.method AS test_method
FROM pruebas_paciente pp
JOIN patients p ON pp.patient_id = p.id
JOIN pruebas t ON pp.test_id = t.id
WHERE pp.id = ?`

// Patients implements Source.
func (s *SQL) Patients(ctx context.Context, search string) ([]model.Record, error) {
	query := patientsQuery
	var args []any
	if search != "" {
		query += "\nWHERE name LIKE ? OR identification_number LIKE ?"
		args = append(args, likePattern(search), likePattern(search))
	}
	query += "\nORDER BY " + s.dialect.byName("name") + ", id"
	return s.query(ctx, "patients", query, args...)
}

// Tests implements Source.
func (s *SQL) Tests(ctx context.Context, search string) ([]model.Record, error) {
	query := testsQuery
	var args []any
	if search != "" {
		query += "\nWHERE p.name LIKE ? OR p.identification_number LIKE ? OR t.name LIKE ?"
		args = append(args, likePattern(search), likePattern(search), likePattern(search))
	}
	query += "\nORDER BY pp.test_date DESC, pp.id"
	return s.query(ctx, "tests", query, args...)
}

// TestDetail implements Source.
func (s *SQL) TestDetail(ctx context.Context, id int64) ([]model.Record, error) {
	return s.query(ctx, "detail", detailQuery, id)
}

// query runs a statement and turns every row into a record keyed by column name.
func (s *SQL) query(ctx context.Context, name, query string, args ...any) ([]model.Record, error) {
	start := time.Now()

	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}

	var records []model.Record
	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		rec := make(model.Record, len(cols))
		for i, col := range cols {
			rec[i] = model.Field{Key: col, Value: values[i].String}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}

	s.log.Debug("records loaded",
		zap.String("query", name),
		zap.Int("rows", len(records)),
		zap.Duration("elapsed", time.Since(start)))
	return records, nil
}
