package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/labreport/model"
)

// ErrUnknownDriver is returned for a database driver this package does not support.
var ErrUnknownDriver = errors.New("unknown database driver")

// Source provides the records of each report kind.
type Source interface {
	// Patients returns the patient listing. A non-empty search keeps patients whose
	// name or identification number contains it.
	Patients(ctx context.Context, search string) ([]model.Record, error)

	// Tests returns the test listing. A non-empty search also matches the test name.
	Tests(ctx context.Context, search string) ([]model.Record, error)

	// TestDetail returns the record of one patient test, or no record when id is unknown.
	TestDetail(ctx context.Context, id int64) ([]model.Record, error)
}

// Dialect selects SQL syntax differences between databases
type Dialect int

const (
	SQLite Dialect = iota
	MySQL
	Postgres
)

func (d Dialect) String() string {
	switch d {
	case MySQL:
		return "mysql"
	case Postgres:
		return "postgres"
	default:
		return "sqlite"
	}
}

// ParseDriver maps a configured driver name to the database/sql driver name and dialect.
func ParseDriver(name string) (string, Dialect, error) {
	switch strings.ToLower(name) {
	case "sqlite", "sqlite3", "":
		return "sqlite", SQLite, nil
	case "mysql", "mariadb":
		return "mysql", MySQL, nil
	case "postgres", "postgresql", "pgx":
		return "pgx", Postgres, nil
	}
	return "", 0, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
}

// Rebind rewrites ? placeholders into the dialect's form.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// byName returns an ORDER BY expression comparing col byte-wise.
func (d Dialect) byName(col string) string {
	switch d {
	case MySQL:
		return "BINARY " + col
	case Postgres:
		return col + ` COLLATE "C"`
	default:
		return col + " COLLATE BINARY"
	}
}

// likePattern wraps search for a substring LIKE match.
func likePattern(search string) string {
	return "%" + search + "%"
}
