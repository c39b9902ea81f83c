package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/labreport/model"
)

var (
	// ErrNotFound is returned when a detail report has no record to describe.
	ErrNotFound = errors.New("test record not found")

	// ErrUnknownKind is returned for an unrecognised report kind.
	ErrUnknownKind = errors.New("unknown report kind")
)

// Kind selects which report is produced
type Kind int

const (
	KindTestDetail Kind = iota
	KindPatients
	KindTests
)

func (k Kind) String() string {
	switch k {
	case KindTestDetail:
		return "detail"
	case KindPatients:
		return "patients"
	case KindTests:
		return "tests"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "detail", "patients" or "tests" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "detail", "test", "prueba":
		return KindTestDetail, nil
	case "patients", "pacientes":
		return KindPatients, nil
	case "tests", "pruebas":
		return KindTests, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Orientation returns the page orientation of the kind.
func (k Kind) Orientation() model.Orientation {
	if k == KindTestDetail {
		return model.Portrait
	}
	return model.Landscape
}

// Title returns the text of the title band.
func (k Kind) Title() string {
	switch k {
	case KindPatients:
		return "REPORTE DETALLADO DE PACIENTES"
	case KindTests:
		return "REPORTE DETALLADO DE PRUEBAS"
	default:
		return "REPORTE DE PRUEBA MÉDICA"
	}
}

// TitleColor returns the fill of the title band.
func (k Kind) TitleColor() model.Color {
	if k == KindTests {
		return model.Green
	}
	return model.Blue
}

func (k Kind) valid() bool {
	return k >= KindTestDetail && k <= KindTests
}
