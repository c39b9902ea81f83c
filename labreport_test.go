package labreport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/labreport/inspect"
	"github.com/tsawler/labreport/model"
	"github.com/tsawler/labreport/report"
	"github.com/tsawler/labreport/source"
)

var fixed = time.Date(2024, 2, 29, 23, 59, 58, 0, time.UTC)

func staticSource() *source.Static {
	return &source.Static{
		PatientRecords: []model.Record{
			model.NewRecord("name", "Ana", "identification_number", "1", "date_of_birth", "1990-01-01", "gender", "F", "address", "Calle 1", "phone", "555"),
		},
		TestRecords: []model.Record{
			model.NewRecord("patient_name", "Ana", "test_name", "Glucosa", "test_code", "GL", "test_date", "2024-01-01",
				"result", "normal", "result_date", "2024-01-02", "laboratory", "Central"),
			model.NewRecord("patient_name", "Beto", "test_name", "Hemograma", "test_code", "HB", "test_date", "2024-01-01",
				"result", "alto", "result_date", "2024-01-02", "laboratory", "Norte"),
		},
	}
}

func TestFrom_DefaultsToPatients(t *testing.T) {
	doc, err := From(staticSource()).At(fixed).Document(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "REPORTE DETALLADO DE PACIENTES", doc.Metadata.Title)
	assert.Equal(t, model.Landscape, doc.Orientation)
}

func TestGenerate_Tests(t *testing.T) {
	data, err := From(staticSource()).Tests().Search("Gluc").At(fixed).Generate(context.Background())
	require.NoError(t, err)

	doc, err := inspect.Parse(data)
	require.NoError(t, err)
	page := doc.Pages[0]
	assert.True(t, page.Contains("Total de Pruebas: 1"))
	assert.True(t, page.Contains("Glucosa"))
	assert.False(t, page.Contains("Hemograma"))
	assert.True(t, page.Contains("Reporte generado el: 29/02/2024 23:59:58"))
}

func TestGenerate_DetailNotFound(t *testing.T) {
	_, err := From(staticSource()).Detail(5).Generate(context.Background())
	assert.ErrorIs(t, err, report.ErrNotFound)
}

func TestChainImmutability(t *testing.T) {
	base := From(staticSource()).At(fixed)
	tests := base.Tests()
	compressed := tests.Compress()

	assert.Equal(t, report.KindPatients, base.options.kind)
	assert.Equal(t, report.KindTests, tests.options.kind)
	assert.False(t, tests.options.compress)
	assert.True(t, compressed.options.compress)
}

func TestRender_MatchesGenerate(t *testing.T) {
	g := From(staticSource()).Tests().At(fixed).Compress()

	data, err := g.Generate(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Render(context.Background(), &buf))
	assert.Equal(t, data, buf.Bytes())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacientes.pdf")
	require.NoError(t, From(staticSource()).At(fixed).WriteFile(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestPreviewAndPageCount(t *testing.T) {
	g := From(staticSource()).At(fixed)

	n, err := g.PageCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var buf bytes.Buffer
	require.NoError(t, g.Preview(context.Background(), &buf, 1, 1))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestNoSource(t *testing.T) {
	_, err := From(nil).Generate(context.Background())
	assert.Error(t, err)
}

func TestMust(t *testing.T) {
	assert.Equal(t, 3, Must(3, nil))
	assert.Panics(t, func() { Must(0, assert.AnError) })
}
