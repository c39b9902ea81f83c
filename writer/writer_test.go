package writer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/labreport/model"
)

var fixed = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

func sampleDocument(t *testing.T) *model.Document {
	t.Helper()
	doc := model.NewDocument(model.Landscape)
	doc.Metadata = model.Metadata{Title: "REPORTE", Creator: "labreport", GeneratedAt: fixed}

	page, err := doc.AddPage()
	require.NoError(t, err)
	page.AddElement(&model.Cell{
		BBox:  model.NewBBox(10, 10, 277, 15),
		Text:  "REPORTE DETALLADO DE PACIENTES",
		Style: model.TextStyle(20, true, false, model.White).Filled(model.Blue),
		Align: model.AlignCenter,
		Role:  model.RoleTitle,
	})
	page.AddElement(&model.Cell{
		BBox:       model.NewBBox(10, 60, 50, 12),
		Text:       "Ana Pérez de la Santísima Trinidad González",
		Style:      model.TextStyle(9, false, false, model.Black).Bordered(),
		Wrap:       true,
		LineHeight: 6,
		Role:       model.RoleBody,
	})
	page.AddElement(&model.Rule{From: model.Point{X: 10, Y: 80}, To: model.Point{X: 200, Y: 80}, Width: 0.5})

	require.NoError(t, doc.Close())
	return doc
}

func TestWrite(t *testing.T) {
	data, err := Write(sampleDocument(t), Options{})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "missing PDF header")
	assert.Contains(t, string(data), "%%EOF")
	assert.Contains(t, string(data), "(REPORTE DETALLADO DE PACIENTES) Tj")
	// text is stored in WinAnsi, so é is the single byte 0xE9
	assert.Contains(t, string(data), "P\xe9rez")
}

func TestWrite_Deterministic(t *testing.T) {
	for _, compress := range []bool{false, true} {
		first, err := Write(sampleDocument(t), Options{Compress: compress})
		require.NoError(t, err)
		second, err := Write(sampleDocument(t), Options{Compress: compress})
		require.NoError(t, err)
		assert.Equal(t, first, second, "compress=%v", compress)
	}
}

func TestWrite_Compressed(t *testing.T) {
	data, err := Write(sampleDocument(t), Options{Compress: true})
	require.NoError(t, err)
	assert.Contains(t, string(data), "/FlateDecode")
	assert.NotContains(t, string(data), "(REPORTE DETALLADO DE PACIENTES) Tj")
}

func TestWrite_OpenDocument(t *testing.T) {
	doc := model.NewDocument(model.Portrait)
	_, err := doc.AddPage()
	require.NoError(t, err)

	_, err = Write(doc, Options{})
	assert.ErrorIs(t, err, ErrDocumentOpen)
}

func TestWrite_NoPages(t *testing.T) {
	doc := model.NewDocument(model.Portrait)
	require.NoError(t, doc.Close())

	_, err := Write(doc, Options{})
	assert.ErrorIs(t, err, ErrNoPages)
}

func TestWrite_PageCount(t *testing.T) {
	doc := model.NewDocument(model.Portrait)
	for i := 0; i < 3; i++ {
		_, err := doc.AddPage()
		require.NoError(t, err)
	}
	require.NoError(t, doc.Close())

	data, err := Write(doc, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "/Count 3")
}
