package report

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/labreport/layout"
	"github.com/tsawler/labreport/model"
	"github.com/tsawler/labreport/render"
)

const (
	sectionHeight = 10.0
	sectionGap    = 5.0
	ruleWidth     = 0.5
	resultHeight  = 12.0
	resultGap     = 10.0
)

// detail draws the single-test report. It reserves space through a header-less flow so a
// very long description still moves later blocks to a new page instead of off the sheet.
type detail struct {
	geo    layout.Geometry
	flow   *layout.Flow
	fields render.LabelValueSpec
}

func buildDetail(doc *model.Document, records []model.Record, log *zap.Logger) error {
	if len(records) == 0 {
		return ErrNotFound
	}
	if len(records) > 1 {
		log.Debug("detail report uses the first record", zap.Int("records", len(records)))
	}
	rec := records[0]

	// Every key is checked before anything is drawn.
	for _, cols := range []model.Columns{DetailPatientFields(), DetailTestFields()} {
		for _, col := range cols {
			if _, err := rec.Value(col.Key); err != nil {
				return fmt.Errorf("%s report: %w", KindTestDetail, err)
			}
		}
	}
	result, err := rec.Value(KeyResult)
	if err != nil {
		return fmt.Errorf("%s report: %w", KindTestDetail, err)
	}

	geo := layout.GeometryFor(model.Portrait)
	d := &detail{
		geo:    geo,
		flow:   layout.NewFlow(doc, geo, nil),
		fields: render.DefaultLabelValueSpec(geo.Margin, geo.PrintableWidth()),
	}
	if _, err := d.flow.Start(); err != nil {
		return err
	}

	if err := d.band(KindTestDetail.Title(), titleHeight, titleStyle(KindTestDetail), model.AlignCenter, model.RoleTitle); err != nil {
		return err
	}
	d.flow.Cursor().Advance(titleGap)

	if err := d.block("INFORMACIÓN DEL PACIENTE", DetailPatientFields(), rec); err != nil {
		return err
	}
	if err := d.block("DETALLES DE LA PRUEBA", DetailTestFields(), rec); err != nil {
		return err
	}

	if err := d.section("RESULTADO"); err != nil {
		return err
	}
	style := model.TextStyle(14, true, false, model.White).Filled(model.Blue)
	if err := d.band(strings.ToUpper(result), resultHeight, style, model.AlignCenter, model.RoleResult); err != nil {
		return err
	}
	d.flow.Cursor().Advance(resultGap)

	testID, _ := rec.Get(KeyTestRecordID)
	patientID, _ := rec.Get(KeyPatientID)
	if err := d.band(footerText(doc.Metadata.GeneratedAt), footerHeight, footerStyle(), model.AlignCenter, model.RoleFooter); err != nil {
		return err
	}
	return d.band(fmt.Sprintf("ID de Prueba: %s | ID de Paciente: %s", testID, patientID),
		footerHeight, footerStyle(), model.AlignCenter, model.RoleFooter)
}

// band reserves h and draws a full-width single-line band.
func (d *detail) band(text string, h float64, style model.Style, align model.Alignment, role model.Role) error {
	page, err := d.flow.Reserve(h)
	if err != nil {
		return err
	}
	render.Band(page, d.flow.Cursor(), text, render.BandSpec{
		X: d.geo.Margin, Width: d.geo.PrintableWidth(), Height: h,
		Style: style, Align: align, Role: role,
	})
	return nil
}

// section draws a heading with a rule under it.
func (d *detail) section(title string) error {
	if err := d.band(title, sectionHeight, model.TextStyle(16, true, false, model.Black), model.AlignLeft, model.RoleSection); err != nil {
		return err
	}
	cursor := d.flow.Cursor()
	render.Rule(d.flow.Page(), cursor.Y, d.geo.Margin, d.geo.Margin+d.geo.PrintableWidth(), ruleWidth)
	cursor.Advance(sectionGap)
	return nil
}

// block draws a section followed by its label and value lines.
func (d *detail) block(title string, fields model.Columns, rec model.Record) error {
	if err := d.section(title); err != nil {
		return err
	}
	for _, col := range fields {
		value, _ := rec.Get(col.Key)
		page, err := d.flow.Reserve(d.fields.LabelHeight(col, value))
		if err != nil {
			return err
		}
		render.LabelValue(page, d.flow.Cursor(), col, value, d.fields)
	}
	d.flow.Cursor().Advance(sectionGap)
	return nil
}
