package report

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/labreport/layout"
	"github.com/tsawler/labreport/model"
	"github.com/tsawler/labreport/render"
)

func summaryText(kind Kind, n int) string {
	if kind == KindTests {
		return fmt.Sprintf("Total de Pruebas: %d", n)
	}
	return fmt.Sprintf("Total de Pacientes: %d", n)
}

// buildListing lays out a patient or test listing: title, summary, header band and one
// atomic row per record, breaking pages before any row that would cross the bottom.
func buildListing(doc *model.Document, kind Kind, records []model.Record, log *zap.Logger) error {
	cols := kind.Columns()
	geo := layout.GeometryFor(kind.Orientation())
	if err := cols.Validate(geo.PrintableWidth()); err != nil {
		return fmt.Errorf("%s columns: %w", kind, err)
	}

	table := render.NewTable(geo.Margin, cols)
	flow := layout.NewFlow(doc, geo, table.HeaderBand)

	page, err := flow.Start()
	if err != nil {
		return err
	}
	cursor := flow.Cursor()
	width := geo.PrintableWidth()

	render.Band(page, cursor, kind.Title(), render.BandSpec{
		X: geo.Margin, Width: width, Height: titleHeight,
		Style: titleStyle(kind), Align: model.AlignCenter, Role: model.RoleTitle,
	})
	cursor.Advance(titleGap)

	render.Band(page, cursor, summaryText(kind, len(records)), render.BandSpec{
		X: geo.Margin, Width: width, Height: summaryHeight,
		Style: model.TextStyle(12, true, false, model.Black), Align: model.AlignLeft, Role: model.RoleSummary,
	})
	cursor.Advance(summaryGap)

	flow.Begin()

	heights := layout.DefaultHeightConfig()
	for i, rec := range records {
		h := layout.EstimateRowHeight(rec, cols, heights)
		page, err = flow.Reserve(h)
		if err != nil {
			return err
		}
		if err := table.Row(page, cursor, i, rec, h); err != nil {
			return fmt.Errorf("%s report: %w", kind, err)
		}
	}

	// The footer goes onto the current page without a flow transition; it sits inside the
	// margin below the content band.
	render.Band(flow.Page(), cursor, footerText(doc.Metadata.GeneratedAt), render.BandSpec{
		X: geo.Margin, Width: width, Height: footerHeight,
		Style: footerStyle(), Align: model.AlignCenter, Role: model.RoleFooter,
	})

	log.Debug("listing laid out",
		zap.Stringer("kind", kind),
		zap.Int("pages", doc.PageCount()),
		zap.Int("page_breaks", flow.PageBreaks()))
	return nil
}
