// Package model provides the intermediate representation (IR) of a generated report.
//
// Report assembly never talks to a PDF library directly. Records flow through the layout and
// render packages, which place positioned elements on the pages of a [Document]; the writer
// package turns the finished Document into PDF bytes and the preview package rasterises it.
// Keeping an IR in between makes layout decisions observable and testable.
//
// # Records and Columns
//
// A [Record] is an ordered list of display strings keyed by column name. A report kind
// describes its table with [Columns], an ordered slice of [ColumnSpec]:
//
//	cols := model.Columns{
//	    {Key: "name", Label: "Nombre", Width: 50, Wrap: true, CharsPerLine: 30},
//	    {Key: "phone", Label: "Teléfono", Width: 40, Align: model.AlignCenter},
//	}
//	if err := cols.Validate(277); err != nil {
//	    // columns wider than the printable area
//	}
//
// # Document Structure
//
// The [Document] type is an append-only sequence of pages:
//
//	doc := model.NewDocument(model.Landscape)
//	page, _ := doc.AddPage()
//	page.AddElement(&model.Cell{...})
//	doc.Close()
//
// Each [Page] holds [Element] values. The concrete types are:
//
//   - [Cell] - a rectangle of text with an explicit [Style]
//   - [Rule] - a horizontal separator line
//
// # Geometry
//
// All coordinates are millimetres with the origin at the top-left corner of the page and Y
// growing downward, which is the convention of the PDF writer used by this module:
//
//   - [BBox] - bounding box with intersection and union
//   - [Point] - 2D point
//
// # Styles
//
// Every element carries its own [Style]. There is no "current" font or colour anywhere in the
// pipeline, so nothing set while drawing one row can leak into the next.
package model
