// Package layout decides where report rows go.
//
// It has two parts: a row height estimator and a page flow controller.
//
// # Row Heights
//
// [EstimateRow] computes how tall each column of a record will be and the resulting row
// height. Wrap columns are measured with a characters-per-line budget taken from the
// column spec, not with font metrics:
//
//	lines  = max(1, ceil(chars / CharsPerLine))
//	height = max(MinHeight, lines * LineHeight)
//
// The row height is the tallest column, never less than MinHeight. The estimate is
// deliberately approximate and stable: the same record always gets the same height.
//
// # Page Flow
//
// A [Flow] owns the page cursor of one document. It is either on a page with room to
// spare ([OnPage]) or about to start a new one ([NeedNewPage]):
//
//	flow := layout.NewFlow(doc, layout.GeometryFor(model.Landscape), header)
//	page, _ := flow.Start()
//	// ... title and summary bands at flow.Cursor() ...
//	flow.Begin() // first header band
//	for _, rec := range records {
//	    h := layout.EstimateRowHeight(rec, cols, cfg)
//	    page, err := flow.Reserve(h)
//	    // draw the row on page at flow.Cursor().Y, then advance the cursor by h
//	}
//
// Reserve starts a new page when the next row would cross the content bottom, and the
// header band is drawn again at the top of that page. Rows are never split.
package layout
