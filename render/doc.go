// Package render places report content on document pages.
//
// Every function here draws into a [model.Page] and never touches the PDF writer; the
// writer later serialises whatever the pages hold. Styles are passed explicitly with each
// call so the drawing state of one band can never leak into the next.
//
// A [Table] draws the column header band and the body rows of a listing. Its HeaderBand
// method is the only place a header band is produced, both before the first row and at
// the top of every continuation page.
//
// The remaining helpers draw the free-form bands of a report: [Band] for titles, summaries,
// section headings and footers, [Rule] for horizontal rules and [LabelValue] for the label
// and value lines of the detail report.
package render
