// Package report assembles the clinic reports.
//
// Three kinds exist. [KindTestDetail] is a single portrait page describing one patient
// test and its result. [KindPatients] and [KindTests] are landscape listings: a title band,
// a record count, a column header band and one table row per record, paginated with the
// header band repeated at the top of every page.
//
// [Build] produces the page model of a report and [Generate] serialises it to PDF bytes:
//
//	pdf, err := report.Generate(report.KindPatients, records, report.Options{})
//
// Records are rendered in the order given. A detail report without a record returns
// [ErrNotFound]; a record missing a column returns an error wrapping
// [model.ErrMissingColumn] and no document.
package report
