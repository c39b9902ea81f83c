// Package inspect reads back the PDF files produced by the writer.
//
// It is not a general PDF reader. It understands the subset the writer emits: one content
// stream per page, standard fonts, text shown with Td and Tj, and rectangles drawn with re.
// That is enough to check what a generated report actually contains:
//
//	doc, err := inspect.Parse(pdfBytes)
//	for _, page := range doc.Pages {
//	    fmt.Println(page.Number, page.Text())
//	}
//
// Coordinates are converted back to millimetres measured from the top-left corner of the
// page, the same space the layout works in. Text is decoded from WinAnsiEncoding to UTF-8.
//
// # Content Stream Operations
//
// [Parser] turns a content stream into a list of [Operation] values. Each operation is an
// operator with the operands that preceded it:
//
//	BT /F1 12 Tf 100 700 Td (Hello) Tj ET
//
// becomes
//
//	{BT []}
//	{Tf [/F1 12]}
//	{Td [100 700]}
//	{Tj [(Hello)]}
//	{ET []}
package inspect
