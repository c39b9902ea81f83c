// Package labreport renders clinic records into paginated PDF reports.
//
// Basic usage:
//
//	pdf, err := labreport.From(src).Patients().Generate(ctx)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	pdf, err := labreport.From(src).
//	    Tests().
//	    Search("Glucosa").
//	    Compress().
//	    Generate(ctx)
//
// A single test result:
//
//	err := labreport.From(src).Detail(42).WriteFile(ctx, "prueba_42.pdf")
//
// Records come from any [source.Source]: a database through [source.Open] or in-memory
// records through [source.Static]. For finer control the report, writer and preview
// packages can be used directly.
package labreport

import (
	"github.com/tsawler/labreport/source"
)

// From returns a Generator reading records from src. The patient listing is selected
// until another kind is chosen.
//
// Example:
//
//	pdf, err := labreport.From(src).Generate(ctx)
func From(src source.Source) *Generator {
	return &Generator{
		src:     src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	pdf := labreport.Must(labreport.From(src).Generate(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
