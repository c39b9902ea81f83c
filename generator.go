package labreport

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/labreport/model"
	"github.com/tsawler/labreport/preview"
	"github.com/tsawler/labreport/report"
	"github.com/tsawler/labreport/source"
	"github.com/tsawler/labreport/writer"
)

// Generator provides a fluent interface for producing reports.
// Each configuration method returns a new Generator instance, making it
// safe for concurrent use and allowing method chaining.
type Generator struct {
	src     source.Source
	options GenerateOptions
}

// clone creates a copy of the Generator so chain methods never modify the receiver.
func (g *Generator) clone() *Generator {
	return &Generator{
		src:     g.src,
		options: g.options.clone(),
	}
}

// Kind selects the report kind.
func (g *Generator) Kind(k report.Kind) *Generator {
	n := g.clone()
	n.options.kind = k
	return n
}

// Patients selects the patient listing.
func (g *Generator) Patients() *Generator {
	return g.Kind(report.KindPatients)
}

// Tests selects the test listing.
func (g *Generator) Tests() *Generator {
	return g.Kind(report.KindTests)
}

// Detail selects the single test report for the patient test id.
func (g *Generator) Detail(id int64) *Generator {
	n := g.Kind(report.KindTestDetail)
	n.options.id = id
	return n
}

// Search restricts a listing to records matching s. It has no effect on the detail report.
func (g *Generator) Search(s string) *Generator {
	n := g.clone()
	n.options.search = s
	return n
}

// Compress enables Flate compression of page content.
func (g *Generator) Compress() *Generator {
	n := g.clone()
	n.options.compress = true
	return n
}

// At fixes the generation timestamp, making the output reproducible.
func (g *Generator) At(t time.Time) *Generator {
	n := g.clone()
	n.options.clock = func() time.Time { return t }
	return n
}

// Logger sets the logger for generation events.
func (g *Generator) Logger(log *zap.Logger) *Generator {
	n := g.clone()
	n.options.logger = log
	return n
}

// Records loads the records of the selected report.
func (g *Generator) Records(ctx context.Context) ([]model.Record, error) {
	if g.src == nil {
		return nil, fmt.Errorf("no record source")
	}

	switch g.options.kind {
	case report.KindPatients:
		return g.src.Patients(ctx, g.options.search)
	case report.KindTests:
		return g.src.Tests(ctx, g.options.search)
	case report.KindTestDetail:
		return g.src.TestDetail(ctx, g.options.id)
	}
	return nil, fmt.Errorf("%w: %d", report.ErrUnknownKind, int(g.options.kind))
}

// Document loads the records and lays out the report without serialising it.
func (g *Generator) Document(ctx context.Context) (*model.Document, error) {
	records, err := g.Records(ctx)
	if err != nil {
		return nil, err
	}
	return report.Build(g.options.kind, records, g.options.reportOptions())
}

// Generate loads the records and returns the report as PDF bytes.
func (g *Generator) Generate(ctx context.Context) ([]byte, error) {
	records, err := g.Records(ctx)
	if err != nil {
		return nil, err
	}
	return report.Generate(g.options.kind, records, g.options.reportOptions())
}

// Render writes the PDF report to w.
func (g *Generator) Render(ctx context.Context, w io.Writer) error {
	doc, err := g.Document(ctx)
	if err != nil {
		return err
	}
	return writer.WriteTo(w, doc, writer.Options{Compress: g.options.compress})
}

// WriteFile writes the PDF report to a file.
func (g *Generator) WriteFile(ctx context.Context, path string) error {
	data, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Preview renders page n (1-based) of the report as PNG to w at scale pixels per mm.
func (g *Generator) Preview(ctx context.Context, w io.Writer, n int, scale float64) error {
	doc, err := g.Document(ctx)
	if err != nil {
		return err
	}
	return preview.WritePNG(w, doc, n, scale)
}

// PageCount returns the number of pages the report lays out to.
func (g *Generator) PageCount(ctx context.Context) (int, error) {
	doc, err := g.Document(ctx)
	if err != nil {
		return 0, err
	}
	return doc.PageCount(), nil
}
