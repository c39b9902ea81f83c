package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/labreport/model"
	"github.com/tsawler/labreport/writer"
)

// Band heights and gaps in mm.
const (
	titleHeight   = 15.0
	titleGap      = 10.0
	summaryHeight = 10.0
	summaryGap    = 5.0
	footerHeight  = 5.0
)

// namespace scopes the document IDs produced by this package.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/tsawler/labreport"))

// Generate builds a report and serialises it to PDF bytes.
func Generate(kind Kind, records []model.Record, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	doc, err := Build(kind, records, opts)
	if err != nil {
		return nil, err
	}

	data, err := writer.Write(doc, writer.Options{Compress: opts.Compress})
	if err != nil {
		return nil, fmt.Errorf("write %s report: %w", kind, err)
	}

	opts.Logger.Debug("report generated",
		zap.Stringer("kind", kind),
		zap.Int("records", len(records)),
		zap.Int("pages", doc.PageCount()),
		zap.Int("bytes", len(data)))

	return data, nil
}

// Build lays out a report into a closed document without serialising it.
func Build(kind Kind, records []model.Record, opts Options) (*model.Document, error) {
	opts = opts.withDefaults()
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	now := opts.Clock()
	doc := model.NewDocument(kind.Orientation())
	doc.Metadata = model.Metadata{
		Title:       kind.Title(),
		Subject:     kind.String(),
		Author:      "labreport",
		Creator:     "labreport",
		ID:          DocumentID(kind, records, now).String(),
		GeneratedAt: now,
	}

	var err error
	if kind == KindTestDetail {
		err = buildDetail(doc, records, opts.Logger)
	} else {
		err = buildListing(doc, kind, records, opts.Logger)
	}
	if err != nil {
		return nil, err
	}

	if err := doc.Close(); err != nil {
		return nil, err
	}
	return doc, nil
}

// DocumentID derives a stable identifier from the report content and timestamp, so the
// same input always produces the same document.
func DocumentID(kind Kind, records []model.Record, generatedAt time.Time) uuid.UUID {
	var sb strings.Builder
	sb.WriteString(kind.String())
	sb.WriteByte(0)
	sb.WriteString(generatedAt.UTC().Format(time.RFC3339Nano))
	for _, rec := range records {
		sb.WriteByte(0x1e)
		for _, f := range rec {
			sb.WriteString(f.Key)
			sb.WriteByte('=')
			sb.WriteString(f.Value)
			sb.WriteByte(0x1f)
		}
	}
	return uuid.NewSHA1(namespace, []byte(sb.String()))
}

func footerText(t time.Time) string {
	return "Reporte generado el: " + t.Format(FooterTimeLayout)
}

func titleStyle(kind Kind) model.Style {
	return model.TextStyle(20, true, false, model.White).Filled(kind.TitleColor())
}

func footerStyle() model.Style {
	return model.TextStyle(8, false, true, model.Grey)
}
