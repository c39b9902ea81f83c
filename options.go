package labreport

import (
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/labreport/report"
)

// GenerateOptions holds the configuration of one report request.
type GenerateOptions struct {
	// Report selection
	kind   report.Kind
	id     int64 // detail report only
	search string

	// Output
	compress bool
	clock    func() time.Time
	logger   *zap.Logger
}

// defaultOptions returns the default generation options.
func defaultOptions() GenerateOptions {
	return GenerateOptions{
		kind:     report.KindPatients,
		compress: false,
		clock:    nil, // nil means time.Now
		logger:   nil, // nil means no logging
	}
}

// clone returns a copy of the options.
func (o GenerateOptions) clone() GenerateOptions {
	return o
}

// reportOptions converts to the report package options.
func (o GenerateOptions) reportOptions() report.Options {
	return report.Options{
		Clock:    o.clock,
		Compress: o.compress,
		Logger:   o.logger,
	}
}
