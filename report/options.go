package report

import (
	"time"

	"go.uber.org/zap"
)

// FooterTimeLayout formats the generation timestamp printed in every footer.
const FooterTimeLayout = "02/01/2006 15:04:05"

// Options controls report generation. The zero value is usable.
type Options struct {
	// Clock supplies the generation timestamp.
	// Default: time.Now
	Clock func() time.Time

	// Compress enables Flate compression of page content streams.
	Compress bool

	// Logger receives debug events.
	// Default: zap.NewNop()
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
