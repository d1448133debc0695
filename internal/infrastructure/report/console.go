package report

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/ports"
)

// ConsoleReporter logs advisories as structured warnings on a console
// logger, then forwards them to an optional next reporter so they can also
// be collected.
type ConsoleReporter struct {
	logger *log.Logger
	next   ports.Reporter
}

// ConsoleReporterParams contains configuration for creating a ConsoleReporter.
type ConsoleReporterParams struct {
	Debug bool
	Next  ports.Reporter
}

// NewConsoleReporter creates a reporter that writes to stderr.
func NewConsoleReporter(params ConsoleReporterParams) *ConsoleReporter {
	level := log.InfoLevel
	if params.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "weft",
	})
	return &ConsoleReporter{logger: logger, next: params.Next}
}

// Report logs the advisory and forwards it.
func (r *ConsoleReporter) Report(adv entities.Advisory) {
	r.logger.Warn("build advisory",
		"kind", string(adv.Kind),
		"subject", adv.Subject,
		"detail", adv.Detail,
	)
	if r.next != nil {
		r.next.Report(adv)
	}
}
