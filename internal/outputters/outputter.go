// Package outputters dispatches lint summaries to the formatter matching the
// configured output format.
package outputters

import (
	"fmt"
	"time"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/config"
	"github.com/dotcommander/listinglint/internal/output"
)

// Outputter handles output formatting.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{config: config}
}

// Format formats the lint summary using the configured format.
func (o *Outputter) Format(summary *cli.LintSummary, format string) error {
	if summary.StartTime.IsZero() {
		summary.StartTime = time.Now()
	}
	summary.ProjectRoot = o.config.Root

	switch format {
	case "console":
		return output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose).Format(summary)
	case "json":
		return output.NewJSONFormatter(true, o.config.Output).Format(summary)
	case "markdown":
		return output.NewMarkdownFormatter(o.config.Verbose, o.config.Output).Format(summary)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
