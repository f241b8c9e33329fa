package outputters

import (
	"strings"
	"testing"
	"time"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/config"
)

func testConfig(format, outputFile string) *config.Config {
	return &config.Config{
		Root:   "/tmp/shop",
		Format: format,
		Output: outputFile,
		FailOn: "error",
		Quiet:  true,
	}
}

func TestOutputterDispatch(t *testing.T) {
	summary := &cli.LintSummary{StartTime: time.Now()}

	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"console", "console", false},
		{"json to file", "json", false},
		{"markdown to file", "markdown", false},
		{"unsupported", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outFile := ""
			if tt.format == "json" || tt.format == "markdown" {
				outFile = t.TempDir() + "/report." + tt.format
			}
			o := NewOutputter(testConfig(tt.format, outFile))
			err := o.Format(summary, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("Format(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), "unsupported format") {
				t.Errorf("error = %v, want unsupported format", err)
			}
		})
	}
}

func TestOutputterSetsProjectRoot(t *testing.T) {
	summary := &cli.LintSummary{}
	o := NewOutputter(testConfig("console", ""))
	if err := o.Format(summary, "console"); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if summary.ProjectRoot != "/tmp/shop" {
		t.Errorf("ProjectRoot = %q, want /tmp/shop", summary.ProjectRoot)
	}
	if summary.StartTime.IsZero() {
		t.Error("StartTime should be set when zero")
	}
}
