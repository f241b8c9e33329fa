package output

import (
	"os"
	"strings"
	"testing"
)

// readFile is a small helper shared by the formatter tests.
func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func TestMarkdownFormatter(t *testing.T) {
	outFile := t.TempDir() + "/report.md"
	f := NewMarkdownFormatter(false, outFile)
	if err := f.Format(sampleSummary()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	data, err := readFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	report := string(data)

	for _, want := range []string{
		"# Listing Quality Report",
		"| Listings Scanned | 2 |",
		"### listings/poster.md",
		"### listings/broken.md",
		"Could not parse:",
		"#### Errors",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Good issues are hidden unless verbose.
	if strings.Contains(report, "#### Looks Good") {
		t.Error("non-verbose report should not list good issues")
	}
}

func TestMarkdownFormatterVerbose(t *testing.T) {
	outFile := t.TempDir() + "/report.md"
	f := NewMarkdownFormatter(true, outFile)
	if err := f.Format(sampleSummary()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	data, err := readFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "#### Looks Good") {
		t.Error("verbose report should list good issues")
	}
}
