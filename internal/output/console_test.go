package output

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn while capturing everything written to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter(false, false)
	f.colorize = false

	out := captureStdout(t, func() {
		if err := f.Format(sampleSummary()); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})

	for _, want := range []string{
		"listings/poster.md",
		"listings/broken.md",
		"invalid frontmatter",
		"1/2 passed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q in:\n%s", want, out)
		}
	}

	// Good issues are hidden unless verbose.
	if strings.Contains(out, "✓ title") {
		t.Error("non-verbose output should not show good issues")
	}
}

func TestConsoleFormatterVerbose(t *testing.T) {
	f := NewConsoleFormatter(false, true)
	f.colorize = false

	out := captureStdout(t, func() {
		if err := f.Format(sampleSummary()); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})

	if !strings.Contains(out, "✓ ") {
		t.Errorf("verbose output should show good issues:\n%s", out)
	}
}

func TestConsoleFormatterQuiet(t *testing.T) {
	f := NewConsoleFormatter(true, false)

	out := captureStdout(t, func() {
		if err := f.Format(sampleSummary()); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})

	if out != "" {
		t.Errorf("quiet mode produced output:\n%s", out)
	}
}
