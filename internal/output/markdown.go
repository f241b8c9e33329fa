package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/scoring"
	"github.com/dotcommander/listinglint/internal/types"
)

// MarkdownFormatter formats output as Markdown.
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format formats the lint summary as Markdown.
func (f *MarkdownFormatter) Format(summary *cli.LintSummary) error {
	var builder strings.Builder

	builder.WriteString("# Listing Quality Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Root:** %s\n\n", summary.ProjectRoot))

	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Value |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Listings Scanned | %d |\n", summary.TotalFiles))
	builder.WriteString(fmt.Sprintf("| Passed | %d |\n", summary.PassedFiles))
	builder.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.FailedFiles))
	builder.WriteString(fmt.Sprintf("| Errors | %d |\n", summary.TotalErrors))
	builder.WriteString(fmt.Sprintf("| Warnings | %d |\n", summary.TotalWarnings))
	builder.WriteString(fmt.Sprintf("| Average Score | %d (%s) |\n", summary.AverageScore, scoring.ScoreGrade(summary.AverageScore)))
	builder.WriteString("\n")

	builder.WriteString("## Listings\n\n")
	if summary.TotalFiles == 0 {
		builder.WriteString("*No listing files found.*\n")
	}

	for _, result := range summary.Results {
		builder.WriteString(fmt.Sprintf("### %s\n\n", result.File))

		if result.ParseError != "" {
			builder.WriteString(fmt.Sprintf("Could not parse: %s\n\n", result.ParseError))
			continue
		}

		a := result.Analysis
		builder.WriteString(fmt.Sprintf("**Score:** %d/100 (%s) — title %d, tags %d, description %d\n\n",
			a.Score, scoring.ScoreGrade(a.Score), a.TitleScore, a.TagsScore, a.DescScore))

		issues := append(append([]types.Issue{}, result.SchemaIssues...), a.Issues...)
		f.writeIssues(&builder, issues)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(builder.String()), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	fmt.Print(builder.String())
	return nil
}

// writeIssues groups issues by severity; good issues appear only in verbose
// reports.
func (f *MarkdownFormatter) writeIssues(builder *strings.Builder, issues []types.Issue) {
	sections := []struct {
		severity string
		heading  string
	}{
		{types.SeverityError, "Errors"},
		{types.SeverityWarning, "Warnings"},
		{types.SeverityGood, "Looks Good"},
	}

	for _, section := range sections {
		if section.severity == types.SeverityGood && !f.verbose {
			continue
		}
		var matched []types.Issue
		for _, iss := range issues {
			if iss.Severity == section.severity {
				matched = append(matched, iss)
			}
		}
		if len(matched) == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("#### %s\n\n", section.heading))
		for _, iss := range matched {
			builder.WriteString(fmt.Sprintf("- **%s** — %s\n", iss.Area, iss.Message))
		}
		builder.WriteString("\n")
	}
}
