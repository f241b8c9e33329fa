// Package output renders lint summaries for the console, JSON consumers and
// markdown reports.
package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/scoring"
	"github.com/dotcommander/listinglint/internal/types"
)

// ConsoleFormatter formats output for console display.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format formats the lint summary for console output.
func (f *ConsoleFormatter) Format(summary *cli.LintSummary) error {
	if f.quiet {
		return nil
	}

	f.printResults(summary)
	f.printSummary(summary)
	return nil
}

// printResults prints the per-file score line and, unless the file is clean,
// its issues.
func (f *ConsoleFormatter) printResults(summary *cli.LintSummary) {
	for _, result := range summary.Results {
		if result.ParseError != "" {
			fmt.Printf("✗ %s\n", result.File)
			fmt.Printf("    ✘ %s\n", result.ParseError)
			continue
		}

		score := result.Analysis.Score
		fmt.Printf("%s %s  %d/100\n", f.scoreBadge(score), result.File, score)

		for _, iss := range result.SchemaIssues {
			f.printIssue(iss)
		}
		for _, iss := range result.Analysis.Issues {
			if iss.Severity == types.SeverityGood && !f.verbose {
				continue
			}
			f.printIssue(iss)
		}
	}
}

// scoreBadge renders the grade letter on the tier's background color.
func (f *ConsoleFormatter) scoreBadge(score int) string {
	grade := scoring.ScoreGrade(score)
	if !f.colorize {
		return grade
	}
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scoring.ScoreColor(score))).
		Background(lipgloss.Color(scoring.ScoreBg(score)))
	return style.Render(" " + grade + " ")
}

// printIssue prints a single issue with severity styling and its area.
func (f *ConsoleFormatter) printIssue(iss types.Issue) {
	var style lipgloss.Style
	if f.colorize {
		switch iss.Severity {
		case types.SeverityError:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
		case types.SeverityWarning:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
		default:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
		}
	}

	prefix := "    ✓ "
	switch iss.Severity {
	case types.SeverityError:
		prefix = "    ✘ "
	case types.SeverityWarning:
		prefix = "    ⚠ "
	}

	fmt.Printf("%s%s: %s\n", prefix, style.Render(iss.Area), iss.Message)
}

// printSummary prints the run statistics and conclusion.
func (f *ConsoleFormatter) printSummary(summary *cli.LintSummary) {
	if summary.TotalFiles == 0 {
		fmt.Println("No listing files found.")
		return
	}

	duration := time.Since(summary.StartTime)
	fmt.Printf("\n%d/%d passed, %d errors, %d warnings, average score %d (%v)\n",
		summary.PassedFiles, summary.TotalFiles,
		summary.TotalErrors, summary.TotalWarnings,
		summary.AverageScore,
		duration.Round(time.Millisecond))

	if summary.FailedFiles == 0 && summary.TotalErrors == 0 {
		if f.colorize {
			style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
			fmt.Printf("%s\n", style.Render("✓ All listings passed"))
		} else {
			fmt.Println("✓ All listings passed")
		}
	}
}
