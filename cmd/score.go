package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/scoring"
	"github.com/dotcommander/listinglint/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score a single listing file",
	Long: `Scores one listing file and prints the full category breakdown with every
issue, including the checks that already pass.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(path string) error {
	result, err := cli.LintFile(path)
	if err != nil {
		return err
	}
	if result.ParseError != "" {
		return fmt.Errorf("could not parse %s: %s", path, result.ParseError)
	}

	a := result.Analysis
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scoring.ScoreColor(a.Score))).
		Background(lipgloss.Color(scoring.ScoreBg(a.Score))).
		Render(fmt.Sprintf(" %d %s ", a.Score, scoring.ScoreGrade(a.Score)))

	fmt.Printf("%s %s\n\n", badge, result.File)
	extras := a.Score - a.TitleScore - a.TagsScore - a.DescScore
	fmt.Printf("  title        %2d/25\n", a.TitleScore)
	fmt.Printf("  tags         %2d/25\n", a.TagsScore)
	fmt.Printf("  description  %2d/25\n", a.DescScore)
	fmt.Printf("  extras       %2d/25\n\n", extras)

	for _, iss := range result.SchemaIssues {
		printScoreIssue(iss)
	}
	for _, iss := range a.Issues {
		printScoreIssue(iss)
	}
	return nil
}

func printScoreIssue(iss types.Issue) {
	var style lipgloss.Style
	prefix := "  ✓"
	switch iss.Severity {
	case types.SeverityError:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		prefix = "  ✘"
	case types.SeverityWarning:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		prefix = "  ⚠"
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	}
	fmt.Printf("%s %s: %s\n", prefix, style.Render(iss.Area), iss.Message)
}
