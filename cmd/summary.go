package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/config"
	"github.com/dotcommander/listinglint/internal/scoring"
	"github.com/dotcommander/listinglint/internal/types"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a quality summary across all listings",
	Long: `Aggregates quality scores across every listing under the root and displays
the grade distribution, the most frequent issues, and the lowest-scoring
listings.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSummary(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// shopSummary holds aggregated data for the summary report.
type shopSummary struct {
	TotalListings int
	AverageScore  int
	GradeCounts   map[string]int
	TopIssues     map[string]int
	LowestScoring []scoredListing
}

// scoredListing pairs a listing file with its score for sorting.
type scoredListing struct {
	File  string
	Score int
	Grade string
}

const lowestScoringLimit = 5

func runSummary() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	lintSummary, err := cli.LintListings(cfg.Root, cfg.Exclude, cfg.MinScore)
	if err != nil {
		return fmt.Errorf("error linting listings: %w", err)
	}

	report := aggregate(lintSummary)
	printShopSummary(report)
	return nil
}

// aggregate folds lint results into the summary report shape.
func aggregate(lintSummary *cli.LintSummary) *shopSummary {
	report := &shopSummary{
		TotalListings: lintSummary.TotalFiles,
		AverageScore:  lintSummary.AverageScore,
		GradeCounts:   make(map[string]int),
		TopIssues:     make(map[string]int),
	}

	for _, result := range lintSummary.Results {
		if result.ParseError != "" {
			continue
		}
		grade := scoring.ScoreGrade(result.Analysis.Score)
		report.GradeCounts[grade]++
		report.LowestScoring = append(report.LowestScoring, scoredListing{
			File:  result.File,
			Score: result.Analysis.Score,
			Grade: grade,
		})
		for _, iss := range result.Analysis.Issues {
			if iss.Severity == types.SeverityGood {
				continue
			}
			report.TopIssues[iss.Area+": "+iss.Message]++
		}
	}

	sort.Slice(report.LowestScoring, func(i, j int) bool {
		if report.LowestScoring[i].Score != report.LowestScoring[j].Score {
			return report.LowestScoring[i].Score < report.LowestScoring[j].Score
		}
		return report.LowestScoring[i].File < report.LowestScoring[j].File
	})
	if len(report.LowestScoring) > lowestScoringLimit {
		report.LowestScoring = report.LowestScoring[:lowestScoringLimit]
	}

	return report
}

func printShopSummary(report *shopSummary) {
	if report.TotalListings == 0 {
		fmt.Println("No listing files found.")
		return
	}

	header := lipgloss.NewStyle().Bold(true)
	fmt.Printf("%s\n\n", header.Render("Listing Quality Summary"))
	fmt.Printf("Listings: %d   Average score: %d (%s)\n\n",
		report.TotalListings, report.AverageScore, scoring.ScoreGrade(report.AverageScore))

	fmt.Println("Grade distribution:")
	for _, grade := range []string{"A", "B", "C", "D"} {
		fmt.Printf("  %s  %d\n", grade, report.GradeCounts[grade])
	}

	if len(report.TopIssues) > 0 {
		fmt.Println("\nMost frequent issues:")
		for _, line := range topIssueLines(report.TopIssues, 5) {
			fmt.Printf("  %s\n", line)
		}
	}

	if len(report.LowestScoring) > 0 {
		fmt.Println("\nLowest scoring:")
		for _, item := range report.LowestScoring {
			fmt.Printf("  %3d %s  %s\n", item.Score, item.Grade, item.File)
		}
	}
}

// topIssueLines returns the most frequent issues as formatted lines, ordered
// by count descending and message ascending for deterministic output.
func topIssueLines(counts map[string]int, limit int) []string {
	type issueCount struct {
		message string
		count   int
	}
	items := make([]issueCount, 0, len(counts))
	for message, count := range counts {
		items = append(items, issueCount{message, count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].message < items[j].message
	})
	if len(items) > limit {
		items = items[:limit]
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%dx %s", item.count, item.message)
	}
	return lines
}
