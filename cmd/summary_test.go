package cmd

import (
	"reflect"
	"testing"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/scoring"
)

func TestAggregate(t *testing.T) {
	lintSummary := &cli.LintSummary{
		TotalFiles:   3,
		AverageScore: 40,
		Results: []cli.LintResult{
			{File: "listings/a.md", Analysis: scoring.Analyze("", nil, "", nil)},
			{File: "listings/b.md", Analysis: scoring.Analyze("", nil, "", nil)},
			{File: "listings/broken.md", ParseError: "bad yaml"},
		},
	}

	report := aggregate(lintSummary)

	if report.TotalListings != 3 {
		t.Errorf("TotalListings = %d, want 3", report.TotalListings)
	}
	if report.GradeCounts["D"] != 2 {
		t.Errorf("GradeCounts[D] = %d, want 2", report.GradeCounts["D"])
	}
	// The broken file contributes no scores or issues.
	if len(report.LowestScoring) != 2 {
		t.Fatalf("LowestScoring = %d entries, want 2", len(report.LowestScoring))
	}
	if report.LowestScoring[0].File != "listings/a.md" {
		t.Errorf("LowestScoring[0] = %q, want listings/a.md (tie broken by name)", report.LowestScoring[0].File)
	}
	// Both empty listings emit the same three errors, counted twice each.
	if report.TopIssues["title: No title set"] != 2 {
		t.Errorf("TopIssues = %+v, want 'title: No title set' counted twice", report.TopIssues)
	}
}

func TestAggregateLimitsLowestScoring(t *testing.T) {
	lintSummary := &cli.LintSummary{}
	for i := 0; i < 10; i++ {
		lintSummary.Results = append(lintSummary.Results, cli.LintResult{
			File:     string(rune('a'+i)) + ".md",
			Analysis: scoring.Analyze("", nil, "", nil),
		})
	}
	lintSummary.TotalFiles = len(lintSummary.Results)

	report := aggregate(lintSummary)
	if len(report.LowestScoring) != lowestScoringLimit {
		t.Errorf("LowestScoring = %d entries, want %d", len(report.LowestScoring), lowestScoringLimit)
	}
}

func TestTopIssueLines(t *testing.T) {
	counts := map[string]int{
		"tags: No tags set":              3,
		"title: No title set":            3,
		"description: No description set": 1,
	}

	got := topIssueLines(counts, 2)
	want := []string{
		"3x tags: No tags set",
		"3x title: No title set",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topIssueLines() = %v, want %v", got, want)
	}
}
