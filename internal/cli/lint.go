// Package cli orchestrates a lint run: discover listing files, load them,
// validate their shape, score them, and aggregate the results.
package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dotcommander/listinglint/internal/discovery"
	"github.com/dotcommander/listinglint/internal/listing"
	"github.com/dotcommander/listinglint/internal/schema"
	"github.com/dotcommander/listinglint/internal/scoring"
	"github.com/dotcommander/listinglint/internal/types"
)

// LintResult holds the outcome for a single listing file.
type LintResult struct {
	File         string
	Listing      *listing.Listing
	Analysis     scoring.Analysis
	SchemaIssues []types.Issue
	ParseError   string
}

// Passed reports whether the file parsed and met the minimum score.
func (r *LintResult) Passed(minScore int) bool {
	return r.ParseError == "" && r.Analysis.Score >= minScore
}

// LintSummary aggregates the results of one lint run.
type LintSummary struct {
	ProjectRoot  string
	StartTime    time.Time
	TotalFiles   int
	PassedFiles  int
	FailedFiles  int
	TotalErrors  int
	TotalWarnings int
	AverageScore int
	Results      []LintResult
}

// LintListings discovers and scores every listing under root. Individual
// file failures (unreadable, malformed) are recorded on the result rather
// than aborting the run.
func LintListings(root string, excludes []string, minScore int) (*LintSummary, error) {
	summary := &LintSummary{
		ProjectRoot: root,
		StartTime:   time.Now(),
	}

	files, err := discovery.DiscoverListings(root, excludes)
	if err != nil {
		return nil, fmt.Errorf("error discovering listings: %w", err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("error loading listing schema: %w", err)
	}

	scoreSum := 0
	for _, file := range files {
		result := lintFile(root, file, validator)

		summary.TotalFiles++
		if result.Passed(minScore) {
			summary.PassedFiles++
		} else {
			summary.FailedFiles++
		}
		scoreSum += result.Analysis.Score

		for _, iss := range result.Analysis.Issues {
			switch iss.Severity {
			case types.SeverityError:
				summary.TotalErrors++
			case types.SeverityWarning:
				summary.TotalWarnings++
			}
		}
		summary.TotalErrors += len(result.SchemaIssues)

		summary.Results = append(summary.Results, result)
	}

	if summary.TotalFiles > 0 {
		summary.AverageScore = scoreSum / summary.TotalFiles
	}

	return summary, nil
}

// LintFile scores a single listing file outside of a discovery run.
func LintFile(path string) (*LintResult, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("error loading listing schema: %w", err)
	}
	result := lintFile(filepath.Dir(path), filepath.Base(path), validator)
	result.File = path
	return &result, nil
}

func lintFile(root, file string, validator *schema.Validator) LintResult {
	result := LintResult{File: file}

	l, err := listing.Load(filepath.Join(root, file))
	if err != nil {
		result.ParseError = err.Error()
		return result
	}
	result.Listing = l

	result.SchemaIssues = validator.ValidateListing(listingDocument(l))
	result.Analysis = scoring.Analyze(l.Title, l.Tags, l.Description, l.Materials)
	return result
}

// listingDocument converts a listing into the generic map shape the schema
// validator expects, leaving absent fields out so they aren't flagged.
func listingDocument(l *listing.Listing) map[string]interface{} {
	doc := make(map[string]interface{})
	if l.Title != "" {
		doc["title"] = l.Title
	}
	if l.Tags != nil {
		doc["tags"] = toInterfaceSlice(l.Tags)
	}
	if l.Description != "" {
		doc["description"] = l.Description
	}
	if l.Materials != nil {
		doc["materials"] = toInterfaceSlice(l.Materials)
	}
	return doc
}

func toInterfaceSlice(items []string) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// CollectIssues returns every issue in a summary, engine and schema alike,
// preserving per-file order.
func CollectIssues(summary *LintSummary) []types.Issue {
	var all []types.Issue
	for _, result := range summary.Results {
		all = append(all, result.SchemaIssues...)
		all = append(all, result.Analysis.Issues...)
	}
	return all
}
