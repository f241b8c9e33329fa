package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/scoring"
	"github.com/dotcommander/listinglint/internal/types"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// Format formats the lint summary as JSON.
func (f *JSONFormatter) Format(summary *cli.LintSummary) error {
	report := BuildReport(summary)

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	fmt.Println(string(jsonBytes))
	return nil
}

// BuildReport converts a lint summary into the serializable report shape.
func BuildReport(summary *cli.LintSummary) JSONReport {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "listinglint",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalFiles:    summary.TotalFiles,
			PassedFiles:   summary.PassedFiles,
			FailedFiles:   summary.FailedFiles,
			TotalErrors:   summary.TotalErrors,
			TotalWarnings: summary.TotalWarnings,
			AverageScore:  summary.AverageScore,
			Duration:      time.Since(summary.StartTime).Round(time.Millisecond).String(),
		},
		Results: make([]JSONResult, len(summary.Results)),
	}

	for i, result := range summary.Results {
		jsonResult := JSONResult{
			File:       result.File,
			ParseError: result.ParseError,
		}
		if result.ParseError == "" {
			a := result.Analysis
			jsonResult.Score = &JSONScore{
				Overall:     a.Score,
				Grade:       scoring.ScoreGrade(a.Score),
				Title:       a.TitleScore,
				Tags:        a.TagsScore,
				Description: a.DescScore,
			}
			jsonResult.Issues = append(jsonResult.Issues, result.SchemaIssues...)
			jsonResult.Issues = append(jsonResult.Issues, a.Issues...)
		}
		report.Results[i] = jsonResult
	}

	return report
}

// JSONReport represents the complete JSON report structure.
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains summary statistics.
type JSONSummary struct {
	TotalFiles    int    `json:"total_files"`
	PassedFiles   int    `json:"passed_files"`
	FailedFiles   int    `json:"failed_files"`
	TotalErrors   int    `json:"total_errors"`
	TotalWarnings int    `json:"total_warnings"`
	AverageScore  int    `json:"average_score"`
	Duration      string `json:"duration"`
}

// JSONResult represents a single listing's result.
type JSONResult struct {
	File       string        `json:"file"`
	Score      *JSONScore    `json:"score,omitempty"`
	Issues     []types.Issue `json:"issues,omitempty"`
	ParseError string        `json:"parse_error,omitempty"`
}

// JSONScore represents the score breakdown for a listing. The materials
// contribution is recoverable as overall minus the three named categories.
type JSONScore struct {
	Overall     int    `json:"overall"`
	Grade       string `json:"grade"`
	Title       int    `json:"title"`
	Tags        int    `json:"tags"`
	Description int    `json:"description"`
}
