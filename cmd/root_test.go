package cmd

import (
	"testing"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/config"
)

func TestShouldFail(t *testing.T) {
	tests := []struct {
		name    string
		summary cli.LintSummary
		failOn  string
		want    bool
	}{
		{
			name:    "clean run",
			summary: cli.LintSummary{TotalFiles: 2, PassedFiles: 2},
			failOn:  "error",
			want:    false,
		},
		{
			name:    "errors with fail-on error",
			summary: cli.LintSummary{TotalFiles: 1, PassedFiles: 1, TotalErrors: 2},
			failOn:  "error",
			want:    true,
		},
		{
			name:    "warnings with fail-on error",
			summary: cli.LintSummary{TotalFiles: 1, PassedFiles: 1, TotalWarnings: 3},
			failOn:  "error",
			want:    false,
		},
		{
			name:    "warnings with fail-on warning",
			summary: cli.LintSummary{TotalFiles: 1, PassedFiles: 1, TotalWarnings: 3},
			failOn:  "warning",
			want:    true,
		},
		{
			name:    "below min score",
			summary: cli.LintSummary{TotalFiles: 1, FailedFiles: 1},
			failOn:  "error",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{FailOn: tt.failOn}
			if got := shouldFail(&tt.summary, cfg); got != tt.want {
				t.Errorf("shouldFail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"score", "summary"} {
		if !names[want] {
			t.Errorf("root command missing %q subcommand", want)
		}
	}
}
