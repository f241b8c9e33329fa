// Package cmd wires the listinglint command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/listinglint/internal/cli"
	"github.com/dotcommander/listinglint/internal/config"
	"github.com/dotcommander/listinglint/internal/outputters"
	"github.com/dotcommander/listinglint/internal/types"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	failOn       string
	minScore     int
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "listinglint",
	Short: "Lint product listings for search discoverability",
	Long: `Listinglint scores product listing files (title, tags, description,
materials) against search-discoverability heuristics and reports a 0-100
quality score per listing with actionable issues.

By default, listinglint scans every listing under the root and reports on all
of them. Use 'score' to inspect a single file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLint(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Shop content root directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringVar(&failOn, "fail-on", "error", "Fail on the specified severity (error|warning)")
	rootCmd.PersistentFlags().IntVar(&minScore, "min-score", 0, "Fail listings scoring below this value (0-100)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("failOn", rootCmd.PersistentFlags().Lookup("fail-on"))
	viper.BindPFlag("minScore", rootCmd.PersistentFlags().Lookup("min-score"))
}

func initConfig() {
	configPaths := []string{".listinglintrc.json", ".listinglintrc.yaml", ".listinglintrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				exitFunc(1)
			}
			break
		}
	}
}

func runLint() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	summary, err := cli.LintListings(cfg.Root, cfg.Exclude, cfg.MinScore)
	if err != nil {
		return fmt.Errorf("error linting listings: %w", err)
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(summary, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if shouldFail(summary, cfg) {
		exitFunc(1)
	}
	return nil
}

// shouldFail applies the fail-on severity gate and the min-score gate.
func shouldFail(summary *cli.LintSummary, cfg *config.Config) bool {
	if summary.FailedFiles > 0 {
		return true
	}
	switch cfg.FailOn {
	case types.SeverityWarning:
		return summary.TotalErrors > 0 || summary.TotalWarnings > 0
	default:
		return summary.TotalErrors > 0
	}
}
