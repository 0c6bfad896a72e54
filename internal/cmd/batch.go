package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reqlint/reqlint/internal/analyzer"
	"github.com/reqlint/reqlint/internal/extract"
	"github.com/reqlint/reqlint/internal/ui"
)

var concurrency int

// chunkSize bounds how many statements go through the analyzer per
// progress tick.
const chunkSize = 64

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Grade every requirement statement in a file",
	Long: `Batch analyzes a whole file of requirement statements.

Plain text files are read one statement per line (blank lines and
'#' comments are skipped). Markdown files are parsed structurally:
every list item and paragraph becomes one statement.

Examples:
  reqlint batch requirements.txt
  reqlint batch requirements.md --format csv > report.csv
  reqlint batch requirements.txt --format json --ml-threshold 0.5`,
	Args:         cobra.ExactArgs(1),
	RunE:         runBatch,
	SilenceUsage: true,
}

func init() {
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: number of CPUs)")
	_ = viper.BindPFlag("workers", batchCmd.Flags().Lookup("concurrency"))
	RootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	statements := extract.Statements(path, content)
	if len(statements) == 0 {
		return fmt.Errorf("no statements found in %s", path)
	}

	u := ui.New(os.Stdout, os.Stderr, format)
	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	a, _, err := buildAnalyzer()
	if err != nil {
		return fmt.Errorf("initialize analyzer: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %d statements from %s\n", len(statements), path)
	}

	progress.SetStatementCount(len(statements))
	progress.SetStage(ui.StageAnalyze)

	results := make([]analyzer.Result, 0, len(statements))
	for start := 0; start < len(statements); start += chunkSize {
		end := start + chunkSize
		if end > len(statements) {
			end = len(statements)
		}
		results = append(results, a.AnalyzeBatch(statements[start:end], nil)...)
		for i := start; i < end; i++ {
			progress.StatementDone()
		}
	}

	if progress != nil {
		progress.Done(nil)
		progress = nil
	}

	return report(results)
}
