package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reqlint/reqlint/internal/analyzer"
	"github.com/reqlint/reqlint/internal/reporter"
	"github.com/reqlint/reqlint/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [statement]",
	Short: "Grade a single requirement statement",
	Long: `Analyze one requirement statement and explain its clarity grade.

The statement is taken from the argument, or from stdin when no
argument is given.

Examples:
  reqlint check "The system shall respond in under 2 seconds."
  echo "The UI should be user-friendly." | reqlint check
  reqlint check --max-tokens 12 "..."`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	a, _, err := buildAnalyzer()
	if err != nil {
		return fmt.Errorf("initialize analyzer: %w", err)
	}

	result := a.Analyze(text, nil)
	return report([]analyzer.Result{result})
}

// report renders results in the globally selected format.
func report(results []analyzer.Result) error {
	u := ui.New(os.Stdout, os.Stderr, format)

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout)
	case "csv":
		rep = reporter.NewCSVReporter(os.Stdout)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout, u)
	}
	return rep.Report(results)
}
