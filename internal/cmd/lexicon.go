package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Print the active vague-term lexicon",
	Long: `Print the vague terms the analyzer scans for, after applying any
lexicon override from the configuration.`,
	RunE:         runLexicon,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(lexiconCmd)
}

func runLexicon(cmd *cobra.Command, args []string) error {
	a, cfg, err := buildAnalyzer()
	if err != nil {
		return fmt.Errorf("initialize analyzer: %w", err)
	}

	if cfg.LexiconPath != "" {
		fmt.Printf("# loaded from %s\n", cfg.LexiconPath)
	}
	for _, term := range a.Lexicon().VagueTerms() {
		fmt.Println(term)
	}
	return nil
}
