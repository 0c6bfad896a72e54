package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reqlint/reqlint/internal/analyzer"
	"github.com/reqlint/reqlint/internal/classifier"
	"github.com/reqlint/reqlint/internal/config"
	"github.com/reqlint/reqlint/internal/lexicon"
	"github.com/reqlint/reqlint/internal/verdict"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	format  string

	// Per-call sensitivity flags, bound into viper
	maxTokens   int
	mlThreshold float64
	topK        int
)

// RootCmd is the base command.
var RootCmd = &cobra.Command{
	Use:   "reqlint",
	Short: "A clarity linter for software requirement statements",
	Long: `reqlint grades natural-language requirement statements as Clear,
Partially Clear, or Unclear, and explains every grade.

It combines deterministic linguistic rules (vague terms, missing
measurable constraints, sentence complexity) with a small bag-of-words
classifier whose word weights make each prediction explainable.`,
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.reqlint/config.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "output format (terminal, json, csv)")

	RootCmd.PersistentFlags().IntVar(&maxTokens, "max-tokens", config.Default().MaxTokens, "tokens before a sentence counts as complex")
	RootCmd.PersistentFlags().Float64Var(&mlThreshold, "ml-threshold", config.Default().MLThreshold, "classifier probability gate for the ambiguity reason")
	RootCmd.PersistentFlags().IntVar(&topK, "top-k", config.Default().TopK, "influential words shown per statement")

	_ = viper.BindPFlag("max_tokens", RootCmd.PersistentFlags().Lookup("max-tokens"))
	_ = viper.BindPFlag("ml_threshold", RootCmd.PersistentFlags().Lookup("ml-threshold"))
	_ = viper.BindPFlag("top_k", RootCmd.PersistentFlags().Lookup("top-k"))
}

// initConfig reads the config file and REQLINT_* environment variables.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.reqlint")
			viper.SetConfigType("yaml")
			viper.SetConfigName("config")
		}
	}

	viper.SetEnvPrefix("REQLINT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildAnalyzer resolves the configuration and performs the one-time
// initialization: lexicon compilation and classifier training.
func buildAnalyzer() (*analyzer.Analyzer, config.Config, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, config.Config{}, err
	}

	acfg := analyzer.Config{
		Thresholds: verdict.Thresholds{
			MaxTokens:     cfg.MaxTokens,
			MLProbability: cfg.MLThreshold,
			TopK:          cfg.TopK,
		},
		Workers: cfg.Workers,
	}

	if cfg.LexiconPath != "" {
		lex, err := lexicon.Load(cfg.LexiconPath)
		if err != nil {
			return nil, config.Config{}, err
		}
		acfg.Lexicon = lex
	}

	if cfg.CorpusPath != "" {
		corpus, err := classifier.LoadCorpus(cfg.CorpusPath)
		if err != nil {
			return nil, config.Config{}, err
		}
		acfg.Corpus = corpus
	}

	a, err := analyzer.New(acfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return a, cfg, nil
}
