// Package config resolves the tool's settings from flags, environment
// variables (REQLINT_*), an optional config file and built-in
// defaults, in that order of priority.
package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds every tunable setting of the analyzer and its CLI.
type Config struct {
	// MaxTokens is the complexity threshold: statements with more
	// tokens are flagged as complex.
	MaxTokens int `mapstructure:"max_tokens" yaml:"max_tokens"`
	// MLThreshold is the classifier probability gate for the
	// ambiguity reason.
	MLThreshold float64 `mapstructure:"ml_threshold" yaml:"ml_threshold"`
	// TopK is the number of ranked words shown per statement.
	TopK int `mapstructure:"top_k" yaml:"top_k"`
	// Workers is the batch concurrency.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// LexiconPath optionally replaces the built-in lexicon with a
	// YAML file.
	LexiconPath string `mapstructure:"lexicon" yaml:"lexicon"`
	// CorpusPath optionally replaces the embedded training corpus
	// with a YAML file.
	CorpusPath string `mapstructure:"corpus" yaml:"corpus"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxTokens:   20,
		MLThreshold: 0.6,
		TopK:        5,
		Workers:     runtime.NumCPU(),
	}
}

// SetDefaults registers the built-in settings on v so file and
// environment lookups fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("max_tokens", d.MaxTokens)
	v.SetDefault("ml_threshold", d.MLThreshold)
	v.SetDefault("top_k", d.TopK)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("lexicon", d.LexiconPath)
	v.SetDefault("corpus", d.CorpusPath)
}

// FromViper unmarshals the resolved settings out of v.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
