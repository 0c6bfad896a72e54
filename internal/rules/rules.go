// Package rules applies the deterministic linguistic checks to a
// requirement statement: vague-term lookup, measurable-constraint
// detection, and sentence complexity.
package rules

import (
	"github.com/reqlint/reqlint/internal/lexicon"
	"github.com/reqlint/reqlint/internal/tokenize"
)

// DefaultMaxTokens is the complexity threshold: statements with more
// tokens than this are flagged as complex.
const DefaultMaxTokens = 20

// Findings holds the raw output of the rule checks for one statement.
// Empty findings are the expected clear-leaning case, not an error.
type Findings struct {
	VagueMatches  []lexicon.Match
	HasConstraint bool
	IsComplex     bool
	TokenCount    int
}

// Engine runs the rule checks. It holds only read-only state and is
// safe for concurrent use.
type Engine struct {
	lex       *lexicon.Lexicon
	tok       tokenize.Tokenizer
	maxTokens int
}

// NewEngine builds an engine over the given lexicon and tokenizer.
// maxTokens <= 0 selects DefaultMaxTokens.
func NewEngine(lex *lexicon.Lexicon, tok tokenize.Tokenizer, maxTokens int) *Engine {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Engine{lex: lex, tok: tok, maxTokens: maxTokens}
}

// MaxTokens returns the configured complexity threshold.
func (e *Engine) MaxTokens() int {
	return e.maxTokens
}

// Analyze runs all checks against text using the configured threshold.
func (e *Engine) Analyze(text string) Findings {
	return e.AnalyzeWithLimit(text, e.maxTokens)
}

// AnalyzeWithLimit runs all checks with a per-call complexity
// threshold, leaving the engine's configuration untouched.
func (e *Engine) AnalyzeWithLimit(text string, maxTokens int) Findings {
	if maxTokens <= 0 {
		maxTokens = e.maxTokens
	}

	tokens := e.tok.Tokenize(text)
	return Findings{
		VagueMatches:  e.lex.FindVagueTerms(text),
		HasConstraint: e.lex.HasConstraint(text),
		IsComplex:     len(tokens) > maxTokens,
		TokenCount:    len(tokens),
	}
}
