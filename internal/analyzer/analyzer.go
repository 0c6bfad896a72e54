// Package analyzer wires the rule engine, the statistical classifier
// and the verdict aggregation into a single handle. A handle is built
// once, holds only read-only state afterwards, and is safe for
// concurrent use across statements.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/reqlint/reqlint/internal/classifier"
	"github.com/reqlint/reqlint/internal/explain"
	"github.com/reqlint/reqlint/internal/lexicon"
	"github.com/reqlint/reqlint/internal/rules"
	"github.com/reqlint/reqlint/internal/tokenize"
	"github.com/reqlint/reqlint/internal/verdict"
	"github.com/reqlint/reqlint/internal/worker"
)

// DefaultWorkers is the batch concurrency when none is configured.
const DefaultWorkers = 4

// Config controls construction of an Analyzer. Zero-value fields
// select the built-in defaults.
type Config struct {
	// Lexicon overrides the built-in vague-term and unit sets.
	Lexicon *lexicon.Lexicon
	// Tokenizer overrides the default word tokenizer. It must be
	// deterministic; the same instance feeds the complexity check and
	// the classifier vocabulary.
	Tokenizer tokenize.Tokenizer
	// Corpus overrides the embedded training corpus.
	Corpus []classifier.Sample
	// Thresholds are the default sensitivity settings, overridable
	// per call.
	Thresholds verdict.Thresholds
	// Workers is the batch concurrency.
	Workers int
}

// Overrides adjusts thresholds for a single call without touching the
// handle's configuration. Zero fields keep the configured defaults.
type Overrides = verdict.Thresholds

// Analyzer is the initialized pipeline handle.
type Analyzer struct {
	lex      *lexicon.Lexicon
	engine   *rules.Engine
	model    *classifier.Model
	defaults verdict.Thresholds
	workers  int
}

// Result pairs a verdict with its formatted explanation.
type Result struct {
	Verdict     verdict.Verdict
	Explanation explain.Explanation
}

// New performs the one-time setup: tokenizer validation, lexicon
// compilation and classifier training. A failure here is fatal to the
// handle; no analysis may run without a successful New.
func New(cfg Config) (*Analyzer, error) {
	lex := cfg.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}

	tok := cfg.Tokenizer
	if tok == nil {
		words, err := tokenize.NewWords()
		if err != nil {
			return nil, fmt.Errorf("analyzer: tokenizer setup: %w", err)
		}
		tok = words
	}

	corpus := cfg.Corpus
	if corpus == nil {
		corpus = classifier.DefaultCorpus()
	}

	th := cfg.Thresholds
	if th.MaxTokens <= 0 {
		th.MaxTokens = rules.DefaultMaxTokens
	}
	if th.MLProbability <= 0 {
		th.MLProbability = verdict.DefaultMLProbability
	}
	if th.TopK <= 0 {
		th.TopK = classifier.DefaultTopK
	}

	model, err := classifier.Train(corpus, tok, th.TopK)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	return &Analyzer{
		lex:      lex,
		engine:   rules.NewEngine(lex, tok, th.MaxTokens),
		model:    model,
		defaults: th,
		workers:  workers,
	}, nil
}

// Thresholds returns the handle's default sensitivity settings.
func (a *Analyzer) Thresholds() verdict.Thresholds {
	return a.defaults
}

// Lexicon returns the compiled lexicon behind the handle.
func (a *Analyzer) Lexicon() *lexicon.Lexicon {
	return a.lex
}

// Analyze grades a single statement. Blank input yields a well-formed
// verdict with an explicit empty-input reason rather than an error, so
// batch callers can feed raw lines straight through.
func (a *Analyzer) Analyze(text string, ov *Overrides) Result {
	th := a.resolve(ov)

	if strings.TrimSpace(text) == "" {
		v := verdict.EmptyInput(text)
		return Result{Verdict: v, Explanation: explain.Build(v.Classifier, nil)}
	}

	findings := a.engine.AnalyzeWithLimit(text, th.MaxTokens)
	score := a.model.ScoreTopK(text, th.TopK)
	v := verdict.Aggregate(text, findings, score, th)

	return Result{
		Verdict:     v,
		Explanation: explain.Build(score, findings.VagueMatches),
	}
}

// AnalyzeBatch grades each statement independently. The output is
// order-preserving and element-wise identical to calling Analyze on
// each statement; one bad line never aborts the rest.
func (a *Analyzer) AnalyzeBatch(texts []string, ov *Overrides) []Result {
	if len(texts) == 0 {
		return []Result{}
	}

	pool := worker.NewPool(a.workers)
	pool.Start()
	for i, text := range texts {
		pool.Submit(&statementJob{analyzer: a, index: i, text: text, overrides: ov})
	}

	out := make([]Result, len(texts))
	for _, r := range pool.Wait() {
		sr := r.(*statementResult)
		out[sr.index] = sr.result
	}
	return out
}

func (a *Analyzer) resolve(ov *Overrides) verdict.Thresholds {
	th := a.defaults
	if ov == nil {
		return th
	}
	if ov.MaxTokens > 0 {
		th.MaxTokens = ov.MaxTokens
	}
	if ov.MLProbability > 0 {
		th.MLProbability = ov.MLProbability
	}
	if ov.TopK > 0 {
		th.TopK = ov.TopK
	}
	return th
}

type statementJob struct {
	analyzer  *Analyzer
	index     int
	text      string
	overrides *Overrides
}

type statementResult struct {
	index  int
	result Result
}

func (r *statementResult) GetError() error { return nil }

func (j *statementJob) Execute() worker.Result {
	return &statementResult{
		index:  j.index,
		result: j.analyzer.Analyze(j.text, j.overrides),
	}
}
