package lexicon

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a lexicon loaded from YAML. Both lists fall back to
// the built-in defaults when empty.
type Config struct {
	VagueTerms      []string `yaml:"vague_terms"`
	ConstraintUnits []string `yaml:"constraint_units"`
}

// Span is a half-open byte range [Start, End) into the original text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Match is one vague term found in a statement. Duplicate occurrences
// of the same term collapse into a single Match carrying every span.
type Match struct {
	Term  string `json:"term"`
	Spans []Span `json:"spans,omitempty"`
}

// defaultVagueTerms are subjective or unmeasurable words that weaken a
// requirement statement.
var defaultVagueTerms = []string{
	"fast", "quick", "efficient", "user-friendly", "secure", "many",
	"large", "simple", "easy", "robust", "scalable", "flexible",
	"reliable",
}

// defaultConstraintUnits are the magnitude/rate/time/quantity units
// that, bound to a number, make a requirement measurable. A bare
// percent sign is always recognized in addition to this list.
var defaultConstraintUnits = []string{
	"second", "seconds", "minute", "minutes", "hour", "hours",
	"day", "days", "ms",
	"user", "users", "request", "requests", "record", "records",
	"transaction", "transactions",
	"kb", "mb", "gb", "tb",
}

// Lexicon is an immutable lookup service: a set of vague terms and a
// measurable-constraint recognizer. Safe for concurrent use.
type Lexicon struct {
	terms        []string
	termPatterns []*regexp.Regexp
	constraint   *regexp.Regexp
}

// Default returns a lexicon built from the embedded term and unit sets.
func Default() *Lexicon {
	lex, err := New(Config{})
	if err != nil {
		// The embedded defaults are static and compile-checked by tests.
		panic(fmt.Sprintf("lexicon: default config invalid: %v", err))
	}
	return lex
}

// New compiles a lexicon from cfg. Terms match whole words,
// case-insensitively; multi-word and hyphenated phrases match as
// literal sequences.
func New(cfg Config) (*Lexicon, error) {
	terms := cfg.VagueTerms
	if len(terms) == 0 {
		terms = defaultVagueTerms
	}
	units := cfg.ConstraintUnits
	if len(units) == 0 {
		units = defaultConstraintUnits
	}

	lex := &Lexicon{}
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			return nil, fmt.Errorf("lexicon: empty vague term")
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("lexicon: compile term %q: %w", term, err)
		}
		lex.terms = append(lex.terms, term)
		lex.termPatterns = append(lex.termPatterns, re)
	}

	escaped := make([]string, 0, len(units))
	for _, unit := range units {
		unit = strings.TrimSpace(unit)
		if unit == "" {
			return nil, fmt.Errorf("lexicon: empty constraint unit")
		}
		escaped = append(escaped, regexp.QuoteMeta(unit))
	}
	// A number followed by a unit (whitespace optional) or a percent
	// sign. The percent alternative is separate because \b does not
	// apply after a non-word character.
	pattern := `(?i)\b\d+(?:\.\d+)?(?:\s*(?:` + strings.Join(escaped, "|") + `)\b|\s*%)`
	constraint, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("lexicon: compile constraint pattern: %w", err)
	}
	lex.constraint = constraint

	return lex, nil
}

// Load reads a YAML lexicon file and compiles it.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("lexicon: parse %s: %w", path, err)
	}
	return New(cfg)
}

// VagueTerms returns the compiled term list in declaration order.
func (l *Lexicon) VagueTerms() []string {
	out := make([]string, len(l.terms))
	copy(out, l.terms)
	return out
}

// FindVagueTerms scans text for every lexicon term and returns the
// matches in term declaration order, one Match per distinct term.
func (l *Lexicon) FindVagueTerms(text string) []Match {
	var matches []Match
	for i, re := range l.termPatterns {
		locs := re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		m := Match{Term: l.terms[i]}
		for _, loc := range locs {
			m.Spans = append(m.Spans, Span{Start: loc[0], End: loc[1]})
		}
		matches = append(matches, m)
	}
	return matches
}

// HasConstraint reports whether at least one measurable constraint
// (number bound to a unit, or a percentage) occurs in text.
func (l *Lexicon) HasConstraint(text string) bool {
	return l.constraint.MatchString(text)
}
