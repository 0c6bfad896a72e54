// Package verdict defines the clarity data model and the aggregation
// step that merges rule findings and the classifier result into a
// single explainable verdict.
package verdict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reqlint/reqlint/internal/classifier"
	"github.com/reqlint/reqlint/internal/lexicon"
	"github.com/reqlint/reqlint/internal/rules"
)

// Status is the three-valued clarity grade of a statement.
type Status int

const (
	Clear Status = iota
	PartiallyClear
	Unclear
)

func (s Status) String() string {
	switch s {
	case Clear:
		return "Clear"
	case PartiallyClear:
		return "Partially Clear"
	case Unclear:
		return "Unclear"
	default:
		return "unknown"
	}
}

// Tag is an issue category. Each category contributes at most one
// reason to a verdict.
type Tag string

const (
	TagVagueTerms      Tag = "VAGUE_TERMS"
	TagNoConstraints   Tag = "NO_CONSTRAINTS"
	TagComplexSentence Tag = "COMPLEX_SENTENCE"
	TagMLAmbiguity     Tag = "ML_AMBIGUITY"
	TagEmptyInput      Tag = "EMPTY_INPUT"
)

// Reason is one tagged, human-readable explanation for a verdict.
type Reason struct {
	Tag     Tag    `json:"tag"`
	Message string `json:"message"`
}

// Thresholds are the tunable sensitivity settings. Zero values select
// the package defaults at the point of use.
type Thresholds struct {
	MaxTokens     int
	MLProbability float64
	TopK          int
}

// DefaultMLProbability is the classifier gate: below or at this
// probability the classifier contributes no reason.
const DefaultMLProbability = 0.6

// Verdict is the terminal artifact of one analysis. It is created
// once and never mutated afterwards.
type Verdict struct {
	Text       string            `json:"text"`
	Status     Status            `json:"status"`
	Severity   int               `json:"severity"`
	Reasons    []Reason          `json:"reasons"`
	VagueTerms []lexicon.Match   `json:"vague_terms,omitempty"`
	Classifier classifier.Result `json:"classifier"`
	Warnings   []string          `json:"warnings,omitempty"`
}

// Tags returns the reason tags in order.
func (v Verdict) Tags() []Tag {
	tags := make([]Tag, len(v.Reasons))
	for i, r := range v.Reasons {
		tags[i] = r.Tag
	}
	return tags
}

// HasTag reports whether a reason with the given tag is present.
func (v Verdict) HasTag(tag Tag) bool {
	for _, r := range v.Reasons {
		if r.Tag == tag {
			return true
		}
	}
	return false
}

// StatusFor maps a reason count to a status. Nothing else may
// influence the grade.
func StatusFor(reasonCount int) Status {
	switch {
	case reasonCount == 0:
		return Clear
	case reasonCount == 1:
		return PartiallyClear
	default:
		return Unclear
	}
}

// SeverityFor maps a reason count to a 1-3 severity rating.
func SeverityFor(reasonCount int) int {
	switch {
	case reasonCount == 0:
		return 1
	case reasonCount == 1:
		return 2
	default:
		return 3
	}
}

// Aggregate merges rule findings and the classifier result into a
// verdict. Categories are evaluated in a fixed order and each emits at
// most one reason; status and severity derive purely from the reason
// count.
func Aggregate(text string, f rules.Findings, c classifier.Result, th Thresholds) Verdict {
	if th.MaxTokens <= 0 {
		th.MaxTokens = rules.DefaultMaxTokens
	}
	if th.MLProbability <= 0 {
		th.MLProbability = DefaultMLProbability
	}

	var reasons []Reason

	if len(f.VagueMatches) > 0 {
		terms := make([]string, len(f.VagueMatches))
		for i, m := range f.VagueMatches {
			terms[i] = m.Term
		}
		reasons = append(reasons, Reason{
			Tag:     TagVagueTerms,
			Message: "Vague terms detected: " + strings.Join(terms, ", "),
		})
	}

	if !f.HasConstraint {
		reasons = append(reasons, Reason{
			Tag:     TagNoConstraints,
			Message: "No measurable constraints provided.",
		})
	}

	if f.IsComplex {
		reasons = append(reasons, Reason{
			Tag:     TagComplexSentence,
			Message: fmt.Sprintf("Sentence has %d tokens, exceeds the limit of %d.", f.TokenCount, th.MaxTokens),
		})
	}

	if c.Probability > th.MLProbability {
		reasons = append(reasons, Reason{
			Tag:     TagMLAmbiguity,
			Message: fmt.Sprintf("Statistical model suggests possible ambiguity (p=%.2f).", c.Probability),
		})
	}

	return Verdict{
		Text:       text,
		Status:     StatusFor(len(reasons)),
		Severity:   SeverityFor(len(reasons)),
		Reasons:    reasons,
		VagueTerms: f.VagueMatches,
		Classifier: c,
	}
}

// EmptyInput builds the verdict for blank input. Batch mode must
// tolerate blank lines, so this is a regular verdict rather than an
// error.
func EmptyInput(text string) Verdict {
	reasons := []Reason{{
		Tag:     TagEmptyInput,
		Message: "Empty statement: nothing to analyze.",
	}}
	return Verdict{
		Text:     text,
		Status:   StatusFor(len(reasons)),
		Severity: SeverityFor(len(reasons)),
		Reasons:  reasons,
	}
}

// RecordHeader names the columns of the tabular projection.
func RecordHeader() []string {
	return []string{"text", "status", "severity", "tags", "reasons"}
}

// Record flattens the verdict into one row of scalar fields for
// delimited export. List fields are joined with "; ".
func (v Verdict) Record() []string {
	tags := make([]string, len(v.Reasons))
	msgs := make([]string, len(v.Reasons))
	for i, r := range v.Reasons {
		tags[i] = string(r.Tag)
		msgs[i] = r.Message
	}
	return []string{
		v.Text,
		v.Status.String(),
		strconv.Itoa(v.Severity),
		strings.Join(tags, "; "),
		strings.Join(msgs, "; "),
	}
}
