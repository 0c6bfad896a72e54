// Package explain turns a verdict's raw detail into presentation
// agnostic structures: chart rows for word weights and highlight spans
// for vague terms. It performs no analysis of its own.
package explain

import (
	"sort"

	"github.com/reqlint/reqlint/internal/classifier"
	"github.com/reqlint/reqlint/internal/lexicon"
)

// Explanation is everything a consumer needs to chart word influence
// and highlight vague terms without re-running detection.
type Explanation struct {
	// Words are the ranked (word, signed weight) pairs, strongest
	// influence first.
	Words []classifier.WordWeight `json:"words,omitempty"`
	// Terms are the matched vague terms in detection order.
	Terms []string `json:"terms,omitempty"`
	// Highlights are non-overlapping byte spans into the original
	// text, sorted by start offset.
	Highlights []lexicon.Span `json:"highlights,omitempty"`
}

// Build assembles an explanation from the classifier result and the
// vague-term matches of one statement.
func Build(c classifier.Result, matches []lexicon.Match) Explanation {
	var ex Explanation
	ex.Words = c.TopWords

	var spans []lexicon.Span
	for _, m := range matches {
		ex.Terms = append(ex.Terms, m.Term)
		spans = append(spans, m.Spans...)
	}
	ex.Highlights = mergeSpans(spans)
	return ex
}

// mergeSpans sorts spans by start offset and merges overlaps, so a
// renderer can walk them left to right.
func mergeSpans(spans []lexicon.Span) []lexicon.Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := make([]lexicon.Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := sorted[:1]
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
