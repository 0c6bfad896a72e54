// Package reporter renders analysis results for the outside world:
// styled terminal output, JSON, and CSV export.
package reporter

import (
	"github.com/reqlint/reqlint/internal/analyzer"
	"github.com/reqlint/reqlint/internal/verdict"
)

// Reporter outputs a set of analysis results.
type Reporter interface {
	Report(results []analyzer.Result) error
}

// Summary holds per-status counts for a run.
type Summary struct {
	Total          int `json:"total"`
	Clear          int `json:"clear"`
	PartiallyClear int `json:"partially_clear"`
	Unclear        int `json:"unclear"`
}

// ComputeSummary tallies result statuses.
func ComputeSummary(results []analyzer.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Verdict.Status {
		case verdict.Clear:
			s.Clear++
		case verdict.PartiallyClear:
			s.PartiallyClear++
		case verdict.Unclear:
			s.Unclear++
		}
	}
	return s
}
