package reporter

import (
	"encoding/json"
	"io"

	"github.com/reqlint/reqlint/internal/analyzer"
	"github.com/reqlint/reqlint/internal/classifier"
	"github.com/reqlint/reqlint/internal/explain"
)

// JSONReporter outputs results as JSON.
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a JSON reporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput is the top-level JSON document.
type JSONOutput struct {
	Results []JSONResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// JSONResult is one analyzed statement in JSON form.
type JSONResult struct {
	Text        string              `json:"text"`
	Status      string              `json:"status"`
	Severity    int                 `json:"severity"`
	Tags        []string            `json:"tags"`
	Reasons     []JSONReason        `json:"reasons"`
	Classifier  classifier.Result   `json:"classifier"`
	Explanation explain.Explanation `json:"explanation"`
	Warnings    []string            `json:"warnings,omitempty"`
}

// JSONReason is one tagged reason in JSON form.
type JSONReason struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Report outputs results as an indented JSON document.
func (r *JSONReporter) Report(results []analyzer.Result) error {
	output := JSONOutput{
		Results: make([]JSONResult, 0, len(results)),
		Summary: ComputeSummary(results),
	}

	for _, res := range results {
		v := res.Verdict
		jr := JSONResult{
			Text:        v.Text,
			Status:      v.Status.String(),
			Severity:    v.Severity,
			Tags:        make([]string, 0, len(v.Reasons)),
			Reasons:     make([]JSONReason, 0, len(v.Reasons)),
			Classifier:  v.Classifier,
			Explanation: res.Explanation,
			Warnings:    v.Warnings,
		}
		for _, reason := range v.Reasons {
			jr.Tags = append(jr.Tags, string(reason.Tag))
			jr.Reasons = append(jr.Reasons, JSONReason{Tag: string(reason.Tag), Message: reason.Message})
		}
		output.Results = append(output.Results, jr)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
