package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reqlint/reqlint/internal/analyzer"
	"github.com/reqlint/reqlint/internal/ui"
	"github.com/reqlint/reqlint/internal/verdict"
)

// TerminalReporter renders styled, human-readable output with vague
// terms highlighted inside the original statement.
type TerminalReporter struct {
	w io.Writer
	u *ui.UI
}

// NewTerminalReporter creates a terminal reporter writing to w.
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, u: u}
}

// Report outputs each result followed by a run summary.
func (r *TerminalReporter) Report(results []analyzer.Result) error {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		r.printResult(res)
	}
	r.printSummary(results)
	return nil
}

func (r *TerminalReporter) printResult(res analyzer.Result) {
	v := res.Verdict
	s := r.u.Styles

	icon, style := r.statusStyle(v.Status)
	fmt.Fprintf(r.w, "%s %s", style.Render(icon), style.Render(v.Status.String()))
	fmt.Fprintf(r.w, " %s\n", s.Subtle.Render(fmt.Sprintf("(severity %d/3)", v.Severity)))

	fmt.Fprintf(r.w, "  %s\n", r.highlight(v.Text, res))

	for _, reason := range v.Reasons {
		fmt.Fprintf(r.w, "  %s %s\n", s.Subtle.Render("["+string(reason.Tag)+"]"), reason.Message)
	}

	if len(res.Explanation.Words) > 0 {
		fmt.Fprintf(r.w, "  %s\n", s.Subtle.Render("influential words:"))
		for _, ww := range res.Explanation.Words {
			style := s.Positive
			direction := "unclear"
			if ww.Weight < 0 {
				style = s.Negative
				direction = "clear"
			}
			fmt.Fprintf(r.w, "    %s %s\n",
				style.Render(fmt.Sprintf("%-14s %+.2f", ww.Word, ww.Weight)),
				s.Subtle.Render("→ "+direction))
		}
	}

	for _, warning := range v.Warnings {
		fmt.Fprintf(r.w, "  %s %s\n", s.Warning.Render(s.IconWarning), warning)
	}
}

// highlight re-renders the statement with vague-term spans styled.
// Spans are non-overlapping and sorted, so a single left-to-right walk
// suffices.
func (r *TerminalReporter) highlight(text string, res analyzer.Result) string {
	spans := res.Explanation.Highlights
	if len(spans) == 0 || !r.u.Styles.Enabled() {
		return text
	}

	var sb strings.Builder
	prev := 0
	for _, span := range spans {
		if span.Start < prev || span.End > len(text) {
			continue
		}
		sb.WriteString(text[prev:span.Start])
		sb.WriteString(r.u.Styles.Highlight.Render(text[span.Start:span.End]))
		prev = span.End
	}
	sb.WriteString(text[prev:])
	return sb.String()
}

func (r *TerminalReporter) statusStyle(status verdict.Status) (string, lipgloss.Style) {
	s := r.u.Styles
	switch status {
	case verdict.Clear:
		return s.IconClear, s.Clear
	case verdict.PartiallyClear:
		return s.IconPartiallyClear, s.PartiallyClear
	default:
		return s.IconUnclear, s.Unclear
	}
}

func (r *TerminalReporter) printSummary(results []analyzer.Result) {
	if len(results) < 2 {
		return
	}
	s := r.u.Styles
	summary := ComputeSummary(results)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render("─────────────────────────────────────"))
	fmt.Fprintf(r.w, "%d statements: %s, %s, %s\n",
		summary.Total,
		s.Clear.Render(fmt.Sprintf("%d clear", summary.Clear)),
		s.PartiallyClear.Render(fmt.Sprintf("%d partially clear", summary.PartiallyClear)),
		s.Unclear.Render(fmt.Sprintf("%d unclear", summary.Unclear)))
}
