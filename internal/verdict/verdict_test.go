package verdict

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reqlint/reqlint/internal/classifier"
	"github.com/reqlint/reqlint/internal/lexicon"
	"github.com/reqlint/reqlint/internal/rules"
)

func TestStatusAndSeverityForReasonCount(t *testing.T) {
	tests := []struct {
		count    int
		status   Status
		severity int
	}{
		{0, Clear, 1},
		{1, PartiallyClear, 2},
		{2, Unclear, 3},
		{3, Unclear, 3},
		{4, Unclear, 3},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.count); got != tt.status {
			t.Errorf("StatusFor(%d) = %v, want %v", tt.count, got, tt.status)
		}
		if got := SeverityFor(tt.count); got != tt.severity {
			t.Errorf("SeverityFor(%d) = %d, want %d", tt.count, got, tt.severity)
		}
	}
}

func TestAggregateCategoryOrder(t *testing.T) {
	f := rules.Findings{
		VagueMatches:  []lexicon.Match{{Term: "fast"}},
		HasConstraint: false,
		IsComplex:     true,
		TokenCount:    25,
	}
	c := classifier.Result{Probability: 0.9}

	v := Aggregate("x", f, c, Thresholds{})

	want := []Tag{TagVagueTerms, TagNoConstraints, TagComplexSentence, TagMLAmbiguity}
	if got := v.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
	if v.Status != Unclear || v.Severity != 3 {
		t.Errorf("Status/Severity = %v/%d, want Unclear/3", v.Status, v.Severity)
	}
}

func TestAggregateNoFindings(t *testing.T) {
	f := rules.Findings{HasConstraint: true, TokenCount: 8}
	c := classifier.Result{Probability: 0.2}

	v := Aggregate("clear statement", f, c, Thresholds{})

	if len(v.Reasons) != 0 {
		t.Errorf("Reasons = %v, want none", v.Reasons)
	}
	if v.Status != Clear {
		t.Errorf("Status = %v, want Clear", v.Status)
	}
	if v.Severity != 1 {
		t.Errorf("Severity = %d, want 1", v.Severity)
	}
}

func TestAggregateMLGate(t *testing.T) {
	f := rules.Findings{HasConstraint: true}

	// At the threshold: no reason. The gate is strictly greater-than.
	v := Aggregate("x", f, classifier.Result{Probability: 0.6}, Thresholds{})
	if v.HasTag(TagMLAmbiguity) {
		t.Error("ML reason emitted at exactly the threshold")
	}

	// Just above: one reason.
	v = Aggregate("x", f, classifier.Result{Probability: 0.61}, Thresholds{})
	if !v.HasTag(TagMLAmbiguity) {
		t.Error("ML reason missing above the threshold")
	}

	// Raised per-call threshold suppresses it again.
	v = Aggregate("x", f, classifier.Result{Probability: 0.61}, Thresholds{MLProbability: 0.8})
	if v.HasTag(TagMLAmbiguity) {
		t.Error("ML reason emitted above a raised threshold")
	}
}

func TestAggregateMessages(t *testing.T) {
	f := rules.Findings{
		VagueMatches: []lexicon.Match{{Term: "fast"}, {Term: "scalable"}},
		IsComplex:    true,
		TokenCount:   30,
	}
	v := Aggregate("x", f, classifier.Result{}, Thresholds{MaxTokens: 20})

	if got := v.Reasons[0].Message; !strings.Contains(got, "fast, scalable") {
		t.Errorf("vague message = %q, want matched terms listed", got)
	}
	var complexMsg string
	for _, r := range v.Reasons {
		if r.Tag == TagComplexSentence {
			complexMsg = r.Message
		}
	}
	if !strings.Contains(complexMsg, "30") || !strings.Contains(complexMsg, "20") {
		t.Errorf("complex message = %q, want token count and limit cited", complexMsg)
	}
}

func TestEmptyInput(t *testing.T) {
	v := EmptyInput("")

	if len(v.Reasons) != 1 || v.Reasons[0].Tag != TagEmptyInput {
		t.Fatalf("Reasons = %v, want single EMPTY_INPUT", v.Reasons)
	}
	if v.Status != PartiallyClear || v.Severity != 2 {
		t.Errorf("Status/Severity = %v/%d, want Partially Clear/2", v.Status, v.Severity)
	}
}

func TestRecord(t *testing.T) {
	f := rules.Findings{
		VagueMatches: []lexicon.Match{{Term: "fast"}},
	}
	v := Aggregate("The system shall be fast.", f, classifier.Result{}, Thresholds{})

	rec := v.Record()
	if len(rec) != len(RecordHeader()) {
		t.Fatalf("Record() has %d fields, header has %d", len(rec), len(RecordHeader()))
	}
	if rec[0] != "The system shall be fast." {
		t.Errorf("text field = %q", rec[0])
	}
	if rec[1] != "Unclear" {
		t.Errorf("status field = %q, want Unclear", rec[1])
	}
	if rec[2] != "3" {
		t.Errorf("severity field = %q, want 3", rec[2])
	}
	if rec[3] != "VAGUE_TERMS; NO_CONSTRAINTS" {
		t.Errorf("tags field = %q", rec[3])
	}
}
