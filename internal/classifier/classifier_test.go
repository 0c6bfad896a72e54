package classifier

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/reqlint/reqlint/internal/tokenize"
)

func newTestTokenizer(t *testing.T) tokenize.Tokenizer {
	t.Helper()
	tok, err := tokenize.NewWords()
	if err != nil {
		t.Fatalf("NewWords() error: %v", err)
	}
	return tok
}

func trainDefault(t *testing.T) *Model {
	t.Helper()
	m, err := Train(DefaultCorpus(), newTestTokenizer(t), DefaultTopK)
	if err != nil {
		t.Fatalf("Train() error: %v", err)
	}
	return m
}

func TestTrainFailsFastOnDegenerateCorpus(t *testing.T) {
	tok := newTestTokenizer(t)

	if _, err := Train(nil, tok, DefaultTopK); err != ErrEmptyCorpus {
		t.Errorf("Train(empty) error = %v, want ErrEmptyCorpus", err)
	}

	oneClass := []Sample{
		{Text: "The system shall be fast.", Unclear: true},
		{Text: "The system shall be easy.", Unclear: true},
	}
	if _, err := Train(oneClass, tok, DefaultTopK); err != ErrSingleClass {
		t.Errorf("Train(single class) error = %v, want ErrSingleClass", err)
	}
}

func TestScoreSeparatesTrainingSentences(t *testing.T) {
	m := trainDefault(t)

	unclear := m.Score("The system shall be fast and scalable.")
	clear := m.Score("The system shall respond in under 2 seconds.")

	if unclear.Probability <= 0.6 {
		t.Errorf("unclear training sentence probability = %.3f, want > 0.6", unclear.Probability)
	}
	if clear.Probability >= 0.5 {
		t.Errorf("clear training sentence probability = %.3f, want < 0.5", clear.Probability)
	}
}

func TestScoreTopWordsAreSubsetOfInput(t *testing.T) {
	m := trainDefault(t)
	tok := newTestTokenizer(t)

	texts := []string{
		"The system shall be fast and scalable.",
		"The app must handle 500 users without errors.",
		"Completely novel wording here.",
	}

	for _, text := range texts {
		inputTokens := make(map[string]bool)
		for _, tk := range tok.Tokenize(text) {
			inputTokens[tk] = true
		}

		result := m.Score(text)
		if len(result.TopWords) > DefaultTopK {
			t.Errorf("Score(%q) returned %d words, want <= %d", text, len(result.TopWords), DefaultTopK)
		}
		for _, ww := range result.TopWords {
			if !inputTokens[ww.Word] {
				t.Errorf("Score(%q) cites %q, not present in input", text, ww.Word)
			}
		}
	}
}

func TestScoreTopWordsOrderedByMagnitude(t *testing.T) {
	m := trainDefault(t)

	result := m.Score("The system shall be fast and scalable.")
	if len(result.TopWords) == 0 {
		t.Fatal("expected ranked words for a training sentence")
	}
	for i := 1; i < len(result.TopWords); i++ {
		prev := math.Abs(result.TopWords[i-1].Weight)
		cur := math.Abs(result.TopWords[i].Weight)
		if cur > prev {
			t.Errorf("ranked words out of order at %d: |%.4f| > |%.4f|", i, cur, prev)
		}
	}
}

func TestScoreVagueWordsWeighPositive(t *testing.T) {
	m := trainDefault(t)

	result := m.Score("fast scalable")
	for _, ww := range result.TopWords {
		if ww.Weight <= 0 {
			t.Errorf("weight for %q = %.4f, want positive (pushes toward unclear)", ww.Word, ww.Weight)
		}
	}
}

func TestTrainDeterministic(t *testing.T) {
	tok := newTestTokenizer(t)

	a, err := Train(DefaultCorpus(), tok, DefaultTopK)
	if err != nil {
		t.Fatalf("Train() error: %v", err)
	}
	b, err := Train(DefaultCorpus(), tok, DefaultTopK)
	if err != nil {
		t.Fatalf("Train() error: %v", err)
	}

	if !reflect.DeepEqual(a.weights, b.weights) {
		t.Error("weights differ between identical training runs")
	}
	if a.bias != b.bias {
		t.Errorf("bias differs: %.6f vs %.6f", a.bias, b.bias)
	}

	text := "The app must handle 500 users without errors."
	if got, want := a.Score(text), b.Score(text); !reflect.DeepEqual(got, want) {
		t.Errorf("Score diverges between identical models: %+v vs %+v", got, want)
	}
}

func TestScoreOutOfVocabularyOnly(t *testing.T) {
	m := trainDefault(t)

	result := m.Score("xylophone quorum zeppelin")
	if len(result.TopWords) != 0 {
		t.Errorf("expected no ranked words for out-of-vocabulary input, got %v", result.TopWords)
	}
	// Only the bias remains; probability must still be a valid value.
	if result.Probability < 0 || result.Probability > 1 {
		t.Errorf("probability %.4f outside [0,1]", result.Probability)
	}
}

func TestScoreTopKOverride(t *testing.T) {
	m := trainDefault(t)

	full := m.ScoreTopK("The system shall be fast and scalable.", 10)
	limited := m.ScoreTopK("The system shall be fast and scalable.", 2)

	if len(limited.TopWords) != 2 {
		t.Fatalf("ScoreTopK(k=2) returned %d words", len(limited.TopWords))
	}
	if limited.Probability != full.Probability {
		t.Error("top-K truncation must not change the probability")
	}
	if !reflect.DeepEqual(limited.TopWords, full.TopWords[:2]) {
		t.Error("ScoreTopK(k=2) is not a prefix of the full ranking")
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	content := `- text: "The report must be generated in 3 seconds."
  unclear: false
- text: "The report should look nice."
  unclear: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	samples, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("LoadCorpus() error: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("LoadCorpus() returned %d samples, want 2", len(samples))
	}
	if samples[0].Unclear || !samples[1].Unclear {
		t.Errorf("labels = %v/%v, want false/true", samples[0].Unclear, samples[1].Unclear)
	}

	if _, err := LoadCorpus(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing corpus file")
	}
}
