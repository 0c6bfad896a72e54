// Package classifier implements a bag-of-words logistic regression
// over a small embedded corpus. It predicts the probability that a
// requirement statement is unclear and explains the prediction with
// the signed weights of the statement's own words.
package classifier

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/reqlint/reqlint/internal/tokenize"
)

// Training errors. Both are fatal to initialization: a degenerate
// corpus would silently produce a constant probability.
var (
	ErrEmptyCorpus = errors.New("classifier: training corpus is empty")
	ErrSingleClass = errors.New("classifier: training corpus contains a single class")
)

// Fixed fitting schedule. Training is plain batch gradient descent
// from zero-initialized weights, so it is reproducible run-to-run
// without seeding.
const (
	epochs       = 2000
	learningRate = 0.5
	l2Penalty    = 0.01
)

// DefaultTopK is the number of ranked words returned by Score.
const DefaultTopK = 5

// WordWeight pairs a vocabulary word present in the scored text with
// its trained signed weight. Positive pushes toward unclear, negative
// toward clear.
type WordWeight struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// Result is the outcome of scoring one statement.
type Result struct {
	Probability float64      `json:"probability"`
	TopWords    []WordWeight `json:"top_words,omitempty"`
}

// Model is a trained classifier: a vocabulary, one weight per
// vocabulary term, and a bias. Immutable after Train; safe for
// concurrent scoring.
type Model struct {
	tok     tokenize.Tokenizer
	vocab   map[string]int
	words   []string
	weights []float64
	bias    float64
	topK    int
}

// Train fits a logistic regression on corpus and returns the model.
// Vocabulary indices are assigned in order of first appearance, so
// the trained state is identical for identical corpora.
func Train(corpus []Sample, tok tokenize.Tokenizer, topK int) (*Model, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}
	if tok == nil {
		return nil, errors.New("classifier: nil tokenizer")
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	m := &Model{
		tok:   tok,
		vocab: make(map[string]int),
		topK:  topK,
	}

	unclear := 0
	tokenized := make([][]string, len(corpus))
	for i, sample := range corpus {
		tokens := tok.Tokenize(sample.Text)
		tokenized[i] = tokens
		for _, word := range tokens {
			if _, ok := m.vocab[word]; !ok {
				m.vocab[word] = len(m.words)
				m.words = append(m.words, word)
			}
		}
		if sample.Unclear {
			unclear++
		}
	}
	if unclear == 0 || unclear == len(corpus) {
		return nil, ErrSingleClass
	}
	if len(m.words) == 0 {
		return nil, fmt.Errorf("classifier: corpus yields no tokens")
	}

	// Count vectorization.
	features := make([][]float64, len(corpus))
	labels := make([]float64, len(corpus))
	for i, tokens := range tokenized {
		row := make([]float64, len(m.words))
		for _, word := range tokens {
			row[m.vocab[word]]++
		}
		features[i] = row
		if corpus[i].Unclear {
			labels[i] = 1
		}
	}

	m.weights = make([]float64, len(m.words))
	n := float64(len(corpus))
	grad := make([]float64, len(m.words))
	for epoch := 0; epoch < epochs; epoch++ {
		for j := range grad {
			grad[j] = 0
		}
		gradBias := 0.0
		for i, row := range features {
			err := sigmoid(dot(row, m.weights)+m.bias) - labels[i]
			for j, x := range row {
				if x != 0 {
					grad[j] += err * x
				}
			}
			gradBias += err
		}
		for j := range m.weights {
			m.weights[j] -= learningRate * (grad[j]/n + l2Penalty*m.weights[j])
		}
		m.bias -= learningRate * gradBias / n
	}

	return m, nil
}

// Score computes the unclear probability of text and its top-K ranked
// words, with K fixed at training time.
func (m *Model) Score(text string) Result {
	return m.ScoreTopK(text, m.topK)
}

// ScoreTopK is Score with a per-call word count. Words absent from the
// trained vocabulary contribute nothing; ranked words are always a
// subset of the tokens present in text.
func (m *Model) ScoreTopK(text string, k int) Result {
	if k <= 0 {
		k = m.topK
	}

	z := m.bias
	present := make(map[string]bool)
	for _, word := range m.tok.Tokenize(text) {
		idx, ok := m.vocab[word]
		if !ok {
			continue
		}
		z += m.weights[idx]
		present[word] = true
	}

	var ranked []WordWeight
	for word := range present {
		w := m.weights[m.vocab[word]]
		if w == 0 {
			continue
		}
		ranked = append(ranked, WordWeight{Word: word, Weight: w})
	}
	sort.Slice(ranked, func(i, j int) bool {
		ai, aj := math.Abs(ranked[i].Weight), math.Abs(ranked[j].Weight)
		if ai != aj {
			return ai > aj
		}
		return ranked[i].Word < ranked[j].Word
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	return Result{Probability: sigmoid(z), TopWords: ranked}
}

// VocabularySize returns the number of trained features.
func (m *Model) VocabularySize() int {
	return len(m.words)
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func dot(a, b []float64) float64 {
	var sum float64
	for i, x := range a {
		if x != 0 {
			sum += x * b[i]
		}
	}
	return sum
}
