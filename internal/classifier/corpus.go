package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sample is one labeled training sentence.
type Sample struct {
	Text    string `yaml:"text"`
	Unclear bool   `yaml:"unclear"`
}

// defaultCorpus is the embedded synthetic training set. It is small on
// purpose: the model is an explainable tiebreaker, not a benchmark
// classifier.
var defaultCorpus = []Sample{
	{Text: "The system shall be fast and scalable.", Unclear: true},
	{Text: "The UI should be user-friendly and flexible.", Unclear: true},
	{Text: "The system shall respond in under 2 seconds.", Unclear: false},
	{Text: "The process should handle 1000 records within 5 seconds.", Unclear: false},
	{Text: "The application must be reliable and robust.", Unclear: true},
	{Text: "The system must store 10GB of logs daily.", Unclear: false},
}

// DefaultCorpus returns a copy of the embedded training corpus.
func DefaultCorpus() []Sample {
	out := make([]Sample, len(defaultCorpus))
	copy(out, defaultCorpus)
	return out
}

// LoadCorpus reads a YAML list of samples to train on instead of the
// embedded corpus.
func LoadCorpus(path string) ([]Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: read corpus %s: %w", path, err)
	}
	var samples []Sample
	if err := yaml.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("classifier: parse corpus %s: %w", path, err)
	}
	return samples, nil
}
