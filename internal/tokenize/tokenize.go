package tokenize

import (
	"fmt"
	"regexp"
	"strings"
)

// Tokenizer splits text into word-level tokens. Implementations must be
// deterministic: the same input always yields the same token sequence.
type Tokenizer interface {
	Tokenize(text string) []string
}

const wordPattern = `[\p{L}\p{N}]+`

// Words is the default tokenizer. A token is a maximal run of Unicode
// letters and digits, lowercased; punctuation and whitespace are
// separators, so hyphenated words split into their parts.
type Words struct {
	re *regexp.Regexp
}

// NewWords compiles the word tokenizer. Compilation happens once here
// rather than lazily at call sites so a broken pattern surfaces at
// initialization instead of mid-analysis.
func NewWords() (*Words, error) {
	re, err := regexp.Compile(wordPattern)
	if err != nil {
		return nil, fmt.Errorf("compile token pattern: %w", err)
	}
	return &Words{re: re}, nil
}

// Tokenize returns the lowercased tokens of text, in order.
func (w *Words) Tokenize(text string) []string {
	return w.re.FindAllString(strings.ToLower(text), -1)
}
