package tokenize

import (
	"reflect"
	"testing"
)

func TestWordsTokenize(t *testing.T) {
	tok, err := NewWords()
	if err != nil {
		t.Fatalf("NewWords() error: %v", err)
	}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentence",
			text: "The system shall respond in under 2 seconds.",
			want: []string{"the", "system", "shall", "respond", "in", "under", "2", "seconds"},
		},
		{
			name: "hyphenated word splits",
			text: "The UI should be user-friendly.",
			want: []string{"the", "ui", "should", "be", "user", "friendly"},
		},
		{
			name: "unit glued to number",
			text: "store 10GB of logs",
			want: []string{"store", "10gb", "of", "logs"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "punctuation only",
			text: "... !!! ???",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordsDeterministic(t *testing.T) {
	tok, err := NewWords()
	if err != nil {
		t.Fatalf("NewWords() error: %v", err)
	}

	text := "The app must handle 500 users without errors."
	first := tok.Tokenize(text)
	for i := 0; i < 10; i++ {
		if got := tok.Tokenize(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Tokenize run %d = %v, want %v", i, got, first)
		}
	}
}
