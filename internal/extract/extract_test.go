package extract

import (
	"reflect"
	"testing"
)

func TestFromPlain(t *testing.T) {
	content := []byte(`The system shall respond in under 2 seconds.

# screening batch from 2026-08
The UI should be user-friendly.
   The app must handle 500 users without errors.
`)

	want := []string{
		"The system shall respond in under 2 seconds.",
		"The UI should be user-friendly.",
		"The app must handle 500 users without errors.",
	}
	if got := FromPlain(content); !reflect.DeepEqual(got, want) {
		t.Errorf("FromPlain() = %v, want %v", got, want)
	}
}

func TestFromPlainEmpty(t *testing.T) {
	if got := FromPlain([]byte("\n\n# only comments\n")); len(got) != 0 {
		t.Errorf("FromPlain() = %v, want none", got)
	}
}

func TestFromMarkdown(t *testing.T) {
	content := []byte(`# Requirements

Intro paragraph acting as a requirement.

## Performance

- The system shall respond in under 2 seconds.
- The system shall be fast and scalable.

## Usability

1. The UI should be user-friendly.
`)

	want := []string{
		"Intro paragraph acting as a requirement.",
		"The system shall respond in under 2 seconds.",
		"The system shall be fast and scalable.",
		"The UI should be user-friendly.",
	}
	if got := FromMarkdown(content); !reflect.DeepEqual(got, want) {
		t.Errorf("FromMarkdown() = %v, want %v", got, want)
	}
}

func TestFromMarkdownSkipsCodeBlocks(t *testing.T) {
	content := []byte("A real requirement.\n\n```\nnot a requirement\n```\n")

	want := []string{"A real requirement."}
	if got := FromMarkdown(content); !reflect.DeepEqual(got, want) {
		t.Errorf("FromMarkdown() = %v, want %v", got, want)
	}
}

func TestStatementsDispatch(t *testing.T) {
	md := []byte("- item one\n- item two\n")
	if got := Statements("reqs.md", md); len(got) != 2 {
		t.Errorf("Statements(reqs.md) = %v, want 2 items", got)
	}

	plain := []byte("line one\nline two\n")
	if got := Statements("reqs.txt", plain); len(got) != 2 {
		t.Errorf("Statements(reqs.txt) = %v, want 2 lines", got)
	}
}
