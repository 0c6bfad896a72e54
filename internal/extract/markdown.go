package extract

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown extracts requirement statements from a Markdown
// document: every paragraph and list item becomes one statement.
// Headings and code blocks are skipped.
func FromMarkdown(content []byte) []string {
	md := goldmark.New()
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	var statements []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		// Tight list items hold their text in a TextBlock, loose
		// items and top-level prose in a Paragraph. Emitting both
		// covers plain paragraphs and arbitrarily nested lists.
		switch n.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			if s := blockText(n, content); s != "" {
				statements = append(statements, s)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return statements
}

// blockText joins the source lines covered by a block node with
// single spaces.
func blockText(n ast.Node, source []byte) string {
	var parts []string
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if s := strings.TrimSpace(string(seg.Value(source))); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
