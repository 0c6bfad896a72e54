// Package extract pulls individual requirement statements out of
// input documents so batch mode can lint a file directly.
package extract

import (
	"path/filepath"
	"strings"
)

// Statements extracts requirement statements from content, choosing
// the extractor by file extension: Markdown files are parsed
// structurally, everything else is treated as one statement per line.
func Statements(path string, content []byte) []string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FromMarkdown(content)
	default:
		return FromPlain(content)
	}
}

// FromPlain reads one statement per line. Blank lines and lines
// starting with '#' are skipped.
func FromPlain(content []byte) []string {
	var statements []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		statements = append(statements, line)
	}
	return statements
}
