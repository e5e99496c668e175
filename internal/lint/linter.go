// Package lint validates a contributors document before conversion: section
// structure and link destinations, reported as severity-classified issues.
package lint

import (
	"os"
	"path/filepath"
	"strings"
)

// Linter performs linting operations on a contributors document.
type Linter struct {
	rules []Rule
}

// NewLinter creates a linter with the standard rule set.
func NewLinter() *Linter {
	return &Linter{
		rules: []Rule{
			&StructureRule{},
			&LinksRule{},
		},
	}
}

// LintFile lints the contributors document at path.
func (l *Linter) LintFile(path string) (*Result, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	doc := &document{
		path:  path,
		data:  data,
		lines: splitLines(data),
	}

	result := &Result{Issues: []Issue{}, FilesTotal: 1}
	for _, rule := range l.rules {
		result.Issues = append(result.Issues, rule.Check(doc)...)
	}
	return result, nil
}

// splitLines splits file data into lines without trailing newlines, matching
// what the parser's scanner sees.
func splitLines(data []byte) []string {
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
