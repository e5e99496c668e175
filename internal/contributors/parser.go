// Package contributors parses the CONTRIBUTORS.md document: plain lines open
// sections, `- ` bullets are entries of the current section, blank lines and
// `--` setext dividers are skipped.
package contributors

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrEntryBeforeSection is returned when a bullet line appears before any
// section heading, leaving the target section undefined.
var ErrEntryBeforeSection = errors.New("entry before any section heading")

// Document is the parsed section -> entries mapping, preserving the order in
// which sections first appeared.
type Document struct {
	order    []string
	sections map[string][]string
}

// Section returns the normalized entries of the named section.
func (d *Document) Section(name string) ([]string, bool) {
	entries, ok := d.sections[name]
	return entries, ok
}

// Sections returns the section names in first-seen order.
func (d *Document) Sections() []string {
	return d.order
}

// Parse reads a contributors document line by line.
//
// A repeated heading replaces the earlier section's entries but keeps its
// original position in the section order.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{sections: make(map[string][]string)}

	var current string
	opened := false
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "- "):
			if !opened {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrEntryBeforeSection)
			}
			doc.sections[current] = append(doc.sections[current], NormalizeEntry(line))
		case line == "" || strings.HasPrefix(line, "--"):
			// blank line or setext divider under a heading
		default:
			current = line
			opened = true
			if _, seen := doc.sections[current]; !seen {
				doc.order = append(doc.order, current)
			}
			doc.sections[current] = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contributors document: %w", err)
	}

	return doc, nil
}

// ParseFile parses the contributors document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
