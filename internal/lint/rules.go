package lint

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/contribgen/internal/contributors"
)

// StructureRule validates the section/entry shape of the document using the
// same line grammar the parser applies.
type StructureRule struct{}

// Name returns the rule identifier.
func (r *StructureRule) Name() string {
	return "document-structure"
}

// Check walks the document lines, flagging entries before any heading,
// duplicate headings, duplicate entries within a section, and sections left
// without entries.
func (r *StructureRule) Check(doc *document) []Issue {
	var issues []Issue

	var current string
	var sectionOrder []string
	opened := false
	headingLine := make(map[string]int)
	entries := make(map[string]map[string]struct{})
	entryCount := make(map[string]int)

	for i, line := range doc.lines {
		lineNo := i + 1
		switch {
		case strings.HasPrefix(line, "- "):
			if !opened {
				issues = append(issues, Issue{
					FilePath: doc.path,
					Severity: SeverityError,
					Rule:     r.Name(),
					Message:  "entry appears before any section heading",
					Line:     lineNo,
				})
				continue
			}
			normalized := contributors.NormalizeEntry(line)
			if _, dup := entries[current][normalized]; dup {
				issues = append(issues, Issue{
					FilePath: doc.path,
					Severity: SeverityWarning,
					Rule:     r.Name(),
					Message:  fmt.Sprintf("duplicate entry %q in section %q", normalized, current),
					Line:     lineNo,
				})
			}
			entries[current][normalized] = struct{}{}
			entryCount[current]++
		case line == "" || strings.HasPrefix(line, "--"):
			// skipped by the parser as well
		default:
			if prev, dup := headingLine[line]; dup {
				issues = append(issues, Issue{
					FilePath: doc.path,
					Severity: SeverityWarning,
					Rule:     r.Name(),
					Message:  fmt.Sprintf("section %q repeats an earlier heading (line %d); entries restart empty", line, prev),
					Line:     lineNo,
				})
			} else {
				sectionOrder = append(sectionOrder, line)
			}
			current = line
			opened = true
			headingLine[line] = lineNo
			entries[current] = make(map[string]struct{})
			entryCount[current] = 0
		}
	}

	// Sweep in first-seen order so repeated lint runs report identically.
	for _, section := range sectionOrder {
		if entryCount[section] == 0 {
			issues = append(issues, Issue{
				FilePath: doc.path,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("section %q has no entries", section),
				Line:     headingLine[section],
			})
		}
	}

	return issues
}

// checkDestination validates one link destination and returns an issue
// message, or "" when the destination is fine.
func checkDestination(dest string) string {
	if dest == "" {
		return "link has an empty destination"
	}
	if addr, ok := strings.CutPrefix(dest, "mailto:"); ok {
		if _, err := mail.ParseAddress(addr); err != nil {
			return fmt.Sprintf("invalid mailto address %q", addr)
		}
		return ""
	}
	if _, err := url.Parse(dest); err != nil {
		return fmt.Sprintf("unparseable link destination %q", dest)
	}
	return ""
}
