package lint

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LinksRule validates every markdown link destination in the document.
type LinksRule struct{}

// Name returns the rule identifier.
func (r *LinksRule) Name() string {
	return "link-destinations"
}

// Check parses the document with Goldmark and walks the AST for link-like
// constructs, validating each destination.
func (r *LinksRule) Check(doc *document) []Issue {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(doc.data))

	var issues []Issue
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		var dest string
		switch node := n.(type) {
		case *gmast.Link:
			dest = string(node.Destination)
		case *gmast.AutoLink:
			dest = string(node.URL(doc.data))
		default:
			return gmast.WalkContinue, nil
		}

		if msg := checkDestination(dest); msg != "" {
			issues = append(issues, Issue{
				FilePath: doc.path,
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  msg,
				Line:     doc.lineOf(dest),
			})
		}
		return gmast.WalkContinue, nil
	})

	return issues
}

// lineOf finds the first line containing needle; 0 means file-level.
func (d *document) lineOf(needle string) int {
	if needle == "" {
		return 0
	}
	for i, line := range d.lines {
		if strings.Contains(line, needle) {
			return i + 1
		}
	}
	return 0
}
