package contributors

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Classifier patterns for bullet lines, tried in order. The contact pattern
// is anchored to the start of the line; the link pattern may match anywhere
// in the bullet body.
var (
	contactPattern = regexp.MustCompile(`^- \[([^\]]+)]\(mailto:([^)]+)\)(.*)`)
	linkPattern    = regexp.MustCompile(`\[([^\]]+)]\(([^)]+)\)`)
)

// NormalizeEntry converts one bullet line into its normalized string form:
//
//	- [Name](mailto:a@b.c) extra  ->  Name <a@b.c> extra
//	- [Name](https://x.example)   ->  Name https://x.example
//	- Just text                   ->  Just text
//
// The result is NFC-normalized so that change detection stays stable across
// differently composed Unicode sources.
func NormalizeEntry(line string) string {
	if m := contactPattern.FindStringSubmatch(line); m != nil {
		return norm.NFC.String(fmt.Sprintf("%s <%s>%s", m[1], m[2], m[3]))
	}
	if m := linkPattern.FindStringSubmatch(line); m != nil {
		return norm.NFC.String(m[1] + " " + m[2])
	}
	return norm.NFC.String(strings.TrimLeft(line, "- "))
}
