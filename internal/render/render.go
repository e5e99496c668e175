// Package render emits the generated Go module containing the contributor
// lists consumed by the about dialog.
package render

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/contribgen/internal/config"
	"git.home.luguber.info/inful/contribgen/internal/contributors"
)

// Tool is the generator name stamped into the DO-NOT-EDIT header.
const Tool = "contribgen"

// SectionMissingError indicates a configured section heading was absent from
// the parsed document.
type SectionMissingError struct {
	Section string
}

func (e *SectionMissingError) Error() string {
	return fmt.Sprintf("required section %q not found in contributors document", e.Section)
}

// Module is the renderable form of the generated file.
type Module struct {
	Package string
	Source  string // source document name for the header
	Lists   []List
}

// List is one generated string-slice variable.
type List struct {
	Name    string
	Entries []string
}

// FromDocument builds a Module from a parsed document using the configured
// section -> variable mapping. Lookup of a missing section is fatal.
func FromDocument(doc *contributors.Document, cfg *config.Config) (*Module, error) {
	m := &Module{
		Package: cfg.Package,
		Source:  filepath.Base(cfg.Source),
	}
	for _, l := range cfg.Lists {
		entries, ok := doc.Section(l.Section)
		if !ok {
			return nil, &SectionMissingError{Section: l.Section}
		}
		m.Lists = append(m.Lists, List{Name: l.Variable, Entries: entries})
	}
	return m, nil
}

// Render produces the full file body: header, package clause, one variable
// per list. LF line endings, trailing newline.
func (m *Module) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by %s from %s. DO NOT EDIT.\n", Tool, m.Source)
	b.WriteString("//\n")
	fmt.Fprintf(&b, "// Edit %s instead and update this file by re-running %s.\n", m.Source, Tool)
	b.WriteString("\n")
	fmt.Fprintf(&b, "package %s\n", m.Package)

	for _, l := range m.Lists {
		b.WriteString("\n")
		writeList(&b, l)
	}

	return b.String()
}

// writeList renders one string-slice variable. Zero and one element stay
// inline; longer lists get one quoted element per line with trailing commas.
func writeList(b *strings.Builder, l List) {
	switch len(l.Entries) {
	case 0:
		fmt.Fprintf(b, "var %s = []string{}\n", l.Name)
	case 1:
		fmt.Fprintf(b, "var %s = []string{%s}\n", l.Name, strconv.Quote(l.Entries[0]))
	default:
		fmt.Fprintf(b, "var %s = []string{\n", l.Name)
		for _, e := range l.Entries {
			fmt.Fprintf(b, "\t%s,\n", strconv.Quote(e))
		}
		b.WriteString("}\n")
	}
}
