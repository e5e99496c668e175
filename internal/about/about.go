// Package about exposes the contributor credits shown in the about dialog.
// The Authors and Artists lists live in contributors_gen.go, regenerated
// from CONTRIBUTORS.md by contribgen.
package about

import "strings"

// Credits renders the contributor credits as display text, one group per
// section with one indented line per person.
func Credits() string {
	var b strings.Builder
	writeGroup(&b, "Contributors", Authors)
	writeGroup(&b, "Artwork", Artists)
	return b.String()
}

func writeGroup(b *strings.Builder, title string, people []string) {
	if len(people) == 0 {
		return
	}
	b.WriteString(title)
	b.WriteString(":\n")
	for _, person := range people {
		b.WriteString("  ")
		b.WriteString(person)
		b.WriteString("\n")
	}
}
