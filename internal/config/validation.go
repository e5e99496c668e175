package config

import (
	"errors"
	"fmt"
	"unicode"
)

// Validate checks the configuration for problems that would produce a broken
// or uncompilable generated file.
func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("source must not be empty")
	}
	if c.Target == "" {
		return errors.New("target must not be empty")
	}
	if !isIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", c.Package)
	}
	if len(c.Lists) == 0 {
		return errors.New("at least one list mapping is required")
	}

	sections := make(map[string]struct{}, len(c.Lists))
	variables := make(map[string]struct{}, len(c.Lists))
	for _, l := range c.Lists {
		if l.Section == "" {
			return errors.New("list section must not be empty")
		}
		if !isIdentifier(l.Variable) {
			return fmt.Errorf("list variable %q is not a valid Go identifier", l.Variable)
		}
		if _, dup := sections[l.Section]; dup {
			return fmt.Errorf("duplicate list section %q", l.Section)
		}
		if _, dup := variables[l.Variable]; dup {
			return fmt.Errorf("duplicate list variable %q", l.Variable)
		}
		sections[l.Section] = struct{}{}
		variables[l.Variable] = struct{}{}
	}

	return nil
}

// isIdentifier reports whether s is a valid Go identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
