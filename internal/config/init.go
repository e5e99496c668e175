package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultTemplate is the commented starter configuration written by `init`.
// It spells out the built-in defaults so editing it is self-explanatory.
const defaultTemplate = `# contribgen configuration
#
# All relative paths are resolved against the base directory (the parent of
# the directory containing the contribgen binary, or --root when given).

# Contributors document to read.
source: CONTRIBUTORS.md

# Generated Go file to write.
target: internal/about/contributors_gen.go

# Package clause of the generated file.
package: about

# Section headings in the source document, in output order, and the
# string-slice variable each one becomes.
lists:
  - section: Contributors
    variable: Authors
  - section: Artwork
    variable: Artists
`

// Init writes the default configuration template to configPath. An existing
// file is only overwritten when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(configPath, []byte(defaultTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
