package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/contribgen/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Quiet bool `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
}

// Run executes the lint command.
func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg, base, err := root.LoadConfig()
	if err != nil {
		return err
	}

	source := cfg.SourcePath(base)
	if _, err := os.Stat(source); os.IsNotExist(err) {
		return fmt.Errorf("contributors document does not exist: %s", source)
	}

	result, err := lint.NewLinter().LintFile(source)
	if err != nil {
		return fmt.Errorf("linting failed: %w", err)
	}

	formatter := lint.NewFormatter(os.Stdout, l.Quiet)
	if err := formatter.Format(result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Determine exit code based on results
	if result.HasErrors() {
		os.Exit(2) // Errors found (blocks conversion)
	} else if result.HasWarnings() && !l.Quiet {
		os.Exit(1) // Warnings present
	}

	return nil
}
