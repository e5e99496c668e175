package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/contribgen/internal/generate"
)

// GenerateCmd implements the default 'generate' command. The --check and
// --diff flags mimic the behaviour of the `black` source code formatter:
// neither writes the target, and both exit non-zero when it would change.
type GenerateCmd struct {
	Check bool `help:"Only check whether the target would change; never actually change it"`
	Diff  bool `help:"Show the pending change as a unified diff; never actually change it"`
}

// Mode maps the flags onto a run mode. Diff takes precedence over check;
// apply is the fallback when neither flag is set.
func (g *GenerateCmd) Mode() generate.Mode {
	switch {
	case g.Diff:
		return generate.ModeDiff
	case g.Check:
		return generate.ModeCheck
	default:
		return generate.ModeApply
	}
}

// Run executes the generate command.
func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, base, err := root.LoadConfig()
	if err != nil {
		return err
	}

	result, err := generate.New(cfg, base).Run(g.Mode())
	if err != nil {
		return err
	}

	switch result.Outcome {
	case generate.OutcomeUnchanged:
		fmt.Printf("Not updating %s (no changes)\n", result.Target)
	case generate.OutcomeApplied:
		fmt.Printf("Update %s from %s (changes detected)\n", result.Target, result.Staging)
	case generate.OutcomeWouldChange:
		if g.Mode() == generate.ModeDiff {
			fmt.Print(result.Diff)
		} else {
			fmt.Printf("File %s would be updated from %s.\n", result.Target, result.Staging)
		}
		os.Exit(1)
	}

	return nil
}
