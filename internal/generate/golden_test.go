package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/contribgen/internal/config"
	"git.home.luguber.info/inful/contribgen/internal/contributors"
	"git.home.luguber.info/inful/contribgen/internal/render"
)

// TestCheckedInModule_MatchesRenderedOutput guards against drift between the
// repository's CONTRIBUTORS.md and the checked-in generated module: a run of
// the tool against this repo must report no changes.
func TestCheckedInModule_MatchesRenderedOutput(t *testing.T) {
	repoRoot := filepath.Join("..", "..")
	cfg := config.Default()

	doc, err := contributors.ParseFile(cfg.SourcePath(repoRoot))
	require.NoError(t, err)

	module, err := render.FromDocument(doc, cfg)
	require.NoError(t, err)

	checkedIn, err := os.ReadFile(cfg.TargetPath(repoRoot))
	require.NoError(t, err)
	require.Equal(t, string(checkedIn), module.Render(),
		"regenerate with contribgen: internal/about/contributors_gen.go is stale")
}

// TestCheckedInModule_RunReportsUnchanged exercises the full driver against
// the repository itself in check mode, which must not touch anything.
func TestCheckedInModule_RunReportsUnchanged(t *testing.T) {
	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	result, err := New(config.Default(), repoRoot).Run(ModeCheck)
	require.NoError(t, err)
	require.Equal(t, OutcomeUnchanged, result.Outcome)
}
