package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesBuiltInBehavior(t *testing.T) {
	cfg := Default()
	require.Equal(t, "CONTRIBUTORS.md", cfg.Source)
	require.Equal(t, filepath.Join("internal", "about", "contributors_gen.go"), cfg.Target)
	require.Equal(t, "about", cfg.Package)
	require.Equal(t, []List{
		{Section: "Contributors", Variable: "Authors"},
		{Section: "Artwork", Variable: "Artists"},
	}, cfg.Lists)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PartialFile_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contribgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: PEOPLE.md\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "PEOPLE.md", cfg.Source)
	require.Equal(t, "about", cfg.Package)
	require.Len(t, cfg.Lists, 2)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("CONTRIB_SOURCE", "FROM_ENV.md")
	dir := t.TempDir()
	path := filepath.Join(dir, "contribgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: ${CONTRIB_SOURCE}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "FROM_ENV.md", cfg.Source)
}

func TestLoad_EnvFilesResolvedAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("CONTRIBGEN_TEST_SOURCE=FROM_DOTENV.md\n"), 0o644))
	path := filepath.Join(dir, "contribgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: ${CONTRIBGEN_TEST_SOURCE}\n"), 0o644))

	// The .env lookup must not depend on the caller's working directory.
	t.Chdir(t.TempDir())

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "FROM_DOTENV.md", cfg.Source)
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoadOrDefault_MissingFile_FallsBackToDefaults(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_BrokenFile_StillFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contribgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml: ["), 0o644))

	_, err := LoadOrDefault(path)
	require.Error(t, err)
}

func TestSourcePath_RelativeResolvesAgainstBase(t *testing.T) {
	cfg := Default()
	require.Equal(t, filepath.Join("/base", "CONTRIBUTORS.md"), cfg.SourcePath("/base"))
	require.Equal(t, filepath.Join("/base", "internal", "about", "contributors_gen.go"), cfg.TargetPath("/base"))
}

func TestSourcePath_AbsoluteIgnoresBase(t *testing.T) {
	cfg := Default()
	cfg.Source = "/abs/CONTRIBUTORS.md"
	require.Equal(t, "/abs/CONTRIBUTORS.md", cfg.SourcePath("/base"))
}

func TestInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contribgen.yaml")

	require.NoError(t, Init(path, false))
	err := Init(path, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--force")
	require.NoError(t, Init(path, true))
}

func TestInit_TemplateRoundTripsThroughLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contribgen.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
