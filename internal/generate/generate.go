// Package generate drives the convert pipeline: parse the contributors
// document, render the replacement module to a staging file, compare content
// hashes, then apply, report, or diff depending on the run mode.
package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/contribgen/internal/config"
	"git.home.luguber.info/inful/contribgen/internal/contributors"
	"git.home.luguber.info/inful/contribgen/internal/logfields"
	"git.home.luguber.info/inful/contribgen/internal/render"
)

// Mode selects the terminal action taken when the target would change.
type Mode int

const (
	// ModeApply atomically replaces the target file (default).
	ModeApply Mode = iota
	// ModeCheck reports that the target would change, without writing it.
	ModeCheck
	// ModeDiff prints a unified diff of the pending change, without writing.
	ModeDiff
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeApply:
		return "apply"
	case ModeCheck:
		return "check"
	case ModeDiff:
		return "diff"
	default:
		return "unknown"
	}
}

// Outcome describes how a run ended.
type Outcome int

const (
	// OutcomeUnchanged means the staged output matched the existing target.
	OutcomeUnchanged Outcome = iota
	// OutcomeApplied means the target was replaced with the staged output.
	OutcomeApplied
	// OutcomeWouldChange means check or diff mode detected a pending change.
	OutcomeWouldChange
)

// Result carries the run outcome back to the CLI for reporting.
type Result struct {
	Outcome Outcome
	Target  string
	Staging string
	Diff    string // unified diff text, ModeDiff only
}

// Generator runs the convert pipeline for one configuration.
type Generator struct {
	cfg  *config.Config
	base string
}

// New creates a Generator. baseDir anchors every relative path in cfg.
func New(cfg *config.Config, baseDir string) *Generator {
	return &Generator{cfg: cfg, base: baseDir}
}

// Run executes parse -> render(stage) -> hash-compare -> terminal action.
// The target file is only ever mutated by an atomic rename of the staging
// file, and only in ModeApply.
func (g *Generator) Run(mode Mode) (*Result, error) {
	source := g.cfg.SourcePath(g.base)
	target := g.cfg.TargetPath(g.base)
	staging := target + ".new"

	doc, err := contributors.ParseFile(source)
	if err != nil {
		return nil, err
	}
	slog.Debug("Parsed contributors document",
		logfields.Source(source), slog.Int("sections", len(doc.Sections())))

	module, err := render.FromDocument(doc, g.cfg)
	if err != nil {
		return nil, err
	}

	createdDir, err := ensureDir(filepath.Dir(staging))
	if err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}
	// Everything below except a successful apply must leave the tree as it
	// was: staging removed, and any directory we created removed with it.
	discard := func(err error) error {
		_ = os.Remove(staging)
		if createdDir != "" {
			_ = os.RemoveAll(createdDir)
		}
		return err
	}

	if err := os.WriteFile(staging, []byte(module.Render()), 0o644); err != nil {
		return nil, discard(fmt.Errorf("failed to write staging file: %w", err))
	}

	stagingHash, err := FileHash(staging)
	if err != nil {
		return nil, discard(err)
	}
	targetHash, err := FileHash(target)
	if err != nil {
		return nil, discard(err)
	}
	slog.Debug("Compared content hashes",
		logfields.Target(target), logfields.Hash(targetHash),
		logfields.Staging(staging), logfields.Hash(stagingHash))

	result := &Result{Target: target, Staging: staging}

	if stagingHash == targetHash {
		result.Outcome = OutcomeUnchanged
		return result, discard(nil)
	}

	switch mode {
	case ModeDiff:
		diff, err := unifiedDiff(target, staging)
		if err != nil {
			return nil, discard(err)
		}
		result.Outcome = OutcomeWouldChange
		result.Diff = diff
		return result, discard(nil)
	case ModeCheck:
		result.Outcome = OutcomeWouldChange
		return result, discard(nil)
	default:
		if err := os.Rename(staging, target); err != nil {
			return nil, discard(fmt.Errorf("failed to replace target: %w", err))
		}
		slog.Info("Updated generated module",
			logfields.Target(target), logfields.Mode(mode.String()))
		result.Outcome = OutcomeApplied
		return result, nil
	}
}

// ensureDir creates dir if needed and reports the topmost path component it
// had to create, so non-apply runs can remove it again. Returns "" when the
// directory already existed.
func ensureDir(dir string) (string, error) {
	created := ""
	for p := dir; ; {
		if _, err := os.Stat(p); err == nil {
			break
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		created = p
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}
	if created == "" {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return created, nil
}
