package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/contribgen/internal/config"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path, resolved against the base directory" default:"contribgen.yaml"`
	Root    string           `name:"root" help:"Base directory for all relative paths (default: parent of the executable's directory)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Regenerate the contributors module (default command)"`
	Lint     LintCmd     `cmd:"" help:"Validate the contributors document without generating"`
	Init     InitCmd     `cmd:"" help:"Write a default configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// BaseDir resolves the base directory every relative path is anchored to.
// Priority: --root flag > parent of the executable's directory. The caller's
// working directory is deliberately never used, so the tool behaves the same
// from any invocation context.
func (c *CLI) BaseDir() (string, error) {
	if c.Root != "" {
		return filepath.Abs(c.Root)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// LoadConfig resolves the base directory and loads the configuration file,
// falling back to built-in defaults when no file exists.
func (c *CLI) LoadConfig() (*config.Config, string, error) {
	base, err := c.BaseDir()
	if err != nil {
		return nil, "", err
	}
	configPath := c.Config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(base, configPath)
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, "", err
	}
	return cfg, base, nil
}
