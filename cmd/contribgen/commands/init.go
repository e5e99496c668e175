package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/contribgen/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

// Run executes the init command.
func (i *InitCmd) Run(_ *Global, root *CLI) error {
	base, err := root.BaseDir()
	if err != nil {
		return err
	}
	configPath := root.Config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(base, configPath)
	}

	fmt.Printf("Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, i.Force); err != nil {
		return err
	}
	fmt.Println("initialized successfully")
	return nil
}
