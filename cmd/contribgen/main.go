package main

import (
	"git.home.luguber.info/inful/contribgen/cmd/contribgen/commands"
	"git.home.luguber.info/inful/contribgen/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	cli := commands.CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("contribgen"),
		kong.Description("Regenerate the about-dialog contributor lists from CONTRIBUTORS.md."),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
