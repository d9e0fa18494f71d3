// Command pms manages a property portfolio: valuations, finances, tenancy
// and documents.
package main

import (
	"context"
	"flag"
	"os"
	"path"
	"slices"

	"github.com/etnz/realty/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("pms")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.IsRegistered(name) && !slices.Contains([]string{"help", "flags", "commands"}, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
