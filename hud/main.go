// Command hud renders a personal daily dashboard.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	_ "time/tzdata"

	"github.com/etnz/hud/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"config": predict.Files("*.toml"),
	},
	Sub: map[string]*complete.Command{
		"render": {
			Flags: map[string]complete.Predictor{
				"o":     predict.Files("*.md"),
				"html":  predict.Files("*.html"),
				"print": predict.Nothing,
				"push":  predict.Set{"true", "false"},
				"w":     predict.Something,
			},
		},
		"insights": {
			Flags: map[string]complete.Predictor{
				"d":   predict.Something,
				"raw": predict.Nothing,
			},
		},
		"returns": {
			Flags: map[string]complete.Predictor{
				"raw": predict.Nothing,
			},
		},
		"mcp":      {},
		"topic":    {Args: predict.Set{"*", "config", "sheets", "template"}},
		"help":     {},
		"commands": {},
		"flags":    {},
	},
}

func main() {
	completion.Complete("hud")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands are looked up as hud-<name> extensions.
	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

// registered reports whether name is a subcommand of c.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
