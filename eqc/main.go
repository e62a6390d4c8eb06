package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/pahli/equate/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: Complete exits when invoked by the shell's
	// completion machinery, and is a no-op otherwise.
	jsonlFiles := predict.Files("*.jsonl")
	(&complete.Command{
		Flags: map[string]complete.Predictor{
			"rates-file":      jsonlFiles,
			"activity-file":   jsonlFiles,
			"prices-file":     jsonlFiles,
			"source-currency": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"points": {Flags: map[string]complete.Predictor{
				"c":           predict.Nothing,
				"company":     predict.Nothing,
				"json":        predict.Nothing,
				"as-of":       predict.Nothing,
				"outstanding": predict.Nothing,
				"as-of-price": predict.Nothing,
			}},
			"timeline": {Flags: map[string]complete.Predictor{
				"c":           predict.Nothing,
				"company":     predict.Nothing,
				"as-of":       predict.Nothing,
				"outstanding": predict.Nothing,
				"as-of-price": predict.Nothing,
			}},
			"rates": {Flags: map[string]complete.Predictor{
				"import": predict.Files("*.json"),
			}},
			"topic": {},
		},
	}).Complete("eqc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
