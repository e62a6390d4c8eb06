package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pahli/equate"
	"github.com/pahli/equate/renderer"
)

// pointsCmd holds the flags for the 'points' subcommand.
type pointsCmd struct {
	currency string
	company  string
	jsonOut  bool
	asOf     asOfFlags
}

func (*pointsCmd) Name() string     { return "points" }
func (*pointsCmd) Synopsis() string { return "build and display the priced reference points" }
func (*pointsCmd) Usage() string {
	return `eqc points [-c <currency>] [-company <name>] [-json]

  Builds the reference point list from the activity file, prices every
  point in all covered currencies, and displays it in the selected one.
`
}

func (c *pointsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Display currency (defaults to the source currency)")
	f.StringVar(&c.company, "company", "", "Company whose override categorization rules apply")
	f.BoolVar(&c.jsonOut, "json", false, "Write points as JSONL instead of a markdown report")
	c.asOf.SetFlags(f)
}

func (c *pointsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	purchases, disposals, err := LoadActivity()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading activity: %v\n", err)
		return subcommands.ExitFailure
	}
	asOf, err := c.asOf.Snapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	engine, err := NewEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	points, err := engine.Build(equate.BuildInput{
		Key:            SnapshotKey(),
		Purchases:      purchases,
		Disposals:      disposals,
		AsOf:           asOf,
		SourceCurrency: *sourceCurrency,
		Company:        c.company,
	})
	if errors.Is(err, equate.ErrInsufficientData) {
		fmt.Fprintf(os.Stderr, "Error: the activity file contains no priceable records\n")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building points: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.currency != "" && c.currency != *sourceCurrency {
		res, err := engine.Switch(points, c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error switching currency: %v\n", err)
			return subcommands.ExitFailure
		}
		if res.Fallback > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %d point(s) have no %s price and keep their source currency\n", res.Fallback, c.currency)
		}
	}

	if c.jsonOut {
		if err := equate.ExportPoints(os.Stdout, points); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing points: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderPoints(renderer.NewPoints(points, *sourceCurrency, c.company)))

	return subcommands.ExitSuccess
}
