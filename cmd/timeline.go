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

// timelineCmd holds the flags for the 'timeline' subcommand.
type timelineCmd struct {
	currency string
	company  string
	asOf     asOfFlags
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display the daily price series" }
func (*timelineCmd) Usage() string {
	return `eqc timeline [-c <currency>]

  Displays one price per calendar day from the first reference-point date
  to the last. Uses the precomputed price table when it covers the
  requested currency, a synthesized step series otherwise.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", equate.Pivot, "Display currency for the series")
	f.StringVar(&c.company, "company", "", "Company whose override categorization rules apply")
	c.asOf.SetFlags(f)
}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	series := engine.Timeline(points, c.currency)
	printMarkdown(renderer.RenderTimeline(renderer.NewTimeline(series, c.currency)))

	return subcommands.ExitSuccess
}
