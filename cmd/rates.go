package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pahli/equate"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	importFile string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display or extend the exchange-rate table" }
func (*ratesCmd) Usage() string {
	return `eqc rates [-import <snapshot.json>]

  Without flags, displays the rate table coverage. With -import, decodes a
  single-day snapshot as published by currency APIs and appends it to the
  rates file.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.importFile, "import", "", "Single-day snapshot JSON file to append to the rates file")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.importFile != "" {
		return c.importSnapshot()
	}
	return c.coverage()
}

// importSnapshot appends one day of rates to the app rates file.
func (c *ratesCmd) importSnapshot() subcommands.ExitStatus {
	data, err := os.ReadFile(c.importFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	row, err := equate.ImportRateSnapshot(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	// Open the file in append mode, creating it if it doesn't exist.
	out, err := os.OpenFile(*ratesFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rates file %q: %v\n", *ratesFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := equate.ExportRates(out, equate.NewRateTable([]equate.RateRow{row})); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to rates file %q: %v\n", *ratesFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s rates to %s\n", row.Date, *ratesFile)
	return subcommands.ExitSuccess
}

// coverage prints the rate table's span and currency set.
func (c *ratesCmd) coverage() subcommands.ExitStatus {
	table, err := LoadRateTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}
	rows := table.Rows()
	if len(rows) == 0 {
		fmt.Println("The rate table is empty.")
		return subcommands.ExitSuccess
	}

	days := make([]equate.Date, 0, len(rows))
	for _, row := range rows {
		days = append(days, row.Date)
	}
	cache := equate.LoadRates(days, table)

	fmt.Printf("%d day(s) from %s to %s\n", len(rows), rows[0].Date, rows[len(rows)-1].Date)
	fmt.Printf("currencies: %v\n", cache.Currencies())
	return subcommands.ExitSuccess
}
