// Package cmd implements the CLI application to price equity-plan activity.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/pahli/equate"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&pointsCmd{}, "reports")
	c.Register(&timelineCmd{}, "reports")

	c.Register(&ratesCmd{}, "rates")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ratesFile = flag.String("rates-file", "rates.jsonl", "Path to the exchange-rate file (JSONL format)")
var activityFile = flag.String("activity-file", "activity.jsonl", "Path to the plan activity file (JSONL format)")
var pricesFile = flag.String("prices-file", "", "Optional path to a precomputed daily price table (JSONL format)")
var sourceCurrency = flag.String("source-currency", equate.Pivot, "Currency the activity records are reported in")

// LoadRateTable loads the rate table from the app rates file. A missing
// file degrades to an empty table so quotes fall back to the source
// currency instead of blocking.
func LoadRateTable() (*equate.RateTable, error) {
	f, err := os.Open(*ratesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, rate file %q does not exist, pricing in %q only", *ratesFile, *sourceCurrency)
		return equate.NewRateTable(nil), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return equate.ImportRates(f)
}

// LoadActivity loads purchase and disposal records from the app activity file.
func LoadActivity() ([]equate.PurchaseRecord, []equate.DisposalRecord, error) {
	f, err := os.Open(*activityFile)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return equate.ImportActivity(f)
}

// LoadPriceTable loads the optional precomputed price table. It returns nil
// when no prices file is configured.
func LoadPriceTable() (*equate.PriceTable, error) {
	if *pricesFile == "" {
		return nil, nil
	}
	f, err := os.Open(*pricesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return equate.ImportPriceTable(f)
}

// NewEngine assembles the pricing engine from the app files.
func NewEngine() (*equate.Engine, error) {
	table, err := LoadRateTable()
	if err != nil {
		return nil, fmt.Errorf("cannot load rate table: %w", err)
	}
	prices, err := LoadPriceTable()
	if err != nil {
		return nil, fmt.Errorf("cannot load price table: %w", err)
	}
	return equate.NewEngine(equate.DefaultRules(), table, prices), nil
}

// SnapshotKey identifies the current app input files as a build identity.
func SnapshotKey() equate.SnapshotKey {
	return equate.SnapshotKey{
		Portfolio:    *pricesFile,
		Transactions: *activityFile,
		Rates:        *ratesFile,
	}
}

// asOfFlags carries the optional as-of valuation snapshot flags shared by
// the report commands.
type asOfFlags struct {
	date        string
	outstanding float64
	price       float64
}

func (a *asOfFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&a.date, "as-of", "", "Date of the current valuation snapshot (YYYY-MM-DD)")
	f.Float64Var(&a.outstanding, "outstanding", 0, "Outstanding position at the as-of date")
	f.Float64Var(&a.price, "as-of-price", 0, "Current market price at the as-of date")
}

// Snapshot returns the as-of snapshot described by the flags, or nil when
// no as-of date was given.
func (a *asOfFlags) Snapshot() (*equate.AsOfSnapshot, error) {
	if a.date == "" {
		return nil, nil
	}
	on, err := equate.ParseDate(a.date)
	if err != nil {
		return nil, fmt.Errorf("invalid as-of date: %w", err)
	}
	return &equate.AsOfSnapshot{
		Date:        on,
		Outstanding: equate.Q(a.outstanding),
		MarketPrice: a.price,
	}, nil
}
