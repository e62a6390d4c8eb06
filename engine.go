package equate

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
)

// ErrStaleBuild is returned when a build finished after a newer build for
// the same context started: the stale result is discarded, never applied.
var ErrStaleBuild = errors.New("stale build discarded: a newer build superseded it")

// ErrSwitchInFlight is returned when a currency switch is requested while
// another switch on the same engine is still running. Interleaved mutation
// of the same point array is unsafe.
var ErrSwitchInFlight = errors.New("currency switch already in flight")

// SnapshotKey identifies the (portfolio, transactions, rate table) input
// triple of a build. Identical keys mean identical inputs: the engine
// returns the cached result instead of recomputing.
type SnapshotKey struct {
	Portfolio    string
	Transactions string
	Rates        string
}

// BuildInput carries one build request.
type BuildInput struct {
	Key            SnapshotKey
	Purchases      []PurchaseRecord
	Disposals      []DisposalRecord
	AsOf           *AsOfSnapshot
	SourceCurrency string
	Company        string // enables company override rules when set
}

// Engine is the reference-point construction and pricing service. It is an
// explicitly constructed object: rule tables and the rate table are
// dependencies, not package state, so tests and concurrent portfolio
// contexts stay isolated.
type Engine struct {
	rules  Rules
	table  *RateTable
	prices *PriceTable // optional precomputed daily table, may be nil

	generation atomic.Uint64
	switching  atomic.Bool

	mu      sync.Mutex
	started map[SnapshotKey]uint64
	builds  map[SnapshotKey][]*ReferencePoint

	// called between computing and committing a build, when set. Tests
	// use it to interleave a competing build on the same key.
	commitHook func()
}

// NewEngine returns an engine over the given rule tables and full rate
// table. The precomputed price table is optional: pass nil when none
// exists and timelines will be synthesized.
func NewEngine(rules Rules, table *RateTable, prices *PriceTable) *Engine {
	if table == nil {
		table = NewRateTable(nil)
	}
	return &Engine{
		rules:   rules,
		table:   table,
		prices:  prices,
		started: make(map[SnapshotKey]uint64),
		builds:  make(map[SnapshotKey][]*ReferencePoint),
	}
}

// Build produces the sorted, priced reference point list for the input.
//
// Results are cached by snapshot identity. Every build is tagged with a
// monotonically increasing generation token; when builds for the same key
// overlap (rapid consecutive uploads), only the newest one may commit and
// the older finishers get ErrStaleBuild.
func (e *Engine) Build(in BuildInput) ([]*ReferencePoint, error) {
	e.mu.Lock()
	if points, ok := e.builds[in.Key]; ok {
		e.mu.Unlock()
		return points, nil
	}
	gen := e.generation.Add(1)
	e.started[in.Key] = gen
	e.mu.Unlock()

	days := ExtractDates(in.Purchases, in.Disposals, in.AsOf)
	if len(days) == 0 {
		return nil, ErrInsufficientData
	}
	cache := LoadRates(days, e.table)
	if cache.Len() == 0 {
		// Fail soft: an empty or missing rate table degrades every quote
		// to single-currency mode instead of blocking the pipeline.
		log.Printf("no exchange-rate coverage for %d reference days, pricing in %q only", len(days), in.SourceCurrency)
	}

	points, err := BuildPoints(in.Purchases, in.Disposals, in.AsOf, in.SourceCurrency, cache, e.rules, in.Company)
	if err != nil {
		return nil, err
	}
	if e.commitHook != nil {
		e.commitHook()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started[in.Key] != gen {
		return nil, ErrStaleBuild
	}
	e.builds[in.Key] = points
	return points, nil
}

// Invalidate drops the cached build for a key, forcing the next Build to
// recompute. Callers use it when any of the three input snapshots changes
// under the same identity.
func (e *Engine) Invalidate(key SnapshotKey) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.builds, key)
	delete(e.started, key)
}

// Switch repoints the current price of every point to the new currency.
// Switches on one engine are serialized: a request arriving while another
// is active returns ErrSwitchInFlight rather than interleaving mutation.
func (e *Engine) Switch(points []*ReferencePoint, newCurrency string) (SwitchResult, error) {
	if !e.switching.CompareAndSwap(false, true) {
		return SwitchResult{}, ErrSwitchInFlight
	}
	defer e.switching.Store(false)
	return Switch(points, newCurrency), nil
}

// Timeline returns the daily price series for the target currency: the
// exact precomputed series when the price table covers that currency, the
// synthesized step-function series otherwise.
func (e *Engine) Timeline(points []*ReferencePoint, targetCurrency string) []DailyPrice {
	if e.prices != nil {
		if series, ok := e.prices.Series(targetCurrency); ok {
			return series
		}
		log.Printf("precomputed price table has no %q column, synthesizing from %d reference points", targetCurrency, len(points))
	}
	return Synthesize(points, targetCurrency)
}
