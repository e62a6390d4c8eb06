package equate

import (
	"errors"
	"testing"
)

func testBuildInput(key SnapshotKey) BuildInput {
	return BuildInput{
		Key: key,
		Purchases: []PurchaseRecord{
			testPurchase("2025-03-07", 48, 5),
			testPurchase("2025-03-10", 50, 10),
		},
		SourceCurrency: "EUR",
	}
}

func TestEngineBuildCache(t *testing.T) {
	e := NewEngine(DefaultRules(), testRateTable(), nil)
	in := testBuildInput(SnapshotKey{Portfolio: "p1", Transactions: "t1", Rates: "r1"})

	points, err := e.Build(in)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	again, err := e.Build(in)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if &points[0] != &again[0] {
		t.Errorf("Build() with the same key recomputed, want the cached result")
	}

	// A different transactions snapshot is a different identity.
	other := testBuildInput(SnapshotKey{Portfolio: "p1", Transactions: "t2", Rates: "r1"})
	fresh, err := e.Build(other)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if &points[0] == &fresh[0] {
		t.Errorf("Build() with a different key returned the cached result")
	}
}

func TestEngineInvalidate(t *testing.T) {
	e := NewEngine(DefaultRules(), testRateTable(), nil)
	in := testBuildInput(SnapshotKey{Portfolio: "p1"})

	points, err := e.Build(in)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	e.Invalidate(in.Key)
	fresh, err := e.Build(in)
	if err != nil {
		t.Fatalf("Build() after Invalidate error = %v", err)
	}
	if &points[0] == &fresh[0] {
		t.Errorf("Build() after Invalidate returned the stale cached result")
	}
}

func TestEngineStaleBuildDiscarded(t *testing.T) {
	e := NewEngine(DefaultRules(), testRateTable(), nil)
	in := testBuildInput(SnapshotKey{Portfolio: "p1"})

	// A newer build for the same key starts (and finishes) while the
	// first one is still computing.
	var newest []*ReferencePoint
	e.commitHook = func() {
		e.commitHook = nil
		var err error
		if newest, err = e.Build(in); err != nil {
			t.Fatalf("competing Build() error = %v", err)
		}
	}

	if _, err := e.Build(in); !errors.Is(err, ErrStaleBuild) {
		t.Fatalf("superseded Build() error = %v want ErrStaleBuild", err)
	}

	// The committed result is the newest build's, not the stale one's.
	cached, err := e.Build(in)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if &cached[0] != &newest[0] {
		t.Errorf("cache holds a result other than the newest build's")
	}
}

func TestEngineBuildInsufficientData(t *testing.T) {
	e := NewEngine(DefaultRules(), testRateTable(), nil)
	_, err := e.Build(BuildInput{Key: SnapshotKey{Portfolio: "empty"}, SourceCurrency: "EUR"})
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Build() with no activity error = %v want ErrInsufficientData", err)
	}
	// Failed builds are never cached.
	if _, err := e.Build(BuildInput{Key: SnapshotKey{Portfolio: "empty"}, SourceCurrency: "EUR"}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("repeated failing Build() error = %v want ErrInsufficientData", err)
	}
}

func TestEngineSwitchSerialized(t *testing.T) {
	e := NewEngine(DefaultRules(), testRateTable(), nil)
	points, err := e.Build(testBuildInput(SnapshotKey{Portfolio: "p1"}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	e.switching.Store(true) // a switch is already running
	if _, err := e.Switch(points, "USD"); !errors.Is(err, ErrSwitchInFlight) {
		t.Fatalf("Switch() error = %v want ErrSwitchInFlight", err)
	}
	e.switching.Store(false)

	res, err := e.Switch(points, "USD")
	if err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if res.Switched != len(points) {
		t.Errorf("Switch() switched %d points want %d", res.Switched, len(points))
	}
	// The guard is released for the next switch.
	if _, err := e.Switch(points, "EUR"); err != nil {
		t.Errorf("Switch() after release error = %v", err)
	}
}

func TestEngineTimeline(t *testing.T) {
	prices := NewPriceTable([]PriceTableRow{
		{Date: D("2025-03-07"), Prices: map[string]float64{"USD": 51.84}},
		{Date: D("2025-03-08"), Prices: map[string]float64{"USD": 51.84}},
	})
	e := NewEngine(DefaultRules(), testRateTable(), prices)
	points, err := e.Build(testBuildInput(SnapshotKey{Portfolio: "p1"}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Covered currency: the exact precomputed series, not a synthesis.
	usd := e.Timeline(points, "USD")
	if len(usd) != 2 || usd[0].Price != 51.84 {
		t.Errorf("Timeline(USD) = %v want the 2-day precomputed series", usd)
	}

	// Uncovered currency: synthesized from the points, one entry per day.
	gbp := e.Timeline(points, "GBP")
	if len(gbp) != 4 {
		t.Errorf("Timeline(GBP) yielded %d days want 4 synthesized", len(gbp))
	}
}
