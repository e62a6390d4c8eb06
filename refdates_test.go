package equate

import (
	"slices"
	"testing"
)

func TestExtractDates(t *testing.T) {
	purchases := []PurchaseRecord{
		testPurchase("2025-03-10", 50, 10),
		testPurchase("2025-03-07", 48, 5),
		{AllocationDate: D("2025-03-08"), CostBasis: 0, Allocated: Q(1)}, // unpriced: excluded
	}
	unexecuted := testDisposal("2025-03-11", 52, 3)
	unexecuted.Status = "Pending"
	nonDisposal := testDisposal("2025-03-13", 52, 3)
	nonDisposal.OrderType = "Dividend payout"
	disposals := []DisposalRecord{
		testDisposal("2025-03-12", 52, 3),
		testDisposal("2025-03-10", 51, 2), // duplicate day with a purchase
		unexecuted,
		nonDisposal,
	}
	asOf := &AsOfSnapshot{Date: D("2025-03-14"), Outstanding: Q(12), MarketPrice: 55}

	got := ExtractDates(purchases, disposals, asOf)
	want := []Date{D("2025-03-07"), D("2025-03-10"), D("2025-03-12"), D("2025-03-14")}
	if !slices.Equal(got, want) {
		t.Errorf("ExtractDates() = %v want %v", got, want)
	}
}

func TestExtractDatesTransfers(t *testing.T) {
	transfer := testDisposal("2025-03-12", 52, 3)
	transfer.OrderType = "Transfer to broker"
	got := ExtractDates(nil, []DisposalRecord{transfer}, nil)
	if len(got) != 1 || got[0] != D("2025-03-12") {
		t.Errorf("ExtractDates(transfer) = %v want [2025-03-12]", got)
	}
}

func TestExtractDatesUnpricedAsOf(t *testing.T) {
	asOf := &AsOfSnapshot{Date: D("2025-03-14"), Outstanding: Q(12)}
	if got := ExtractDates(nil, nil, asOf); len(got) != 0 {
		t.Errorf("ExtractDates(unpriced as-of) = %v want empty", got)
	}
}
