package equate

// Shared fixtures for the engine tests: a small rate table and typical
// activity records.

// D is a helper for tests to create a date from a const string.
func D(str string) Date { return MustParseDate(str) }

// testRateTable covers three trading days around a weekend gap.
func testRateTable() *RateTable {
	return NewRateTable([]RateRow{
		{Date: D("2025-03-07"), Rates: map[string]float64{"USD": 1.08, "GBP": 0.84, "JPY": 160.2}},
		{Date: D("2025-03-10"), Rates: map[string]float64{"USD": 1.10, "GBP": 0.85, "JPY": 161.0}},
		{Date: D("2025-03-12"), Rates: map[string]float64{"USD": 1.12, "GBP": 0.86}},
	})
}

func testPurchase(on string, costBasis float64, qty float64) PurchaseRecord {
	return PurchaseRecord{
		AllocationDate:   D(on),
		CostBasis:        costBasis,
		MarketPrice:      costBasis,
		Allocated:        Q(qty),
		Outstanding:      Q(qty),
		Available:        Q(qty),
		ContributionType: "Purchase",
		Plan:             "Employee Share Purchase Plan",
		Instrument:       "Acme Share",
		InstrumentType:   "Share",
	}
}

func testDisposal(on string, price float64, qty float64) DisposalRecord {
	return DisposalRecord{
		TransactionDate: D(on),
		OrderType:       "Sell at market price",
		Quantity:        Q(qty),
		Status:          "Executed",
		ExecutionPrice:  price,
	}
}
