package equate

import "slices"

// ExtractDates collects the minimal set of calendar days that matter for
// pricing the holder's activity:
//
//   - a purchase day, when its cost-basis price is strictly positive;
//   - a disposal day, when the order was executed, priced, and denotes an
//     actual disposal (sale or transfer);
//   - the as-of day, when the snapshot carries a current market price.
//
// The result is deduplicated and sorted ascending. These are the only days
// the exchange-rate cache needs to cover, which is what keeps the rate
// lookup footprint small.
func ExtractDates(purchases []PurchaseRecord, disposals []DisposalRecord, asOf *AsOfSnapshot) []Date {
	seen := make(map[Date]bool)
	var days []Date
	add := func(on Date) {
		if !seen[on] {
			seen[on] = true
			days = append(days, on)
		}
	}

	for _, p := range purchases {
		if p.Priceable() {
			add(p.AllocationDate)
		}
	}
	for _, d := range disposals {
		if d.Priceable() {
			add(d.TransactionDate)
		}
	}
	if asOf != nil && asOf.Priced() {
		add(asOf.Date)
	}

	slices.SortFunc(days, Date.Compare)
	return days
}
