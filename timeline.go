package equate

// DailyPrice is one day of a price timeline.
type DailyPrice struct {
	Date  Date    `json:"date"`
	Price float64 `json:"price"`
}

// Synthesize produces a daily step-function price series from reference
// points, inclusive of the first and last point days. Each day carries the
// price of the latest reference point at or before it: a flat line between
// events, no interpolation, no smoothing. This approximates a trading-day
// timeline when no full historical daily series exists for the target
// currency.
//
// Each point contributes its price in the target currency when its price
// map covers it, falling back to its own source-currency price otherwise
// (point-level fallback, independent of the other points).
func Synthesize(points []*ReferencePoint, targetCurrency string) []DailyPrice {
	if len(points) == 0 {
		return nil
	}

	// Points are date-sorted; collapse them into a step history where
	// same-day points resolve to the last one built.
	var steps History[float64]
	for _, p := range points {
		price, _ := p.Quote.PriceOr(targetCurrency)
		steps.Append(p.Date, price)
	}

	first, _ := steps.First()
	last, _ := steps.Latest()

	var series []DailyPrice
	for on := first; !on.After(last); on = on.Add(1) {
		price, _ := steps.ValueAsOf(on)
		series = append(series, DailyPrice{Date: on, Price: price})
	}
	return series
}

// PriceTable is a precomputed full daily multi-currency price table: for
// each covered currency, an exact historical daily series. When available
// for the target currency it is strictly preferred over synthesis, which is
// only an approximation.
type PriceTable struct {
	currencies map[string]*History[float64]
}

// PriceTableRow is one decoded day of a precomputed price table.
type PriceTableRow struct {
	Date   Date               `json:"date"`
	Prices map[string]float64 `json:"prices"`
}

// NewPriceTable builds a table from decoded rows. Non-positive prices are
// data gaps and are dropped.
func NewPriceTable(rows []PriceTableRow) *PriceTable {
	t := &PriceTable{currencies: make(map[string]*History[float64])}
	for _, row := range rows {
		for code, price := range row.Prices {
			if price <= 0 {
				continue
			}
			h, ok := t.currencies[code]
			if !ok {
				h = &History[float64]{}
				t.currencies[code] = h
			}
			h.Append(row.Date, price)
		}
	}
	return t
}

// Has reports whether the table carries a series for the currency.
func (t *PriceTable) Has(currency string) bool {
	h, ok := t.currencies[currency]
	return ok && h.Len() > 0
}

// Series extracts the exact daily series for the target currency, sorted
// ascending. It returns false when the table has no column for that
// currency, in which case the caller falls through to synthesis.
func (t *PriceTable) Series(currency string) ([]DailyPrice, bool) {
	h, ok := t.currencies[currency]
	if !ok || h.Len() == 0 {
		return nil, false
	}
	series := make([]DailyPrice, 0, h.Len())
	for on, price := range h.Values() {
		series = append(series, DailyPrice{Date: on, Price: price})
	}
	return series, true
}
