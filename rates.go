package equate

import (
	"slices"
)

// Pivot is the single currency through which all conversions are routed.
// Historical rate rows store end-of-day rates relative to it; the pivot
// itself is implicit (≡ 1.0) and never required as a row key.
const Pivot = "EUR"

// RateRow is one day of the historical exchange-rate table: a mapping from
// 3-letter currency code to its rate relative to the pivot currency.
type RateRow struct {
	Date  Date               `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Rate returns the row's rate for a currency. The pivot is always 1. The
// second result is false when the row has no usable (positive) rate.
func (r RateRow) Rate(currency string) (float64, bool) {
	if currency == Pivot {
		return 1, true
	}
	rate, ok := r.Rates[currency]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// RateTable is a full historical exchange-rate table. The input rows need
// not be sorted; the table sorts them and, on duplicate days, gives
// priority to the latest row.
type RateTable struct {
	rows []RateRow
}

// NewRateTable builds a table from raw rows.
func NewRateTable(rows []RateRow) *RateTable {
	t := &RateTable{rows: make([]RateRow, 0, len(rows))}
	for _, row := range rows {
		if i := slices.IndexFunc(t.rows, func(r RateRow) bool { return r.Date == row.Date }); i >= 0 {
			t.rows[i] = row
			continue
		}
		t.rows = append(t.rows, row)
	}
	slices.SortFunc(t.rows, func(a, b RateRow) int { return a.Date.Compare(b.Date) })
	return t
}

// Len returns the number of days covered by the table.
func (t *RateTable) Len() int { return len(t.rows) }

// Rows returns the table rows in chronological order.
func (t *RateTable) Rows() []RateRow { return t.rows }

// Nearest returns the row whose day has the smallest absolute calendar-day
// distance to 'on' (the exact row when one exists). On equal distance the
// earlier day wins, so the result does not depend on table iteration order.
// It returns false only when the table is empty.
func (t *RateTable) Nearest(on Date) (RateRow, bool) {
	return nearestRow(t.rows, on)
}

// nearestRow implements the exact-or-nearest lookup over a sorted row slice.
func nearestRow(rows []RateRow, on Date) (RateRow, bool) {
	if len(rows) == 0 {
		return RateRow{}, false
	}
	i, found := slices.BinarySearchFunc(rows, on, func(r RateRow, d Date) int { return r.Date.Compare(d) })
	if found {
		return rows[i], true
	}
	// Not found: the nearest row is one of the two neighbors of the
	// insertion point. Strict inequality keeps the earlier day on ties.
	switch {
	case i == 0:
		return rows[0], true
	case i == len(rows):
		return rows[len(rows)-1], true
	default:
		earlier, later := rows[i-1], rows[i]
		if DaysBetween(later.Date, on) < DaysBetween(earlier.Date, on) {
			return later, true
		}
		return earlier, true
	}
}

// RateCache is the minimal row set needed to price a given activity: one
// row per reference day (or its nearest substitute), never more rows than
// reference days. Reducing a full historical table this way is the
// primary performance device of the engine: a table of thousands of rows
// typically shrinks to a handful.
type RateCache struct {
	rows []RateRow
}

// LoadRates reduces the full table to the rows needed for the given
// reference days. Two days resolving to the same fallback row collapse to
// one stored row.
func LoadRates(days []Date, table *RateTable) *RateCache {
	c := &RateCache{}
	seen := make(map[Date]bool)
	for _, on := range days {
		row, ok := table.Nearest(on)
		if !ok {
			continue // empty table: the cache stays empty and quotes degrade
		}
		if seen[row.Date] {
			continue
		}
		seen[row.Date] = true
		c.rows = append(c.rows, row)
	}
	slices.SortFunc(c.rows, func(a, b RateRow) int { return a.Date.Compare(b.Date) })
	return c
}

// Len returns the number of rows held by the cache.
func (c *RateCache) Len() int { return len(c.rows) }

// Lookup re-applies the exact-or-nearest rule against the reduced row set.
func (c *RateCache) Lookup(on Date) (RateRow, bool) {
	return nearestRow(c.rows, on)
}

// Currencies returns the sorted union of currency codes covered by the
// cache, pivot included.
func (c *RateCache) Currencies() []string {
	seen := map[string]bool{Pivot: true}
	codes := []string{Pivot}
	for _, row := range c.rows {
		for code := range row.Rates {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	slices.Sort(codes)
	return codes
}
