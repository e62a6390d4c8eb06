package equate

// SwitchResult reports the outcome of a currency switch: how many points
// now display the requested currency and how many fell back to their own
// source currency.
type SwitchResult struct {
	Switched int `json:"switched"`
	Fallback int `json:"fallback"`
}

// Switch repoints the current price/currency of every reference point to
// the new currency, in place and without recomputation: each point's price
// map already holds every price it will ever have, so this is a pure
// pointer repoint, O(n) in the number of points.
//
// A point whose price map does not cover the new currency falls back to its
// own source currency, independently of the other points, and is counted in
// the fallback tally so callers can surface the reduced fidelity.
func Switch(points []*ReferencePoint, newCurrency string) SwitchResult {
	var res SwitchResult
	for _, p := range points {
		if price, ok := p.Quote.Price(newCurrency); ok {
			p.CurrentPrice, p.CurrentCurrency = price, newCurrency
			res.Switched++
			continue
		}
		p.CurrentPrice, p.CurrentCurrency = p.Quote.SourcePrice(), p.Quote.SourceCurrency()
		res.Fallback++
	}
	return res
}
