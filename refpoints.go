package equate

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInsufficientData is returned by a build that extracted zero priceable
// reference days: an engine with no priceable events cannot produce a
// meaningful timeline.
var ErrInsufficientData = errors.New("insufficient data: no priceable activity records")

// ReferencePoint is one priced, dated, categorized economic event in the
// holder's activity history.
//
// Quote (the per-currency price map) is never mutated after build. The
// current price/currency pair is a read-optimized cache of one of its
// entries and is the only state a currency switch repoints.
type ReferencePoint struct {
	Date     Date
	Quantity Quantity // signed: positive acquisitions, negative disposals, zero for valuation snapshots
	Kind     PointKind
	Category Category
	Quote    Quote

	CurrentPrice    float64
	CurrentCurrency string
}

// Degraded reports whether the point is priced in its source currency only.
func (p *ReferencePoint) Degraded() bool { return p.Quote.Degraded() }

// Value returns the point's value (current price × quantity) as display money.
func (p *ReferencePoint) Value() Money {
	return M(p.CurrentPrice, p.CurrentCurrency).Mul(p.Quantity)
}

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (p *ReferencePoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Append("kind", p.Kind)
	w.Append("category", p.Category)
	w.Append("quantity", p.Quantity)
	w.Append("sourceCurrency", p.Quote.SourceCurrency())
	w.Append("currentCurrency", p.CurrentCurrency)
	w.Append("currentPrice", p.CurrentPrice)
	prices := make(map[string]float64, len(p.Quote.Currencies()))
	for _, code := range p.Quote.Currencies() {
		price, _ := p.Quote.Price(code)
		prices[code] = price
	}
	w.Append("prices", prices)
	return w.MarshalJSON()
}

// BuildPoints assembles the ordered, multi-currency-priced reference point
// list for one activity snapshot.
//
// Construction order is part of the contract: the as-of valuation point
// first, then purchases, then disposals, each in input order; the final
// sort by day is stable, so same-day points keep that relative order. The
// build never deduplicates or aggregates: every originating record yields
// exactly one point, preserving per-lot precision for downstream return
// calculations.
func BuildPoints(purchases []PurchaseRecord, disposals []DisposalRecord, asOf *AsOfSnapshot,
	sourceCurrency string, cache *RateCache, rules Rules, company string) ([]*ReferencePoint, error) {

	days := ExtractDates(purchases, disposals, asOf)
	if len(days) == 0 {
		return nil, ErrInsufficientData
	}

	var points []*ReferencePoint
	emit := func(on Date, qty Quantity, kind PointKind, cat Category, price float64) error {
		// Records are pre-validated upstream; a missing essential field at
		// this stage would corrupt per-lot accounting if silently skipped.
		if on.IsZero() {
			return fmt.Errorf("reference point of kind %q has no date", kind)
		}
		quote := Convert(price, on, sourceCurrency, cache)
		current, _ := quote.Price(sourceCurrency)
		points = append(points, &ReferencePoint{
			Date:            on,
			Quantity:        qty,
			Kind:            kind,
			Category:        cat,
			Quote:           quote,
			CurrentPrice:    current,
			CurrentCurrency: sourceCurrency,
		})
		return nil
	}

	if asOf != nil && asOf.Priced() {
		// The valuation snapshot is categorized directly, not through the
		// rule engine: it is a position statement, not a contribution.
		if err := emit(asOf.Date, asOf.Outstanding, KindAsOfValuation, CategoryValuation, asOf.MarketPrice); err != nil {
			return nil, err
		}
	}
	for _, p := range purchases {
		if !p.Priceable() {
			continue
		}
		cat := rules.Categorize(FieldsOf(p), company)
		if err := emit(p.AllocationDate, p.Allocated.Abs(), KindPurchase, cat, p.CostBasis); err != nil {
			return nil, err
		}
	}
	for _, d := range disposals {
		// Same gate as ExtractDates: a point must never be priced off a
		// day the rate cache was not targeted at.
		if !d.Priceable() {
			continue
		}
		qty := d.Quantity.Abs().Neg()
		if err := emit(d.TransactionDate, qty, d.Kind(), disposalCategory(d.OrderType), d.ExecutionPrice); err != nil {
			return nil, err
		}
	}

	slices.SortStableFunc(points, func(a, b *ReferencePoint) int { return a.Date.Compare(b.Date) })
	return points, nil
}
