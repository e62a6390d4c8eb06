package equate

import "slices"

// Quote is the result of pricing one value on one day. It is a variant:
// either fully priced in every currency the rate row covers, or degraded to
// the source currency only when no usable rate coverage exists for the
// needed day/currency pair. Downstream code must ask, not assume.
type Quote struct {
	source     string
	price      float64
	byCurrency map[string]float64 // nil in single-currency mode
}

// SingleCurrencyQuote returns a degraded quote carrying only the source pair.
func SingleCurrencyQuote(price float64, currency string) Quote {
	return Quote{source: currency, price: price}
}

// SourceCurrency returns the currency the value originated in.
func (q Quote) SourceCurrency() string { return q.source }

// SourcePrice returns the original input price, untouched.
func (q Quote) SourcePrice() float64 { return q.price }

// Degraded reports whether the quote covers only its source currency.
func (q Quote) Degraded() bool { return q.byCurrency == nil }

// Price returns the quote's value in the given currency. In degraded mode
// only the source currency is available.
func (q Quote) Price(currency string) (float64, bool) {
	if q.byCurrency == nil {
		if currency == q.source {
			return q.price, true
		}
		return 0, false
	}
	price, ok := q.byCurrency[currency]
	return price, ok
}

// PriceOr returns the quote's value in the given currency, falling back to
// the source currency and price when the quote does not cover it.
func (q Quote) PriceOr(currency string) (float64, string) {
	if price, ok := q.Price(currency); ok {
		return price, currency
	}
	return q.price, q.source
}

// Currencies returns the sorted currency codes the quote covers.
func (q Quote) Currencies() []string {
	if q.byCurrency == nil {
		return []string{q.source}
	}
	codes := make([]string, 0, len(q.byCurrency))
	for code := range q.byCurrency {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Convert prices one value, on one day, in one currency, into every
// currency the rate cache covers for that day.
//
// The conversion pivots through EUR: rate rows store end-of-day rates
// relative to the pivot, while activity prices are intraday executions.
// Routing through a single common base reaches any currency from any other
// with one division and one multiplication, without direct cross-rates for
// every pair. The source currency is never derived: its entry is the input
// price verbatim, so the originating value survives bit-for-bit.
//
// Missing coverage is not an error: no row for the day, or no usable
// (positive) rate for the source currency, degrades the result to a
// single-currency quote.
func Convert(price float64, on Date, sourceCurrency string, cache *RateCache) Quote {
	row, ok := cache.Lookup(on)
	if !ok {
		return SingleCurrencyQuote(price, sourceCurrency)
	}

	pivotPrice := price
	if sourceCurrency != Pivot {
		rate, ok := row.Rate(sourceCurrency)
		if !ok {
			return SingleCurrencyQuote(price, sourceCurrency)
		}
		pivotPrice = price / rate
	}

	byCurrency := make(map[string]float64, len(row.Rates)+2)
	byCurrency[Pivot] = pivotPrice
	for code, rate := range row.Rates {
		switch {
		case code == Pivot:
			// the pivot entry is already set; a stored self-rate is noise
		case code == sourceCurrency:
			byCurrency[code] = price // exact passthrough, no round-trip float error
		case rate > 0:
			byCurrency[code] = pivotPrice * rate
		}
	}
	// The source entry must exist even when the row never listed it
	// (notably a EUR source against a row of foreign codes only).
	byCurrency[sourceCurrency] = price

	return Quote{source: sourceCurrency, price: price, byCurrency: byCurrency}
}
