package equate

import (
	"regexp"
	"strings"
)

// PurchaseRecord is one allocation line from the holder's plan statement.
// Records are validated and normalized upstream; they are immutable once
// ingested.
type PurchaseRecord struct {
	AllocationDate   Date     `json:"allocationDate"`
	CostBasis        float64  `json:"costBasis"`   // price paid per share, in the source currency
	MarketPrice      float64  `json:"marketPrice"` // market price at allocation
	Allocated        Quantity `json:"allocated"`
	Outstanding      Quantity `json:"outstanding"`
	Available        Quantity `json:"available"`
	ContributionType string   `json:"contributionType"`
	Plan             string   `json:"plan"`
	Instrument       string   `json:"instrument"`
	InstrumentType   string   `json:"instrumentType"`
}

// Priceable reports whether the purchase carries a usable price and hence
// contributes a reference date.
func (p PurchaseRecord) Priceable() bool { return p.CostBasis > 0 }

// DisposalRecord is one transaction line (sale or transfer order).
type DisposalRecord struct {
	TransactionDate Date     `json:"transactionDate"`
	OrderType       string   `json:"orderType"`
	Quantity        Quantity `json:"quantity"` // as reported, sign not trusted
	Status          string   `json:"status"`
	ExecutionPrice  float64  `json:"executionPrice"`
}

// Executed reports whether the disposal order was actually executed.
func (d DisposalRecord) Executed() bool {
	return strings.EqualFold(d.Status, "executed")
}

// Priceable reports whether the disposal contributes a reference date: it
// must be executed, priced, and denote an actual disposal (a sale in any of
// its sub-forms, or a transfer).
func (d DisposalRecord) Priceable() bool {
	return d.Executed() && d.ExecutionPrice > 0 && disposalKind(d.OrderType) != ""
}

// Kind returns the point kind for the disposal's order type. A priceable
// record always has a recognized kind; the sale default only keeps the
// function total for callers that skipped the Priceable gate.
func (d DisposalRecord) Kind() PointKind {
	if k := disposalKind(d.OrderType); k != "" {
		return k
	}
	return KindSale
}

// Order-type labels come normalized but not canonical: "Sell", "Sell at
// market price", "Sell with price limit" are all sales.
var (
	saleOrderRE     = regexp.MustCompile(`(?i)\b(sell|sale)\b`)
	transferOrderRE = regexp.MustCompile(`(?i)\btransfer\b`)
)

// disposalKind classifies an order-type label, or returns "" when the label
// denotes neither a sale nor a transfer.
func disposalKind(orderType string) PointKind {
	switch {
	case transferOrderRE.MatchString(orderType):
		return KindTransfer
	case saleOrderRE.MatchString(orderType):
		return KindSale
	default:
		return ""
	}
}

// disposalCategory derives the category from the order-type label: sale
// sub-types map to the sale category, transfers to transfer. The other
// branch keeps the function total; records reaching the builder have
// already passed the Priceable gate and always classify.
func disposalCategory(orderType string) Category {
	switch disposalKind(orderType) {
	case KindTransfer:
		return CategoryTransfer
	case KindSale:
		return CategorySale
	default:
		return CategoryOther
	}
}

// AsOfSnapshot is the portfolio's valuation snapshot: the outstanding
// position and, when known, the current market price at the as-of date.
type AsOfSnapshot struct {
	Date        Date     `json:"date"`
	Outstanding Quantity `json:"outstanding"`
	MarketPrice float64  `json:"marketPrice"` // 0 when no current price is known
}

// Priced reports whether the snapshot carries a current market price.
func (s AsOfSnapshot) Priced() bool { return s.MarketPrice > 0 }
