package equate

// Category is the investment category assigned to an activity record.
type Category string

const (
	// UserInvestment is money the holder put in personally.
	UserInvestment Category = "user-investment"
	// CompanyMatch is the employer's matching contribution.
	CompanyMatch Category = "company-match"
	// FreeShares are awarded shares (free share plans, performance awards).
	FreeShares Category = "free-shares"
	// DividendIncome covers dividend reinvestments.
	DividendIncome Category = "dividend-income"
	// CategorySale and CategoryTransfer classify disposals by their order type.
	CategorySale     Category = "sale"
	CategoryTransfer Category = "transfer"
	// CategoryOther is an executed disposal of an unrecognized order type.
	CategoryOther Category = "other"
	// CategoryValuation marks the as-of portfolio valuation snapshot.
	CategoryValuation Category = "current-valuation"
	// Unknown means no rule matched the record.
	Unknown Category = "unknown"
)

// PointKind is the economic nature of a reference point.
type PointKind string

const (
	KindPurchase      PointKind = "purchase"
	KindSale          PointKind = "sale"
	KindTransfer      PointKind = "transfer"
	KindAsOfValuation PointKind = "as-of-valuation"
)
