package equate

import "regexp"

// The rule engine classifies a purchase record into an investment category.
//
// A rule is a set of optional field matchers over a fixed small field set;
// all present matchers must pass for the rule to match. Base rules use
// case-insensitive patterns so they survive label variations across plan
// providers; company override rules are typically exact and let a handful
// of company-specific exceptions win without rewriting the base table.

// Fields is the record projection the rule engine matches against. A field
// left empty on the record is matched as the empty string.
type Fields struct {
	ContributionType string
	Plan             string
	Instrument       string
	InstrumentType   string
	OrderType        string
	Status           string
}

// FieldsOf projects a purchase record onto the rule engine's field set.
func FieldsOf(p PurchaseRecord) Fields {
	return Fields{
		ContributionType: p.ContributionType,
		Plan:             p.Plan,
		Instrument:       p.Instrument,
		InstrumentType:   p.InstrumentType,
	}
}

// Matcher tests a single field. A nil Matcher is a wildcard: always
// satisfied.
type Matcher interface {
	match(value string) bool
}

// exact is a case-sensitive string equality matcher.
type exact string

func (e exact) match(value string) bool { return string(e) == value }

// Exact returns a matcher satisfied only by the exact given value.
func Exact(value string) Matcher { return exact(value) }

// pattern is a case-insensitive regular-expression matcher.
type pattern struct{ re *regexp.Regexp }

func (p pattern) match(value string) bool { return p.re.MatchString(value) }

// Pattern returns a matcher satisfied when the case-insensitive regular
// expression matches the field. It panics on an invalid expression: rule
// tables are program constants.
func Pattern(expr string) Matcher {
	return pattern{re: regexp.MustCompile(`(?i)` + expr)}
}

// Rule maps a set of field matchers to a category. Omitted (nil) matchers
// are wildcards.
type Rule struct {
	ContributionType Matcher
	Plan             Matcher
	Instrument       Matcher
	InstrumentType   Matcher
	OrderType        Matcher
	Status           Matcher

	Category Category
}

// Match reports whether every present matcher in the rule passes (logical AND).
func (r Rule) Match(f Fields) bool {
	for _, m := range []struct {
		matcher Matcher
		value   string
	}{
		{r.ContributionType, f.ContributionType},
		{r.Plan, f.Plan},
		{r.Instrument, f.Instrument},
		{r.InstrumentType, f.InstrumentType},
		{r.OrderType, f.OrderType},
		{r.Status, f.Status},
	} {
		if m.matcher != nil && !m.matcher.match(m.value) {
			return false
		}
	}
	return true
}

// RuleSet is an ordered list of rules evaluated in declaration order: the
// first rule whose matchers all pass wins.
type RuleSet []Rule

// Categorize returns the category of the first matching rule, or Unknown.
func (rs RuleSet) Categorize(f Fields) (Category, bool) {
	for _, r := range rs {
		if r.Match(f) {
			return r.Category, true
		}
	}
	return Unknown, false
}

// BaseRules is the generic classification table, in fixed priority order.
func BaseRules() RuleSet {
	return RuleSet{
		{ContributionType: Pattern(`purchase`), Category: UserInvestment},
		{ContributionType: Pattern(`match`), Category: CompanyMatch},
		{Plan: Exact("Free Share"), Category: FreeShares},
		{ContributionType: Pattern(`dividend`), Category: DividendIncome},
	}
}

// Overrides holds per-company rule sets tested before the base rules.
type Overrides map[string]RuleSet

// Rules combines company overrides with a base rule set.
type Rules struct {
	Base      RuleSet
	Overrides Overrides
}

// DefaultRules returns the engine's stock rule tables.
func DefaultRules() Rules {
	return Rules{Base: BaseRules(), Overrides: Overrides{}}
}

// Categorize classifies a record projection. If the company has registered
// override rules they are tested first, in declaration order; otherwise the
// base rules apply. When nothing matches, the category is Unknown.
func (r Rules) Categorize(f Fields, company string) Category {
	if company != "" {
		if over, ok := r.Overrides[company]; ok {
			if cat, ok := over.Categorize(f); ok {
				return cat
			}
		}
	}
	if cat, ok := r.Base.Categorize(f); ok {
		return cat
	}
	return Unknown
}
