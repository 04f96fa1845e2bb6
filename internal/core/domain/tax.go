package domain

import "github.com/shopspring/decimal"

// TaxGranularity selects between the monthly and annual band tables.
type TaxGranularity string

const (
	GranularityMonthly TaxGranularity = "MONTHLY"
	GranularityAnnual  TaxGranularity = "ANNUAL"
)

// Valid reports whether the granularity is one of the two supported values.
func (g TaxGranularity) Valid() bool {
	return g == GranularityMonthly || g == GranularityAnnual
}

// BandTableKey identifies one of the four logical band tables
// (currency x granularity). Bands are stored in a single discriminated table.
type BandTableKey struct {
	Currency    string         `json:"currency"`
	Granularity TaxGranularity `json:"granularity"`
}

// Valid reports whether the key addresses a supported table.
func (k BandTableKey) Valid() bool {
	if k.Currency != CurrencyUSD && k.Currency != CurrencyZWL {
		return false
	}
	return k.Granularity.Valid()
}

// TaxBand is one progressive salary range with its own rate and fixed amount.
// A nil MaxSalary marks the open-ended top band.
// Invariant: within one table key, band ranges must not overlap.
type TaxBand struct {
	BandID      string           `json:"bandID"` // Primary Key (UUID)
	Currency    string           `json:"currency"`
	Granularity TaxGranularity   `json:"granularity"`
	MinSalary   decimal.Decimal  `json:"minSalary"`
	MaxSalary   *decimal.Decimal `json:"maxSalary"` // nil = unbounded
	Rate        decimal.Decimal  `json:"rate"`      // fraction in [0, 1]
	FixedAmount decimal.Decimal  `json:"fixedAmount"`
	AuditFields
}

// TableKey returns the logical table this band belongs to.
func (b TaxBand) TableKey() BandTableKey {
	return BandTableKey{Currency: b.Currency, Granularity: b.Granularity}
}

// Overlaps reports whether two bands' [min, max) ranges intersect.
// Open-ended bands extend to infinity.
func (b TaxBand) Overlaps(other TaxBand) bool {
	// b below other
	if b.MaxSalary != nil && b.MaxSalary.LessThanOrEqual(other.MinSalary) {
		return false
	}
	// other below b
	if other.MaxSalary != nil && other.MaxSalary.LessThanOrEqual(b.MinSalary) {
		return false
	}
	return true
}

// Well-known tax credit names.
const (
	CreditPersonal   = "PERSONAL"
	CreditChild      = "CHILD"
	CreditDisability = "DISABILITY"
)

// TaxCredit is a named allowance subtracted from gross income before banding.
// Read-only input to the calculator.
type TaxCredit struct {
	CreditID     string          `json:"creditID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Granularity  TaxGranularity  `json:"granularity"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// AppliedCredit is one credit line of a tax computation breakdown.
type AppliedCredit struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"` // resolved to the computation currency
}

// TaxComputation is the full result of a progressive tax calculation.
type TaxComputation struct {
	Currency       string          `json:"currency"`
	Gross          decimal.Decimal `json:"gross"`
	TotalCredits   decimal.Decimal `json:"totalCredits"`
	TaxableIncome  decimal.Decimal `json:"taxableIncome"`
	Tax            decimal.Decimal `json:"tax"`
	EffectiveRate  decimal.Decimal `json:"effectiveRate"` // Tax / Gross, zero when gross is zero
	CreditsApplied []AppliedCredit `json:"creditsApplied"`
}
