package models

import "github.com/shopspring/decimal"

// TaxBand is one row of the discriminated tax band table.
// UNIQUE-checked overlap constraint is enforced in the service layer.
type TaxBand struct {
	BandID      string           `json:"bandID"`
	Currency    string           `json:"currency"`
	Granularity string           `json:"granularity"`
	MinSalary   decimal.Decimal  `json:"minSalary"`
	MaxSalary   *decimal.Decimal `json:"maxSalary"` // NULL = unbounded top band
	Rate        decimal.Decimal  `json:"rate"`
	FixedAmount decimal.Decimal  `json:"fixedAmount"`
	AuditFields
}

// TaxCredit is one named allowance row.
type TaxCredit struct {
	CreditID     string          `json:"creditID"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Granularity  string          `json:"granularity"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
