package dto

import (
	"github.com/shopspring/decimal"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// CreateTaxBandRequest is the payload for inserting a tax band.
type CreateTaxBandRequest struct {
	Currency    string           `json:"currency" binding:"required,oneof=USD ZWL"`
	Granularity string           `json:"granularity" binding:"required,oneof=MONTHLY ANNUAL"`
	MinSalary   decimal.Decimal  `json:"minSalary"`
	MaxSalary   *decimal.Decimal `json:"maxSalary"` // omit for the open-ended top band
	Rate        decimal.Decimal  `json:"rate" binding:"required"`
	FixedAmount decimal.Decimal  `json:"fixedAmount"`
}

// UpdateTaxBandRequest is the payload for rewriting a tax band.
type UpdateTaxBandRequest struct {
	MinSalary   decimal.Decimal  `json:"minSalary"`
	MaxSalary   *decimal.Decimal `json:"maxSalary"`
	Rate        decimal.Decimal  `json:"rate" binding:"required"`
	FixedAmount decimal.Decimal  `json:"fixedAmount"`
}

// TaxBandResponse is the API representation of a tax band.
type TaxBandResponse struct {
	BandID      string           `json:"bandID"`
	Currency    string           `json:"currency"`
	Granularity string           `json:"granularity"`
	MinSalary   decimal.Decimal  `json:"minSalary"`
	MaxSalary   *decimal.Decimal `json:"maxSalary"`
	Rate        decimal.Decimal  `json:"rate"`
	FixedAmount decimal.Decimal  `json:"fixedAmount"`
}

// ToTaxBandResponse maps a domain band to its API representation.
func ToTaxBandResponse(b domain.TaxBand) TaxBandResponse {
	return TaxBandResponse{
		BandID:      b.BandID,
		Currency:    b.Currency,
		Granularity: string(b.Granularity),
		MinSalary:   b.MinSalary,
		MaxSalary:   b.MaxSalary,
		Rate:        b.Rate,
		FixedAmount: b.FixedAmount,
	}
}

// CalculateTaxRequest asks for a standalone tax computation for one employee.
type CalculateTaxRequest struct {
	EmployeeID  string          `json:"employeeID" binding:"required"`
	Gross       decimal.Decimal `json:"gross" binding:"required"`
	Currency    string          `json:"currency" binding:"required,oneof=USD ZWL"`
	Granularity string          `json:"granularity" binding:"required,oneof=MONTHLY ANNUAL"`
}

// CreateTaxCreditRequest is the payload for creating a tax credit.
type CreateTaxCreditRequest struct {
	Name         string          `json:"name" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Granularity  string          `json:"granularity" binding:"required,oneof=MONTHLY ANNUAL"`
	IsActive     bool            `json:"isActive"`
}

// TaxCreditResponse is the API representation of a tax credit.
type TaxCreditResponse struct {
	CreditID     string          `json:"creditID"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Granularity  string          `json:"granularity"`
	IsActive     bool            `json:"isActive"`
}

// ToTaxCreditResponse maps a domain credit to its API representation.
func ToTaxCreditResponse(c domain.TaxCredit) TaxCreditResponse {
	return TaxCreditResponse{
		CreditID:     c.CreditID,
		Name:         c.Name,
		Amount:       c.Amount,
		CurrencyCode: c.CurrencyCode,
		Granularity:  string(c.Granularity),
		IsActive:     c.IsActive,
	}
}
