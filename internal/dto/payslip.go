package dto

import (
	"github.com/shopspring/decimal"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// PayslipLineResponse is the API representation of one payslip line item.
type PayslipLineResponse struct {
	TransactionID string          `json:"transactionID"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	AmountZWL     decimal.Decimal `json:"amountZWL"`
	AmountUSD     decimal.Decimal `json:"amountUSD"`
	Taxable       bool            `json:"taxable"`
}

// PayslipResponse is the API representation of a payslip with optional lines.
type PayslipResponse struct {
	PayslipID  string `json:"payslipID"`
	EmployeeID string `json:"employeeID"`
	PayrollID  string `json:"payrollID"`
	PeriodID   string `json:"periodID"`
	Status     string `json:"status"`

	GrossZWL      decimal.Decimal `json:"grossZWL"`
	GrossUSD      decimal.Decimal `json:"grossUSD"`
	DeductionsZWL decimal.Decimal `json:"deductionsZWL"`
	DeductionsUSD decimal.Decimal `json:"deductionsUSD"`
	NetZWL        decimal.Decimal `json:"netZWL"`
	NetUSD        decimal.Decimal `json:"netUSD"`

	YTDGrossZWL decimal.Decimal `json:"ytdGrossZWL"`
	YTDGrossUSD decimal.Decimal `json:"ytdGrossUSD"`
	YTDTaxZWL   decimal.Decimal `json:"ytdTaxZWL"`
	YTDTaxUSD   decimal.Decimal `json:"ytdTaxUSD"`

	Transactions []PayslipLineResponse `json:"transactions,omitempty"`
}

// ToPayslipResponse maps a domain payslip (with any loaded lines) to its API representation.
func ToPayslipResponse(p domain.Payslip) PayslipResponse {
	resp := PayslipResponse{
		PayslipID:     p.PayslipID,
		EmployeeID:    p.EmployeeID,
		PayrollID:     p.PayrollID,
		PeriodID:      p.PeriodID,
		Status:        string(p.Status),
		GrossZWL:      p.GrossZWL,
		GrossUSD:      p.GrossUSD,
		DeductionsZWL: p.DeductionsZWL,
		DeductionsUSD: p.DeductionsUSD,
		NetZWL:        p.NetZWL,
		NetUSD:        p.NetUSD,
		YTDGrossZWL:   p.YTDGrossZWL,
		YTDGrossUSD:   p.YTDGrossUSD,
		YTDTaxZWL:     p.YTDTaxZWL,
		YTDTaxUSD:     p.YTDTaxUSD,
	}
	for _, txn := range p.Transactions {
		resp.Transactions = append(resp.Transactions, PayslipLineResponse{
			TransactionID: txn.TransactionID,
			Description:   txn.Description,
			Type:          string(txn.Type),
			AmountZWL:     txn.AmountZWL,
			AmountUSD:     txn.AmountUSD,
			Taxable:       txn.Taxable,
		})
	}
	return resp
}

// TaxComputationResponse is the audit/breakdown view of one tax calculation.
type TaxComputationResponse struct {
	Currency       string                  `json:"currency"`
	Gross          decimal.Decimal         `json:"gross"`
	TotalCredits   decimal.Decimal         `json:"totalCredits"`
	TaxableIncome  decimal.Decimal         `json:"taxableIncome"`
	Tax            decimal.Decimal         `json:"tax"`
	EffectiveRate  decimal.Decimal         `json:"effectiveRate"`
	CreditsApplied []AppliedCreditResponse `json:"creditsApplied"`
}

// AppliedCreditResponse is one credit line of a tax computation breakdown.
type AppliedCreditResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ToTaxComputationResponse maps a domain computation to its API representation.
func ToTaxComputationResponse(c domain.TaxComputation) TaxComputationResponse {
	resp := TaxComputationResponse{
		Currency:      c.Currency,
		Gross:         c.Gross,
		TotalCredits:  c.TotalCredits,
		TaxableIncome: c.TaxableIncome,
		Tax:           c.Tax,
		EffectiveRate: c.EffectiveRate,
	}
	for _, credit := range c.CreditsApplied {
		resp.CreditsApplied = append(resp.CreditsApplied, AppliedCreditResponse{
			Name:   credit.Name,
			Amount: credit.Amount,
		})
	}
	return resp
}
