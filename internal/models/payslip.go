package models

import "github.com/shopspring/decimal"

// Payslip is one payslip header row.
type Payslip struct {
	PayslipID  string `json:"payslipID"`
	EmployeeID string `json:"employeeID"` // FK -> Employee
	PayrollID  string `json:"payrollID"`  // FK -> Payroll
	PeriodID   string `json:"periodID"`   // FK -> AccountingPeriod
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
	AuditFields
}

// PayslipTransaction is one payslip line item row (cascade-deleted with its payslip).
type PayslipTransaction struct {
	TransactionID string          `json:"transactionID"`
	PayslipID     string          `json:"payslipID"` // FK -> Payslip
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	AmountZWL     decimal.Decimal `json:"amountZWL"`
	AmountUSD     decimal.Decimal `json:"amountUSD"`
	Taxable       bool            `json:"taxable"`
	AuditFields
}
