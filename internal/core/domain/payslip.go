package domain

import "github.com/shopspring/decimal"

// PayslipStatus is the lifecycle state of a payslip. Transitions only move
// forward (draft -> finalized -> distributed); cancel is blocked once distributed.
type PayslipStatus string

const (
	PayslipDraft       PayslipStatus = "DRAFT"
	PayslipFinalized   PayslipStatus = "FINALIZED"
	PayslipDistributed PayslipStatus = "DISTRIBUTED"
	PayslipCancelled   PayslipStatus = "CANCELLED"
)

// CanTransitionTo reports whether a status change is a legal forward move.
func (s PayslipStatus) CanTransitionTo(next PayslipStatus) bool {
	switch s {
	case PayslipDraft:
		return next == PayslipFinalized || next == PayslipCancelled
	case PayslipFinalized:
		return next == PayslipDistributed || next == PayslipCancelled
	default:
		return false
	}
}

// LineType distinguishes earning and deduction payslip lines.
type LineType string

const (
	LineEarning   LineType = "EARNING"
	LineDeduction LineType = "DEDUCTION"
)

// Standard line descriptions materialized by the processor.
const (
	LineBasicSalary = "Basic Salary"
	LinePAYETax     = "PAYE Tax"
)

// Payslip is the output artifact of a run: one per (employee, payroll, period),
// with dual-currency totals and year-to-date accumulators.
type Payslip struct {
	PayslipID  string        `json:"payslipID"`  // Primary Key (UUID)
	EmployeeID string        `json:"employeeID"` // FK -> Employee
	PayrollID  string        `json:"payrollID"`  // FK -> Payroll
	PeriodID   string        `json:"periodID"`   // FK -> AccountingPeriod
	Status     PayslipStatus `json:"status"`

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

	// Transactions are the owned line items; populated on demand.
	Transactions []PayslipTransaction `json:"transactions,omitempty"`
	AuditFields
}

// YTDTotals accumulates finalized payslip totals for an employee's year to date.
type YTDTotals struct {
	GrossZWL decimal.Decimal `json:"grossZWL"`
	GrossUSD decimal.Decimal `json:"grossUSD"`
	TaxZWL   decimal.Decimal `json:"taxZWL"`
	TaxUSD   decimal.Decimal `json:"taxUSD"`
}

// PayslipTransaction is one earning or deduction line owned by a payslip.
type PayslipTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	PayslipID     string          `json:"payslipID"`     // FK -> Payslip (cascade delete)
	Description   string          `json:"description"`
	Type          LineType        `json:"type"`
	AmountZWL     decimal.Decimal `json:"amountZWL"`
	AmountUSD     decimal.Decimal `json:"amountUSD"`
	Taxable       bool            `json:"taxable"`
	AuditFields
}
