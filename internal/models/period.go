package models

import "time"

// Payroll is the parent grouping of accounting periods.
type Payroll struct {
	PayrollID    string `json:"payrollID"`
	Name         string `json:"name"`
	BaseCurrency string `json:"baseCurrency"`
	AuditFields
}

// AccountingPeriod is one calendar payroll cycle row.
type AccountingPeriod struct {
	PeriodID  string    `json:"periodID"`
	PayrollID string    `json:"payrollID"` // FK -> Payroll
	MonthName string    `json:"monthName"`
	Year      int       `json:"year"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	AuditFields
}

// CenterPeriodStatus is the per-(period, center) processing status row.
// UNIQUE (period_id, center_id).
type CenterPeriodStatus struct {
	StatusID          string     `json:"statusID"`
	PeriodID          string     `json:"periodID"` // FK -> AccountingPeriod
	CenterID          string     `json:"centerID"` // FK -> CostCenter
	CurrencyMode      string     `json:"currencyMode"`
	PeriodRunDate     *time.Time `json:"periodRunDate"`
	PayRunDate        *time.Time `json:"payRunDate"`
	IsClosedConfirmed bool       `json:"isClosedConfirmed"`
	AuditFields
}
