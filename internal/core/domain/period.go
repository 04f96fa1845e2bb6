package domain

import "time"

// Payroll is the parent grouping of accounting periods.
type Payroll struct {
	PayrollID    string `json:"payrollID"` // Primary Key (UUID)
	Name         string `json:"name"`
	BaseCurrency string `json:"baseCurrency"` // FK -> Currency.currencyCode
	AuditFields
}

// PeriodState is the derived calendar position of a period relative to "now".
// It is computed, never stored.
type PeriodState string

const (
	PeriodCurrent PeriodState = "CURRENT"
	PeriodFuture  PeriodState = "FUTURE"
	PeriodPast    PeriodState = "PAST"
)

// AccountingPeriod is a calendar-bounded payroll cycle (e.g., "March 2025").
// Invariants: EndDate strictly after StartDate; at most one period per
// (payroll, month, year).
type AccountingPeriod struct {
	PeriodID  string    `json:"periodID"`  // Primary Key (UUID)
	PayrollID string    `json:"payrollID"` // FK -> Payroll
	MonthName string    `json:"monthName"` // e.g., "March"
	Year      int       `json:"year"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	AuditFields
}

// State derives the Current/Future/Past position of the period at the given instant.
func (p AccountingPeriod) State(now time.Time) PeriodState {
	if now.Before(p.StartDate) {
		return PeriodFuture
	}
	if now.After(p.EndDate) {
		return PeriodPast
	}
	return PeriodCurrent
}

// ProcessingState is the per-(period, center) position in the run/close state machine.
type ProcessingState string

const (
	ProcessingPending   ProcessingState = "PENDING"
	ProcessingProcessed ProcessingState = "PROCESSED"
	ProcessingClosed    ProcessingState = "CLOSED"
)

// CenterPeriodStatus tracks run/pay/close progress for one (period, center) pair.
// Invariants: PayRunDate is never set while PeriodRunDate is nil;
// IsClosedConfirmed implies PayRunDate is set.
type CenterPeriodStatus struct {
	StatusID          string       `json:"statusID"` // Primary Key (UUID)
	PeriodID          string       `json:"periodID"` // FK -> AccountingPeriod
	CenterID          string       `json:"centerID"` // FK -> CostCenter
	CurrencyMode      CurrencyMode `json:"currencyMode"`
	PeriodRunDate     *time.Time   `json:"periodRunDate"`
	PayRunDate        *time.Time   `json:"payRunDate"`
	IsClosedConfirmed bool         `json:"isClosedConfirmed"`
	AuditFields
}

// State derives the processing state from the timestamps. A missing status row
// is Pending by definition; callers treat a nil *CenterPeriodStatus the same way.
func (s CenterPeriodStatus) State() ProcessingState {
	switch {
	case s.PeriodRunDate == nil:
		return ProcessingPending
	case s.PayRunDate == nil:
		return ProcessingProcessed
	default:
		return ProcessingClosed
	}
}
