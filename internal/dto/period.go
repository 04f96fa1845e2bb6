package dto

import (
	"time"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// CreatePayrollRequest is the payload for creating a payroll.
type CreatePayrollRequest struct {
	Name         string `json:"name" binding:"required"`
	BaseCurrency string `json:"baseCurrency" binding:"required,len=3,uppercase"`
}

// PayrollResponse is the API representation of a payroll.
type PayrollResponse struct {
	PayrollID    string `json:"payrollID"`
	Name         string `json:"name"`
	BaseCurrency string `json:"baseCurrency"`
}

// ToPayrollResponse maps a domain payroll to its API representation.
func ToPayrollResponse(p domain.Payroll) PayrollResponse {
	return PayrollResponse{
		PayrollID:    p.PayrollID,
		Name:         p.Name,
		BaseCurrency: p.BaseCurrency,
	}
}

// GeneratePeriodsRequest asks for the twelve periods of a calendar year.
type GeneratePeriodsRequest struct {
	Year int `json:"year" binding:"required,min=2000,max=2100"`
}

// PeriodResponse is the API representation of an accounting period.
type PeriodResponse struct {
	PeriodID  string    `json:"periodID"`
	PayrollID string    `json:"payrollID"`
	MonthName string    `json:"monthName"`
	Year      int       `json:"year"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	State     string    `json:"state"` // CURRENT / FUTURE / PAST, derived
}

// ToPeriodResponse maps a domain period to its API representation.
func ToPeriodResponse(p domain.AccountingPeriod, now time.Time) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		PayrollID: p.PayrollID,
		MonthName: p.MonthName,
		Year:      p.Year,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		State:     string(p.State(now)),
	}
}

// StatusResponse is the API representation of a center period status.
type StatusResponse struct {
	PeriodID          string     `json:"periodID"`
	CenterID          string     `json:"centerID"`
	State             string     `json:"state"` // PENDING / PROCESSED / CLOSED
	CurrencyMode      string     `json:"currencyMode,omitempty"`
	PeriodRunDate     *time.Time `json:"periodRunDate"`
	PayRunDate        *time.Time `json:"payRunDate"`
	IsClosedConfirmed bool       `json:"isClosedConfirmed"`
}

// ToStatusResponse maps a status row to its API representation. A nil status
// (no row yet) is reported as Pending.
func ToStatusResponse(periodID, centerID string, s *domain.CenterPeriodStatus) StatusResponse {
	if s == nil {
		return StatusResponse{
			PeriodID: periodID,
			CenterID: centerID,
			State:    string(domain.ProcessingPending),
		}
	}
	return StatusResponse{
		PeriodID:          s.PeriodID,
		CenterID:          s.CenterID,
		State:             string(s.State()),
		CurrencyMode:      string(s.CurrencyMode),
		PeriodRunDate:     s.PeriodRunDate,
		PayRunDate:        s.PayRunDate,
		IsClosedConfirmed: s.IsClosedConfirmed,
	}
}
