package services

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

// PeriodSvcFacade manages payrolls, accounting periods, and status reads.
type PeriodSvcFacade interface {
	// CreatePayroll persists a new payroll.
	CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, creatorUserID string) (*domain.Payroll, error)

	// GeneratePeriods bulk-creates the twelve monthly periods of a calendar
	// year for a payroll. Atomic: an existing (payroll, month, year) aborts
	// the whole batch.
	GeneratePeriods(ctx context.Context, payrollID string, req dto.GeneratePeriodsRequest, creatorUserID string) ([]domain.AccountingPeriod, error)

	// GetPeriodByID retrieves an accounting period.
	GetPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)

	// ListPeriodsByPayroll retrieves a payroll's periods ordered by start date.
	ListPeriodsByPayroll(ctx context.Context, payrollID string) ([]domain.AccountingPeriod, error)

	// GetStatus retrieves the center period status; nil means no row yet (Pending).
	GetStatus(ctx context.Context, periodID, centerID string) (*domain.CenterPeriodStatus, error)
}
