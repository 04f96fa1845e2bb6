package repositories

import (
	"context"
	"time"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// PeriodRepositoryFacade defines persistence operations for payrolls and their periods.
type PeriodRepositoryFacade interface {
	// FindPayrollByID retrieves a payroll by ID.
	FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error)

	// SavePayroll persists a new payroll.
	SavePayroll(ctx context.Context, payroll domain.Payroll) error

	// SavePeriods persists a batch of accounting periods atomically.
	// Returns apperrors.ErrDuplicate (wrapped) if any (payroll, month, year)
	// already exists.
	SavePeriods(ctx context.Context, periods []domain.AccountingPeriod) error

	// FindPeriodByID retrieves an accounting period by ID.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)

	// ListPeriodsByPayroll retrieves a payroll's periods ordered by start date.
	ListPeriodsByPayroll(ctx context.Context, payrollID string) ([]domain.AccountingPeriod, error)
}

// StatusRepositoryFacade defines persistence operations for center period statuses.
// Backward transitions (reopen/unconfirm) are conditional updates: they succeed
// only when the row is in the expected prior state, otherwise the matching
// precondition error is returned.
type StatusRepositoryFacade interface {
	// FindStatus retrieves the status row for (period, center).
	// Returns apperrors.ErrNotFound (wrapped) when no row exists, which callers
	// treat as Pending.
	FindStatus(ctx context.Context, periodID, centerID string) (*domain.CenterPeriodStatus, error)

	// ReopenStatus moves Closed -> Processed: clears pay_run_date and the
	// confirmed flag. Returns apperrors.ErrNotClosed when the row is not Closed.
	ReopenStatus(ctx context.Context, periodID, centerID string, actorID string, at time.Time) error

	// UnconfirmStatus clears only the confirmed flag of a closed row.
	// Returns apperrors.ErrNotClosed when the flag is not set.
	UnconfirmStatus(ctx context.Context, periodID, centerID string, actorID string, at time.Time) error
}
