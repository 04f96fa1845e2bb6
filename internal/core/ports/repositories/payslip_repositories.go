package repositories

import (
	"context"
	"time"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// ProcessingRepositoryFacade is the transactional boundary of the payroll
// processor. Each method runs as one database transaction spanning the full
// payslip set for a (period, center) pair: either everything is persisted and
// the status advances, or nothing is.
//
// Status advancement is an atomic conditional transition: a conditional UPDATE
// keyed on the expected prior state, so two concurrent calls cannot both pass
// the same guard. The claim failing yields the matching precondition error
// (ErrAlreadyRun, ErrNotRun, ErrAlreadyClosed).
type ProcessingRepositoryFacade interface {
	RepositoryWithTx

	// SaveRun inserts every payslip with its line items, lazily creates the
	// status row, and claims Pending -> Processed (sets period_run_date and the
	// chosen currency mode). Returns apperrors.ErrAlreadyRun if the center was
	// already run, apperrors.ErrAlreadyClosed if it is closed.
	SaveRun(ctx context.Context, status domain.CenterPeriodStatus, payslips []domain.Payslip, runAt time.Time) error

	// SaveRefresh rewrites the given draft payslips in place (totals and line
	// items) and refreshes period_run_date, guarded to the Processed state.
	// Returns apperrors.ErrNotRun or apperrors.ErrAlreadyClosed on a bad state.
	SaveRefresh(ctx context.Context, periodID, centerID string, mode domain.CurrencyMode, payslips []domain.Payslip, runAt time.Time, actorID string) error

	// CloseRun finalizes every draft payslip of the (period, center) pair and
	// claims Processed -> Closed (sets pay_run_date, is_closed_confirmed).
	// Non-draft payslips are left untouched. Returns the number of payslips
	// finalized.
	CloseRun(ctx context.Context, periodID, centerID string, closedAt time.Time, actorID string) (int, error)
}

// PayslipRepositoryFacade defines read and lifecycle operations on payslips
// outside the processing transaction.
type PayslipRepositoryFacade interface {
	// FindPayslipByID retrieves a payslip header.
	FindPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error)

	// FindTransactionsByPayslipID retrieves a payslip's line items.
	FindTransactionsByPayslipID(ctx context.Context, payslipID string) ([]domain.PayslipTransaction, error)

	// ListPayslipsByPeriodCenter retrieves payslip headers for a (period, center)
	// pair, joining through the employee's center assignment.
	ListPayslipsByPeriodCenter(ctx context.Context, periodID, centerID string) ([]domain.Payslip, error)

	// UpdatePayslipStatus conditionally moves a payslip from one status to
	// another. Returns apperrors.ErrValidation (wrapped) when the payslip is
	// not in the expected prior status.
	UpdatePayslipStatus(ctx context.Context, payslipID string, from, to domain.PayslipStatus, updatedBy string, at time.Time) error

	// DeletePayslip removes a payslip and (by cascade) its line items.
	DeletePayslip(ctx context.Context, payslipID string) error

	// SumFinalizedForYear accumulates gross and tax totals over the employee's
	// finalized and distributed payslips for the given payroll and year.
	SumFinalizedForYear(ctx context.Context, employeeID, payrollID string, year int) (domain.YTDTotals, error)
}
