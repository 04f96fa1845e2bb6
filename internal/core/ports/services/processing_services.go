package services

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// ProcessingSvcFacade drives the per-(period, center) run/refresh/close/reopen
// state machine. Every operation checks the actor's permission for the center
// before touching state, executes as one atomic transaction, and records an
// audit event on success.
type ProcessingSvcFacade interface {
	// RunPeriod computes payslips for every active employee of the center and
	// advances Pending -> Processed. Rejected with ErrAlreadyRun when the
	// center was already run, ErrNoEligibleEmployees when the roster is empty.
	RunPeriod(ctx context.Context, periodID, centerID string, mode domain.CurrencyMode, actorID string) (int, error)

	// RefreshPeriod recomputes the center's draft payslips in place.
	// Only allowed from Processed; finalized or distributed payslips are left
	// untouched.
	RefreshPeriod(ctx context.Context, periodID, centerID string, mode domain.CurrencyMode, actorID string) (int, error)

	// ClosePeriod finalizes the center's draft payslips and advances
	// Processed -> Closed. Returns the number of payslips finalized.
	ClosePeriod(ctx context.Context, periodID, centerID string, actorID string) (int, error)

	// ReopenPeriod rolls Closed -> Processed, clearing the pay run date and
	// confirmation flag. Payslip statuses are not altered.
	ReopenPeriod(ctx context.Context, periodID, centerID string, actorID string) error

	// UnconfirmPeriod clears only the close confirmation flag.
	UnconfirmPeriod(ctx context.Context, periodID, centerID string, actorID string) error
}
