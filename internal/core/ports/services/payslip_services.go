package services

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// PayslipSvcFacade exposes payslip reads and the forward-only lifecycle
// transitions that happen outside a processing run.
type PayslipSvcFacade interface {
	// GetPayslipByID retrieves a payslip with its line items.
	GetPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error)

	// ListPayslipsByPeriodCenter retrieves payslip headers for a (period, center) pair.
	ListPayslipsByPeriodCenter(ctx context.Context, periodID, centerID string) ([]domain.Payslip, error)

	// DistributePayslip moves a finalized payslip to distributed.
	DistributePayslip(ctx context.Context, payslipID string, actorID string) error

	// CancelPayslip cancels a payslip. Blocked once distributed.
	CancelPayslip(ctx context.Context, payslipID string, actorID string) error

	// DeletePayslip removes a payslip and its lines. Blocked once distributed.
	DeletePayslip(ctx context.Context, payslipID string, actorID string) error
}
