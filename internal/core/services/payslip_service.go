package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/middleware"
)

// payslipService exposes payslip reads and the lifecycle transitions that
// happen outside a processing run.
type payslipService struct {
	payslipRepo portsrepo.PayslipRepositoryFacade
}

// NewPayslipService creates a new PayslipService.
func NewPayslipService(payslipRepo portsrepo.PayslipRepositoryFacade) portssvc.PayslipSvcFacade {
	return &payslipService{payslipRepo: payslipRepo}
}

var _ portssvc.PayslipSvcFacade = (*payslipService)(nil)

// GetPayslipByID retrieves a payslip with its line items.
func (s *payslipService) GetPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error) {
	payslip, err := s.payslipRepo.FindPayslipByID(ctx, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payslip: %w", err)
	}

	transactions, err := s.payslipRepo.FindTransactionsByPayslipID(ctx, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payslip lines: %w", err)
	}
	payslip.Transactions = transactions
	return payslip, nil
}

// ListPayslipsByPeriodCenter retrieves payslip headers for a (period, center) pair.
func (s *payslipService) ListPayslipsByPeriodCenter(ctx context.Context, periodID, centerID string) ([]domain.Payslip, error) {
	return s.payslipRepo.ListPayslipsByPeriodCenter(ctx, periodID, centerID)
}

// transition moves a payslip between statuses after checking the forward-only
// rule against its current status. The repository re-checks the prior status
// in the UPDATE itself, so a concurrent transition cannot slip through.
func (s *payslipService) transition(ctx context.Context, payslipID string, to domain.PayslipStatus, actorID string) error {
	payslip, err := s.payslipRepo.FindPayslipByID(ctx, payslipID)
	if err != nil {
		return fmt.Errorf("failed to find payslip: %w", err)
	}

	if !payslip.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: payslip is %s, cannot move to %s", apperrors.ErrValidation, payslip.Status, to)
	}

	if err := s.payslipRepo.UpdatePayslipStatus(ctx, payslipID, payslip.Status, to, actorID, time.Now()); err != nil {
		return fmt.Errorf("failed to update payslip status: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Payslip status changed",
		slog.String("payslip_id", payslipID),
		slog.String("from", string(payslip.Status)),
		slog.String("to", string(to)),
	)
	return nil
}

// DistributePayslip moves a finalized payslip to distributed.
func (s *payslipService) DistributePayslip(ctx context.Context, payslipID string, actorID string) error {
	return s.transition(ctx, payslipID, domain.PayslipDistributed, actorID)
}

// CancelPayslip cancels a draft or finalized payslip. Blocked once distributed.
func (s *payslipService) CancelPayslip(ctx context.Context, payslipID string, actorID string) error {
	return s.transition(ctx, payslipID, domain.PayslipCancelled, actorID)
}

// DeletePayslip removes a payslip and its lines. Blocked once distributed.
func (s *payslipService) DeletePayslip(ctx context.Context, payslipID string, actorID string) error {
	payslip, err := s.payslipRepo.FindPayslipByID(ctx, payslipID)
	if err != nil {
		return fmt.Errorf("failed to find payslip: %w", err)
	}
	if payslip.Status == domain.PayslipDistributed {
		return fmt.Errorf("%w: a distributed payslip cannot be deleted", apperrors.ErrValidation)
	}

	if err := s.payslipRepo.DeletePayslip(ctx, payslipID); err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Payslip deleted",
		slog.String("payslip_id", payslipID),
		slog.String("actor_id", actorID),
	)
	return nil
}
