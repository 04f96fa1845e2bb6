package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
	"github.com/zbpay/payroll_processing_app/internal/middleware"
)

// periodService manages payrolls, accounting periods, and status reads.
type periodService struct {
	periodRepo  portsrepo.PeriodRepositoryFacade
	statusRepo  portsrepo.StatusRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, statusRepo portsrepo.StatusRepositoryFacade, currencySvc portssvc.CurrencySvcFacade) portssvc.PeriodSvcFacade {
	return &periodService{
		periodRepo:  periodRepo,
		statusRepo:  statusRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePayroll persists a new payroll after validating its base currency.
func (s *periodService) CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, creatorUserID string) (*domain.Payroll, error) {
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.BaseCurrency); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: base currency '%s' not found", apperrors.ErrValidation, req.BaseCurrency)
		}
		return nil, fmt.Errorf("failed to validate base currency: %w", err)
	}

	now := time.Now()
	payroll := domain.Payroll{
		PayrollID:    uuid.NewString(),
		Name:         req.Name,
		BaseCurrency: req.BaseCurrency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.periodRepo.SavePayroll(ctx, payroll); err != nil {
		return nil, fmt.Errorf("failed to create payroll: %w", err)
	}
	return &payroll, nil
}

// GeneratePeriods bulk-creates the twelve monthly periods of a calendar year.
// The batch is saved atomically; a duplicate (payroll, month, year) aborts all
// twelve.
func (s *periodService) GeneratePeriods(ctx context.Context, payrollID string, req dto.GeneratePeriodsRequest, creatorUserID string) ([]domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.periodRepo.FindPayrollByID(ctx, payrollID); err != nil {
		return nil, fmt.Errorf("failed to find payroll: %w", err)
	}

	now := time.Now()
	periods := make([]domain.AccountingPeriod, 0, 12)
	for month := time.January; month <= time.December; month++ {
		start := time.Date(req.Year, month, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		periods = append(periods, domain.AccountingPeriod{
			PeriodID:  uuid.NewString(),
			PayrollID: payrollID,
			MonthName: month.String(),
			Year:      req.Year,
			StartDate: start,
			EndDate:   end,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		})
	}

	if err := s.periodRepo.SavePeriods(ctx, periods); err != nil {
		return nil, fmt.Errorf("failed to generate periods for year %d: %w", req.Year, err)
	}

	logger.Info("Generated accounting periods",
		slog.String("payroll_id", payrollID),
		slog.Int("year", req.Year),
		slog.Int("count", len(periods)),
	)
	return periods, nil
}

// GetPeriodByID retrieves an accounting period.
func (s *periodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	return s.periodRepo.FindPeriodByID(ctx, periodID)
}

// ListPeriodsByPayroll retrieves a payroll's periods ordered by start date.
func (s *periodService) ListPeriodsByPayroll(ctx context.Context, payrollID string) ([]domain.AccountingPeriod, error) {
	return s.periodRepo.ListPeriodsByPayroll(ctx, payrollID)
}

// GetStatus retrieves the center period status. A missing row is reported as
// (nil, nil): the pair has never been run and is Pending.
func (s *periodService) GetStatus(ctx context.Context, periodID, centerID string) (*domain.CenterPeriodStatus, error) {
	status, err := s.statusRepo.FindStatus(ctx, periodID, centerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get center period status: %w", err)
	}
	return status, nil
}
