package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/middleware"
)

// processingService orchestrates the per-(period, center) run/refresh/close/
// reopen state machine. It prepares the full payslip set in memory and hands it
// to the processing repository, which persists everything in one transaction
// and claims the state transition atomically.
type processingService struct {
	processingRepo portsrepo.ProcessingRepositoryFacade
	payslipRepo    portsrepo.PayslipRepositoryFacade
	periodRepo     portsrepo.PeriodRepositoryFacade
	statusRepo     portsrepo.StatusRepositoryFacade
	employeeSvc    portssvc.EmployeeSvcFacade
	userSvc        portssvc.UserSvcFacade
	splitSvc       portssvc.CurrencySplitSvcFacade
	taxSvc         portssvc.TaxSvcFacade
	rateSvc        portssvc.ExchangeRateSvcFacade
	auditSvc       portssvc.AuditSvcFacade
}

// NewProcessingService creates a new ProcessingService.
func NewProcessingService(
	processingRepo portsrepo.ProcessingRepositoryFacade,
	payslipRepo portsrepo.PayslipRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	statusRepo portsrepo.StatusRepositoryFacade,
	employeeSvc portssvc.EmployeeSvcFacade,
	userSvc portssvc.UserSvcFacade,
	splitSvc portssvc.CurrencySplitSvcFacade,
	taxSvc portssvc.TaxSvcFacade,
	rateSvc portssvc.ExchangeRateSvcFacade,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.ProcessingSvcFacade {
	return &processingService{
		processingRepo: processingRepo,
		payslipRepo:    payslipRepo,
		periodRepo:     periodRepo,
		statusRepo:     statusRepo,
		employeeSvc:    employeeSvc,
		userSvc:        userSvc,
		splitSvc:       splitSvc,
		taxSvc:         taxSvc,
		rateSvc:        rateSvc,
		auditSvc:       auditSvc,
	}
}

var _ portssvc.ProcessingSvcFacade = (*processingService)(nil)

// runContext bundles the reference data one processing pass needs.
type runContext struct {
	period  *domain.AccountingPeriod
	payroll *domain.Payroll
	center  *domain.CostCenter
	mode    domain.CurrencyMode
	split   domain.CurrencySplit
}

// loadRunContext authorizes the actor and loads period, payroll, center, and
// the effective currency split for the pass.
func (s *processingService) loadRunContext(ctx context.Context, periodID, centerID string, mode domain.CurrencyMode, actorID string) (*runContext, error) {
	if err := s.userSvc.AuthorizeProcessing(ctx, actorID, centerID); err != nil {
		return nil, err
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unsupported currency mode '%s'", apperrors.ErrValidation, mode)
	}

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period: %w", err)
	}
	payroll, err := s.periodRepo.FindPayrollByID(ctx, period.PayrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payroll: %w", err)
	}
	center, err := s.employeeSvc.GetCenterByID(ctx, centerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cost center: %w", err)
	}
	if !center.IsActive {
		return nil, fmt.Errorf("%w: cost center '%s' is inactive", apperrors.ErrValidation, center.Code)
	}

	rc := &runContext{period: period, payroll: payroll, center: center, mode: mode}
	if mode == domain.ModeDefault {
		split, err := s.splitSvc.GetCurrentSplit(ctx, centerID)
		if err != nil {
			return nil, err
		}
		rc.split = split
	}
	return rc, nil
}

// resolveGrossLegs apportions an employee's basic salary across the (ZWL, USD)
// legs per the run's currency mode, converting each leg from the payroll's base
// currency. A leg with a zero portion stays zero without a rate lookup.
func (s *processingService) resolveGrossLegs(ctx context.Context, rc *runContext, basic decimal.Decimal) (zwl, usd decimal.Decimal, err error) {
	var baseZWL, baseUSD decimal.Decimal
	switch rc.mode {
	case domain.ModeZWL:
		baseZWL = basic
	case domain.ModeUSD:
		baseUSD = basic
	default:
		baseZWL, baseUSD = s.splitSvc.SplitSalary(basic, rc.split)
	}

	zwl = decimal.Zero
	if baseZWL.IsPositive() {
		zwl, err = s.rateSvc.Convert(ctx, baseZWL, rc.payroll.BaseCurrency, domain.CurrencyZWL)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
	}
	usd = decimal.Zero
	if baseUSD.IsPositive() {
		usd, err = s.rateSvc.Convert(ctx, baseUSD, rc.payroll.BaseCurrency, domain.CurrencyUSD)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
	}
	return zwl, usd, nil
}

// legTax computes monthly PAYE for one leg, skipping the calculator entirely
// for a zero leg.
func (s *processingService) legTax(ctx context.Context, employee domain.Employee, gross decimal.Decimal, currency string) (decimal.Decimal, error) {
	if !gross.IsPositive() {
		return decimal.Zero, nil
	}
	comp, err := s.taxSvc.CalculateTax(ctx, employee, gross, currency, domain.GranularityMonthly)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute %s tax for employee %s: %w", currency, employee.EmployeeID, err)
	}
	return comp.Tax, nil
}

// buildPayslip computes one employee's draft payslip for the pass. When
// refreshing, existingID keeps the payslip's identity so lines are rewritten
// under the same header.
func (s *processingService) buildPayslip(ctx context.Context, rc *runContext, employee domain.Employee, existingID string, now time.Time, actorID string) (domain.Payslip, error) {
	grossZWL, grossUSD, err := s.resolveGrossLegs(ctx, rc, employee.BasicSalary)
	if err != nil {
		return domain.Payslip{}, fmt.Errorf("failed to apportion salary for employee %s: %w", employee.EmployeeID, err)
	}

	taxZWL, err := s.legTax(ctx, employee, grossZWL, domain.CurrencyZWL)
	if err != nil {
		return domain.Payslip{}, err
	}
	taxUSD, err := s.legTax(ctx, employee, grossUSD, domain.CurrencyUSD)
	if err != nil {
		return domain.Payslip{}, err
	}

	ytd, err := s.payslipRepo.SumFinalizedForYear(ctx, employee.EmployeeID, rc.payroll.PayrollID, rc.period.Year)
	if err != nil {
		return domain.Payslip{}, fmt.Errorf("failed to load YTD totals for employee %s: %w", employee.EmployeeID, err)
	}

	payslipID := existingID
	if payslipID == "" {
		payslipID = uuid.NewString()
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	payslip := domain.Payslip{
		PayslipID:  payslipID,
		EmployeeID: employee.EmployeeID,
		PayrollID:  rc.payroll.PayrollID,
		PeriodID:   rc.period.PeriodID,
		Status:     domain.PayslipDraft,

		GrossZWL:      grossZWL,
		GrossUSD:      grossUSD,
		DeductionsZWL: taxZWL,
		DeductionsUSD: taxUSD,
		NetZWL:        grossZWL.Sub(taxZWL),
		NetUSD:        grossUSD.Sub(taxUSD),

		YTDGrossZWL: ytd.GrossZWL.Add(grossZWL),
		YTDGrossUSD: ytd.GrossUSD.Add(grossUSD),
		YTDTaxZWL:   ytd.TaxZWL.Add(taxZWL),
		YTDTaxUSD:   ytd.TaxUSD.Add(taxUSD),

		Transactions: []domain.PayslipTransaction{
			{
				TransactionID: uuid.NewString(),
				PayslipID:     payslipID,
				Description:   domain.LineBasicSalary,
				Type:          domain.LineEarning,
				AmountZWL:     grossZWL,
				AmountUSD:     grossUSD,
				Taxable:       true,
				AuditFields:   audit,
			},
			{
				TransactionID: uuid.NewString(),
				PayslipID:     payslipID,
				Description:   domain.LinePAYETax,
				Type:          domain.LineDeduction,
				AmountZWL:     taxZWL,
				AmountUSD:     taxUSD,
				Taxable:       false,
				AuditFields:   audit,
			},
		},
		AuditFields: audit,
	}
	return payslip, nil
}

// RunPeriod computes payslips for every active employee of the center and
// advances Pending -> Processed. The whole set persists atomically; a failure
// for any single employee aborts the run.
func (s *processingService) RunPeriod(ctx context.Context, periodID, centerID string, mode domain.CurrencyMode, actorID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rc, err := s.loadRunContext(ctx, periodID, centerID, mode, actorID)
	if err != nil {
		return 0, err
	}

	roster, err := s.employeeSvc.ListActiveEmployeesByCenter(ctx, centerID)
	if err != nil {
		return 0, fmt.Errorf("failed to load roster: %w", err)
	}
	if len(roster) == 0 {
		return 0, fmt.Errorf("%w: center '%s' has no active employees", apperrors.ErrNoEligibleEmployees, rc.center.Code)
	}

	now := time.Now()
	payslips := make([]domain.Payslip, 0, len(roster))
	for _, employee := range roster {
		payslip, err := s.buildPayslip(ctx, rc, employee, "", now, actorID)
		if err != nil {
			return 0, err
		}
		payslips = append(payslips, payslip)
	}

	status := domain.CenterPeriodStatus{
		StatusID:     uuid.NewString(),
		PeriodID:     periodID,
		CenterID:     centerID,
		CurrencyMode: mode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.processingRepo.SaveRun(ctx, status, payslips, now); err != nil {
		return 0, fmt.Errorf("failed to run period: %w", err)
	}

	s.recordTransition(ctx, actorID, domain.AuditPeriodRun, periodID, centerID, domain.ProcessingPending, domain.ProcessingProcessed, now)
	logger.Info("Period run completed",
		slog.String("period_id", periodID),
		slog.String("center_id", centerID),
		slog.String("mode", string(mode)),
		slog.Int("payslips", len(payslips)),
	)
	return len(payslips), nil
}

// RefreshPeriod recomputes the center's draft payslips in place against the
// current roster data, rates, and tax tables. Finalized and distributed
// payslips are left untouched; only a Processed pair may refresh.
func (s *processingService) RefreshPeriod(ctx context.Context, periodID, centerID string, mode domain.CurrencyMode, actorID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rc, err := s.loadRunContext(ctx, periodID, centerID, mode, actorID)
	if err != nil {
		return 0, err
	}

	existing, err := s.payslipRepo.ListPayslipsByPeriodCenter(ctx, periodID, centerID)
	if err != nil {
		return 0, fmt.Errorf("failed to load payslips: %w", err)
	}

	now := time.Now()
	payslips := make([]domain.Payslip, 0, len(existing))
	for _, prior := range existing {
		if prior.Status != domain.PayslipDraft {
			continue
		}
		employee, err := s.employeeSvc.GetEmployeeByID(ctx, prior.EmployeeID)
		if err != nil {
			return 0, fmt.Errorf("failed to find employee %s: %w", prior.EmployeeID, err)
		}
		payslip, err := s.buildPayslip(ctx, rc, *employee, prior.PayslipID, now, actorID)
		if err != nil {
			return 0, err
		}
		payslip.CreatedAt = prior.CreatedAt
		payslip.CreatedBy = prior.CreatedBy
		payslips = append(payslips, payslip)
	}

	if err := s.processingRepo.SaveRefresh(ctx, periodID, centerID, mode, payslips, now, actorID); err != nil {
		return 0, fmt.Errorf("failed to refresh period: %w", err)
	}

	s.recordTransition(ctx, actorID, domain.AuditPeriodRefresh, periodID, centerID, domain.ProcessingProcessed, domain.ProcessingProcessed, now)
	logger.Info("Period refresh completed",
		slog.String("period_id", periodID),
		slog.String("center_id", centerID),
		slog.Int("payslips", len(payslips)),
	)
	return len(payslips), nil
}

// ClosePeriod finalizes the center's draft payslips and advances
// Processed -> Closed.
func (s *processingService) ClosePeriod(ctx context.Context, periodID, centerID string, actorID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.userSvc.AuthorizeProcessing(ctx, actorID, centerID); err != nil {
		return 0, err
	}

	now := time.Now()
	finalized, err := s.processingRepo.CloseRun(ctx, periodID, centerID, now, actorID)
	if err != nil {
		return 0, fmt.Errorf("failed to close period: %w", err)
	}

	s.recordTransition(ctx, actorID, domain.AuditPeriodClose, periodID, centerID, domain.ProcessingProcessed, domain.ProcessingClosed, now)
	logger.Info("Period closed",
		slog.String("period_id", periodID),
		slog.String("center_id", centerID),
		slog.Int("finalized", finalized),
	)
	return finalized, nil
}

// ReopenPeriod rolls Closed -> Processed, clearing the pay run date and the
// confirmation flag. Payslip statuses are deliberately not altered.
func (s *processingService) ReopenPeriod(ctx context.Context, periodID, centerID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.userSvc.AuthorizeProcessing(ctx, actorID, centerID); err != nil {
		return err
	}

	now := time.Now()
	if err := s.statusRepo.ReopenStatus(ctx, periodID, centerID, actorID, now); err != nil {
		return fmt.Errorf("failed to reopen period: %w", err)
	}

	s.recordTransition(ctx, actorID, domain.AuditPeriodReopen, periodID, centerID, domain.ProcessingClosed, domain.ProcessingProcessed, now)
	logger.Info("Period reopened",
		slog.String("period_id", periodID),
		slog.String("center_id", centerID),
	)
	return nil
}

// UnconfirmPeriod clears only the close confirmation flag; the pair stays Closed.
func (s *processingService) UnconfirmPeriod(ctx context.Context, periodID, centerID string, actorID string) error {
	if err := s.userSvc.AuthorizeProcessing(ctx, actorID, centerID); err != nil {
		return err
	}

	now := time.Now()
	if err := s.statusRepo.UnconfirmStatus(ctx, periodID, centerID, actorID, now); err != nil {
		return fmt.Errorf("failed to unconfirm period: %w", err)
	}

	s.recordTransition(ctx, actorID, domain.AuditPeriodUnconfirm, periodID, centerID, domain.ProcessingClosed, domain.ProcessingClosed, now)
	return nil
}

// recordTransition appends an audit event. Audit is best effort: a sink
// failure is logged, never surfaced, because the state change already committed.
func (s *processingService) recordTransition(ctx context.Context, actorID, action, periodID, centerID string, before, after domain.ProcessingState, at time.Time) {
	event := domain.AuditEvent{
		EventID:     uuid.NewString(),
		ActorID:     actorID,
		Action:      action,
		PeriodID:    periodID,
		CenterID:    centerID,
		BeforeState: string(before),
		AfterState:  string(after),
		OccurredAt:  at,
	}
	if err := s.auditSvc.RecordTransition(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record audit event",
			slog.String("action", action),
			slog.String("period_id", periodID),
			slog.String("center_id", centerID),
			slog.String("error", err.Error()),
		)
	}
}
