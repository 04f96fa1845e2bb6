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
	"github.com/zbpay/payroll_processing_app/internal/dto"
	"github.com/zbpay/payroll_processing_app/internal/middleware"
)

// taxService provides tax band management and the progressive tax calculator.
type taxService struct {
	bandRepo   portsrepo.TaxBandRepositoryFacade
	creditRepo portsrepo.TaxCreditRepositoryFacade
	rateSvc    portssvc.ExchangeRateSvcFacade
}

// NewTaxService creates a new TaxService.
func NewTaxService(bandRepo portsrepo.TaxBandRepositoryFacade, creditRepo portsrepo.TaxCreditRepositoryFacade, rateSvc portssvc.ExchangeRateSvcFacade) portssvc.TaxSvcFacade {
	return &taxService{
		bandRepo:   bandRepo,
		creditRepo: creditRepo,
		rateSvc:    rateSvc,
	}
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

var one = decimal.NewFromInt(1)

// validateBand checks a band's own shape and its fit against sibling rows.
// excludeBandID skips the band itself during updates.
func (s *taxService) validateBand(ctx context.Context, band domain.TaxBand, excludeBandID string) error {
	if !band.TableKey().Valid() {
		return fmt.Errorf("%w: unsupported band table %s/%s", apperrors.ErrValidation, band.Currency, band.Granularity)
	}
	if band.MinSalary.IsNegative() {
		return fmt.Errorf("%w: minimum salary cannot be negative", apperrors.ErrValidation)
	}
	if band.Rate.IsNegative() || band.Rate.GreaterThan(one) {
		return fmt.Errorf("%w: tax rate must be a fraction between 0 and 1", apperrors.ErrValidation)
	}
	if band.FixedAmount.IsNegative() {
		return fmt.Errorf("%w: fixed tax amount cannot be negative", apperrors.ErrValidation)
	}
	if band.MaxSalary != nil && band.MaxSalary.LessThanOrEqual(band.MinSalary) {
		return fmt.Errorf("%w: maximum salary must be greater than minimum salary", apperrors.ErrValidation)
	}

	siblings, err := s.bandRepo.ListTaxBands(ctx, band.TableKey())
	if err != nil {
		return fmt.Errorf("failed to load sibling bands: %w", err)
	}
	for _, sibling := range siblings {
		if sibling.BandID == excludeBandID {
			continue
		}
		if band.Overlaps(sibling) {
			return fmt.Errorf("%w: band [%s, %s) overlaps existing band %s",
				apperrors.ErrValidation, band.MinSalary.String(), maxLabel(band.MaxSalary), sibling.BandID)
		}
	}
	return nil
}

func maxLabel(max *decimal.Decimal) string {
	if max == nil {
		return "inf"
	}
	return max.String()
}

// CreateTaxBand validates and inserts a new band.
func (s *taxService) CreateTaxBand(ctx context.Context, req dto.CreateTaxBandRequest, creatorUserID string) (*domain.TaxBand, error) {
	now := time.Now()
	band := domain.TaxBand{
		BandID:      uuid.NewString(),
		Currency:    req.Currency,
		Granularity: domain.TaxGranularity(req.Granularity),
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
		Rate:        req.Rate,
		FixedAmount: req.FixedAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.validateBand(ctx, band, ""); err != nil {
		return nil, err
	}
	if err := s.bandRepo.SaveTaxBand(ctx, band); err != nil {
		return nil, fmt.Errorf("failed to save tax band: %w", err)
	}
	return &band, nil
}

// UpdateTaxBand validates and rewrites an existing band.
func (s *taxService) UpdateTaxBand(ctx context.Context, bandID string, req dto.UpdateTaxBandRequest, updaterUserID string) (*domain.TaxBand, error) {
	existing, err := s.bandRepo.FindTaxBandByID(ctx, bandID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tax band: %w", err)
	}

	band := *existing
	band.MinSalary = req.MinSalary
	band.MaxSalary = req.MaxSalary
	band.Rate = req.Rate
	band.FixedAmount = req.FixedAmount
	band.LastUpdatedAt = time.Now()
	band.LastUpdatedBy = updaterUserID

	if err := s.validateBand(ctx, band, bandID); err != nil {
		return nil, err
	}
	if err := s.bandRepo.UpdateTaxBand(ctx, band); err != nil {
		return nil, fmt.Errorf("failed to update tax band: %w", err)
	}
	return &band, nil
}

// DeleteTaxBand removes a band.
func (s *taxService) DeleteTaxBand(ctx context.Context, bandID string) error {
	return s.bandRepo.DeleteTaxBand(ctx, bandID)
}

// ListTaxBands retrieves the bands of one logical table, ascending by minimum.
func (s *taxService) ListTaxBands(ctx context.Context, key domain.BandTableKey) ([]domain.TaxBand, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: unsupported band table %s/%s", apperrors.ErrValidation, key.Currency, key.Granularity)
	}
	return s.bandRepo.ListTaxBands(ctx, key)
}

// CreateTaxCredit persists a new credit.
func (s *taxService) CreateTaxCredit(ctx context.Context, req dto.CreateTaxCreditRequest, creatorUserID string) (*domain.TaxCredit, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: credit amount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	credit := domain.TaxCredit{
		CreditID:     uuid.NewString(),
		Name:         req.Name,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		Granularity:  domain.TaxGranularity(req.Granularity),
		IsActive:     req.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.creditRepo.SaveTaxCredit(ctx, credit); err != nil {
		return nil, fmt.Errorf("failed to save tax credit: %w", err)
	}
	return &credit, nil
}

// ListTaxCredits retrieves all credits.
func (s *taxService) ListTaxCredits(ctx context.Context) ([]domain.TaxCredit, error) {
	return s.creditRepo.ListTaxCredits(ctx)
}

// applicableCredits collects the employee's credits resolved to the target currency.
// The personal allowance always applies; the child allowance is multiplied by
// the dependent count; the disability allowance applies when flagged.
func (s *taxService) applicableCredits(ctx context.Context, employee domain.Employee, currency string, granularity domain.TaxGranularity) ([]domain.AppliedCredit, error) {
	credits, err := s.creditRepo.ListActiveTaxCredits(ctx, granularity)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax credits: %w", err)
	}

	var applied []domain.AppliedCredit
	for _, credit := range credits {
		var multiplier decimal.Decimal
		switch credit.Name {
		case domain.CreditPersonal:
			multiplier = one
		case domain.CreditChild:
			if employee.Dependents == 0 {
				continue
			}
			multiplier = decimal.NewFromInt(int64(employee.Dependents))
		case domain.CreditDisability:
			if !employee.HasDisability {
				continue
			}
			multiplier = one
		default:
			// Unknown credit names are operator data errors; skip rather than tax wrongly.
			continue
		}

		amount, err := s.rateSvc.Convert(ctx, credit.Amount, credit.CurrencyCode, currency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert credit %s to %s: %w", credit.Name, currency, err)
		}
		applied = append(applied, domain.AppliedCredit{
			Name:   credit.Name,
			Amount: amount.Mul(multiplier),
		})
	}
	return applied, nil
}

// CalculateTax applies credits then walks the matching band table.
func (s *taxService) CalculateTax(ctx context.Context, employee domain.Employee, gross decimal.Decimal, currency string, granularity domain.TaxGranularity) (*domain.TaxComputation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	key := domain.BandTableKey{Currency: currency, Granularity: granularity}
	if !key.Valid() {
		return nil, fmt.Errorf("%w: unsupported band table %s/%s", apperrors.ErrValidation, currency, granularity)
	}
	if gross.IsNegative() {
		return nil, fmt.Errorf("%w: gross income cannot be negative", apperrors.ErrValidation)
	}

	applied, err := s.applicableCredits(ctx, employee, currency, granularity)
	if err != nil {
		return nil, err
	}

	totalCredits := decimal.Zero
	for _, credit := range applied {
		totalCredits = totalCredits.Add(credit.Amount)
	}

	taxable := gross.Sub(totalCredits)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	bands, err := s.bandRepo.ListTaxBands(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax bands: %w", err)
	}

	tax := walkBands(taxable, bands)

	effectiveRate := decimal.Zero
	if gross.IsPositive() {
		effectiveRate = tax.Div(gross)
	}

	logger.Debug("Tax computed",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("currency", currency),
		slog.String("gross", gross.String()),
		slog.String("tax", tax.String()),
	)

	return &domain.TaxComputation{
		Currency:       currency,
		Gross:          gross,
		TotalCredits:   totalCredits,
		TaxableIncome:  taxable,
		Tax:            tax,
		EffectiveRate:  effectiveRate,
		CreditsApplied: applied,
	}, nil
}

// walkBands integrates the taxable income over the ordered band table.
// The portion of taxable income falling within a band is taxed at the band's
// rate, and the band's fixed amount is added once per band actually touched.
// Bands with no overlap contribute nothing; income below the lowest band's
// minimum is untaxed.
func walkBands(taxable decimal.Decimal, bands []domain.TaxBand) decimal.Decimal {
	tax := decimal.Zero
	for _, band := range bands {
		if taxable.LessThanOrEqual(band.MinSalary) {
			continue
		}
		upper := taxable
		if band.MaxSalary != nil && band.MaxSalary.LessThan(upper) {
			upper = *band.MaxSalary
		}
		portion := upper.Sub(band.MinSalary)
		if portion.IsPositive() {
			tax = tax.Add(portion.Mul(band.Rate)).Add(band.FixedAmount)
		}
	}
	return tax
}
