package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
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

// currencyService provides currency reference data operations.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency persists a new currency.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Symbol:       req.Symbol,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return &currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	return s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
}

// ListCurrencies retrieves all available currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}

// exchangeRateService provides exchange rate operations and conversion.
type exchangeRateService struct {
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencySvc portssvc.CurrencySvcFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	// Both currencies must exist
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.FromCurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'from' currency code '%s' not found", apperrors.ErrValidation, req.FromCurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate 'from' currency '%s': %w", req.FromCurrencyCode, err)
	}
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.ToCurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'to' currency code '%s' not found", apperrors.ErrValidation, req.ToCurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate 'to' currency '%s': %w", req.ToCurrencyCode, err)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: strings.ToUpper(req.FromCurrencyCode),
		ToCurrencyCode:   strings.ToUpper(req.ToCurrencyCode),
		Rate:             req.Rate,
		DateEffective:    req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save exchange rate", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}
	return &rate, nil
}

// GetExchangeRate retrieves the current rate for a currency pair.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	return rate, nil
}

// Convert resolves the current rate and converts an amount between currencies.
// A missing rate means the conversion is impossible, never a zero result.
func (s *exchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	if fromCode == toCode {
		return amount, nil
	}
	rate, err := s.GetExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate.Rate), nil
}

// currencySplitService manages center currency splits and apportionment.
type currencySplitService struct {
	splitRepo  portsrepo.CurrencySplitRepositoryFacade
	centerRepo portsrepo.CostCenterRepositoryFacade
}

// NewCurrencySplitService creates a new CurrencySplitService.
func NewCurrencySplitService(splitRepo portsrepo.CurrencySplitRepositoryFacade, centerRepo portsrepo.CostCenterRepositoryFacade) portssvc.CurrencySplitSvcFacade {
	return &currencySplitService{
		splitRepo:  splitRepo,
		centerRepo: centerRepo,
	}
}

var _ portssvc.CurrencySplitSvcFacade = (*currencySplitService)(nil)

// CreateCurrencySplit persists a new split row after validating the percentage
// sum invariant. An invalid split is never stored.
func (s *currencySplitService) CreateCurrencySplit(ctx context.Context, centerID string, req dto.CreateCurrencySplitRequest, creatorUserID string) (*domain.CurrencySplit, error) {
	if req.ZWLPercent.IsNegative() || req.USDPercent.IsNegative() {
		return nil, fmt.Errorf("%w: split percentages cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	split := domain.CurrencySplit{
		SplitID:       uuid.NewString(),
		CenterID:      centerID,
		ZWLPercent:    req.ZWLPercent,
		USDPercent:    req.USDPercent,
		DateEffective: req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if !split.SumsToHundred() {
		return nil, fmt.Errorf("%w: split percentages must sum to 100, got %s + %s",
			apperrors.ErrValidation, req.ZWLPercent.String(), req.USDPercent.String())
	}

	if _, err := s.centerRepo.FindCenterByID(ctx, centerID); err != nil {
		return nil, fmt.Errorf("failed to validate cost center: %w", err)
	}

	if err := s.splitRepo.SaveCurrencySplit(ctx, split); err != nil {
		return nil, fmt.Errorf("failed to save currency split: %w", err)
	}
	return &split, nil
}

// GetCurrentSplit retrieves the center's effective split, falling back to
// 50/50 when none is configured.
func (s *currencySplitService) GetCurrentSplit(ctx context.Context, centerID string) (domain.CurrencySplit, error) {
	split, err := s.splitRepo.FindCurrentSplit(ctx, centerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.EvenSplit(centerID), nil
		}
		return domain.CurrencySplit{}, fmt.Errorf("failed to get currency split: %w", err)
	}
	return *split, nil
}

// ListSplitsByCenter retrieves a center's split history.
func (s *currencySplitService) ListSplitsByCenter(ctx context.Context, centerID string) ([]domain.CurrencySplit, error) {
	return s.splitRepo.ListSplitsByCenter(ctx, centerID)
}

// SplitSalary apportions a total salary across (ZWL, USD) by the split's
// percentages. Straight multiplication; not tax-aware.
func (s *currencySplitService) SplitSalary(total decimal.Decimal, split domain.CurrencySplit) (decimal.Decimal, decimal.Decimal) {
	hundred := decimal.NewFromInt(100)
	zwl := total.Mul(split.ZWLPercent).Div(hundred)
	usd := total.Mul(split.USDPercent).Div(hundred)
	return zwl, usd
}
