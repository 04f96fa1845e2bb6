package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data.
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read and conversion operations on exchange rates.
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the current rate between two currencies,
	// trying the direct pair then the inverted inverse pair.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// Convert resolves the current rate and converts an amount. When no rate
	// exists the conversion is impossible and ErrNoExchangeRate is returned,
	// never a zero amount.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data.
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// CurrencySplitSvcFacade manages center currency splits and salary apportionment.
type CurrencySplitSvcFacade interface {
	// CreateCurrencySplit persists a new split after validating that the
	// percentages sum to 100 within tolerance.
	CreateCurrencySplit(ctx context.Context, centerID string, req dto.CreateCurrencySplitRequest, creatorUserID string) (*domain.CurrencySplit, error)

	// GetCurrentSplit retrieves the center's effective split, falling back to
	// an even 50/50 split when none is configured.
	GetCurrentSplit(ctx context.Context, centerID string) (domain.CurrencySplit, error)

	// ListSplitsByCenter retrieves a center's split history.
	ListSplitsByCenter(ctx context.Context, centerID string) ([]domain.CurrencySplit, error)

	// SplitSalary apportions a total salary across (ZWL, USD) by the split's
	// percentages. Straight multiplication; not tax-aware.
	SplitSalary(total decimal.Decimal, split domain.CurrencySplit) (zwl, usd decimal.Decimal)
}
