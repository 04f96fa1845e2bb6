package repositories

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// CurrencyRepositoryFacade defines persistence operations for currencies.
type CurrencyRepositoryFacade interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// FindCurrencyByCode retrieves a currency by its 3-letter code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateRepositoryFacade defines persistence operations for exchange rates.
type ExchangeRateRepositoryFacade interface {
	// SaveExchangeRate inserts a rate, or updates the rate for an existing
	// (from, to, date_effective) row.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// FindExchangeRate retrieves the current rate for a pair: the most recent
	// effective-dated direct row, or the inverted inverse row. Returns
	// apperrors.ErrNoExchangeRate (wrapped) when neither exists.
	FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all rates for a pair, most recent first.
	ListExchangeRates(ctx context.Context, fromCode, toCode string) ([]domain.ExchangeRate, error)
}

// CurrencySplitRepositoryFacade defines persistence operations for center currency splits.
type CurrencySplitRepositoryFacade interface {
	// SaveCurrencySplit persists a new split row. Callers must have validated
	// that the percentages sum to 100.
	SaveCurrencySplit(ctx context.Context, split domain.CurrencySplit) error

	// FindCurrentSplit retrieves the most recent effective split for a center.
	// Returns apperrors.ErrNotFound (wrapped) when the center has none.
	FindCurrentSplit(ctx context.Context, centerID string) (*domain.CurrencySplit, error)

	// ListSplitsByCenter retrieves a center's split history, most recent first.
	ListSplitsByCenter(ctx context.Context, centerID string) ([]domain.CurrencySplit, error)
}
