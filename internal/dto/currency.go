package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// CreateCurrencyRequest is the payload for creating a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// CurrencyResponse is the API representation of a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ToCurrencyResponse maps a domain currency to its API representation.
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
	}
}

// CreateExchangeRateRequest is the payload for creating an exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3,uppercase"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3,uppercase"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	DateEffective    time.Time       `json:"dateEffective" binding:"required"`
}

// ExchangeRateResponse is the API representation of an exchange rate.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
}

// ToExchangeRateResponse maps a domain rate to its API representation.
func ToExchangeRateResponse(r domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   r.ExchangeRateID,
		FromCurrencyCode: r.FromCurrencyCode,
		ToCurrencyCode:   r.ToCurrencyCode,
		Rate:             r.Rate,
		DateEffective:    r.DateEffective,
	}
}

// CreateCurrencySplitRequest is the payload for setting a center's currency split.
type CreateCurrencySplitRequest struct {
	ZWLPercent    decimal.Decimal `json:"zwlPercent" binding:"required"`
	USDPercent    decimal.Decimal `json:"usdPercent" binding:"required"`
	DateEffective time.Time       `json:"dateEffective" binding:"required"`
}

// CurrencySplitResponse is the API representation of a currency split.
type CurrencySplitResponse struct {
	SplitID       string          `json:"splitID"`
	CenterID      string          `json:"centerID"`
	ZWLPercent    decimal.Decimal `json:"zwlPercent"`
	USDPercent    decimal.Decimal `json:"usdPercent"`
	DateEffective time.Time       `json:"dateEffective"`
}

// ToCurrencySplitResponse maps a domain split to its API representation.
func ToCurrencySplitResponse(s domain.CurrencySplit) CurrencySplitResponse {
	return CurrencySplitResponse{
		SplitID:       s.SplitID,
		CenterID:      s.CenterID,
		ZWLPercent:    s.ZWLPercent,
		USDPercent:    s.USDPercent,
		DateEffective: s.DateEffective,
	}
}
