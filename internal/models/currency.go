package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AuditFields
}

// ExchangeRate stores the conversion rate between two currencies for a specific date.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"` // FK -> Currency.currencyCode
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // FK -> Currency.currencyCode
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}

// CurrencySplit is a cost center's ZWL/USD apportionment row.
type CurrencySplit struct {
	SplitID       string          `json:"splitID"`
	CenterID      string          `json:"centerID"`
	ZWLPercent    decimal.Decimal `json:"zwlPercent"`
	USDPercent    decimal.Decimal `json:"usdPercent"`
	DateEffective time.Time       `json:"dateEffective"`
	AuditFields
}
