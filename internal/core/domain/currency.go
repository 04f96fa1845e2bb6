package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	AuditFields
}

// The two currencies payroll is denominated in.
const (
	CurrencyUSD = "USD"
	CurrencyZWL = "ZWL"
)

// CurrencyMode selects how a run denominates pay.
type CurrencyMode string

const (
	// ModeUSD pays everything in USD; the ZWL leg is zeroed.
	ModeUSD CurrencyMode = "USD"
	// ModeZWL pays everything in ZWL; the USD leg is zeroed.
	ModeZWL CurrencyMode = "ZWL"
	// ModeDefault splits pay across both currencies per the center's split.
	ModeDefault CurrencyMode = "DEFAULT"
)

// Valid reports whether the mode is one of the three supported run modes.
func (m CurrencyMode) Valid() bool {
	switch m {
	case ModeUSD, ModeZWL, ModeDefault:
		return true
	}
	return false
}

// ExchangeRate stores the conversion rate between two currencies effective from a date.
// The current rate for a pair is the most recent row with DateEffective <= today.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`   // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"` // FK -> Currency.currencyCode
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // FK -> Currency.currencyCode
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}

// CurrencySplit apportions a cost center's salaries between ZWL and USD.
// Invariant: ZWLPercent + USDPercent == 100 within 0.01, enforced at write time.
type CurrencySplit struct {
	SplitID       string          `json:"splitID"` // Primary Key (UUID)
	CenterID      string          `json:"centerID"`
	ZWLPercent    decimal.Decimal `json:"zwlPercent"`
	USDPercent    decimal.Decimal `json:"usdPercent"`
	DateEffective time.Time       `json:"dateEffective"`
	AuditFields
}

// splitTolerance is the maximum allowed deviation of a split sum from 100.
var splitTolerance = decimal.NewFromFloat(0.01)

// SumsToHundred reports whether the two percentages add up to 100 within tolerance.
func (s CurrencySplit) SumsToHundred() bool {
	diff := s.ZWLPercent.Add(s.USDPercent).Sub(decimal.NewFromInt(100)).Abs()
	return diff.LessThanOrEqual(splitTolerance)
}

// EvenSplit is the 50/50 fallback used when a center has no split configured.
func EvenSplit(centerID string) CurrencySplit {
	half := decimal.NewFromInt(50)
	return CurrencySplit{
		CenterID:   centerID,
		ZWLPercent: half,
		USDPercent: half,
	}
}
