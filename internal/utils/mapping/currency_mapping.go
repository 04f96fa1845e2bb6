package mapping

import (
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: d.CurrencyCode,
		Symbol:       d.Symbol,
		Name:         d.Name,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate.
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   d.ExchangeRateID,
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		Rate:             d.Rate,
		DateEffective:    d.DateEffective,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate.
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   m.ExchangeRateID,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Rate:             m.Rate,
		DateEffective:    m.DateEffective,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCurrencySplit converts a domain CurrencySplit to a model CurrencySplit.
func ToModelCurrencySplit(d domain.CurrencySplit) models.CurrencySplit {
	return models.CurrencySplit{
		SplitID:       d.SplitID,
		CenterID:      d.CenterID,
		ZWLPercent:    d.ZWLPercent,
		USDPercent:    d.USDPercent,
		DateEffective: d.DateEffective,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrencySplit converts a model CurrencySplit to a domain CurrencySplit.
func ToDomainCurrencySplit(m models.CurrencySplit) domain.CurrencySplit {
	return domain.CurrencySplit{
		SplitID:       m.SplitID,
		CenterID:      m.CenterID,
		ZWLPercent:    m.ZWLPercent,
		USDPercent:    m.USDPercent,
		DateEffective: m.DateEffective,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
