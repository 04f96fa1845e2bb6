package mapping

import (
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/models"
)

// ToModelTaxBand converts a domain TaxBand to a model row.
func ToModelTaxBand(d domain.TaxBand) models.TaxBand {
	return models.TaxBand{
		BandID:      d.BandID,
		Currency:    d.Currency,
		Granularity: string(d.Granularity),
		MinSalary:   d.MinSalary,
		MaxSalary:   d.MaxSalary,
		Rate:        d.Rate,
		FixedAmount: d.FixedAmount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxBand converts a model row to a domain TaxBand.
func ToDomainTaxBand(m models.TaxBand) domain.TaxBand {
	return domain.TaxBand{
		BandID:      m.BandID,
		Currency:    m.Currency,
		Granularity: domain.TaxGranularity(m.Granularity),
		MinSalary:   m.MinSalary,
		MaxSalary:   m.MaxSalary,
		Rate:        m.Rate,
		FixedAmount: m.FixedAmount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTaxCredit converts a domain TaxCredit to a model row.
func ToModelTaxCredit(d domain.TaxCredit) models.TaxCredit {
	return models.TaxCredit{
		CreditID:     d.CreditID,
		Name:         d.Name,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		Granularity:  string(d.Granularity),
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTaxCredit converts a model row to a domain TaxCredit.
func ToDomainTaxCredit(m models.TaxCredit) domain.TaxCredit {
	return domain.TaxCredit{
		CreditID:     m.CreditID,
		Name:         m.Name,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		Granularity:  domain.TaxGranularity(m.Granularity),
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
