package mapping

import (
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/models"
)

// ToModelPayroll converts a domain Payroll to a model Payroll.
func ToModelPayroll(d domain.Payroll) models.Payroll {
	return models.Payroll{
		PayrollID:    d.PayrollID,
		Name:         d.Name,
		BaseCurrency: d.BaseCurrency,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayroll converts a model Payroll to a domain Payroll.
func ToDomainPayroll(m models.Payroll) domain.Payroll {
	return domain.Payroll{
		PayrollID:    m.PayrollID,
		Name:         m.Name,
		BaseCurrency: m.BaseCurrency,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAccountingPeriod converts a domain AccountingPeriod to a model AccountingPeriod.
func ToModelAccountingPeriod(d domain.AccountingPeriod) models.AccountingPeriod {
	return models.AccountingPeriod{
		PeriodID:    d.PeriodID,
		PayrollID:   d.PayrollID,
		MonthName:   d.MonthName,
		Year:        d.Year,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountingPeriod converts a model AccountingPeriod to a domain AccountingPeriod.
func ToDomainAccountingPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		PeriodID:    m.PeriodID,
		PayrollID:   m.PayrollID,
		MonthName:   m.MonthName,
		Year:        m.Year,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCenterPeriodStatus converts a domain CenterPeriodStatus to a model row.
func ToModelCenterPeriodStatus(d domain.CenterPeriodStatus) models.CenterPeriodStatus {
	return models.CenterPeriodStatus{
		StatusID:          d.StatusID,
		PeriodID:          d.PeriodID,
		CenterID:          d.CenterID,
		CurrencyMode:      string(d.CurrencyMode),
		PeriodRunDate:     d.PeriodRunDate,
		PayRunDate:        d.PayRunDate,
		IsClosedConfirmed: d.IsClosedConfirmed,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCenterPeriodStatus converts a model row to a domain CenterPeriodStatus.
func ToDomainCenterPeriodStatus(m models.CenterPeriodStatus) domain.CenterPeriodStatus {
	return domain.CenterPeriodStatus{
		StatusID:          m.StatusID,
		PeriodID:          m.PeriodID,
		CenterID:          m.CenterID,
		CurrencyMode:      domain.CurrencyMode(m.CurrencyMode),
		PeriodRunDate:     m.PeriodRunDate,
		PayRunDate:        m.PayRunDate,
		IsClosedConfirmed: m.IsClosedConfirmed,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
