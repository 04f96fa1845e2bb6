package mapping

import (
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/models"
)

// ToModelPayslip converts a domain Payslip header to a model row.
func ToModelPayslip(d domain.Payslip) models.Payslip {
	return models.Payslip{
		PayslipID:     d.PayslipID,
		EmployeeID:    d.EmployeeID,
		PayrollID:     d.PayrollID,
		PeriodID:      d.PeriodID,
		Status:        string(d.Status),
		GrossZWL:      d.GrossZWL,
		GrossUSD:      d.GrossUSD,
		DeductionsZWL: d.DeductionsZWL,
		DeductionsUSD: d.DeductionsUSD,
		NetZWL:        d.NetZWL,
		NetUSD:        d.NetUSD,
		YTDGrossZWL:   d.YTDGrossZWL,
		YTDGrossUSD:   d.YTDGrossUSD,
		YTDTaxZWL:     d.YTDTaxZWL,
		YTDTaxUSD:     d.YTDTaxUSD,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayslip converts a model row to a domain Payslip header.
func ToDomainPayslip(m models.Payslip) domain.Payslip {
	return domain.Payslip{
		PayslipID:     m.PayslipID,
		EmployeeID:    m.EmployeeID,
		PayrollID:     m.PayrollID,
		PeriodID:      m.PeriodID,
		Status:        domain.PayslipStatus(m.Status),
		GrossZWL:      m.GrossZWL,
		GrossUSD:      m.GrossUSD,
		DeductionsZWL: m.DeductionsZWL,
		DeductionsUSD: m.DeductionsUSD,
		NetZWL:        m.NetZWL,
		NetUSD:        m.NetUSD,
		YTDGrossZWL:   m.YTDGrossZWL,
		YTDGrossUSD:   m.YTDGrossUSD,
		YTDTaxZWL:     m.YTDTaxZWL,
		YTDTaxUSD:     m.YTDTaxUSD,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayslipTransaction converts a domain line item to a model row.
func ToModelPayslipTransaction(d domain.PayslipTransaction) models.PayslipTransaction {
	return models.PayslipTransaction{
		TransactionID: d.TransactionID,
		PayslipID:     d.PayslipID,
		Description:   d.Description,
		Type:          string(d.Type),
		AmountZWL:     d.AmountZWL,
		AmountUSD:     d.AmountUSD,
		Taxable:       d.Taxable,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayslipTransaction converts a model row to a domain line item.
func ToDomainPayslipTransaction(m models.PayslipTransaction) domain.PayslipTransaction {
	return domain.PayslipTransaction{
		TransactionID: m.TransactionID,
		PayslipID:     m.PayslipID,
		Description:   m.Description,
		Type:          domain.LineType(m.Type),
		AmountZWL:     m.AmountZWL,
		AmountUSD:     m.AmountUSD,
		Taxable:       m.Taxable,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
