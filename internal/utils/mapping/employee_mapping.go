package mapping

import (
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/models"
)

// ToDomainCostCenter converts a model CostCenter to a domain CostCenter.
func ToDomainCostCenter(m models.CostCenter) domain.CostCenter {
	return domain.CostCenter{
		CenterID:    m.CenterID,
		Code:        m.Code,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCostCenter converts a domain CostCenter to a model CostCenter.
func ToModelCostCenter(d domain.CostCenter) models.CostCenter {
	return models.CostCenter{
		CenterID:    d.CenterID,
		Code:        d.Code,
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:       m.EmployeeID,
		CenterID:         m.CenterID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		BasicSalary:      m.BasicSalary,
		Dependents:       m.Dependents,
		HasDisability:    m.HasDisability,
		EmploymentStatus: domain.EmploymentStatus(m.EmploymentStatus),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
