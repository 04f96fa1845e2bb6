package models

import "github.com/shopspring/decimal"

// CostCenter is an organizational/billing unit row.
type CostCenter struct {
	CenterID string `json:"centerID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Employee is an employee roster row.
type Employee struct {
	EmployeeID       string          `json:"employeeID"`
	CenterID         string          `json:"centerID"` // FK -> CostCenter
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	BasicSalary      decimal.Decimal `json:"basicSalary"`
	Dependents       int             `json:"dependents"`
	HasDisability    bool            `json:"hasDisability"`
	EmploymentStatus string          `json:"employmentStatus"`
	AuditFields
}
