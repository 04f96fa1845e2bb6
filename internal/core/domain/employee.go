package domain

import "github.com/shopspring/decimal"

// EmploymentStatus is the single lifecycle flag for an employee.
// It replaces the is_active/is_ex/deleted_at flag combinations of older systems.
type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "ACTIVE"
	EmploymentSuspended  EmploymentStatus = "SUSPENDED"
	EmploymentTerminated EmploymentStatus = "TERMINATED"
)

// CostCenter is the organizational unit payroll processing is scoped to.
type CostCenter struct {
	CenterID string `json:"centerID"` // Primary Key (UUID)
	Code     string `json:"code"`     // Short unique code (e.g., "HQ-FIN")
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Employee carries the attributes payroll processing needs. Employee CRUD is
// owned by an external HR flow; this core only reads the roster.
type Employee struct {
	EmployeeID       string           `json:"employeeID"` // Primary Key (UUID)
	CenterID         string           `json:"centerID"`   // FK -> CostCenter
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	BasicSalary      decimal.Decimal  `json:"basicSalary"` // Total comparable salary, monthly
	Dependents       int              `json:"dependents"`
	HasDisability    bool             `json:"hasDisability"`
	EmploymentStatus EmploymentStatus `json:"employmentStatus"`
	AuditFields
}

// FullName joins the name parts for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
