package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// CostCenterResponse is the API representation of a cost center.
type CostCenterResponse struct {
	CenterID string `json:"centerID"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// ToCostCenterResponse maps a domain center to its API representation.
func ToCostCenterResponse(c domain.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		CenterID: c.CenterID,
		Code:     c.Code,
		Name:     c.Name,
		IsActive: c.IsActive,
	}
}

// EmployeeResponse is the roster view of an employee.
type EmployeeResponse struct {
	EmployeeID       string          `json:"employeeID"`
	CenterID         string          `json:"centerID"`
	Name             string          `json:"name"`
	BasicSalary      decimal.Decimal `json:"basicSalary"`
	Dependents       int             `json:"dependents"`
	HasDisability    bool            `json:"hasDisability"`
	EmploymentStatus string          `json:"employmentStatus"`
}

// ToEmployeeResponse maps a domain employee to its roster view.
func ToEmployeeResponse(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:       e.EmployeeID,
		CenterID:         e.CenterID,
		Name:             e.FullName(),
		BasicSalary:      e.BasicSalary,
		Dependents:       e.Dependents,
		HasDisability:    e.HasDisability,
		EmploymentStatus: string(e.EmploymentStatus),
	}
}

// AuditEventResponse is the API representation of an audit event.
type AuditEventResponse struct {
	EventID     string    `json:"eventID"`
	ActorID     string    `json:"actorID"`
	Action      string    `json:"action"`
	PeriodID    string    `json:"periodID"`
	CenterID    string    `json:"centerID"`
	BeforeState string    `json:"beforeState"`
	AfterState  string    `json:"afterState"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// ToAuditEventResponse maps a domain audit event to its API representation.
func ToAuditEventResponse(e domain.AuditEvent) AuditEventResponse {
	return AuditEventResponse{
		EventID:     e.EventID,
		ActorID:     e.ActorID,
		Action:      e.Action,
		PeriodID:    e.PeriodID,
		CenterID:    e.CenterID,
		BeforeState: e.BeforeState,
		AfterState:  e.AfterState,
		OccurredAt:  e.OccurredAt,
	}
}
