package services

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// EmployeeSvcFacade is the read-only roster provider consumed by processing.
type EmployeeSvcFacade interface {
	// GetCenterByID retrieves a cost center.
	GetCenterByID(ctx context.Context, centerID string) (*domain.CostCenter, error)

	// ListCenters retrieves all cost centers.
	ListCenters(ctx context.Context) ([]domain.CostCenter, error)

	// GetEmployeeByID retrieves an employee.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListActiveEmployeesByCenter retrieves the center's active roster.
	ListActiveEmployeesByCenter(ctx context.Context, centerID string) ([]domain.Employee, error)
}
