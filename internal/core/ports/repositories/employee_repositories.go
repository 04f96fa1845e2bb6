package repositories

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// CostCenterRepositoryFacade defines read operations for cost centers.
type CostCenterRepositoryFacade interface {
	// FindCenterByID retrieves a cost center by ID.
	FindCenterByID(ctx context.Context, centerID string) (*domain.CostCenter, error)

	// ListCenters retrieves all cost centers.
	ListCenters(ctx context.Context) ([]domain.CostCenter, error)
}

// EmployeeRepositoryFacade defines read operations on the employee roster.
// Employee records are authored by an external HR flow; processing only reads them.
type EmployeeRepositoryFacade interface {
	// FindEmployeeByID retrieves an employee by ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListActiveEmployeesByCenter retrieves every employee of the center whose
	// employment status is ACTIVE.
	ListActiveEmployeesByCenter(ctx context.Context, centerID string) ([]domain.Employee, error)
}
