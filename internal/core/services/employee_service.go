package services

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
)

// employeeService is the read-only roster provider consumed by processing.
// Employee and center CRUD is owned by an external HR flow.
type employeeService struct {
	centerRepo   portsrepo.CostCenterRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(centerRepo portsrepo.CostCenterRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{
		centerRepo:   centerRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) GetCenterByID(ctx context.Context, centerID string) (*domain.CostCenter, error) {
	return s.centerRepo.FindCenterByID(ctx, centerID)
}

func (s *employeeService) ListCenters(ctx context.Context) ([]domain.CostCenter, error) {
	return s.centerRepo.ListCenters(ctx)
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *employeeService) ListActiveEmployeesByCenter(ctx context.Context, centerID string) ([]domain.Employee, error) {
	return s.employeeRepo.ListActiveEmployeesByCenter(ctx, centerID)
}
