package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
	"github.com/zbpay/payroll_processing_app/internal/models"
	"github.com/zbpay/payroll_processing_app/internal/utils/mapping"
)

// PgxCostCenterRepository implements the ports.CostCenterRepositoryFacade interface using pgxpool.
type PgxCostCenterRepository struct {
	BaseRepository
}

// NewPgxCostCenterRepository creates a new PgxCostCenterRepository.
func NewPgxCostCenterRepository(pool *pgxpool.Pool) *PgxCostCenterRepository {
	return &PgxCostCenterRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CostCenterRepositoryFacade = (*PgxCostCenterRepository)(nil)

// FindCenterByID retrieves a cost center by ID.
func (r *PgxCostCenterRepository) FindCenterByID(ctx context.Context, centerID string) (*domain.CostCenter, error) {
	query := `
		SELECT center_id, code, name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM cost_centers
		WHERE center_id = $1;
	`
	var modelCenter models.CostCenter
	err := r.Pool.QueryRow(ctx, query, centerID).Scan(
		&modelCenter.CenterID, &modelCenter.Code, &modelCenter.Name, &modelCenter.IsActive,
		&modelCenter.CreatedAt, &modelCenter.CreatedBy, &modelCenter.LastUpdatedAt, &modelCenter.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("cost center " + centerID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find cost center", err)
	}

	domainCenter := mapping.ToDomainCostCenter(modelCenter)
	return &domainCenter, nil
}

// ListCenters retrieves all cost centers.
func (r *PgxCostCenterRepository) ListCenters(ctx context.Context) ([]domain.CostCenter, error) {
	query := `
		SELECT center_id, code, name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM cost_centers
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list cost centers", err)
	}
	defer rows.Close()

	var centers []domain.CostCenter
	for rows.Next() {
		var modelCenter models.CostCenter
		err := rows.Scan(
			&modelCenter.CenterID, &modelCenter.Code, &modelCenter.Name, &modelCenter.IsActive,
			&modelCenter.CreatedAt, &modelCenter.CreatedBy, &modelCenter.LastUpdatedAt, &modelCenter.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cost center", err)
		}
		centers = append(centers, mapping.ToDomainCostCenter(modelCenter))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cost centers", err)
	}
	return centers, nil
}

// PgxEmployeeRepository implements the ports.EmployeeRepositoryFacade interface using pgxpool.
// The roster is read-only here; employee records are authored by the HR flow.
type PgxEmployeeRepository struct {
	BaseRepository
}

// NewPgxEmployeeRepository creates a new PgxEmployeeRepository.
func NewPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `
	employee_id, center_id, first_name, last_name, basic_salary, dependents,
	has_disability, employment_status, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID, &m.CenterID, &m.FirstName, &m.LastName, &m.BasicSalary, &m.Dependents,
		&m.HasDisability, &m.EmploymentStatus, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindEmployeeByID retrieves an employee by ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_id = $1;
	`
	modelEmployee, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("employee " + employeeID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find employee", err)
	}

	domainEmployee := mapping.ToDomainEmployee(modelEmployee)
	return &domainEmployee, nil
}

// ListActiveEmployeesByCenter retrieves every ACTIVE employee of the center.
func (r *PgxEmployeeRepository) ListActiveEmployeesByCenter(ctx context.Context, centerID string) ([]domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE center_id = $1 AND employment_status = $2
		ORDER BY last_name, first_name;
	`
	rows, err := r.Pool.Query(ctx, query, centerID, string(domain.EmploymentActive))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list employees", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		modelEmployee, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee", err)
		}
		employees = append(employees, mapping.ToDomainEmployee(modelEmployee))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employees", err)
	}
	return employees, nil
}
