package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
	"github.com/zbpay/payroll_processing_app/internal/models"
	"github.com/zbpay/payroll_processing_app/internal/utils/mapping"
)

// PgxPeriodRepository implements the ports.PeriodRepositoryFacade interface using pgxpool.
type PgxPeriodRepository struct {
	BaseRepository
}

// NewPgxPeriodRepository creates a new PgxPeriodRepository.
func NewPgxPeriodRepository(pool *pgxpool.Pool) *PgxPeriodRepository {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

// FindPayrollByID retrieves a payroll by ID.
func (r *PgxPeriodRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	query := `
		SELECT payroll_id, name, base_currency, created_at, created_by, last_updated_at, last_updated_by
		FROM payrolls
		WHERE payroll_id = $1;
	`
	var modelPayroll models.Payroll
	err := r.Pool.QueryRow(ctx, query, payrollID).Scan(
		&modelPayroll.PayrollID, &modelPayroll.Name, &modelPayroll.BaseCurrency,
		&modelPayroll.CreatedAt, &modelPayroll.CreatedBy, &modelPayroll.LastUpdatedAt, &modelPayroll.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payroll " + payrollID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find payroll", err)
	}

	domainPayroll := mapping.ToDomainPayroll(modelPayroll)
	return &domainPayroll, nil
}

// SavePayroll persists a new payroll.
func (r *PgxPeriodRepository) SavePayroll(ctx context.Context, payroll domain.Payroll) error {
	modelPayroll := mapping.ToModelPayroll(payroll)
	query := `
		INSERT INTO payrolls (payroll_id, name, base_currency, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelPayroll.PayrollID, modelPayroll.Name, modelPayroll.BaseCurrency,
		modelPayroll.CreatedAt, modelPayroll.CreatedBy, modelPayroll.LastUpdatedAt, modelPayroll.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save payroll", err)
	}
	return nil
}

const periodColumns = `
	period_id, payroll_id, month_name, year, start_date, end_date,
	created_at, created_by, last_updated_at, last_updated_by`

// SavePeriods persists a batch of accounting periods in one transaction.
// A duplicate (payroll, month, year) aborts the whole batch.
func (r *PgxPeriodRepository) SavePeriods(ctx context.Context, periods []domain.AccountingPeriod) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, period := range periods {
		modelPeriod := mapping.ToModelAccountingPeriod(period)
		batch.Queue(query,
			modelPeriod.PeriodID, modelPeriod.PayrollID, modelPeriod.MonthName, modelPeriod.Year,
			modelPeriod.StartDate, modelPeriod.EndDate, modelPeriod.CreatedAt, modelPeriod.CreatedBy,
			modelPeriod.LastUpdatedAt, modelPeriod.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range periods {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			if isUniqueViolation(err) {
				return apperrors.NewAppError(409, "a period already exists for this payroll, month, and year", apperrors.ErrDuplicate)
			}
			return apperrors.NewAppError(500, "failed to insert accounting period", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close period batch", err)
	}

	return r.Commit(ctx, tx)
}

// FindPeriodByID retrieves an accounting period by ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM accounting_periods
		WHERE period_id = $1;
	`
	var modelPeriod models.AccountingPeriod
	err := r.Pool.QueryRow(ctx, query, periodID).Scan(
		&modelPeriod.PeriodID, &modelPeriod.PayrollID, &modelPeriod.MonthName, &modelPeriod.Year,
		&modelPeriod.StartDate, &modelPeriod.EndDate, &modelPeriod.CreatedAt, &modelPeriod.CreatedBy,
		&modelPeriod.LastUpdatedAt, &modelPeriod.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("period " + periodID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find period", err)
	}

	domainPeriod := mapping.ToDomainAccountingPeriod(modelPeriod)
	return &domainPeriod, nil
}

// ListPeriodsByPayroll retrieves a payroll's periods ordered by start date.
func (r *PgxPeriodRepository) ListPeriodsByPayroll(ctx context.Context, payrollID string) ([]domain.AccountingPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM accounting_periods
		WHERE payroll_id = $1
		ORDER BY start_date;
	`
	rows, err := r.Pool.Query(ctx, query, payrollID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list periods", err)
	}
	defer rows.Close()

	var periods []domain.AccountingPeriod
	for rows.Next() {
		var modelPeriod models.AccountingPeriod
		err := rows.Scan(
			&modelPeriod.PeriodID, &modelPeriod.PayrollID, &modelPeriod.MonthName, &modelPeriod.Year,
			&modelPeriod.StartDate, &modelPeriod.EndDate, &modelPeriod.CreatedAt, &modelPeriod.CreatedBy,
			&modelPeriod.LastUpdatedAt, &modelPeriod.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period", err)
		}
		periods = append(periods, mapping.ToDomainAccountingPeriod(modelPeriod))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating periods", err)
	}
	return periods, nil
}

// PgxStatusRepository implements the ports.StatusRepositoryFacade interface using pgxpool.
// The backward transitions are conditional UPDATEs keyed on the expected prior
// state, so a concurrent call cannot pass the same guard twice.
type PgxStatusRepository struct {
	BaseRepository
}

// NewPgxStatusRepository creates a new PgxStatusRepository.
func NewPgxStatusRepository(pool *pgxpool.Pool) *PgxStatusRepository {
	return &PgxStatusRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StatusRepositoryFacade = (*PgxStatusRepository)(nil)

const statusColumns = `
	status_id, period_id, center_id, currency_mode, period_run_date, pay_run_date,
	is_closed_confirmed, created_at, created_by, last_updated_at, last_updated_by`

// FindStatus retrieves the status row for (period, center).
func (r *PgxStatusRepository) FindStatus(ctx context.Context, periodID, centerID string) (*domain.CenterPeriodStatus, error) {
	query := `
		SELECT ` + statusColumns + `
		FROM center_period_statuses
		WHERE period_id = $1 AND center_id = $2;
	`
	var modelStatus models.CenterPeriodStatus
	err := r.Pool.QueryRow(ctx, query, periodID, centerID).Scan(
		&modelStatus.StatusID, &modelStatus.PeriodID, &modelStatus.CenterID, &modelStatus.CurrencyMode,
		&modelStatus.PeriodRunDate, &modelStatus.PayRunDate, &modelStatus.IsClosedConfirmed,
		&modelStatus.CreatedAt, &modelStatus.CreatedBy, &modelStatus.LastUpdatedAt, &modelStatus.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no status for period " + periodID + " and center " + centerID)
		}
		return nil, apperrors.NewAppError(500, "failed to find center period status", err)
	}

	domainStatus := mapping.ToDomainCenterPeriodStatus(modelStatus)
	return &domainStatus, nil
}

// ReopenStatus moves Closed -> Processed: clears pay_run_date and the confirmed
// flag. The update only matches a Closed row.
func (r *PgxStatusRepository) ReopenStatus(ctx context.Context, periodID, centerID string, actorID string, at time.Time) error {
	query := `
		UPDATE center_period_statuses
		SET pay_run_date = NULL, is_closed_confirmed = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE period_id = $3 AND center_id = $4 AND pay_run_date IS NOT NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, at, actorID, periodID, centerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reopen period", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "period is not closed for this cost center", apperrors.ErrNotClosed)
	}
	return nil
}

// UnconfirmStatus clears only the confirmed flag of a closed row.
func (r *PgxStatusRepository) UnconfirmStatus(ctx context.Context, periodID, centerID string, actorID string, at time.Time) error {
	query := `
		UPDATE center_period_statuses
		SET is_closed_confirmed = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE period_id = $3 AND center_id = $4 AND is_closed_confirmed = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, at, actorID, periodID, centerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to unconfirm period", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "period close is not confirmed for this cost center", apperrors.ErrNotClosed)
	}
	return nil
}
