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
	"github.com/zbpay/payroll_processing_app/internal/utils/mapping"
)

// PgxProcessingRepository implements the ports.ProcessingRepositoryFacade
// interface using pgxpool. Each method is one database transaction spanning
// the status claim and the full payslip set, so two concurrent operators
// cannot both pass the same state guard.
type PgxProcessingRepository struct {
	BaseRepository
}

// NewPgxProcessingRepository creates a new PgxProcessingRepository.
func NewPgxProcessingRepository(pool *pgxpool.Pool) *PgxProcessingRepository {
	return &PgxProcessingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProcessingRepositoryFacade = (*PgxProcessingRepository)(nil)

const insertPayslipQuery = `
	INSERT INTO payslips (
		payslip_id, employee_id, payroll_id, period_id, status,
		gross_zwl, gross_usd, deductions_zwl, deductions_usd, net_zwl, net_usd,
		ytd_gross_zwl, ytd_gross_usd, ytd_tax_zwl, ytd_tax_usd,
		created_at, created_by, last_updated_at, last_updated_by
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
`

const insertTransactionQuery = `
	INSERT INTO payslip_transactions (
		transaction_id, payslip_id, description, type, amount_zwl, amount_usd, taxable,
		created_at, created_by, last_updated_at, last_updated_by
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

// queuePayslipInsert adds the payslip header and its line inserts to the batch.
func queuePayslipInsert(batch *pgx.Batch, payslip domain.Payslip) int {
	modelPayslip := mapping.ToModelPayslip(payslip)
	batch.Queue(insertPayslipQuery,
		modelPayslip.PayslipID, modelPayslip.EmployeeID, modelPayslip.PayrollID, modelPayslip.PeriodID,
		modelPayslip.Status, modelPayslip.GrossZWL, modelPayslip.GrossUSD,
		modelPayslip.DeductionsZWL, modelPayslip.DeductionsUSD, modelPayslip.NetZWL, modelPayslip.NetUSD,
		modelPayslip.YTDGrossZWL, modelPayslip.YTDGrossUSD, modelPayslip.YTDTaxZWL, modelPayslip.YTDTaxUSD,
		modelPayslip.CreatedAt, modelPayslip.CreatedBy, modelPayslip.LastUpdatedAt, modelPayslip.LastUpdatedBy,
	)

	queued := 1
	for _, txn := range payslip.Transactions {
		modelTxn := mapping.ToModelPayslipTransaction(txn)
		batch.Queue(insertTransactionQuery,
			modelTxn.TransactionID, modelTxn.PayslipID, modelTxn.Description, modelTxn.Type,
			modelTxn.AmountZWL, modelTxn.AmountUSD, modelTxn.Taxable,
			modelTxn.CreatedAt, modelTxn.CreatedBy, modelTxn.LastUpdatedAt, modelTxn.LastUpdatedBy,
		)
		queued++
	}
	return queued
}

// runBatch sends the batch over the transaction and surfaces the first failure.
func runBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, queued int) error {
	results := tx.SendBatch(ctx, batch)
	for i := 0; i < queued; i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			if isUniqueViolation(err) {
				return apperrors.NewAppError(409, "payslip already exists for this period", apperrors.ErrDuplicate)
			}
			return apperrors.NewAppError(500, "failed to write payslip batch", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close payslip batch", err)
	}
	return nil
}

// stateError inspects the status row within the transaction and returns the
// precondition error matching its actual state.
func (r *PgxProcessingRepository) stateError(ctx context.Context, tx pgx.Tx, periodID, centerID string, notRun, alreadyRun error) error {
	var periodRunDate, payRunDate *time.Time
	err := tx.QueryRow(ctx,
		`SELECT period_run_date, pay_run_date FROM center_period_statuses WHERE period_id = $1 AND center_id = $2`,
		periodID, centerID,
	).Scan(&periodRunDate, &payRunDate)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && periodRunDate == nil) {
		return apperrors.NewAppError(409, "period has not been run for this cost center", notRun)
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to inspect center period status", err)
	}
	if payRunDate != nil {
		return apperrors.NewAppError(409, "period is already closed for this cost center", apperrors.ErrAlreadyClosed)
	}
	return apperrors.NewAppError(409, "period has already been run for this cost center", alreadyRun)
}

// SaveRun inserts the payslip set and claims Pending -> Processed. The claim is
// the status row INSERT itself: a second run hits the (period, center) unique
// constraint and fails without touching payslips.
func (r *PgxProcessingRepository) SaveRun(ctx context.Context, status domain.CenterPeriodStatus, payslips []domain.Payslip, runAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelStatus := mapping.ToModelCenterPeriodStatus(status)
	tag, err := tx.Exec(ctx, `
		INSERT INTO center_period_statuses (
			status_id, period_id, center_id, currency_mode, period_run_date, pay_run_date,
			is_closed_confirmed, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, NULL, FALSE, $6, $7, $8, $9)
		ON CONFLICT (period_id, center_id) DO NOTHING;
	`,
		modelStatus.StatusID, modelStatus.PeriodID, modelStatus.CenterID, modelStatus.CurrencyMode,
		runAt, modelStatus.CreatedAt, modelStatus.CreatedBy, modelStatus.LastUpdatedAt, modelStatus.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to claim period run", err)
	}
	if tag.RowsAffected() == 0 {
		return r.stateError(ctx, tx, status.PeriodID, status.CenterID, apperrors.ErrAlreadyRun, apperrors.ErrAlreadyRun)
	}

	batch := &pgx.Batch{}
	queued := 0
	for _, payslip := range payslips {
		queued += queuePayslipInsert(batch, payslip)
	}
	if err := runBatch(ctx, tx, batch, queued); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveRefresh rewrites the given draft payslips in place, guarded to the
// Processed state. The per-payslip UPDATE is itself conditioned on DRAFT, so a
// payslip finalized between read and write is silently left alone.
func (r *PgxProcessingRepository) SaveRefresh(ctx context.Context, periodID, centerID string, mode domain.CurrencyMode, payslips []domain.Payslip, runAt time.Time, actorID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		UPDATE center_period_statuses
		SET period_run_date = $1, currency_mode = $2, last_updated_at = $1, last_updated_by = $3
		WHERE period_id = $4 AND center_id = $5 AND period_run_date IS NOT NULL AND pay_run_date IS NULL;
	`, runAt, string(mode), actorID, periodID, centerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to claim period refresh", err)
	}
	if tag.RowsAffected() == 0 {
		return r.stateError(ctx, tx, periodID, centerID, apperrors.ErrNotRun, apperrors.ErrNotRun)
	}

	batch := &pgx.Batch{}
	queued := 0
	updateQuery := `
		UPDATE payslips
		SET gross_zwl = $1, gross_usd = $2, deductions_zwl = $3, deductions_usd = $4,
			net_zwl = $5, net_usd = $6, ytd_gross_zwl = $7, ytd_gross_usd = $8,
			ytd_tax_zwl = $9, ytd_tax_usd = $10, last_updated_at = $11, last_updated_by = $12
		WHERE payslip_id = $13 AND status = $14;
	`
	for _, payslip := range payslips {
		modelPayslip := mapping.ToModelPayslip(payslip)
		batch.Queue(updateQuery,
			modelPayslip.GrossZWL, modelPayslip.GrossUSD, modelPayslip.DeductionsZWL, modelPayslip.DeductionsUSD,
			modelPayslip.NetZWL, modelPayslip.NetUSD, modelPayslip.YTDGrossZWL, modelPayslip.YTDGrossUSD,
			modelPayslip.YTDTaxZWL, modelPayslip.YTDTaxUSD, modelPayslip.LastUpdatedAt, modelPayslip.LastUpdatedBy,
			modelPayslip.PayslipID, string(domain.PayslipDraft),
		)
		queued++

		batch.Queue(`DELETE FROM payslip_transactions WHERE payslip_id = $1;`, modelPayslip.PayslipID)
		queued++

		for _, txn := range payslip.Transactions {
			modelTxn := mapping.ToModelPayslipTransaction(txn)
			batch.Queue(insertTransactionQuery,
				modelTxn.TransactionID, modelTxn.PayslipID, modelTxn.Description, modelTxn.Type,
				modelTxn.AmountZWL, modelTxn.AmountUSD, modelTxn.Taxable,
				modelTxn.CreatedAt, modelTxn.CreatedBy, modelTxn.LastUpdatedAt, modelTxn.LastUpdatedBy,
			)
			queued++
		}
	}
	if err := runBatch(ctx, tx, batch, queued); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// CloseRun finalizes the center's draft payslips and claims Processed -> Closed.
func (r *PgxProcessingRepository) CloseRun(ctx context.Context, periodID, centerID string, closedAt time.Time, actorID string) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		UPDATE center_period_statuses
		SET pay_run_date = $1, is_closed_confirmed = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE period_id = $3 AND center_id = $4 AND period_run_date IS NOT NULL AND pay_run_date IS NULL;
	`, closedAt, actorID, periodID, centerID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to claim period close", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, r.stateError(ctx, tx, periodID, centerID, apperrors.ErrNotRun, apperrors.ErrNotRun)
	}

	finalizeTag, err := tx.Exec(ctx, `
		UPDATE payslips p
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		FROM employees e
		WHERE p.employee_id = e.employee_id
			AND e.center_id = $4
			AND p.period_id = $5
			AND p.status = $6;
	`, string(domain.PayslipFinalized), closedAt, actorID, centerID, periodID, string(domain.PayslipDraft))
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to finalize payslips", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return int(finalizeTag.RowsAffected()), nil
}
