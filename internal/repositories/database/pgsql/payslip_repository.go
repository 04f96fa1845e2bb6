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

// PgxPayslipRepository implements the ports.PayslipRepositoryFacade interface using pgxpool.
type PgxPayslipRepository struct {
	BaseRepository
}

// NewPgxPayslipRepository creates a new PgxPayslipRepository.
func NewPgxPayslipRepository(pool *pgxpool.Pool) *PgxPayslipRepository {
	return &PgxPayslipRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PayslipRepositoryFacade = (*PgxPayslipRepository)(nil)

const payslipColumns = `
	payslip_id, employee_id, payroll_id, period_id, status,
	gross_zwl, gross_usd, deductions_zwl, deductions_usd, net_zwl, net_usd,
	ytd_gross_zwl, ytd_gross_usd, ytd_tax_zwl, ytd_tax_usd,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPayslip(row pgx.Row) (models.Payslip, error) {
	var m models.Payslip
	err := row.Scan(
		&m.PayslipID, &m.EmployeeID, &m.PayrollID, &m.PeriodID, &m.Status,
		&m.GrossZWL, &m.GrossUSD, &m.DeductionsZWL, &m.DeductionsUSD, &m.NetZWL, &m.NetUSD,
		&m.YTDGrossZWL, &m.YTDGrossUSD, &m.YTDTaxZWL, &m.YTDTaxUSD,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindPayslipByID retrieves a payslip header.
func (r *PgxPayslipRepository) FindPayslipByID(ctx context.Context, payslipID string) (*domain.Payslip, error) {
	query := `
		SELECT ` + payslipColumns + `
		FROM payslips
		WHERE payslip_id = $1;
	`
	modelPayslip, err := scanPayslip(r.Pool.QueryRow(ctx, query, payslipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payslip " + payslipID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find payslip", err)
	}

	domainPayslip := mapping.ToDomainPayslip(modelPayslip)
	return &domainPayslip, nil
}

// FindTransactionsByPayslipID retrieves a payslip's line items.
func (r *PgxPayslipRepository) FindTransactionsByPayslipID(ctx context.Context, payslipID string) ([]domain.PayslipTransaction, error) {
	query := `
		SELECT transaction_id, payslip_id, description, type, amount_zwl, amount_usd, taxable,
			created_at, created_by, last_updated_at, last_updated_by
		FROM payslip_transactions
		WHERE payslip_id = $1
		ORDER BY type, description;
	`
	rows, err := r.Pool.Query(ctx, query, payslipID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payslip lines", err)
	}
	defer rows.Close()

	var transactions []domain.PayslipTransaction
	for rows.Next() {
		var m models.PayslipTransaction
		err := rows.Scan(
			&m.TransactionID, &m.PayslipID, &m.Description, &m.Type, &m.AmountZWL, &m.AmountUSD, &m.Taxable,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payslip line", err)
		}
		transactions = append(transactions, mapping.ToDomainPayslipTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payslip lines", err)
	}
	return transactions, nil
}

// ListPayslipsByPeriodCenter retrieves payslip headers for a (period, center)
// pair, joining through the employee's center assignment.
func (r *PgxPayslipRepository) ListPayslipsByPeriodCenter(ctx context.Context, periodID, centerID string) ([]domain.Payslip, error) {
	query := `
		SELECT p.payslip_id, p.employee_id, p.payroll_id, p.period_id, p.status,
			p.gross_zwl, p.gross_usd, p.deductions_zwl, p.deductions_usd, p.net_zwl, p.net_usd,
			p.ytd_gross_zwl, p.ytd_gross_usd, p.ytd_tax_zwl, p.ytd_tax_usd,
			p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM payslips p
		JOIN employees e ON p.employee_id = e.employee_id
		WHERE p.period_id = $1 AND e.center_id = $2
		ORDER BY e.last_name, e.first_name;
	`
	rows, err := r.Pool.Query(ctx, query, periodID, centerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payslips", err)
	}
	defer rows.Close()

	var payslips []domain.Payslip
	for rows.Next() {
		modelPayslip, err := scanPayslip(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payslip", err)
		}
		payslips = append(payslips, mapping.ToDomainPayslip(modelPayslip))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payslips", err)
	}
	return payslips, nil
}

// UpdatePayslipStatus conditionally moves a payslip from one status to another.
// The WHERE clause carries the expected prior status, so a concurrent
// transition loses the race cleanly instead of double-applying.
func (r *PgxPayslipRepository) UpdatePayslipStatus(ctx context.Context, payslipID string, from, to domain.PayslipStatus, updatedBy string, at time.Time) error {
	query := `
		UPDATE payslips
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE payslip_id = $4 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, string(to), at, updatedBy, payslipID, string(from))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payslip status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewValidationError("payslip " + payslipID + " is not in status " + string(from))
	}
	return nil
}

// DeletePayslip removes a payslip; its line items go with it by cascade.
func (r *PgxPayslipRepository) DeletePayslip(ctx context.Context, payslipID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payslips WHERE payslip_id = $1;`, payslipID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payslip", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payslip " + payslipID + " not found")
	}
	return nil
}

// SumFinalizedForYear accumulates gross and tax totals over the employee's
// finalized and distributed payslips for the given payroll and year.
func (r *PgxPayslipRepository) SumFinalizedForYear(ctx context.Context, employeeID, payrollID string, year int) (domain.YTDTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(p.gross_zwl), 0),
			COALESCE(SUM(p.gross_usd), 0),
			COALESCE(SUM(p.deductions_zwl), 0),
			COALESCE(SUM(p.deductions_usd), 0)
		FROM payslips p
		JOIN accounting_periods ap ON p.period_id = ap.period_id
		WHERE p.employee_id = $1
			AND p.payroll_id = $2
			AND ap.year = $3
			AND p.status IN ($4, $5);
	`
	var totals domain.YTDTotals
	err := r.Pool.QueryRow(ctx, query,
		employeeID, payrollID, year,
		string(domain.PayslipFinalized), string(domain.PayslipDistributed),
	).Scan(&totals.GrossZWL, &totals.GrossUSD, &totals.TaxZWL, &totals.TaxUSD)
	if err != nil {
		return domain.YTDTotals{}, apperrors.NewAppError(500, "failed to sum year-to-date totals", err)
	}
	return totals, nil
}
