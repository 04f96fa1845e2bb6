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

// PgxCurrencySplitRepository implements the ports.CurrencySplitRepositoryFacade interface using pgxpool.
type PgxCurrencySplitRepository struct {
	BaseRepository
}

// NewPgxCurrencySplitRepository creates a new PgxCurrencySplitRepository.
func NewPgxCurrencySplitRepository(pool *pgxpool.Pool) *PgxCurrencySplitRepository {
	return &PgxCurrencySplitRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencySplitRepositoryFacade = (*PgxCurrencySplitRepository)(nil)

const splitColumns = `
	split_id, center_id, zwl_percent, usd_percent, date_effective,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveCurrencySplit inserts a new split row.
func (r *PgxCurrencySplitRepository) SaveCurrencySplit(ctx context.Context, split domain.CurrencySplit) error {
	modelSplit := mapping.ToModelCurrencySplit(split)
	query := `
		INSERT INTO currency_splits (` + splitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSplit.SplitID, modelSplit.CenterID, modelSplit.ZWLPercent, modelSplit.USDPercent,
		modelSplit.DateEffective, modelSplit.CreatedAt, modelSplit.CreatedBy,
		modelSplit.LastUpdatedAt, modelSplit.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save currency split", err)
	}
	return nil
}

// FindCurrentSplit retrieves the most recent effective split for a center.
func (r *PgxCurrencySplitRepository) FindCurrentSplit(ctx context.Context, centerID string) (*domain.CurrencySplit, error) {
	query := `
		SELECT ` + splitColumns + `
		FROM currency_splits
		WHERE center_id = $1 AND date_effective <= $2
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	var modelSplit models.CurrencySplit
	err := r.Pool.QueryRow(ctx, query, centerID, time.Now()).Scan(
		&modelSplit.SplitID, &modelSplit.CenterID, &modelSplit.ZWLPercent, &modelSplit.USDPercent,
		&modelSplit.DateEffective, &modelSplit.CreatedAt, &modelSplit.CreatedBy,
		&modelSplit.LastUpdatedAt, &modelSplit.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no currency split configured for center " + centerID)
		}
		return nil, apperrors.NewAppError(500, "failed to find currency split", err)
	}

	domainSplit := mapping.ToDomainCurrencySplit(modelSplit)
	return &domainSplit, nil
}

// ListSplitsByCenter retrieves a center's split history, most recent first.
func (r *PgxCurrencySplitRepository) ListSplitsByCenter(ctx context.Context, centerID string) ([]domain.CurrencySplit, error) {
	query := `
		SELECT ` + splitColumns + `
		FROM currency_splits
		WHERE center_id = $1
		ORDER BY date_effective DESC;
	`
	rows, err := r.Pool.Query(ctx, query, centerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currency splits", err)
	}
	defer rows.Close()

	var splits []domain.CurrencySplit
	for rows.Next() {
		var modelSplit models.CurrencySplit
		err := rows.Scan(
			&modelSplit.SplitID, &modelSplit.CenterID, &modelSplit.ZWLPercent, &modelSplit.USDPercent,
			&modelSplit.DateEffective, &modelSplit.CreatedAt, &modelSplit.CreatedBy,
			&modelSplit.LastUpdatedAt, &modelSplit.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency split", err)
		}
		splits = append(splits, mapping.ToDomainCurrencySplit(modelSplit))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency splits", err)
	}
	return splits, nil
}
