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

// PgxTaxBandRepository implements the ports.TaxBandRepositoryFacade interface using pgxpool.
type PgxTaxBandRepository struct {
	BaseRepository
}

// NewPgxTaxBandRepository creates a new PgxTaxBandRepository.
func NewPgxTaxBandRepository(pool *pgxpool.Pool) *PgxTaxBandRepository {
	return &PgxTaxBandRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaxBandRepositoryFacade = (*PgxTaxBandRepository)(nil)

const taxBandColumns = `
	band_id, currency, granularity, min_salary, max_salary, rate, fixed_amount,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveTaxBand inserts a new band row.
func (r *PgxTaxBandRepository) SaveTaxBand(ctx context.Context, band domain.TaxBand) error {
	modelBand := mapping.ToModelTaxBand(band)
	query := `
		INSERT INTO tax_bands (` + taxBandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelBand.BandID, modelBand.Currency, modelBand.Granularity, modelBand.MinSalary,
		modelBand.MaxSalary, modelBand.Rate, modelBand.FixedAmount,
		modelBand.CreatedAt, modelBand.CreatedBy, modelBand.LastUpdatedAt, modelBand.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save tax band", err)
	}
	return nil
}

// UpdateTaxBand rewrites an existing band row.
func (r *PgxTaxBandRepository) UpdateTaxBand(ctx context.Context, band domain.TaxBand) error {
	modelBand := mapping.ToModelTaxBand(band)
	query := `
		UPDATE tax_bands
		SET min_salary = $1, max_salary = $2, rate = $3, fixed_amount = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE band_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelBand.MinSalary, modelBand.MaxSalary, modelBand.Rate, modelBand.FixedAmount,
		modelBand.LastUpdatedAt, modelBand.LastUpdatedBy, modelBand.BandID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tax band", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("tax band " + band.BandID + " not found")
	}
	return nil
}

// DeleteTaxBand removes a band row.
func (r *PgxTaxBandRepository) DeleteTaxBand(ctx context.Context, bandID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tax_bands WHERE band_id = $1;`, bandID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete tax band", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("tax band " + bandID + " not found")
	}
	return nil
}

// FindTaxBandByID retrieves a band by ID.
func (r *PgxTaxBandRepository) FindTaxBandByID(ctx context.Context, bandID string) (*domain.TaxBand, error) {
	query := `
		SELECT ` + taxBandColumns + `
		FROM tax_bands
		WHERE band_id = $1;
	`
	var modelBand models.TaxBand
	err := r.Pool.QueryRow(ctx, query, bandID).Scan(
		&modelBand.BandID, &modelBand.Currency, &modelBand.Granularity, &modelBand.MinSalary,
		&modelBand.MaxSalary, &modelBand.Rate, &modelBand.FixedAmount,
		&modelBand.CreatedAt, &modelBand.CreatedBy, &modelBand.LastUpdatedAt, &modelBand.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("tax band " + bandID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find tax band", err)
	}

	domainBand := mapping.ToDomainTaxBand(modelBand)
	return &domainBand, nil
}

// ListTaxBands retrieves all bands of one logical table, ascending by minimum salary.
func (r *PgxTaxBandRepository) ListTaxBands(ctx context.Context, key domain.BandTableKey) ([]domain.TaxBand, error) {
	query := `
		SELECT ` + taxBandColumns + `
		FROM tax_bands
		WHERE currency = $1 AND granularity = $2
		ORDER BY min_salary;
	`
	rows, err := r.Pool.Query(ctx, query, key.Currency, string(key.Granularity))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list tax bands", err)
	}
	defer rows.Close()

	var bands []domain.TaxBand
	for rows.Next() {
		var modelBand models.TaxBand
		err := rows.Scan(
			&modelBand.BandID, &modelBand.Currency, &modelBand.Granularity, &modelBand.MinSalary,
			&modelBand.MaxSalary, &modelBand.Rate, &modelBand.FixedAmount,
			&modelBand.CreatedAt, &modelBand.CreatedBy, &modelBand.LastUpdatedAt, &modelBand.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax band", err)
		}
		bands = append(bands, mapping.ToDomainTaxBand(modelBand))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax bands", err)
	}
	return bands, nil
}

// PgxTaxCreditRepository implements the ports.TaxCreditRepositoryFacade interface using pgxpool.
type PgxTaxCreditRepository struct {
	BaseRepository
}

// NewPgxTaxCreditRepository creates a new PgxTaxCreditRepository.
func NewPgxTaxCreditRepository(pool *pgxpool.Pool) *PgxTaxCreditRepository {
	return &PgxTaxCreditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaxCreditRepositoryFacade = (*PgxTaxCreditRepository)(nil)

const taxCreditColumns = `
	credit_id, name, amount, currency_code, granularity, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveTaxCredit inserts a new credit row.
func (r *PgxTaxCreditRepository) SaveTaxCredit(ctx context.Context, credit domain.TaxCredit) error {
	modelCredit := mapping.ToModelTaxCredit(credit)
	query := `
		INSERT INTO tax_credits (` + taxCreditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCredit.CreditID, modelCredit.Name, modelCredit.Amount, modelCredit.CurrencyCode,
		modelCredit.Granularity, modelCredit.IsActive,
		modelCredit.CreatedAt, modelCredit.CreatedBy, modelCredit.LastUpdatedAt, modelCredit.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save tax credit", err)
	}
	return nil
}

func (r *PgxTaxCreditRepository) listCredits(ctx context.Context, query string, args ...any) ([]domain.TaxCredit, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list tax credits", err)
	}
	defer rows.Close()

	var credits []domain.TaxCredit
	for rows.Next() {
		var modelCredit models.TaxCredit
		err := rows.Scan(
			&modelCredit.CreditID, &modelCredit.Name, &modelCredit.Amount, &modelCredit.CurrencyCode,
			&modelCredit.Granularity, &modelCredit.IsActive,
			&modelCredit.CreatedAt, &modelCredit.CreatedBy, &modelCredit.LastUpdatedAt, &modelCredit.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax credit", err)
		}
		credits = append(credits, mapping.ToDomainTaxCredit(modelCredit))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax credits", err)
	}
	return credits, nil
}

// ListTaxCredits retrieves all credit rows.
func (r *PgxTaxCreditRepository) ListTaxCredits(ctx context.Context) ([]domain.TaxCredit, error) {
	query := `
		SELECT ` + taxCreditColumns + `
		FROM tax_credits
		ORDER BY name;
	`
	return r.listCredits(ctx, query)
}

// ListActiveTaxCredits retrieves active credits for a granularity.
func (r *PgxTaxCreditRepository) ListActiveTaxCredits(ctx context.Context, granularity domain.TaxGranularity) ([]domain.TaxCredit, error) {
	query := `
		SELECT ` + taxCreditColumns + `
		FROM tax_credits
		WHERE is_active = TRUE AND granularity = $1
		ORDER BY name;
	`
	return r.listCredits(ctx, query, string(granularity))
}
