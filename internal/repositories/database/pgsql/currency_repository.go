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

// PgxCurrencyRepository implements the ports.CurrencyRepositoryFacade interface using pgxpool.
type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new PgxCurrencyRepository.
func NewPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurrency := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO currencies (currency_code, symbol, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCurrency.CurrencyCode, modelCurrency.Symbol, modelCurrency.Name,
		modelCurrency.CreatedAt, modelCurrency.CreatedBy, modelCurrency.LastUpdatedAt, modelCurrency.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "currency "+currency.CurrencyCode+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save currency", err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1;
	`
	var modelCurrency models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&modelCurrency.CurrencyCode, &modelCurrency.Symbol, &modelCurrency.Name,
		&modelCurrency.CreatedAt, &modelCurrency.CreatedBy, &modelCurrency.LastUpdatedAt, &modelCurrency.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + currencyCode + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find currency", err)
	}

	domainCurrency := mapping.ToDomainCurrency(modelCurrency)
	return &domainCurrency, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currencies", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var modelCurrency models.Currency
		err := rows.Scan(
			&modelCurrency.CurrencyCode, &modelCurrency.Symbol, &modelCurrency.Name,
			&modelCurrency.CreatedAt, &modelCurrency.CreatedBy, &modelCurrency.LastUpdatedAt, &modelCurrency.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency", err)
		}
		currencies = append(currencies, mapping.ToDomainCurrency(modelCurrency))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currencies", err)
	}
	return currencies, nil
}
