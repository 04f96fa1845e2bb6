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

// PgxUserRepository implements the ports.UserRepositoryFacade interface using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

// NewPgxUserRepository creates a new PgxUserRepository.
func NewPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `
	user_id, username, name, password_hash, role, center_id,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID, modelUser.Username, modelUser.Name, modelUser.PasswordHash,
		modelUser.Role, modelUser.CenterID,
		modelUser.CreatedAt, modelUser.CreatedBy, modelUser.LastUpdatedAt, modelUser.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "username "+user.Username+" is already taken", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) findUser(ctx context.Context, where string, arg any, notFoundMsg string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ` + where + ` = $1;
	`
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID, &modelUser.Username, &modelUser.Name, &modelUser.PasswordHash,
		&modelUser.Role, &modelUser.CenterID,
		&modelUser.CreatedAt, &modelUser.CreatedBy, &modelUser.LastUpdatedAt, &modelUser.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(notFoundMsg)
		}
		return nil, apperrors.NewAppError(500, "failed to find user", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// FindUserByID retrieves a user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "user_id", userID, "user "+userID+" not found")
}

// FindUserByUsername retrieves a user by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, "username", username, "user "+username+" not found")
}
