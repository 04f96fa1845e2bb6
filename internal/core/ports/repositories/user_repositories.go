package repositories

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuditRepositoryFacade defines the append-only audit event sink.
type AuditRepositoryFacade interface {
	// SaveEvent appends one audit event.
	SaveEvent(ctx context.Context, event domain.AuditEvent) error

	// ListRecentEvents retrieves the newest events, most recent first.
	ListRecentEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
