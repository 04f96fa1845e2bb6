package services

import (
	"context"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

// UserSvcFacade manages actors and the permission overlay.
type UserSvcFacade interface {
	// CreateUser provisions a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user for login.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// AuthorizeProcessing returns apperrors.ErrForbidden (wrapped) unless the
	// actor may drive processing for the given center.
	AuthorizeProcessing(ctx context.Context, actorID, centerID string) error
}

// AuditSvcFacade records and lists state transition events.
type AuditSvcFacade interface {
	// RecordTransition appends one audit event.
	RecordTransition(ctx context.Context, event domain.AuditEvent) error

	// ListRecentEvents retrieves the newest events, most recent first.
	ListRecentEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
