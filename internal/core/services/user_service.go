package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
	"github.com/zbpay/payroll_processing_app/internal/utils"
)

// userService manages actors and the center permission overlay.
type userService struct {
	userRepo   portsrepo.UserRepositoryFacade
	centerRepo portsrepo.CostCenterRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, centerRepo portsrepo.CostCenterRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo:   userRepo,
		centerRepo: centerRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser provisions a new user with a hashed password. Officers must carry
// a center assignment; admins must not.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	switch role {
	case domain.RoleOfficer:
		if req.CenterID == nil || *req.CenterID == "" {
			return nil, fmt.Errorf("%w: an officer requires a cost center assignment", apperrors.ErrValidation)
		}
		if _, err := s.centerRepo.FindCenterByID(ctx, *req.CenterID); err != nil {
			return nil, fmt.Errorf("failed to validate cost center: %w", err)
		}
	case domain.RoleAdmin:
		if req.CenterID != nil {
			return nil, fmt.Errorf("%w: an admin cannot carry a cost center assignment", apperrors.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported role '%s'", apperrors.ErrValidation, req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.ToLower(req.Username),
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
		CenterID:     req.CenterID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByUsername retrieves a user for login.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, strings.ToLower(username))
}

// AuthorizeProcessing checks whether the actor may drive processing for the
// given center: admins always may, officers only for their assigned center.
func (s *userService) AuthorizeProcessing(ctx context.Context, actorID, centerID string) error {
	user, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed to find acting user: %w", err)
	}
	if !user.CanProcess(centerID) {
		return fmt.Errorf("%w: user '%s' may not process center '%s'", apperrors.ErrForbidden, user.Username, centerID)
	}
	return nil
}

// auditService records and lists state transition events.
type auditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// defaultAuditLimit caps unbounded event listings.
const defaultAuditLimit = 100

// RecordTransition appends one audit event.
func (s *auditService) RecordTransition(ctx context.Context, event domain.AuditEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	return s.auditRepo.SaveEvent(ctx, event)
}

// ListRecentEvents retrieves the newest events, most recent first.
func (s *auditService) ListRecentEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 || limit > defaultAuditLimit {
		limit = defaultAuditLimit
	}
	return s.auditRepo.ListRecentEvents(ctx, limit)
}
