package dto

import "github.com/zbpay/payroll_processing_app/internal/core/domain"

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued JWT.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest is the payload for provisioning a user.
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=3"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role" binding:"required,oneof=ADMIN OFFICER"`
	CenterID *string `json:"centerID"` // required for officers, nil for admins
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	UserID   string  `json:"userID"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	CenterID *string `json:"centerID,omitempty"`
}

// ToUserResponse maps a domain user to its API representation.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Name:     u.Name,
		Role:     string(u.Role),
		CenterID: u.CenterID,
	}
}
