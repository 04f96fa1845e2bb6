package domain

// UserRole is the permission tier of an actor.
type UserRole string

const (
	// RoleAdmin may run/refresh/close/reopen for any cost center.
	RoleAdmin UserRole = "ADMIN"
	// RoleOfficer may process only their assigned cost center.
	RoleOfficer UserRole = "OFFICER"
)

// User is an authenticated actor of the payroll system.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	CenterID     *string  `json:"centerID"` // assigned center; nil for admins
	AuditFields
}

// CanProcess reports whether the user may drive processing for the given center.
func (u User) CanProcess(centerID string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.CenterID != nil && *u.CenterID == centerID
}
