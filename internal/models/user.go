package models

import "time"

// User is an authenticated actor row.
type User struct {
	UserID       string  `json:"userID"`
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role"`
	CenterID     *string `json:"centerID"`
	AuditFields
}

// AuditEvent is one append-only state transition record.
type AuditEvent struct {
	EventID     string    `json:"eventID"`
	ActorID     string    `json:"actorID"`
	Action      string    `json:"action"`
	PeriodID    string    `json:"periodID"`
	CenterID    string    `json:"centerID"`
	BeforeState string    `json:"beforeState"`
	AfterState  string    `json:"afterState"`
	OccurredAt  time.Time `json:"occurredAt"`
}
