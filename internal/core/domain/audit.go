package domain

import "time"

// Audit actions recorded by the processing orchestrator.
const (
	AuditPeriodRun       = "PERIOD_RUN"
	AuditPeriodRefresh   = "PERIOD_REFRESH"
	AuditPeriodClose     = "PERIOD_CLOSE"
	AuditPeriodReopen    = "PERIOD_REOPEN"
	AuditPeriodUnconfirm = "PERIOD_UNCONFIRM"
)

// AuditEvent is one append-only record of a state transition:
// who did what to which (period, center), and the before/after state.
type AuditEvent struct {
	EventID     string    `json:"eventID"` // Primary Key (UUID)
	ActorID     string    `json:"actorID"` // FK -> User
	Action      string    `json:"action"`
	PeriodID    string    `json:"periodID"`
	CenterID    string    `json:"centerID"`
	BeforeState string    `json:"beforeState"`
	AfterState  string    `json:"afterState"`
	OccurredAt  time.Time `json:"occurredAt"`
}
