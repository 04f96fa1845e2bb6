package mapping

import (
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	"github.com/zbpay/payroll_processing_app/internal/models"
)

// ToModelUser converts a domain User to a model row.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		CenterID:     d.CenterID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model row to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		CenterID:     m.CenterID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAuditEvent converts a domain AuditEvent to a model row.
func ToModelAuditEvent(d domain.AuditEvent) models.AuditEvent {
	return models.AuditEvent{
		EventID:     d.EventID,
		ActorID:     d.ActorID,
		Action:      d.Action,
		PeriodID:    d.PeriodID,
		CenterID:    d.CenterID,
		BeforeState: d.BeforeState,
		AfterState:  d.AfterState,
		OccurredAt:  d.OccurredAt,
	}
}

// ToDomainAuditEvent converts a model row to a domain AuditEvent.
func ToDomainAuditEvent(m models.AuditEvent) domain.AuditEvent {
	return domain.AuditEvent{
		EventID:     m.EventID,
		ActorID:     m.ActorID,
		Action:      m.Action,
		PeriodID:    m.PeriodID,
		CenterID:    m.CenterID,
		BeforeState: m.BeforeState,
		AfterState:  m.AfterState,
		OccurredAt:  m.OccurredAt,
	}
}
