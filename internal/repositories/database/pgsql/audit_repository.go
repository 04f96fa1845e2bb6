package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portsrepo "github.com/zbpay/payroll_processing_app/internal/core/ports/repositories"
	"github.com/zbpay/payroll_processing_app/internal/models"
	"github.com/zbpay/payroll_processing_app/internal/utils/mapping"
)

// PgxAuditRepository implements the ports.AuditRepositoryFacade interface using
// pgxpool. The table is append-only.
type PgxAuditRepository struct {
	BaseRepository
}

// NewPgxAuditRepository creates a new PgxAuditRepository.
func NewPgxAuditRepository(pool *pgxpool.Pool) *PgxAuditRepository {
	return &PgxAuditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// SaveEvent appends one audit event.
func (r *PgxAuditRepository) SaveEvent(ctx context.Context, event domain.AuditEvent) error {
	modelEvent := mapping.ToModelAuditEvent(event)
	query := `
		INSERT INTO audit_events (event_id, actor_id, action, period_id, center_id, before_state, after_state, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelEvent.EventID, modelEvent.ActorID, modelEvent.Action, modelEvent.PeriodID,
		modelEvent.CenterID, modelEvent.BeforeState, modelEvent.AfterState, modelEvent.OccurredAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save audit event", err)
	}
	return nil
}

// ListRecentEvents retrieves the newest events, most recent first.
func (r *PgxAuditRepository) ListRecentEvents(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	query := `
		SELECT event_id, actor_id, action, period_id, center_id, before_state, after_state, occurred_at
		FROM audit_events
		ORDER BY occurred_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list audit events", err)
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var modelEvent models.AuditEvent
		err := rows.Scan(
			&modelEvent.EventID, &modelEvent.ActorID, &modelEvent.Action, &modelEvent.PeriodID,
			&modelEvent.CenterID, &modelEvent.BeforeState, &modelEvent.AfterState, &modelEvent.OccurredAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit event", err)
		}
		events = append(events, mapping.ToDomainAuditEvent(modelEvent))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit events", err)
	}
	return events, nil
}
