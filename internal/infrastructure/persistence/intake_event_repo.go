package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"investintake/internal/domain"
	"investintake/internal/domain/entity"
	"investintake/pkg/errcodes"
)

// IntakeEventRepository is the append-only audit log of intake
// milestones. The provider stays the system of record for investor state;
// this table only records that milestones happened and which campaign
// attribution they carried.
type IntakeEventRepository struct {
	db *sqlx.DB
}

func NewIntakeEventRepository(db *sqlx.DB) *IntakeEventRepository {
	return &IntakeEventRepository{db: db}
}

func (r *IntakeEventRepository) Append(ctx context.Context, event entity.IntakeEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO intake_events
			(id, kind, email, investor_id, amount, utm_source, utm_medium, utm_campaign, created_at)
		VALUES
			(:id, :kind, :email, :investor_id, :amount, :utm_source, :utm_medium, :utm_campaign, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, newIntakeEventSchema(event)); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to append intake event")
	}

	return nil
}

// ListByEmail returns the recorded milestones for an email, newest first.
func (r *IntakeEventRepository) ListByEmail(ctx context.Context, email string, limit int) ([]entity.IntakeEvent, error) {
	const query = `
		SELECT id, kind, email, investor_id, amount, utm_source, utm_medium, utm_campaign, created_at
		FROM intake_events
		WHERE email = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var rows []intakeEventSchema

	if err := r.db.SelectContext(ctx, &rows, query, email, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list intake events")
	}

	events := make([]entity.IntakeEvent, 0, len(rows))

	for _, row := range rows {
		event, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("toDomain: %w", err)
		}

		events = append(events, event)
	}

	return events, nil
}
