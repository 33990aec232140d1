package repository

import (
	"context"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/gofrs/uuid"
)

type EventRepository interface {
	BatchCreate(ctx context.Context, events []entity.Event) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Event, error)
}

type eventRepository struct {
	db Querier
}

func NewEventRepository(db Querier) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) BatchCreate(ctx context.Context, events []entity.Event) error {
	if len(events) == 0 {
		return nil
	}

	for i := range events {
		events[i].Timestamp = events[i].Timestamp.UTC()
	}

	query := `
		INSERT INTO events (session_id, event_type, domain, timestamp)
		VALUES (:session_id, :event_type, :domain, :timestamp)`

	_, err := r.db.NamedExecContext(ctx, query, events)
	return err
}

// ListBySession returns the session's events in ascending timestamp order.
func (r *eventRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Event, error) {
	events := []entity.Event{}
	query := r.db.Rebind(`
		SELECT id, session_id, event_type, domain, timestamp
		FROM events
		WHERE session_id = ?
		ORDER BY timestamp ASC, id ASC`)

	if err := r.db.SelectContext(ctx, &events, query, sessionID); err != nil {
		return nil, err
	}

	return events, nil
}
