package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/gofrs/uuid"
)

type SessionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Create(ctx context.Context, session *entity.Session) error
	UpdateEndTime(ctx context.Context, id uuid.UUID, endTime time.Time) (*entity.Session, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Session, error)
}

type sessionRepository struct {
	db Querier
}

func NewSessionRepository(db Querier) SessionRepository {
	return &sessionRepository{db: db}
}

// GetByID returns nil, nil when the session does not exist.
func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	query := r.db.Rebind(`SELECT id, user_id, start_time, end_time FROM sessions WHERE id = ?`)

	err := r.db.GetContext(ctx, &session, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	session.StartTime = session.StartTime.UTC()

	query := `
		INSERT INTO sessions (id, user_id, start_time, end_time)
		VALUES (:id, :user_id, :start_time, :end_time)`

	_, err := r.db.NamedExecContext(ctx, query, session)
	return err
}

// UpdateEndTime returns nil, nil when the session does not exist.
func (r *sessionRepository) UpdateEndTime(ctx context.Context, id uuid.UUID, endTime time.Time) (*entity.Session, error) {
	query := r.db.Rebind(`UPDATE sessions SET end_time = ? WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, endTime.UTC(), id)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

// ListByUser returns the user's sessions, newest first.
func (r *sessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Session, error) {
	sessions := []entity.Session{}
	query := r.db.Rebind(`
		SELECT id, user_id, start_time, end_time
		FROM sessions
		WHERE user_id = ?
		ORDER BY start_time DESC`)

	if err := r.db.SelectContext(ctx, &sessions, query, userID); err != nil {
		return nil, err
	}

	return sessions, nil
}
