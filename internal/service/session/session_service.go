package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/internal/repository"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"
)

const MaxEventsPerBatch = 1000

type SessionService interface {
	Ingest(ctx context.Context, req entity.IngestRequest) (*entity.IngestResult, error)
	EndSession(ctx context.Context, sessionID uuid2.UUID, endTime *time.Time) (*entity.Session, error)
}

type sessionService struct {
	store  repository.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewSessionService(store repository.Store, logger *slog.Logger) SessionService {
	return &sessionService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Ingest stores a batch of events for the user identified by req.Email. The
// user and session are created on first sight; everything happens in one
// transaction.
func (s *sessionService) Ingest(ctx context.Context, req entity.IngestRequest) (*entity.IngestResult, error) {
	email := utils.NormalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", entity.ErrInvalidRequest)
	}
	if len(req.Events) == 0 {
		return nil, fmt.Errorf("%w: events must not be empty", entity.ErrInvalidRequest)
	}
	if len(req.Events) > MaxEventsPerBatch {
		return nil, fmt.Errorf("%w: at most %d events per batch", entity.ErrInvalidRequest, MaxEventsPerBatch)
	}

	events := make([]entity.Event, 0, len(req.Events))
	for i, in := range req.Events {
		if strings.TrimSpace(in.EventType) == "" {
			return nil, fmt.Errorf("%w: event %d has no event_type", entity.ErrInvalidRequest, i)
		}
		ev, err := in.Parse()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}

	sessionID, err := resolveSessionID(req.SessionID)
	if err != nil {
		return nil, err
	}

	earliest, latest := events[0].Timestamp, events[0].Timestamp
	for _, ev := range events[1:] {
		if ev.Timestamp.Before(earliest) {
			earliest = ev.Timestamp
		}
		if ev.Timestamp.After(latest) {
			latest = ev.Timestamp
		}
	}

	err = s.store.InTx(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users.GetOrCreate(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to get or create user: %w", err)
		}

		session, err := repos.Sessions.GetByID(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}
		if session == nil {
			session = &entity.Session{ID: sessionID, UserID: user.ID, StartTime: earliest}
			if err := repos.Sessions.Create(ctx, session); err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}
		} else if session.UserID != user.ID {
			return fmt.Errorf("%w: session %s belongs to another user", entity.ErrInvalidRequest, sessionID)
		}

		for i := range events {
			events[i].SessionID = session.ID
		}
		if err := repos.Events.BatchCreate(ctx, events); err != nil {
			return fmt.Errorf("failed to store events: %w", err)
		}

		if session.EndTime == nil || latest.After(*session.EndTime) {
			if _, err := repos.Sessions.UpdateEndTime(ctx, session.ID, latest); err != nil {
				return fmt.Errorf("failed to update session end time: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("events ingested",
		slog.String("session_id", sessionID.String()),
		slog.Int("events", len(events)),
	)

	return &entity.IngestResult{
		Success:        true,
		SessionID:      sessionID,
		EventsIngested: len(events),
	}, nil
}

func (s *sessionService) EndSession(ctx context.Context, sessionID uuid2.UUID, endTime *time.Time) (*entity.Session, error) {
	end := s.now()
	if endTime != nil {
		end = *endTime
	}

	session, err := s.store.Repositories().Sessions.UpdateEndTime(ctx, sessionID, end)
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	if session == nil {
		return nil, entity.ErrSessionNotFound
	}

	s.logger.Info("session ended", slog.String("session_id", sessionID.String()))

	return session, nil
}

func resolveSessionID(raw *string) (uuid2.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return uuid2.UUID(uuid.New()), nil
	}

	id, err := uuid2.FromString(strings.TrimSpace(*raw))
	if err != nil {
		return uuid2.Nil, fmt.Errorf("%w: sessionId must be a UUID", entity.ErrInvalidRequest)
	}
	return id, nil
}
