package service

import (
	"context"
	"fmt"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/internal/repository"
	"github.com/LakshyaxGupta/FlowBreak/internal/service/score"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
	"github.com/gofrs/uuid"
)

type DashboardService interface {
	GetSessionAnalytics(ctx context.Context, sessionID uuid.UUID) (*entity.SessionAnalyticsResponse, error)
	GetUserDashboard(ctx context.Context, email string) (*entity.DashboardResponse, error)
}

type dashboardService struct {
	repos    repository.Repositories
	analyzer *score.Analyzer
}

func NewDashboardService(store repository.Store, analyzer *score.Analyzer) DashboardService {
	return &dashboardService{
		repos:    store.Repositories(),
		analyzer: analyzer,
	}
}

func (s *dashboardService) GetSessionAnalytics(ctx context.Context, sessionID uuid.UUID) (*entity.SessionAnalyticsResponse, error) {
	session, err := s.repos.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, entity.ErrSessionNotFound
	}

	events, err := s.repos.Events.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session events: %w", err)
	}

	analytics, err := s.analyzer.Analyze(events)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze session %s: %w", sessionID, err)
	}

	return &entity.SessionAnalyticsResponse{
		Session:          *session,
		Events:           events,
		SessionAnalytics: *analytics,
	}, nil
}

// GetUserDashboard analyzes every session of the user, newest first, and
// aggregates the overall numbers.
func (s *dashboardService) GetUserDashboard(ctx context.Context, email string) (*entity.DashboardResponse, error) {
	user, err := s.repos.Users.GetByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	sessions, err := s.repos.Sessions.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	resp := &entity.DashboardResponse{
		User:     *user,
		Sessions: make([]entity.DashboardSession, 0, len(sessions)),
	}

	var scoreSum int
	for _, session := range sessions {
		events, err := s.repos.Events.ListBySession(ctx, session.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get events of session %s: %w", session.ID, err)
		}

		analytics, err := s.analyzer.Analyze(events)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze session %s: %w", session.ID, err)
		}

		scoreSum += analytics.FocusScore
		resp.Overall.TotalAttentionBreaks += analytics.AttentionBreaks
		resp.Sessions = append(resp.Sessions, entity.DashboardSession{
			SessionID:        session.ID,
			StartTime:        session.StartTime,
			EndTime:          session.EndTime,
			Events:           events,
			SessionAnalytics: *analytics,
		})
	}

	resp.Overall.TotalSessions = len(resp.Sessions)
	if resp.Overall.TotalSessions > 0 {
		avg := float64(scoreSum) / float64(resp.Overall.TotalSessions)
		resp.Overall.AvgFocusScore = utils.RoundToOneDecimal(avg)
	}

	return resp, nil
}
