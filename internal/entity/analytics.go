package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

type BreakReason string

const (
	ReasonRapidTabSwitch       BreakReason = "Rapid tab switch"
	ReasonHighContextSwitching BreakReason = "High context switching"
	ReasonNavigationLoop       BreakReason = "Navigation loop detected"
	ReasonAttentionIdleSpike   BreakReason = "Attention idle spike"
)

type AttentionBreak struct {
	StartTime   time.Time   `json:"start_time"`
	EndTime     time.Time   `json:"end_time"`
	Reason      BreakReason `json:"reason"`
	Domains     []string    `json:"domains,omitempty"`
	IdleSeconds *int64      `json:"idle_seconds,omitempty"`
	Explanation string      `json:"explanation,omitempty"`
}

type DomainLabel string

const (
	LabelProductive  DomainLabel = "productive"
	LabelNeutral     DomainLabel = "neutral"
	LabelDistracting DomainLabel = "distracting"
)

type DomainSummary struct {
	Productive  int `json:"productive"`
	Neutral     int `json:"neutral"`
	Distracting int `json:"distracting"`
}

// PenaltyDetails is the informational breakdown reported next to the score.
// It uses its own multipliers and is never used to compute the score.
type PenaltyDetails struct {
	AttentionBreakPenalty float64 `json:"attentionBreakPenalty"`
	IdlePenalty           float64 `json:"idlePenalty"`
	DistractionPenalty    float64 `json:"distractionPenalty"`
}

type FocusScoreResult struct {
	Score               int            `json:"score"`
	MaxScore            int            `json:"maxScore"`
	Penalty             float64        `json:"penalty"`
	AttentionBreakCount int            `json:"attentionBreaks"`
	IdleMinutes         float64        `json:"idleMinutes"`
	DomainSummary       DomainSummary  `json:"domainSummary"`
	Details             PenaltyDetails `json:"details"`
}

type SessionAnalytics struct {
	FocusScore            int              `json:"focusScore"`
	MaxScore              int              `json:"maxScore"`
	Penalty               float64          `json:"penalty"`
	AttentionBreaks       int              `json:"attentionBreaks"`
	IdleMinutes           float64          `json:"idleMinutes"`
	AttentionBreakDetails []AttentionBreak `json:"attentionBreakDetails"`
	DomainSummary         DomainSummary    `json:"domainSummary"`
	Details               PenaltyDetails   `json:"details"`
	TotalEvents           int              `json:"totalEvents"`
}

type SessionAnalyticsResponse struct {
	Session Session `json:"session"`
	Events  []Event `json:"events"`
	SessionAnalytics
}

type DashboardSession struct {
	SessionID uuid.UUID  `json:"sessionId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Events    []Event    `json:"events"`
	SessionAnalytics
}

type DashboardOverall struct {
	TotalSessions        int     `json:"totalSessions"`
	AvgFocusScore        float64 `json:"avgFocusScore"`
	TotalAttentionBreaks int     `json:"totalAttentionBreaks"`
}

type DashboardResponse struct {
	User     User               `json:"user"`
	Overall  DashboardOverall   `json:"overall"`
	Sessions []DashboardSession `json:"sessions"`
}
