package entity

import (
	"strings"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
	"github.com/gofrs/uuid"
)

const (
	EventTypeTabSwitch  = "tab_switch"
	EventTypeNavigation = "navigation"
)

type Event struct {
	ID        int64     `json:"id" db:"id"`
	SessionID uuid.UUID `json:"session_id" db:"session_id"`
	EventType string    `json:"event_type" db:"event_type"`
	Domain    *string   `json:"domain" db:"domain"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// DomainName returns the domain or "" when the event has none.
func (e Event) DomainName() string {
	if e.Domain == nil {
		return ""
	}
	return *e.Domain
}

// IsSwitch reports whether the event is a tab switch or a navigation.
func (e Event) IsSwitch() bool {
	t := strings.ToLower(e.EventType)
	return t == EventTypeTabSwitch || t == EventTypeNavigation
}

// EventInput is an event as sent by the browser extension, before the
// timestamp has been validated.
type EventInput struct {
	EventType string  `json:"event_type" binding:"required"`
	Domain    *string `json:"domain"`
	Timestamp string  `json:"timestamp" binding:"required"`
}

// Parse validates the timestamp and normalizes the domain.
func (in EventInput) Parse() (Event, error) {
	ts, err := utils.ParseTimestamp(in.Timestamp)
	if err != nil {
		return Event{}, err
	}

	ev := Event{
		EventType: strings.TrimSpace(in.EventType),
		Timestamp: ts,
	}
	if in.Domain != nil {
		if d := utils.NormalizeDomain(*in.Domain); d != "" {
			ev.Domain = &d
		}
	}

	return ev, nil
}

type IngestRequest struct {
	Email     string       `json:"email" binding:"required"`
	SessionID *string      `json:"sessionId"`
	Events    []EventInput `json:"events" binding:"required"`
}

type IngestResult struct {
	Success        bool      `json:"success"`
	SessionID      uuid.UUID `json:"sessionId"`
	EventsIngested int       `json:"eventsIngested"`
}

type EndSessionRequest struct {
	EndTime *string `json:"endTime"`
}
