package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

type Session struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	StartTime time.Time  `json:"startTime" db:"start_time"`
	EndTime   *time.Time `json:"endTime" db:"end_time"`
}

// SessionWithEvents is a session plus its events in timestamp order.
type SessionWithEvents struct {
	Session
	Events []Event `json:"events"`
}
