package attention

import (
	"time"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
)

var base = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func at(sec int) time.Time {
	return base.Add(time.Duration(sec) * time.Second)
}

func switchAt(domain string, sec int) entity.Event {
	return eventAt(entity.EventTypeTabSwitch, domain, sec)
}

func eventAt(eventType, domain string, sec int) entity.Event {
	ev := entity.Event{EventType: eventType, Timestamp: at(sec)}
	if domain != "" {
		d := domain
		ev.Domain = &d
	}
	return ev
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func countReason(breaks []entity.AttentionBreak, reason entity.BreakReason) int {
	n := 0
	for _, b := range breaks {
		if b.Reason == reason {
			n++
		}
	}
	return n
}
