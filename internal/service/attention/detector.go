package attention

import (
	"fmt"
	"sort"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
)

type Detector struct {
	cfg DetectionConfig
}

// NewDetector fills missing thresholds from DefaultDetectionConfig and
// replaces out-of-range ones with their defaults. Use Validate first to
// reject a bad config instead.
func NewDetector(cfg DetectionConfig) *Detector {
	return &Detector{cfg: cfg.clamped()}
}

func (d *Detector) Config() DetectionConfig {
	return d.cfg
}

// Detect runs the four break rules and returns their combined output ordered
// by start time. Breaks from different rules may overlap.
func (d *Detector) Detect(events []entity.Event) []entity.AttentionBreak {
	breaks := make([]entity.AttentionBreak, 0)
	if len(events) < 2 {
		return breaks
	}

	ordered := SortedByTime(events)
	switches := SwitchEvents(ordered)

	breaks = append(breaks, RapidSwitches(switches, d.cfg)...)
	breaks = append(breaks, ContextSwitching(switches, d.cfg)...)
	breaks = append(breaks, NavigationLoops(switches, d.cfg)...)
	breaks = append(breaks, IdleSpikes(ordered, d.cfg)...)

	sort.SliceStable(breaks, func(i, j int) bool {
		return breaks[i].StartTime.Before(breaks[j].StartTime)
	})

	return breaks
}

// SortedByTime returns a copy of events in ascending timestamp order; events
// with equal timestamps keep their relative order.
func SortedByTime(events []entity.Event) []entity.Event {
	ordered := make([]entity.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})
	return ordered
}

func SwitchEvents(events []entity.Event) []entity.Event {
	switches := make([]entity.Event, 0, len(events))
	for _, ev := range events {
		if ev.IsSwitch() {
			switches = append(switches, ev)
		}
	}
	return switches
}

// ValidateEvents rejects events without a usable timestamp.
func ValidateEvents(events []entity.Event) error {
	for i, ev := range events {
		if ev.Timestamp.IsZero() {
			return fmt.Errorf("event %d: %w", i, utils.ErrInvalidTimestamp)
		}
	}
	return nil
}
