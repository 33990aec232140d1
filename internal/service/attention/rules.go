package attention

import (
	"sort"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
)

// Every rule below expects its input sorted by timestamp ascending and only
// dedupes against its own output.

// RapidSwitches flags adjacent switches that are at most
// cfg.RapidSwitchSeconds apart.
func RapidSwitches(switches []entity.Event, cfg DetectionConfig) []entity.AttentionBreak {
	var out []entity.AttentionBreak
	for i := 1; i < len(switches); i++ {
		prev, curr := switches[i-1], switches[i]
		if utils.SecondsBetween(prev.Timestamp, curr.Timestamp) > cfg.RapidSwitchSeconds {
			continue
		}

		out = append(out, entity.AttentionBreak{
			StartTime: prev.Timestamp,
			EndTime:   curr.Timestamp,
			Reason:    entity.ReasonRapidTabSwitch,
			Domains:   presentDomains([]entity.Event{prev, curr}),
		})
	}
	return out
}

// ContextSwitching flags every trailing window of cfg.ContextWindowSeconds
// (both ends inclusive) holding at least cfg.ContextSwitchCount switches.
func ContextSwitching(switches []entity.Event, cfg DetectionConfig) []entity.AttentionBreak {
	var out []entity.AttentionBreak
	seen := make(startSet)
	window := time.Duration(cfg.ContextWindowSeconds) * time.Second

	for _, current := range switches {
		windowStart := current.Timestamp.Add(-window)
		lo := sort.Search(len(switches), func(j int) bool {
			return !switches[j].Timestamp.Before(windowStart)
		})
		hi := sort.Search(len(switches), func(j int) bool {
			return switches[j].Timestamp.After(current.Timestamp)
		})
		if hi-lo < cfg.ContextSwitchCount {
			continue
		}

		inWindow := switches[lo:hi]
		if !seen.add(inWindow[0].Timestamp) {
			continue
		}

		out = append(out, entity.AttentionBreak{
			StartTime: inWindow[0].Timestamp,
			EndTime:   current.Timestamp,
			Reason:    entity.ReasonHighContextSwitching,
			Domains:   distinct(presentDomains(inWindow)),
		})
	}
	return out
}

// NavigationLoops flags runs of cfg.LoopLength consecutive switches that all
// carry a domain and touch no more than cfg.LoopMaxDistinct of them.
func NavigationLoops(switches []entity.Event, cfg DetectionConfig) []entity.AttentionBreak {
	var out []entity.AttentionBreak
	seen := make(startSet)

	for i := cfg.LoopLength - 1; i < len(switches); i++ {
		run := switches[i-cfg.LoopLength+1 : i+1]
		domains := presentDomains(run)
		if len(domains) != cfg.LoopLength {
			continue
		}

		unique := distinct(domains)
		if len(unique) > cfg.LoopMaxDistinct {
			continue
		}
		if !seen.add(run[0].Timestamp) {
			continue
		}

		out = append(out, entity.AttentionBreak{
			StartTime: run[0].Timestamp,
			EndTime:   switches[i].Timestamp,
			Reason:    entity.ReasonNavigationLoop,
			Domains:   unique,
		})
	}
	return out
}

// IdleSpikes flags gaps longer than cfg.IdleSpikeSeconds between any two
// consecutive events, switch or not.
func IdleSpikes(events []entity.Event, cfg DetectionConfig) []entity.AttentionBreak {
	var out []entity.AttentionBreak
	seen := make(startSet)

	for i := 1; i < len(events); i++ {
		prev, curr := events[i-1], events[i]
		gap := utils.SecondsBetween(prev.Timestamp, curr.Timestamp)
		if gap <= cfg.IdleSpikeSeconds {
			continue
		}
		if !seen.add(prev.Timestamp) {
			continue
		}

		out = append(out, entity.AttentionBreak{
			StartTime:   prev.Timestamp,
			EndTime:     curr.Timestamp,
			Reason:      entity.ReasonAttentionIdleSpike,
			IdleSeconds: &gap,
		})
	}
	return out
}

type startSet map[int64]struct{}

// add records t and reports whether it was new.
func (s startSet) add(t time.Time) bool {
	key := t.UnixNano()
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

func presentDomains(events []entity.Event) []string {
	domains := make([]string, 0, len(events))
	for _, ev := range events {
		if d := ev.DomainName(); d != "" {
			domains = append(domains, d)
		}
	}
	return domains
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
