package attention

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
)

func TestDetectEmptyAndSingle(t *testing.T) {
	d := NewDetector(DefaultDetectionConfig())

	if got := d.Detect(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if got := d.Detect([]entity.Event{switchAt("a.com", 0)}); len(got) != 0 {
		t.Fatalf("expected no breaks for a single event, got %d", len(got))
	}
}

func TestDetectSortsInputAndOutput(t *testing.T) {
	d := NewDetector(DefaultDetectionConfig())

	events := []entity.Event{
		eventAt("scroll", "a.com", 400),
		switchAt("b.com", 3),
		switchAt("a.com", 0),
	}

	got := d.Detect(events)
	if countReason(got, entity.ReasonRapidTabSwitch) != 1 {
		t.Fatalf("expected one rapid switch, got %+v", got)
	}
	if countReason(got, entity.ReasonAttentionIdleSpike) != 1 {
		t.Fatalf("expected one idle spike, got %+v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].StartTime.Before(got[i-1].StartTime) {
			t.Fatalf("breaks not ordered by start time: %+v", got)
		}
	}

	if !events[0].Timestamp.Equal(at(400)) {
		t.Fatal("Detect must not reorder the caller's slice")
	}
}

func TestDetectCaseInsensitiveTypes(t *testing.T) {
	d := NewDetector(DefaultDetectionConfig())

	events := []entity.Event{
		eventAt("TAB_SWITCH", "a.com", 0),
		eventAt("Navigation", "b.com", 2),
		eventAt("click", "c.com", 3),
	}

	got := d.Detect(events)
	if countReason(got, entity.ReasonRapidTabSwitch) != 1 {
		t.Fatalf("expected upper-case types to count as switches, got %+v", got)
	}
}

func TestDetectIdempotent(t *testing.T) {
	d := NewDetector(DefaultDetectionConfig())

	events := []entity.Event{
		switchAt("a.com", 0),
		switchAt("b.com", 2),
		switchAt("a.com", 4),
		switchAt("b.com", 6),
		switchAt("a.com", 8),
		eventAt("scroll", "a.com", 300),
	}

	first := d.Detect(events)
	second := d.Detect(events)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("detection is not deterministic:\n%+v\n%+v", first, second)
	}
	if countReason(first, entity.ReasonNavigationLoop) != 1 {
		t.Fatalf("expected a navigation loop, got %+v", first)
	}
	if countReason(first, entity.ReasonHighContextSwitching) != 1 {
		t.Fatalf("expected high context switching, got %+v", first)
	}
}

func TestDetectStableOrderForEqualStarts(t *testing.T) {
	d := NewDetector(DefaultDetectionConfig())

	events := []entity.Event{
		switchAt("a.com", 0),
		switchAt("b.com", 1),
		switchAt("a.com", 2),
		switchAt("b.com", 3),
		switchAt("a.com", 4),
	}

	got := d.Detect(events)
	var order []entity.BreakReason
	for _, b := range got {
		if b.StartTime.Equal(at(0)) {
			order = append(order, b.Reason)
		}
	}

	want := []entity.BreakReason{
		entity.ReasonRapidTabSwitch,
		entity.ReasonHighContextSwitching,
		entity.ReasonNavigationLoop,
	}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("rule order at equal start = %v, want %v", order, want)
	}
}

func TestValidateEvents(t *testing.T) {
	if err := ValidateEvents([]entity.Event{switchAt("a.com", 0)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []entity.Event{switchAt("a.com", 0), {EventType: "scroll", Timestamp: time.Time{}}}
	if err := ValidateEvents(bad); !errors.Is(err, utils.ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}
}

func TestDetectionConfigDefaultsAndValidate(t *testing.T) {
	cfg := DetectionConfig{RapidSwitchSeconds: 3}.WithDefaults()
	if cfg.RapidSwitchSeconds != 3 {
		t.Fatalf("explicit value overwritten: %d", cfg.RapidSwitchSeconds)
	}
	if cfg.ContextSwitchCount != 5 || cfg.IdleSpikeSeconds != 120 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.LoopMaxDistinct = cfg.LoopLength
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when loop_max_distinct >= loop_length")
	}
}

func TestNewDetectorClampsInvalidConfig(t *testing.T) {
	d := NewDetector(DetectionConfig{
		LoopLength:           -1,
		LoopMaxDistinct:      9,
		ContextSwitchCount:   1,
		IdleThresholdSeconds: -5,
		RapidSwitchSeconds:   -2,
	})

	cfg := d.Config()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("clamped config should validate: %v", err)
	}
	def := DefaultDetectionConfig()
	if cfg.LoopLength != def.LoopLength || cfg.LoopMaxDistinct != def.LoopMaxDistinct {
		t.Fatalf("loop thresholds = %d/%d, want defaults", cfg.LoopLength, cfg.LoopMaxDistinct)
	}

	events := []entity.Event{
		switchAt("a.com", 0),
		switchAt("b.com", 10),
		switchAt("a.com", 20),
		switchAt("b.com", 30),
		switchAt("a.com", 40),
	}
	if countReason(d.Detect(events), entity.ReasonNavigationLoop) != 1 {
		t.Fatal("expected one navigation loop with the default loop length")
	}
}

func TestNewDetectorKeepsLoopMaxDistinctBelowLength(t *testing.T) {
	cfg := NewDetector(DetectionConfig{LoopLength: 2, LoopMaxDistinct: 5}).Config()
	if cfg.LoopMaxDistinct != 1 {
		t.Fatalf("LoopMaxDistinct = %d, want 1", cfg.LoopMaxDistinct)
	}
}
