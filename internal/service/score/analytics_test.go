package score

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
)

func TestAnalyze(t *testing.T) {
	events := []entity.Event{
		ev("tab_switch", "github.com", 0),
		ev("tab_switch", "stackoverflow.com", 3),
		ev("page_view", "youtube.com", 200),
	}

	got, err := NewDefaultAnalyzer().Analyze(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TotalEvents != 3 {
		t.Fatalf("total events = %d, want 3", got.TotalEvents)
	}
	if got.AttentionBreaks != 2 || len(got.AttentionBreakDetails) != 2 {
		t.Fatalf("expected a rapid switch and an idle spike, got %+v", got.AttentionBreakDetails)
	}
	for _, b := range got.AttentionBreakDetails {
		if !strings.HasPrefix(b.Explanation, explanationPrefix) {
			t.Fatalf("break without explanation: %+v", b)
		}
	}
	want := entity.DomainSummary{Productive: 2, Distracting: 1}
	if got.DomainSummary != want {
		t.Fatalf("domain summary = %+v, want %+v", got.DomainSummary, want)
	}

	// 5 + 5 for breaks, 2 idle minutes, 1 distracting event.
	if got.Penalty != 13 || got.FocusScore != 87 {
		t.Fatalf("penalty %v score %d, want 13 and 87", got.Penalty, got.FocusScore)
	}

	wantDetails := entity.PenaltyDetails{AttentionBreakPenalty: 16, IdlePenalty: 4, DistractionPenalty: 3}
	if got.Details != wantDetails {
		t.Fatalf("details = %+v, want %+v", got.Details, wantDetails)
	}
}

func TestLoadAnalyzer(t *testing.T) {
	if _, err := LoadAnalyzer(""); err != nil {
		t.Fatalf("default policy: %v", err)
	}
	if _, err := LoadAnalyzer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing policy file")
	}

	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("domains:\n  distracting: [github.com]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	a, err := LoadAnalyzer(path)
	if err != nil {
		t.Fatalf("LoadAnalyzer: %v", err)
	}
	got, err := a.Analyze([]entity.Event{ev("tab_switch", "github.com", 0)})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got.DomainSummary.Distracting != 1 {
		t.Fatalf("policy labels not applied: %+v", got.DomainSummary)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	got, err := NewDefaultAnalyzer().Analyze(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FocusScore != 100 || got.TotalEvents != 0 {
		t.Fatalf("unexpected analytics: %+v", got)
	}
	if got.AttentionBreakDetails == nil {
		t.Fatal("break details should be an empty list, not nil")
	}
}

func TestAnalyzeInvalidTimestamp(t *testing.T) {
	_, err := NewDefaultAnalyzer().Analyze([]entity.Event{{EventType: "scroll"}})
	if !errors.Is(err, utils.ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}
}
