package score

import (
	"math"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/internal/service/attention"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
)

const MaxScore = 100

// ScoringPolicy is the capped penalty model the score is computed from.
type ScoringPolicy struct {
	PerBreak       float64
	BreakCap       float64
	PerIdleMinute  float64
	IdleCap        float64
	PerDistracting float64
	DistractingCap float64
}

func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		PerBreak:       5,
		BreakCap:       40,
		PerIdleMinute:  0.5,
		IdleCap:        30,
		PerDistracting: 2,
		DistractingCap: 30,
	}
}

// Penalty returns the sum of the three capped penalties.
func (p ScoringPolicy) Penalty(breaks int, idleMinutes int64, distracting int) float64 {
	breakPenalty := math.Min(float64(breaks)*p.PerBreak, p.BreakCap)
	idlePenalty := math.Min(float64(idleMinutes)*p.PerIdleMinute, p.IdleCap)
	distractPenalty := math.Min(float64(distracting)*p.PerDistracting, p.DistractingCap)
	return breakPenalty + idlePenalty + distractPenalty
}

// DiagnosticBreakdown weighs the same inputs with its own uncapped
// multipliers. It is reported for display only and never feeds the score.
type DiagnosticBreakdown struct {
	PerBreak       float64
	PerIdleMinute  float64
	PerDistracting float64
}

func DefaultDiagnosticBreakdown() DiagnosticBreakdown {
	return DiagnosticBreakdown{PerBreak: 8, PerIdleMinute: 2, PerDistracting: 3}
}

func (d DiagnosticBreakdown) Details(breaks int, idleMinutes int64, distracting int) entity.PenaltyDetails {
	return entity.PenaltyDetails{
		AttentionBreakPenalty: float64(breaks) * d.PerBreak,
		IdlePenalty:           float64(idleMinutes) * d.PerIdleMinute,
		DistractionPenalty:    float64(distracting) * d.PerDistracting,
	}
}

type Calculator struct {
	detector    *attention.Detector
	classifier  *attention.Classifier
	policy      ScoringPolicy
	diagnostics DiagnosticBreakdown
}

func NewCalculator(detector *attention.Detector, classifier *attention.Classifier) *Calculator {
	return &Calculator{
		detector:    detector,
		classifier:  classifier,
		policy:      DefaultScoringPolicy(),
		diagnostics: DefaultDiagnosticBreakdown(),
	}
}

// Score runs break detection and scores the result.
func (c *Calculator) Score(events []entity.Event) (*entity.FocusScoreResult, error) {
	if err := attention.ValidateEvents(events); err != nil {
		return nil, err
	}

	ordered := attention.SortedByTime(events)
	breaks := c.detector.Detect(ordered)
	return c.score(ordered, len(breaks)), nil
}

// score expects events already sorted.
func (c *Calculator) score(ordered []entity.Event, breakCount int) *entity.FocusScoreResult {
	idleSeconds := attention.TotalIdleSeconds(ordered, c.detector.Config().IdleThresholdSeconds)
	idleMinutes := utils.SecondsToMinutes(idleSeconds)
	summary := c.classifier.Summarize(ordered)

	penalty := c.policy.Penalty(breakCount, idleMinutes, summary.Distracting)
	score := int(math.Max(0, math.Round(MaxScore-penalty)))

	return &entity.FocusScoreResult{
		Score:               score,
		MaxScore:            MaxScore,
		Penalty:             penalty,
		AttentionBreakCount: breakCount,
		IdleMinutes:         utils.RoundToOneDecimal(float64(idleMinutes)),
		DomainSummary:       summary,
		Details:             c.diagnostics.Details(breakCount, idleMinutes, summary.Distracting),
	}
}
