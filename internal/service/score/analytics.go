package score

import (
	"github.com/LakshyaxGupta/FlowBreak/config"
	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/internal/service/attention"
)

// Analyzer produces the full analytics view of one session.
type Analyzer struct {
	detector   *attention.Detector
	calculator *Calculator
}

func NewAnalyzer(detection attention.DetectionConfig, labels attention.DomainLabels) *Analyzer {
	detector := attention.NewDetector(detection)
	return &Analyzer{
		detector:   detector,
		calculator: NewCalculator(detector, attention.NewClassifier(labels)),
	}
}

// LoadAnalyzer builds the analyzer from the policy file at path, or from the
// built-in defaults when path is empty.
func LoadAnalyzer(path string) (*Analyzer, error) {
	policy, err := config.LoadPolicy(path)
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(policy.Detection, policy.Domains), nil
}

func NewDefaultAnalyzer() *Analyzer {
	return NewAnalyzer(attention.DefaultDetectionConfig(), attention.DefaultDomainLabels())
}

func (a *Analyzer) Calculator() *Calculator {
	return a.calculator
}

// Analyze detects breaks once and reuses them for the score and the
// explanations.
func (a *Analyzer) Analyze(events []entity.Event) (*entity.SessionAnalytics, error) {
	if err := attention.ValidateEvents(events); err != nil {
		return nil, err
	}

	ordered := attention.SortedByTime(events)
	breaks := a.detector.Detect(ordered)
	result := a.calculator.score(ordered, len(breaks))

	return &entity.SessionAnalytics{
		FocusScore:            result.Score,
		MaxScore:              result.MaxScore,
		Penalty:               result.Penalty,
		AttentionBreaks:       result.AttentionBreakCount,
		IdleMinutes:           result.IdleMinutes,
		AttentionBreakDetails: Explain(breaks),
		DomainSummary:         result.DomainSummary,
		Details:               result.Details,
		TotalEvents:           len(events),
	}, nil
}
