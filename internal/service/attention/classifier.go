package attention

import (
	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
)

// DomainLabels is the lookup table behind the classifier. Neutral entries are
// informational: anything not productive or distracting is neutral anyway.
type DomainLabels struct {
	Productive  []string `json:"productive" yaml:"productive"`
	Neutral     []string `json:"neutral" yaml:"neutral"`
	Distracting []string `json:"distracting" yaml:"distracting"`
}

func DefaultDomainLabels() DomainLabels {
	return DomainLabels{
		Productive:  []string{"github.com", "stackoverflow.com", "localhost"},
		Neutral:     []string{"chatgpt.com", "newtab"},
		Distracting: []string{"youtube.com"},
	}
}

type Classifier struct {
	productive  map[string]struct{}
	distracting map[string]struct{}
}

func NewClassifier(labels DomainLabels) *Classifier {
	return &Classifier{
		productive:  toSet(labels.Productive),
		distracting: toSet(labels.Distracting),
	}
}

// Classify matches the hostname exactly; subdomains are not folded into
// their parent.
func (c *Classifier) Classify(domain string) entity.DomainLabel {
	if domain == "" {
		return entity.LabelNeutral
	}
	if _, ok := c.productive[domain]; ok {
		return entity.LabelProductive
	}
	if _, ok := c.distracting[domain]; ok {
		return entity.LabelDistracting
	}
	return entity.LabelNeutral
}

func (c *Classifier) Summarize(events []entity.Event) entity.DomainSummary {
	var summary entity.DomainSummary
	for _, ev := range events {
		switch c.Classify(ev.DomainName()) {
		case entity.LabelProductive:
			summary.Productive++
		case entity.LabelDistracting:
			summary.Distracting++
		default:
			summary.Neutral++
		}
	}
	return summary
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = utils.NormalizeDomain(v)
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
