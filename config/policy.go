package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/LakshyaxGupta/FlowBreak/internal/service/attention"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Policy is the analytics policy file: domain labels plus detection
// thresholds.
type Policy struct {
	Domains   attention.DomainLabels    `json:"domains" yaml:"domains"`
	Detection attention.DetectionConfig `json:"detection" yaml:"detection"`
}

func DefaultPolicy() *Policy {
	return &Policy{
		Domains:   attention.DefaultDomainLabels(),
		Detection: attention.DefaultDetectionConfig(),
	}
}

// LoadPolicy reads a YAML or JSON policy. An empty path yields DefaultPolicy.
func LoadPolicy(path string) (*Policy, error) {
	if path == "" {
		return DefaultPolicy(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(content))
	if len(trimmed) == 0 {
		return nil, errors.New("policy file is empty")
	}

	policy := &Policy{}
	var decodeErr error
	if looksLikeJSON(trimmed) {
		decodeErr = json.Unmarshal([]byte(trimmed), policy)
	} else {
		decodeErr = yaml.Unmarshal([]byte(trimmed), policy)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode policy %s: %w", path, decodeErr)
	}

	applyPolicyDefaults(policy)
	if err := ValidatePolicy(policy); err != nil {
		return nil, err
	}
	return policy, nil
}

func looksLikeJSON(s string) bool {
	for _, ch := range s {
		if ch == '{' || ch == '[' {
			return true
		}
		if ch > ' ' {
			return false
		}
	}
	return false
}

func applyPolicyDefaults(p *Policy) {
	p.Detection = p.Detection.WithDefaults()

	def := attention.DefaultDomainLabels()
	if p.Domains.Productive == nil && p.Domains.Neutral == nil && p.Domains.Distracting == nil {
		p.Domains = def
	}
}

func ValidatePolicy(p *Policy) error {
	if p == nil {
		return errors.New("nil policy")
	}
	if err := p.Detection.Validate(); err != nil {
		return err
	}

	productive := make(map[string]struct{}, len(p.Domains.Productive))
	for _, d := range p.Domains.Productive {
		productive[utils.NormalizeDomain(d)] = struct{}{}
	}
	for _, d := range p.Domains.Distracting {
		if _, ok := productive[utils.NormalizeDomain(d)]; ok {
			return fmt.Errorf("domains: %q is listed as both productive and distracting", d)
		}
	}
	return nil
}
