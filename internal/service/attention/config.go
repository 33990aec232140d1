package attention

import (
	"errors"
	"fmt"
)

// DetectionConfig holds the thresholds used by the break rules and the idle
// calculator. All durations are whole seconds.
type DetectionConfig struct {
	RapidSwitchSeconds   int64 `json:"rapid_switch_seconds" yaml:"rapid_switch_seconds"`
	ContextWindowSeconds int64 `json:"context_window_seconds" yaml:"context_window_seconds"`
	ContextSwitchCount   int   `json:"context_switch_count" yaml:"context_switch_count"`
	LoopLength           int   `json:"loop_length" yaml:"loop_length"`
	LoopMaxDistinct      int   `json:"loop_max_distinct" yaml:"loop_max_distinct"`
	IdleSpikeSeconds     int64 `json:"idle_spike_seconds" yaml:"idle_spike_seconds"`
	IdleThresholdSeconds int64 `json:"idle_threshold_seconds" yaml:"idle_threshold_seconds"`
}

func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		RapidSwitchSeconds:   5,
		ContextWindowSeconds: 60,
		ContextSwitchCount:   5,
		LoopLength:           5,
		LoopMaxDistinct:      2,
		IdleSpikeSeconds:     120,
		IdleThresholdSeconds: 30,
	}
}

// WithDefaults fills every zero field from DefaultDetectionConfig.
func (c DetectionConfig) WithDefaults() DetectionConfig {
	def := DefaultDetectionConfig()
	if c.RapidSwitchSeconds == 0 {
		c.RapidSwitchSeconds = def.RapidSwitchSeconds
	}
	if c.ContextWindowSeconds == 0 {
		c.ContextWindowSeconds = def.ContextWindowSeconds
	}
	if c.ContextSwitchCount == 0 {
		c.ContextSwitchCount = def.ContextSwitchCount
	}
	if c.LoopLength == 0 {
		c.LoopLength = def.LoopLength
	}
	if c.LoopMaxDistinct == 0 {
		c.LoopMaxDistinct = def.LoopMaxDistinct
	}
	if c.IdleSpikeSeconds == 0 {
		c.IdleSpikeSeconds = def.IdleSpikeSeconds
	}
	if c.IdleThresholdSeconds == 0 {
		c.IdleThresholdSeconds = def.IdleThresholdSeconds
	}
	return c
}

// clamped fills zero fields like WithDefaults and also replaces every value
// Validate would reject, so the rules never see an unusable threshold.
func (c DetectionConfig) clamped() DetectionConfig {
	def := DefaultDetectionConfig()
	c = c.WithDefaults()
	if c.RapidSwitchSeconds < 0 {
		c.RapidSwitchSeconds = def.RapidSwitchSeconds
	}
	if c.ContextWindowSeconds <= 0 {
		c.ContextWindowSeconds = def.ContextWindowSeconds
	}
	if c.ContextSwitchCount <= 1 {
		c.ContextSwitchCount = def.ContextSwitchCount
	}
	if c.LoopLength < 2 {
		c.LoopLength = def.LoopLength
	}
	if c.LoopMaxDistinct <= 0 || c.LoopMaxDistinct >= c.LoopLength {
		c.LoopMaxDistinct = min(def.LoopMaxDistinct, c.LoopLength-1)
	}
	if c.IdleSpikeSeconds <= 0 {
		c.IdleSpikeSeconds = def.IdleSpikeSeconds
	}
	if c.IdleThresholdSeconds <= 0 {
		c.IdleThresholdSeconds = def.IdleThresholdSeconds
	}
	return c
}

func (c DetectionConfig) Validate() error {
	if c.RapidSwitchSeconds < 0 {
		return errors.New("detection.rapid_switch_seconds must be >= 0")
	}
	if c.ContextWindowSeconds <= 0 {
		return errors.New("detection.context_window_seconds must be > 0")
	}
	if c.ContextSwitchCount <= 1 {
		return errors.New("detection.context_switch_count must be > 1")
	}
	if c.LoopLength < 2 {
		return errors.New("detection.loop_length must be >= 2")
	}
	if c.LoopMaxDistinct <= 0 || c.LoopMaxDistinct >= c.LoopLength {
		return fmt.Errorf("detection.loop_max_distinct must be between 1 and %d", c.LoopLength-1)
	}
	if c.IdleSpikeSeconds <= 0 {
		return errors.New("detection.idle_spike_seconds must be > 0")
	}
	if c.IdleThresholdSeconds <= 0 {
		return errors.New("detection.idle_threshold_seconds must be > 0")
	}
	return nil
}
