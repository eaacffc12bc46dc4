package config

import (
	"fmt"
	"strings"
)

// AnimationPreset represents a named animation speed.
type AnimationPreset string

const (
	AnimationSmooth  AnimationPreset = "smooth"
	AnimationSnappy  AnimationPreset = "snappy"
	AnimationInstant AnimationPreset = "instant"
)

// AnimationPresets lists the presets in display order.
func AnimationPresets() []AnimationPreset {
	return []AnimationPreset{AnimationSmooth, AnimationSnappy, AnimationInstant}
}

// StepsForPreset returns the animation steps for a preset.
func StepsForPreset(preset AnimationPreset) int {
	switch preset {
	case AnimationSnappy:
		return 8
	case AnimationInstant:
		return 1
	default:
		return 20
	}
}

// ParseAnimationPreset validates a preset name. The empty string means smooth.
func ParseAnimationPreset(name string) (AnimationPreset, error) {
	p := AnimationPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "":
		return AnimationSmooth, nil
	case AnimationSmooth, AnimationSnappy, AnimationInstant:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown animation preset %q (expected smooth, snappy or instant)", name)
}

// ApplyAnimationPreset modifies the config based on an animation preset.
func ApplyAnimationPreset(cfg *TetrisConfig, preset AnimationPreset) {
	cfg.Animation.Steps = StepsForPreset(preset)
}
