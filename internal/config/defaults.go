package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 400x400 field
// of 40-unit blocks with an I piece spawned three blocks above centre.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			BlockSize:  40,
			CenterX:    0,
			CenterY:    0,
			HalfWidth:  200,
			HalfHeight: 200,
		},
		Spawn: SpawnConfig{
			Shape:     "I",
			Direction: "left_to_right",
			OffsetX:   0,
			OffsetY:   -3,
		},
		Animation: AnimationConfig{
			Steps: 20,
		},
		Collision: CollisionConfig{
			IntersectMargin: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
