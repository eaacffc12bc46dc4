// Package config provides YAML-based configuration loading and animation
// presets for tetris-wars.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

// TetrisConfig contains all configuration for a piece session.
type TetrisConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
	Collision CollisionConfig `yaml:"collision"`
}

// BoardConfig defines the field boundary in world units.
type BoardConfig struct {
	BlockSize  float64 `yaml:"block_size"`
	CenterX    float64 `yaml:"center_x"`
	CenterY    float64 `yaml:"center_y"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// SpawnConfig defines the first piece and where its pivot starts.
type SpawnConfig struct {
	Shape     string  `yaml:"shape"`
	Direction string  `yaml:"direction"`
	OffsetX   float64 `yaml:"offset_x"` // Blocks from the field centre
	OffsetY   float64 `yaml:"offset_y"`
}

// AnimationConfig defines how moves are interpolated on screen.
type AnimationConfig struct {
	Steps int `yaml:"steps"` // Ticks for one move to converge
}

// CollisionConfig defines obstacle test parameters.
type CollisionConfig struct {
	IntersectMargin float64 `yaml:"intersect_margin"`
}

// Validate reports every invalid value in the configuration.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Board.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("board.block_size must be positive, got %v", c.Board.BlockSize))
	}
	if c.Board.HalfWidth <= 0 || c.Board.HalfHeight <= 0 {
		errs = append(errs, fmt.Errorf("board half extents must be positive, got %vx%v", c.Board.HalfWidth, c.Board.HalfHeight))
	}
	if c.Animation.Steps < 1 {
		errs = append(errs, fmt.Errorf("animation.steps must be at least 1, got %d", c.Animation.Steps))
	}
	if c.Collision.IntersectMargin < 0 {
		errs = append(errs, fmt.Errorf("collision.intersect_margin must not be negative, got %v", c.Collision.IntersectMargin))
	}
	if _, err := tetromino.ParseShape(c.Spawn.Shape); err != nil {
		errs = append(errs, err)
	}
	if _, err := tetromino.ParseDirection(c.Spawn.Direction); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Field returns the field boundary.
func (c TetrisConfig) Field() core.AABB {
	return core.NewAABB(
		core.V(c.Board.CenterX, c.Board.CenterY),
		core.V(c.Board.HalfWidth, c.Board.HalfHeight),
	)
}

// SpawnPoint returns the world position of the piece pivot at spawn.
func (c TetrisConfig) SpawnPoint() core.Vec2 {
	center := core.V(c.Board.CenterX, c.Board.CenterY)
	return center.Add(core.V(c.Spawn.OffsetX, c.Spawn.OffsetY).Mul(c.Board.BlockSize))
}

// PieceConfig converts the configuration into piece construction parameters.
func (c TetrisConfig) PieceConfig() tetromino.Config {
	return tetromino.Config{
		BlockSize:       c.Board.BlockSize,
		Steps:           c.Animation.Steps,
		Spawn:           c.SpawnPoint(),
		IntersectMargin: c.Collision.IntersectMargin,
	}
}

// Shape returns the configured spawn shape, or Z if it does not parse.
func (c TetrisConfig) Shape() tetromino.Shape {
	s, err := tetromino.ParseShape(c.Spawn.Shape)
	if err != nil {
		return tetromino.ShapeZ
	}
	return s
}

// Direction returns the configured direction, or left to right if it does
// not parse.
func (c TetrisConfig) Direction() tetromino.Direction {
	d, err := tetromino.ParseDirection(c.Spawn.Direction)
	if err != nil {
		return tetromino.LeftToRight
	}
	return d
}
