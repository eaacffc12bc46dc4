package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tetris-wars/internal/core"
	"github.com/vovakirdan/tetris-wars/internal/tetromino"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestDefaultPieceConfig(t *testing.T) {
	cfg := DefaultTetrisConfig()

	assert.Equal(t, tetromino.DefaultConfig(), cfg.PieceConfig())
	assert.Equal(t, core.NewAABB(core.V(0, 0), core.V(200, 200)), cfg.Field())
	assert.Equal(t, tetromino.ShapeI, cfg.Shape())
	assert.Equal(t, tetromino.LeftToRight, cfg.Direction())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr bool
	}{
		{"default", func(*TetrisConfig) {}, false},
		{"zero block size", func(c *TetrisConfig) { c.Board.BlockSize = 0 }, true},
		{"negative half width", func(c *TetrisConfig) { c.Board.HalfWidth = -1 }, true},
		{"zero half height", func(c *TetrisConfig) { c.Board.HalfHeight = 0 }, true},
		{"zero steps", func(c *TetrisConfig) { c.Animation.Steps = 0 }, true},
		{"single step", func(c *TetrisConfig) { c.Animation.Steps = 1 }, false},
		{"negative margin", func(c *TetrisConfig) { c.Collision.IntersectMargin = -0.5 }, true},
		{"zero margin", func(c *TetrisConfig) { c.Collision.IntersectMargin = 0 }, false},
		{"unknown shape", func(c *TetrisConfig) { c.Spawn.Shape = "Q" }, true},
		{"lowercase shape", func(c *TetrisConfig) { c.Spawn.Shape = "t" }, false},
		{"unknown direction", func(c *TetrisConfig) { c.Spawn.Direction = "up" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Board.BlockSize = 0
	cfg.Animation.Steps = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block_size")
	assert.Contains(t, err.Error(), "steps")
}

func TestSpawnPointIsInBlocks(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Board.CenterX = 100
	cfg.Board.BlockSize = 10
	cfg.Spawn.OffsetX = 2
	cfg.Spawn.OffsetY = -1.5

	assert.Equal(t, core.V(120, -15), cfg.SpawnPoint())
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("spawn:\n  shape: T\nanimation:\n  steps: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, "T", cfg.Spawn.Shape)
	assert.Equal(t, 5, cfg.Animation.Steps)
	// Unset keys keep their defaults
	assert.Equal(t, 40.0, cfg.Board.BlockSize)
	assert.Equal(t, 200.0, cfg.Board.HalfHeight)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("board: [not, a, map"), 0o644))
	_, err = LoadTetris(broken)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("animation:\n  steps: 0\n"), 0o644))
	_, err = LoadTetris(invalid)
	assert.Error(t, err)
}

func TestLoadTetrisFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.Mkdir("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", ConfigFile), []byte("board:\n  block_size: 20\n"), 0o644))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Board.BlockSize)
}

func TestAnimationPresets(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"smooth", 20},
		{"snappy", 8},
		{"instant", 1},
		{"", 20},
		{" Snappy ", 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParseAnimationPreset(tc.name)
			require.NoError(t, err)

			cfg := DefaultTetrisConfig()
			ApplyAnimationPreset(&cfg, p)
			if cfg.Animation.Steps != tc.expected {
				t.Errorf("steps after %q = %d, expected %d", tc.name, cfg.Animation.Steps, tc.expected)
			}
			assert.NoError(t, cfg.Validate())
		})
	}

	_, err := ParseAnimationPreset("warp")
	assert.Error(t, err)
}
