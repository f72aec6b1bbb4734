// Package config provides YAML-based game configuration loading and
// difficulty management for gridtap.
package config

import "fmt"

// GridTapConfig contains all tunable parameters for the game.
type GridTapConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the tile grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the tile flip windows, in seconds.
type TimingConfig struct {
	// LitSecs is how long a tile stays lit before dimming itself.
	LitSecs float64 `yaml:"lit_secs"`
	// RearmMinSecs/RearmMaxSecs bound the random dark window; the delay is
	// a whole number of seconds drawn uniformly from the inclusive range.
	RearmMinSecs int `yaml:"rearm_min_secs"`
	RearmMaxSecs int `yaml:"rearm_max_secs"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	// LitReductionSecs is shaved off the lit window at max difficulty.
	LitReductionSecs float64 `yaml:"lit_reduction_secs"`
	// RearmReductionSecs is shaved off the max dark window at max
	// difficulty, making lit tiles come back sooner.
	RearmReductionSecs int `yaml:"rearm_reduction_secs"`
}

// Validate checks the config for values the game cannot run with.
func (c GridTapConfig) Validate() error {
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Timing.LitSecs <= 0 {
		return fmt.Errorf("config: lit_secs must be positive, got %v", c.Timing.LitSecs)
	}
	if c.Timing.RearmMinSecs < 1 {
		return fmt.Errorf("config: rearm_min_secs must be at least 1, got %d", c.Timing.RearmMinSecs)
	}
	if c.Timing.RearmMaxSecs < c.Timing.RearmMinSecs {
		return fmt.Errorf("config: rearm_max_secs %d is below rearm_min_secs %d",
			c.Timing.RearmMaxSecs, c.Timing.RearmMinSecs)
	}
	return nil
}
