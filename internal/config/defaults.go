package config

import (
	_ "embed"
)

//go:embed defaults/gridtap.yaml
var defaultGridTapYAML []byte

// DefaultGridTapConfig returns the hardcoded default configuration, used as
// the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultGridTapConfig() GridTapConfig {
	return GridTapConfig{
		Board: BoardConfig{
			Rows: 5,
			Cols: 4,
		},
		Timing: TimingConfig{
			LitSecs:      1.5,
			RearmMinSecs: 3,
			RearmMaxSecs: 14,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				LitReductionSecs:   0.6,
				RearmReductionSecs: 4,
			},
		},
	}
}
