package config

// DifficultyPreset names a starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyGridTapPreset modifies the config based on a difficulty preset.
// The "fixed" preset disables progression entirely.
func ApplyGridTapPreset(cfg *GridTapConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// ProgressLevel computes the current difficulty level in [0, 1] for the
// given score under a score-driven progression.
func ProgressLevel(cfg DifficultyConfig, score int) float64 {
	if !cfg.Enabled || cfg.Progression.Type != "score" || cfg.Progression.MaxAt <= 0 {
		return cfg.InitialLevel
	}
	level := cfg.InitialLevel + (1.0-cfg.InitialLevel)*float64(score)/float64(cfg.Progression.MaxAt)
	if level > 1.0 {
		return 1.0
	}
	if level < cfg.InitialLevel {
		return cfg.InitialLevel
	}
	return level
}
