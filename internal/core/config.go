package core

import "time"

// RuntimeConfig contains platform-level settings handed to the game loop.
// Simulation tunables live in the config package; this only covers how the
// platform drives the simulation.
type RuntimeConfig struct {
	FrameDuration time.Duration // Wall-clock time between ticks
	Seed          int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FrameDuration: 100 * time.Millisecond,
		Seed:          0, // 0 means use current time in platform layer
	}
}

// EffectiveSeed returns Seed, or a seed derived from the current time when
// Seed is 0.
func (c RuntimeConfig) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
