package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

const (
	defaultCeilingRow = 1
	defaultGroundRow  = 20
)

// DefaultEnvironment returns the built-in tunables.
// It matches defaults/flappy.yaml and is the fallback when the embedded
// file cannot be decoded.
func DefaultEnvironment() Environment {
	return Environment{
		Physics: Physics{
			Gravity:         0.5,
			JumpImpulse:     -2,
			HorizontalSpeed: 1,
		},
		Timing: Timing{
			FrameDuration:      100 * time.Millisecond,
			CountdownStepTicks: 10,
		},
		Screen: Screen{
			Width:      80,
			Height:     24,
			CeilingRow: defaultCeilingRow,
			GroundRow:  defaultGroundRow,
		},
		Bird: Bird{
			StartX:        5,
			StartY:        (defaultGroundRow-defaultCeilingRow)/2 + defaultCeilingRow, // middle height
			WingFlapTicks: 3,
		},
		Obstacles: Obstacles{
			Width:      6,
			MinHeight:  4,
			Gap:        8,
			MinSpacing: 5,
			MaxSpacing: 40,
		},
		Session: Session{
			StartingLives: 3,
			CountdownFrom: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
