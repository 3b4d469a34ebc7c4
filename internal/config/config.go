// Package config provides the Environment: the immutable tunables of the
// game (physics, screen bounds, obstacle sizing and spacing), loaded from
// YAML with embedded defaults.
package config

import "time"

// Environment contains every tunable of the simulation.
// A value is built once at startup, validated, and then only read.
type Environment struct {
	Physics   Physics   `yaml:"physics"`
	Timing    Timing    `yaml:"timing"`
	Screen    Screen    `yaml:"screen"`
	Bird      Bird      `yaml:"bird"`
	Obstacles Obstacles `yaml:"obstacles"`
	Session   Session   `yaml:"session"`
}

// Physics defines the motion parameters.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`          // Added to vertical speed every tick
	JumpImpulse     float64 `yaml:"jump_impulse"`     // Vertical speed set by a jump (negative = up)
	HorizontalSpeed int     `yaml:"horizontal_speed"` // Columns obstacles move left per tick
}

// Timing defines the tick cadence.
type Timing struct {
	FrameDuration      time.Duration `yaml:"frame_duration"`
	CountdownStepTicks int           `yaml:"countdown_step_ticks"` // Ticks each countdown number stays on screen
}

// Screen defines the playfield geometry, in character cells.
// Rows grow downward.
type Screen struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	CeilingRow int `yaml:"ceiling_row"`
	GroundRow  int `yaml:"ground_row"`
}

// Bird defines the player's starting placement and wing animation.
type Bird struct {
	StartX        int `yaml:"start_x"`
	StartY        int `yaml:"start_y"`
	WingFlapTicks int `yaml:"wing_flap_ticks"`
}

// Obstacles defines barrier sizing and spacing.
type Obstacles struct {
	Width      int `yaml:"width"`
	MinHeight  int `yaml:"min_height"`
	Gap        int `yaml:"gap"`
	MinSpacing int `yaml:"min_spacing"`
	MaxSpacing int `yaml:"max_spacing"`
}

// Session defines the lives and countdown policy.
type Session struct {
	StartingLives int `yaml:"starting_lives"`
	CountdownFrom int `yaml:"countdown_from"`
}

// PlayHeight returns the number of rows between ceiling and ground.
func (e Environment) PlayHeight() int {
	return e.Screen.GroundRow - e.Screen.CeilingRow
}

// AvailableHeight returns the rows shared by the top and bottom barrier of
// every obstacle, i.e. the play height minus the constant gap.
func (e Environment) AvailableHeight() int {
	return e.PlayHeight() - e.Obstacles.Gap
}

// GroundVisualRow returns the row where the ground line is painted.
func (e Environment) GroundVisualRow() int {
	return e.Screen.GroundRow + 1
}
