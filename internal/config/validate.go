package config

import (
	"errors"
	"fmt"
)

// ErrInvalidEnvironment is wrapped by every Validate failure.
var ErrInvalidEnvironment = errors.New("config: invalid environment")

// Validate checks that the tunables describe a playable game.
// A failure is a misconfiguration to be reported at startup; the
// simulation assumes a validated Environment and never re-checks per tick.
func (e Environment) Validate() error {
	s := e.Screen
	o := e.Obstacles

	switch {
	case e.Timing.FrameDuration <= 0:
		return invalid("frame_duration must be positive, got %s", e.Timing.FrameDuration)
	case e.Timing.CountdownStepTicks < 1:
		return invalid("countdown_step_ticks must be at least 1, got %d", e.Timing.CountdownStepTicks)
	case e.Physics.HorizontalSpeed < 1:
		return invalid("horizontal_speed must be at least 1, got %d", e.Physics.HorizontalSpeed)
	case s.Width < 1 || s.Height < 1:
		return invalid("screen must be non-empty, got %dx%d", s.Width, s.Height)
	case s.CeilingRow < 0 || s.GroundRow <= s.CeilingRow:
		return invalid("ground_row (%d) must be below ceiling_row (%d)", s.GroundRow, s.CeilingRow)
	case e.GroundVisualRow() >= s.Height:
		return invalid("screen height %d cannot hold ground line at row %d", s.Height, e.GroundVisualRow())
	case e.Bird.StartY < s.CeilingRow || e.Bird.StartY >= s.GroundRow:
		return invalid("bird start_y %d outside [%d, %d)", e.Bird.StartY, s.CeilingRow, s.GroundRow)
	case e.Bird.StartX < 0 || e.Bird.StartX+3 >= s.Width:
		return invalid("bird start_x %d does not fit a %d column screen", e.Bird.StartX, s.Width)
	case e.Bird.WingFlapTicks < 0:
		return invalid("wing_flap_ticks must not be negative, got %d", e.Bird.WingFlapTicks)
	case o.Width < 1:
		return invalid("obstacle width must be at least 1, got %d", o.Width)
	case o.MinHeight < 0:
		return invalid("obstacle min_height must not be negative, got %d", o.MinHeight)
	case o.Gap < 1:
		return invalid("obstacle gap must be at least 1, got %d", o.Gap)
	case o.MinHeight > e.AvailableHeight()-o.MinHeight:
		return invalid("obstacle min_height %d leaves no room: available height is %d", o.MinHeight, e.AvailableHeight())
	case o.MinSpacing < 0 || o.MaxSpacing < o.MinSpacing:
		return invalid("obstacle spacing range [%d, %d] is invalid", o.MinSpacing, o.MaxSpacing)
	case e.Session.StartingLives < 1:
		return invalid("starting_lives must be at least 1, got %d", e.Session.StartingLives)
	case e.Session.CountdownFrom < 0:
		return invalid("countdown_from must not be negative, got %d", e.Session.CountdownFrom)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidEnvironment, fmt.Sprintf(format, args...))
}
