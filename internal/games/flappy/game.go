// Package flappy implements the flappy bird simulation: a bird held in a
// fixed lane, obstacle columns scrolling in from the right, lives and
// points, and the welcome / countdown / playing / game-over screens.
//
// The package is pure and deterministic. One Session is advanced by one
// Step per tick with one decoded input; the platform owns timing, key
// decoding and drawing.
package flappy

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ID is the identifier of the game, used for logs and file names.
const ID = "flappy"

// Title is the display name of the game.
const Title = "Flappy Bird"

// StepResult is returned by Step after each tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Session owns the bird, the obstacles, the score and the current screen.
type Session struct {
	env     config.Environment
	factory *Factory

	bird      Bird
	obstacles []Obstacle // spawn order
	points    int
	lives     int

	mode           Mode
	countdown      int // current number while in ModeCountdown
	countdownTicks int // ticks spent on the current number
	running        bool
	tick           uint64

	events []Event
}

// NewSession validates env and creates a session on the welcome screen.
func NewSession(env config.Environment, rng RandSource) (*Session, error) {
	if rng == nil {
		return nil, errors.New("flappy: nil random source")
	}
	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	s := &Session{
		env:       env,
		obstacles: make([]Obstacle, 0, 8),
		lives:     env.Session.StartingLives,
		mode:      ModeWelcome,
		running:   true,
	}
	s.factory = NewFactory(&s.env, rng)
	s.bird = NewBird(&s.env)
	return s, nil
}

// Step advances the session by one tick with one decoded input.
// Quit is honoured in every mode and ends the session; once the session
// has stopped, Step is a no-op.
func (s *Session) Step(in core.Action) StepResult {
	s.events = nil

	if !s.running {
		return s.result()
	}

	if in == core.ActionQuit {
		s.running = false
		s.emit(QuitEvent{Mode: s.mode, Points: s.points})
		return s.result()
	}

	s.tick++

	switch s.mode {
	case ModeWelcome:
		if in == core.ActionJump {
			s.startCountdown()
		}

	case ModeCountdown:
		s.advanceCountdown()

	case ModePlaying:
		s.update()
		// The jump lands after the pipeline so it is visible in this tick's
		// snapshot and drives the next tick's physics.
		if in == core.ActionJump && s.mode == ModePlaying {
			s.bird.Jump()
		}

	case ModeGameOver:
		if in == core.ActionJump {
			s.restart()
		}
	}

	return s.result()
}

// update runs one tick of the playing pipeline. Order matters.
func (s *Session) update() {
	s.bird.Update()

	for i := range s.obstacles {
		s.obstacles[i].Update()
	}
	s.pruneOffscreen()

	s.maybeSpawn()
	s.scorePassed()

	if s.collided() {
		s.loseLife()
	}
}

// pruneOffscreen removes obstacles that have fully scrolled past the left edge.
func (s *Session) pruneOffscreen() {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.RightEdge() > 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// maybeSpawn appends a new obstacle at the right edge when there is none,
// or when the gap behind the rightmost one reaches a fresh spacing draw.
func (s *Session) maybeSpawn() {
	width := s.env.Screen.Width
	if len(s.obstacles) > 0 && width-rightmostEdge(s.obstacles) < s.factory.DrawSpacing() {
		return
	}

	o := s.factory.CreatePair(width)
	s.obstacles = append(s.obstacles, o)
	s.emit(ObstacleSpawnedEvent{X: o.X, TopHeight: o.TopHeight, Spacing: o.Spacing})
}

// scorePassed awards a point for every obstacle the bird's leftmost hitbox
// column has passed, removing it so it cannot score twice.
func (s *Session) scorePassed() {
	front := s.bird.X + 1
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if front > o.RightEdge() {
			s.points++
			s.emit(ScoredEvent{Points: s.points})
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
}

// collided reports a ceiling, ground or obstacle hit. Several simultaneous
// hits still count as one.
func (s *Session) collided() bool {
	if s.bird.Y <= float64(s.env.Screen.CeilingRow) || s.bird.Y >= float64(s.env.Screen.GroundRow) {
		return true
	}
	for _, o := range s.obstacles {
		if o.CollidesWith(s.bird) {
			return true
		}
	}
	return false
}

// loseLife takes a life. With lives left the board is reset and the
// countdown replays, keeping points; otherwise the board freezes on the
// game-over screen.
func (s *Session) loseLife() {
	s.lives--
	s.emit(LifeLostEvent{LivesLeft: s.lives, Points: s.points})

	if s.lives <= 0 {
		s.emit(GameOverEvent{Points: s.points})
		s.setMode(ModeGameOver)
		return
	}

	s.resetBoard()
	s.startCountdown()
}

// restart begins a brand-new game straight into play, skipping the countdown.
func (s *Session) restart() {
	s.resetBoard()
	s.points = 0
	s.lives = s.env.Session.StartingLives
	s.setMode(ModePlaying)
}

// resetBoard replaces the bird and clears the obstacles.
func (s *Session) resetBoard() {
	s.bird = NewBird(&s.env)
	s.obstacles = s.obstacles[:0]
}

func (s *Session) startCountdown() {
	s.countdown = s.env.Session.CountdownFrom
	s.countdownTicks = 0
	s.setMode(ModeCountdown)
}

// advanceCountdown holds each number for CountdownStepTicks ticks and
// starts play when the count would drop below zero.
func (s *Session) advanceCountdown() {
	s.countdownTicks++
	if s.countdownTicks < s.env.Timing.CountdownStepTicks {
		return
	}
	s.countdownTicks = 0

	if s.countdown == 0 {
		s.setMode(ModePlaying)
		return
	}
	s.countdown--
}

func (s *Session) setMode(m Mode) {
	if s.mode == m {
		return
	}
	s.emit(ModeChangedEvent{From: s.mode, To: m})
	s.mode = m
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) result() StepResult {
	return StepResult{Snapshot: s.Snapshot(), Events: s.events}
}

// Running reports whether the session still accepts ticks.
func (s *Session) Running() bool {
	return s.running
}

// Mode returns the current screen.
func (s *Session) Mode() Mode {
	return s.mode
}

// Countdown returns the current countdown number and whether the session
// is counting down.
func (s *Session) Countdown() (int, bool) {
	return s.countdown, s.mode == ModeCountdown
}

// Points returns the current score.
func (s *Session) Points() int {
	return s.points
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// Bird returns a copy of the bird.
func (s *Session) Bird() Bird {
	return s.bird
}

// Obstacles returns a copy of the obstacles in spawn order.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Environment returns the tunables the session runs with.
func (s *Session) Environment() config.Environment {
	return s.env
}
