package flappy

// Event reports something that happened during a tick.
// The engine never logs or prints; the platform decides what to do with events.
type Event interface {
	event()
}

// ModeChangedEvent is emitted on every screen transition.
type ModeChangedEvent struct {
	From Mode
	To   Mode
}

func (ModeChangedEvent) event() {}

// ObstacleSpawnedEvent is emitted when a new obstacle enters at the right edge.
type ObstacleSpawnedEvent struct {
	X         int
	TopHeight int
	Spacing   int
}

func (ObstacleSpawnedEvent) event() {}

// ScoredEvent is emitted once per cleared obstacle.
type ScoredEvent struct {
	Points int // Total after scoring
}

func (ScoredEvent) event() {}

// LifeLostEvent is emitted on every collision.
type LifeLostEvent struct {
	LivesLeft int
	Points    int
}

func (LifeLostEvent) event() {}

// GameOverEvent is emitted when the last life is lost.
type GameOverEvent struct {
	Points int
}

func (GameOverEvent) event() {}

// QuitEvent is emitted when the session stops running.
type QuitEvent struct {
	Mode   Mode
	Points int
}

func (QuitEvent) event() {}
