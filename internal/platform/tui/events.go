package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// LogEvents writes one tick's events to logger. A nil logger is allowed.
func LogEvents(logger *log.Logger, tick uint64, events []flappy.Event) {
	if logger == nil {
		return
	}
	for _, e := range events {
		switch e := e.(type) {
		case flappy.ModeChangedEvent:
			logger.Info("mode changed", "tick", tick, "from", e.From, "to", e.To)
		case flappy.ObstacleSpawnedEvent:
			logger.Debug("obstacle spawned", "tick", tick, "x", e.X, "top", e.TopHeight, "spacing", e.Spacing)
		case flappy.ScoredEvent:
			logger.Debug("scored", "tick", tick, "points", e.Points)
		case flappy.LifeLostEvent:
			logger.Info("life lost", "tick", tick, "lives", e.LivesLeft, "points", e.Points)
		case flappy.GameOverEvent:
			logger.Info("game over", "tick", tick, "points", e.Points)
		case flappy.QuitEvent:
			logger.Info("quit", "tick", tick, "mode", e.Mode, "points", e.Points)
		}
	}
}
