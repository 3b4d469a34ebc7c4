package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// scriptedRand returns queued values in order, then the lower bound.
type scriptedRand struct {
	values []int
	calls  [][2]int
}

func (r *scriptedRand) IntRange(lo, hi int) int {
	r.calls = append(r.calls, [2]int{lo, hi})
	if len(r.values) == 0 {
		return lo
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// constRand always returns the same value, whatever the range.
type constRand int

func (r constRand) IntRange(_, _ int) int {
	return int(r)
}

func testEnv() *config.Environment {
	env := config.DefaultEnvironment()
	return &env
}

func newObstacle(env *config.Environment, x, top int) Obstacle {
	return Obstacle{
		X:            x,
		TopHeight:    top,
		BottomHeight: env.AvailableHeight() - top,
		Spacing:      env.Obstacles.MinSpacing,
		env:          env,
	}
}

func newTestSession(t *testing.T, rng RandSource) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultEnvironment(), rng)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// playingSession returns a session already past welcome and countdown.
func playingSession(t *testing.T, rng RandSource) *Session {
	t.Helper()
	s := newTestSession(t, rng)
	s.mode = ModePlaying
	return s
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}
