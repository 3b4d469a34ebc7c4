package flappy

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestNewSessionValidates(t *testing.T) {
	env := config.DefaultEnvironment()
	env.Obstacles.MinHeight = 9

	_, err := NewSession(env, NewSeededRand(1))
	if !errors.Is(err, config.ErrInvalidEnvironment) {
		t.Errorf("NewSession() error = %v, expected ErrInvalidEnvironment", err)
	}

	if _, err := NewSession(config.DefaultEnvironment(), nil); err == nil {
		t.Error("NewSession() should reject a nil random source")
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, NewSeededRand(1))

	if s.Mode() != ModeWelcome {
		t.Errorf("Mode() = %v, expected welcome", s.Mode())
	}
	if s.Lives() != 3 || s.Points() != 0 {
		t.Errorf("lives/points = %d/%d, expected 3/0", s.Lives(), s.Points())
	}
	if !s.Running() {
		t.Error("new session should be running")
	}
	if len(s.Obstacles()) != 0 {
		t.Error("new session should have no obstacles")
	}
}

func TestWelcomeWaitsForJump(t *testing.T) {
	s := newTestSession(t, NewSeededRand(1))
	birdBefore := s.Bird()

	for i := 0; i < 5; i++ {
		s.Step(core.ActionNone)
	}
	if s.Mode() != ModeWelcome {
		t.Fatalf("Mode() = %v, expected welcome without input", s.Mode())
	}
	if s.Bird() != birdBefore {
		t.Error("no physics should run on the welcome screen")
	}

	res := s.Step(core.ActionJump)
	if s.Mode() != ModeCountdown {
		t.Fatalf("Mode() = %v, expected countdown after jump", s.Mode())
	}
	if n, ok := s.Countdown(); !ok || n != 3 {
		t.Errorf("Countdown() = %d, %v, expected 3, true", n, ok)
	}
	if res.Snapshot.Countdown != 3 {
		t.Errorf("snapshot countdown = %d, expected 3", res.Snapshot.Countdown)
	}
	want := ModeChangedEvent{From: ModeWelcome, To: ModeCountdown}
	if len(res.Events) != 1 || res.Events[0] != want {
		t.Errorf("Events = %v, expected [%v]", res.Events, want)
	}
}

func TestCountdownSequence(t *testing.T) {
	env := config.DefaultEnvironment()
	env.Timing.CountdownStepTicks = 2
	s, err := NewSession(env, NewSeededRand(1))
	if err != nil {
		t.Fatal(err)
	}
	s.Step(core.ActionJump)
	birdBefore := s.Bird()

	var seen []int
	for i := 0; i < 20 && s.Mode() == ModeCountdown; i++ {
		n, _ := s.Countdown()
		seen = append(seen, n)
		// Jumps during the countdown are ignored
		s.Step(core.ActionJump)
	}

	want := []int{3, 3, 2, 2, 1, 1, 0, 0}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("countdown sequence = %v, expected %v", seen, want)
	}
	if s.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected playing after countdown", s.Mode())
	}
	if s.Bird() != birdBefore {
		t.Error("no physics should run during the countdown")
	}
	if len(s.Obstacles()) != 0 {
		t.Error("no obstacles should spawn during the countdown")
	}
}

func TestJumpWhilePlaying(t *testing.T) {
	s := playingSession(t, NewSeededRand(1))

	res := s.Step(core.ActionJump)

	b := s.Bird()
	if b.VerticalSpeed != s.env.Physics.JumpImpulse {
		t.Errorf("VerticalSpeed = %v, expected %v", b.VerticalSpeed, s.env.Physics.JumpImpulse)
	}
	if b.Wing != WingsDown || res.Snapshot.Bird.Wing != WingsDown {
		t.Error("wings should be down after a jump")
	}
}

func TestFirstObstacleSpawnsImmediately(t *testing.T) {
	rng := &scriptedRand{values: []int{5, 12}}
	s := playingSession(t, rng)

	res := s.Step(core.ActionNone)

	obstacles := s.Obstacles()
	if len(obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(obstacles))
	}
	if obstacles[0].X != s.env.Screen.Width || obstacles[0].TopHeight != 5 || obstacles[0].Spacing != 12 {
		t.Errorf("obstacle = %+v, expected X=%d top=5 spacing=12", obstacles[0], s.env.Screen.Width)
	}
	// An empty board spawns without a spacing draw
	if len(rng.calls) != 2 {
		t.Errorf("expected 2 draws (height, spacing), got %v", rng.calls)
	}
	if countEvents[ObstacleSpawnedEvent](res.Events) != 1 {
		t.Error("expected one spawn event")
	}
}

func TestSpawnWaitsForSpacing(t *testing.T) {
	tests := []struct {
		name      string
		draw      int
		wantSpawn bool
	}{
		{"gap smaller than draw", 11, false},
		{"gap equal to draw", 10, true},
		{"gap larger than draw", 9, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := &scriptedRand{values: []int{tc.draw, 5, 20}}
			s := playingSession(t, rng)
			// Right edge lands on 70 after this tick's scroll: 80 - 70 = 10 free columns
			s.obstacles = append(s.obstacles, newObstacle(&s.env, 66, 5))

			s.Step(core.ActionNone)

			got := len(s.Obstacles()) == 2
			if got != tc.wantSpawn {
				t.Errorf("spawned = %v, expected %v", got, tc.wantSpawn)
			}
			if rng.calls[0] != [2]int{s.env.Obstacles.MinSpacing, s.env.Obstacles.MaxSpacing} {
				t.Errorf("first draw range = %v, expected spacing range", rng.calls[0])
			}
		})
	}
}

func TestSpawnIgnoresStoredSpacing(t *testing.T) {
	rng := &scriptedRand{values: []int{10}}
	s := playingSession(t, rng)
	o := newObstacle(&s.env, 66, 5)
	o.Spacing = 40 // would block the spawn if it were used
	s.obstacles = append(s.obstacles, o)

	s.Step(core.ActionNone)

	if len(s.Obstacles()) != 2 {
		t.Error("spawn should use a fresh draw, not the stored spacing")
	}
}

func TestPruneOffscreenIsIdempotent(t *testing.T) {
	s := playingSession(t, NewSeededRand(1))
	s.obstacles = append(s.obstacles,
		newObstacle(&s.env, -10, 5),
		newObstacle(&s.env, -5, 5), // right edge 0: gone
		newObstacle(&s.env, -4, 5), // right edge 1: stays
		newObstacle(&s.env, 20, 5),
	)

	s.pruneOffscreen()
	first := s.Obstacles()
	s.pruneOffscreen()
	second := s.Obstacles()

	if len(first) != 2 {
		t.Fatalf("expected 2 obstacles after pruning, got %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second prune changed the set: %v -> %v", first, second)
	}
}

func TestScoringRemovesPassedObstacle(t *testing.T) {
	s := playingSession(t, NewSeededRand(3))
	s.points = 4
	// Right edge 4 after the scroll: still on screen, behind the hitbox (column 6)
	s.obstacles = append(s.obstacles, newObstacle(&s.env, 0, 5))

	res := s.Step(core.ActionNone)

	if s.Points() != 5 {
		t.Errorf("Points() = %d, expected 5", s.Points())
	}
	for _, o := range s.Obstacles() {
		if o.X == -1 {
			t.Error("scored obstacle should be removed")
		}
	}
	if countEvents[ScoredEvent](res.Events) != 1 {
		t.Errorf("expected exactly one score event, got %v", res.Events)
	}

	// No double count on later ticks
	s.Step(core.ActionNone)
	if s.Points() != 5 {
		t.Errorf("Points() = %d after next tick, expected 5", s.Points())
	}
}

func TestScoringNeedsHitboxPastRightEdge(t *testing.T) {
	rng := &scriptedRand{values: []int{40}}
	s := playingSession(t, rng)
	// Right edge 6 after the scroll equals the first hitbox column: not passed
	s.obstacles = append(s.obstacles, newObstacle(&s.env, 2, 4))

	s.Step(core.ActionNone)

	if s.Points() != 0 {
		t.Errorf("Points() = %d, expected 0", s.Points())
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	rng := &scriptedRand{values: []int{40}}
	s := playingSession(t, rng)
	s.lives = 1
	s.points = 9
	s.bird.Y = float64(s.env.Screen.CeilingRow)
	s.bird.VerticalSpeed = -5
	s.obstacles = append(s.obstacles, newObstacle(&s.env, 50, 5))

	res := s.Step(core.ActionNone)

	if s.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", s.Lives())
	}
	if s.Mode() != ModeGameOver {
		t.Errorf("Mode() = %v, expected game over", s.Mode())
	}
	if s.Points() != 9 {
		t.Errorf("Points() = %d, expected 9", s.Points())
	}
	// Board stays frozen as it was at the crash
	obstacles := s.Obstacles()
	if len(obstacles) != 1 || obstacles[0].X != 49 {
		t.Errorf("obstacles = %+v, expected the scrolled obstacle left in place", obstacles)
	}
	if s.Bird().Y != float64(s.env.Screen.CeilingRow) {
		t.Errorf("bird should stay at the crash position, got Y = %v", s.Bird().Y)
	}
	if countEvents[GameOverEvent](res.Events) != 1 {
		t.Error("expected a game over event")
	}

	// No physics on the game-over screen
	s.Step(core.ActionNone)
	if got := s.Obstacles(); got[0].X != 49 {
		t.Error("game over screen should not scroll obstacles")
	}
}

func TestCrashWithLivesLeftReplaysCountdown(t *testing.T) {
	s := playingSession(t, NewSeededRand(5))
	s.points = 7
	s.bird.Y = float64(s.env.Screen.GroundRow)
	s.bird.VerticalSpeed = 1
	s.obstacles = append(s.obstacles, newObstacle(&s.env, 50, 5))

	s.Step(core.ActionNone)

	if s.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", s.Lives())
	}
	if n, ok := s.Countdown(); !ok || n != 3 {
		t.Errorf("Countdown() = %d, %v, expected 3, true", n, ok)
	}
	if s.Points() != 7 {
		t.Errorf("Points() = %d, expected 7", s.Points())
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("obstacles should be cleared, got %d", len(s.Obstacles()))
	}
	if fresh := NewBird(&s.env); s.Bird() != fresh {
		t.Errorf("bird = %+v, expected a fresh bird %+v", s.Bird(), fresh)
	}
}

func TestSimultaneousHitsCostOneLife(t *testing.T) {
	s := playingSession(t, NewSeededRand(1))
	// Bird through the ceiling and inside the top barrier of an overlapping obstacle
	s.bird.Y = float64(s.env.Screen.CeilingRow)
	s.bird.VerticalSpeed = -3
	s.obstacles = append(s.obstacles, newObstacle(&s.env, 6, 5))

	res := s.Step(core.ActionNone)

	if s.Lives() != 2 {
		t.Errorf("Lives() = %d, expected exactly one life lost", s.Lives())
	}
	if countEvents[LifeLostEvent](res.Events) != 1 {
		t.Errorf("expected one life lost event, got %v", res.Events)
	}
}

func TestJumpDoesNotCarryIntoCountdown(t *testing.T) {
	s := playingSession(t, NewSeededRand(1))
	s.bird.Y = float64(s.env.Screen.GroundRow)

	s.Step(core.ActionJump)

	if s.Mode() != ModeCountdown {
		t.Fatalf("Mode() = %v, expected countdown", s.Mode())
	}
	if s.Bird().VerticalSpeed != 0 {
		t.Error("the reset bird should not receive the crash tick's jump")
	}
}

func TestGameOverRestartSkipsCountdown(t *testing.T) {
	s := playingSession(t, NewSeededRand(1))
	s.lives = 1
	s.points = 12
	s.bird.Y = float64(s.env.Screen.GroundRow)
	s.Step(core.ActionNone)
	if s.Mode() != ModeGameOver {
		t.Fatalf("Mode() = %v, expected game over", s.Mode())
	}

	res := s.Step(core.ActionJump)

	if s.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected a new game to start playing directly", s.Mode())
	}
	if s.Lives() != 3 || s.Points() != 0 {
		t.Errorf("lives/points = %d/%d, expected 3/0", s.Lives(), s.Points())
	}
	if len(s.Obstacles()) != 0 {
		t.Error("obstacles should be cleared")
	}
	if fresh := NewBird(&s.env); s.Bird() != fresh {
		t.Errorf("bird = %+v, expected a fresh bird", s.Bird())
	}
	want := ModeChangedEvent{From: ModeGameOver, To: ModePlaying}
	if len(res.Events) != 1 || res.Events[0] != want {
		t.Errorf("Events = %v, expected [%v]", res.Events, want)
	}
}

func TestLifeLossAndNewGameAreAsymmetric(t *testing.T) {
	s := playingSession(t, NewSeededRand(1))
	s.lives = 2

	crash := func() {
		s.bird.Y = float64(s.env.Screen.GroundRow)
		s.Step(core.ActionNone)
	}

	crash()
	if s.Mode() != ModeCountdown {
		t.Fatalf("losing a life should replay the countdown, got %v", s.Mode())
	}

	s.mode = ModePlaying
	crash()
	if s.Mode() != ModeGameOver {
		t.Fatalf("losing the last life should end the game, got %v", s.Mode())
	}

	s.Step(core.ActionJump)
	if s.Mode() != ModePlaying {
		t.Errorf("a new game should skip the countdown, got %v", s.Mode())
	}
}

func TestQuitInEveryMode(t *testing.T) {
	for _, mode := range []Mode{ModeWelcome, ModeCountdown, ModePlaying, ModeGameOver} {
		t.Run(mode.String(), func(t *testing.T) {
			s := newTestSession(t, NewSeededRand(1))
			s.mode = mode
			s.countdown = 3

			res := s.Step(core.ActionQuit)

			if s.Running() || res.Snapshot.Running {
				t.Error("quit should stop the session")
			}
			want := QuitEvent{Mode: mode}
			if len(res.Events) != 1 || res.Events[0] != want {
				t.Errorf("Events = %v, expected [%v]", res.Events, want)
			}

			// Terminal: further ticks do nothing
			before := s.Snapshot()
			res = s.Step(core.ActionJump)
			if !reflect.DeepEqual(before, res.Snapshot) || len(res.Events) != 0 {
				t.Error("a stopped session should ignore further ticks")
			}
		})
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := playingSession(t, NewSeededRand(1))
	s.Step(core.ActionNone)

	snap := s.Snapshot()
	snap.Obstacles[0].X = -99

	if s.Obstacles()[0].X == -99 {
		t.Error("mutating a snapshot should not affect the session")
	}
	if snap.Geometry.GroundVisualRow != s.env.GroundVisualRow() {
		t.Errorf("GroundVisualRow = %d, expected %d", snap.Geometry.GroundVisualRow, s.env.GroundVisualRow())
	}
}

// autopilot jumps whenever the bird sinks below the middle of the play area.
func autopilot(s *Session, tick int) core.Action {
	switch s.Mode() {
	case ModeWelcome, ModeGameOver:
		return core.ActionJump
	case ModePlaying:
		mid := float64(s.env.Screen.CeilingRow+s.env.Screen.GroundRow) / 2
		if b := s.Bird(); b.Y > mid && b.VerticalSpeed > 0 {
			return core.ActionJump
		}
	}
	if tick%97 == 0 {
		return core.ActionJump
	}
	return core.ActionNone
}

func TestLongRunInvariants(t *testing.T) {
	s := newTestSession(t, NewSeededRand(2024))
	env := s.env
	lastPoints := 0

	for tick := 0; tick < 5000; tick++ {
		prevMode := s.Mode()
		res := s.Step(autopilot(s, tick))
		snap := res.Snapshot

		if snap.Bird.Y < float64(env.Screen.CeilingRow) || snap.Bird.Y > float64(env.Screen.GroundRow) {
			t.Fatalf("tick %d: bird Y %v out of bounds", tick, snap.Bird.Y)
		}

		for _, o := range s.Obstacles() {
			if o.TopHeight+o.BottomHeight+env.Obstacles.Gap != env.PlayHeight() {
				t.Fatalf("tick %d: obstacle breaks gap invariant: %+v", tick, o)
			}
			if prevMode == ModePlaying && s.Mode() != ModeCountdown && o.RightEdge() < snap.Bird.X+1 {
				t.Fatalf("tick %d: passed obstacle still present: %+v", tick, o)
			}
		}

		scored := countEvents[ScoredEvent](res.Events)
		if prevMode == ModeGameOver && s.Mode() == ModePlaying {
			lastPoints = 0
		}
		if s.Points() != lastPoints+scored {
			t.Fatalf("tick %d: points %d, expected %d + %d", tick, s.Points(), lastPoints, scored)
		}
		lastPoints = s.Points()

		if countEvents[LifeLostEvent](res.Events) > 1 {
			t.Fatalf("tick %d: more than one life lost in a tick", tick)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(t, NewSeededRand(12345))
		for tick := 0; tick < 1500; tick++ {
			s.Step(autopilot(s, tick))
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs produced different sessions:\n%+v\n%+v", a, b)
	}
}
