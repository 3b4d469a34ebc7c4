package flappy

// Mode is the current screen of the session.
type Mode int

const (
	ModeWelcome   Mode = iota // Title screen, waiting for the first jump
	ModeCountdown             // Counting down before play; see Snapshot.Countdown
	ModePlaying               // Physics running
	ModeGameOver              // Lives exhausted, board frozen
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeWelcome:
		return "welcome"
	case ModeCountdown:
		return "countdown"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// BirdView is the read-only view of the bird.
type BirdView struct {
	X    int
	Y    float64
	Row  int
	Wing WingState
}

// ObstacleView is the read-only view of an obstacle.
type ObstacleView struct {
	X            int
	RightEdge    int
	TopHeight    int
	BottomHeight int
}

// Geometry carries the playfield layout the renderer needs.
type Geometry struct {
	Width           int
	Height          int
	CeilingRow      int
	GroundRow       int
	GroundVisualRow int
	ObstacleWidth   int
}

// Snapshot captures the complete session state after a tick.
// It shares no memory with the session and is safe to keep.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Countdown int // Only meaningful in ModeCountdown
	Running   bool
	Bird      BirdView
	Obstacles []ObstacleView
	Points    int
	Lives     int
	Geometry  Geometry
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = ObstacleView{
			X:            o.X,
			RightEdge:    o.RightEdge(),
			TopHeight:    o.TopHeight,
			BottomHeight: o.BottomHeight,
		}
	}

	countdown := 0
	if s.mode == ModeCountdown {
		countdown = s.countdown
	}

	return Snapshot{
		Tick:      s.tick,
		Mode:      s.mode,
		Countdown: countdown,
		Running:   s.running,
		Bird: BirdView{
			X:    s.bird.X,
			Y:    s.bird.Y,
			Row:  s.bird.Row(),
			Wing: s.bird.Wing,
		},
		Obstacles: obstacles,
		Points:    s.points,
		Lives:     s.lives,
		Geometry: Geometry{
			Width:           s.env.Screen.Width,
			Height:          s.env.Screen.Height,
			CeilingRow:      s.env.Screen.CeilingRow,
			GroundRow:       s.env.Screen.GroundRow,
			GroundVisualRow: s.env.GroundVisualRow(),
			ObstacleWidth:   s.env.Obstacles.Width,
		},
	}
}
