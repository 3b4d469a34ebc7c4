package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// HitboxWidth is the number of columns right of the bird's x that collide.
// The body/tail column at x itself never collides.
const HitboxWidth = 3

// WingState is the two-frame wing animation of the bird.
type WingState int

const (
	WingsUp WingState = iota
	WingsDown
)

// String returns a human-readable name for the wing state.
func (w WingState) String() string {
	if w == WingsDown {
		return "down"
	}
	return "up"
}

// Bird is the player entity. It only moves vertically; x is fixed.
type Bird struct {
	X             int       // Fixed lane column
	Y             float64   // Row, grows downward
	VerticalSpeed float64   // Rows per tick
	Wing          WingState // Current animation frame
	WingTimer     int       // Ticks before the wings may return up

	env *config.Environment
}

// NewBird creates a bird at the configured start position, at rest, wings up.
func NewBird(env *config.Environment) Bird {
	return Bird{
		X:    env.Bird.StartX,
		Y:    float64(env.Bird.StartY),
		Wing: WingsUp,
		env:  env,
	}
}

// Update applies gravity, moves the bird and advances the wing animation.
// Position is clamped to [ceiling, ground]; speed is left untouched, so a
// pinned bird keeps its momentum.
func (b *Bird) Update() {
	b.VerticalSpeed += b.env.Physics.Gravity
	b.Y += b.VerticalSpeed
	b.Y = core.ClampF(b.Y, float64(b.env.Screen.CeilingRow), float64(b.env.Screen.GroundRow))

	if b.WingTimer > 0 {
		b.WingTimer--
	} else if b.Wing == WingsDown {
		b.Wing = WingsUp
	}
}

// Jump overwrites the vertical speed with the jump impulse, even when the
// bird is already rising, and flaps the wings down.
func (b *Bird) Jump() {
	b.VerticalSpeed = b.env.Physics.JumpImpulse
	b.Wing = WingsDown
	b.WingTimer = b.env.Bird.WingFlapTicks
}

// Row returns the screen row the bird occupies.
func (b Bird) Row() int {
	return int(math.Floor(b.Y))
}

// Hitbox returns the colliding columns: the three immediately right of X.
func (b Bird) Hitbox() [HitboxWidth]int {
	var cols [HitboxWidth]int
	for i := range cols {
		cols[i] = b.X + 1 + i
	}
	return cols
}
