package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// maxRedraws bounds how often the factory retries a draw that fell outside
// its requested range before settling on the lower bound.
const maxRedraws = 8

// Obstacle is a barrier column: one part hangs from the ceiling, one rises
// from the ground, with a constant gap between them.
type Obstacle struct {
	X            int // Left column, decreases every tick; negative is off-screen
	TopHeight    int // Rows of barrier hanging from the ceiling
	BottomHeight int // Rows of barrier rising from the ground
	Spacing      int // Columns reserved before the next obstacle; read only by the spawner

	env *config.Environment
}

// Update scrolls the obstacle left.
func (o *Obstacle) Update() {
	o.X -= o.env.Physics.HorizontalSpeed
}

// RightEdge returns the rightmost column the obstacle occupies.
func (o Obstacle) RightEdge() int {
	return o.X + o.env.Obstacles.Width - 1
}

// CollidesWith reports whether any hitbox column of the bird overlaps the
// obstacle horizontally while the bird is inside the top or bottom barrier.
func (o Obstacle) CollidesWith(b Bird) bool {
	bottomLimit := float64(o.env.Screen.GroundRow - o.BottomHeight - 1)
	for _, bx := range b.Hitbox() {
		if !core.InRange(bx, o.X, o.RightEdge()) {
			continue
		}
		if b.Y < float64(o.TopHeight) || b.Y > bottomLimit {
			return true
		}
	}
	return false
}

// Factory creates obstacle pairs and spacing draws from an injected
// RandSource.
type Factory struct {
	env *config.Environment
	rng RandSource
}

// NewFactory creates an obstacle factory. env must already be validated.
func NewFactory(env *config.Environment, rng RandSource) *Factory {
	return &Factory{env: env, rng: rng}
}

// CreatePair returns a new obstacle at spawnX. The top height is drawn from
// [min_height, available-min_height] and the bottom height is its
// complement, so top + bottom + gap always equals the play height.
func (f *Factory) CreatePair(spawnX int) Obstacle {
	available := f.env.AvailableHeight()
	minHeight := f.env.Obstacles.MinHeight

	top := f.draw(minHeight, available-minHeight)
	return Obstacle{
		X:            spawnX,
		TopHeight:    top,
		BottomHeight: available - top,
		Spacing:      f.DrawSpacing(),
		env:          f.env,
	}
}

// DrawSpacing draws a horizontal spacing from [min_spacing, max_spacing].
func (f *Factory) DrawSpacing() int {
	return f.draw(f.env.Obstacles.MinSpacing, f.env.Obstacles.MaxSpacing)
}

// draw asks the source for a value in [lo, hi] and re-draws values that
// land outside it.
func (f *Factory) draw(lo, hi int) int {
	for i := 0; i < maxRedraws; i++ {
		if v := f.rng.IntRange(lo, hi); core.InRange(v, lo, hi) {
			return v
		}
	}
	return lo
}

// rightmostEdge returns the largest right edge among obstacles, or MinInt
// when there are none.
func rightmostEdge(obstacles []Obstacle) int {
	edge := math.MinInt
	for _, o := range obstacles {
		edge = core.Max(edge, o.RightEdge())
	}
	return edge
}
