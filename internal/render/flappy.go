// Package render paints flappy snapshots into a core.Screen.
// All glyphs, colors and screen texts live here; the simulation only
// exposes semantic state.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Glyphs used for drawing.
const (
	BirdWingsUp   = "=^o>"
	BirdWingsDown = "=vo>"
	ObstacleChar  = '#'
	GroundChar    = '═'
	LifeChar      = '♥'
)

// Colors used for drawing.
const (
	BirdColor     = core.ColorBrightYellow
	ObstacleColor = core.ColorGreen
	GroundColor   = core.ColorBrightGreen
	HUDColor      = core.ColorWhite
	LifeColor     = core.ColorRed
	TextColor     = core.ColorCyan
)

// BirdGlyph returns the two-frame bird sprite for a wing state.
func BirdGlyph(w flappy.WingState) string {
	if w == flappy.WingsDown {
		return BirdWingsDown
	}
	return BirdWingsUp
}

// Draw clears dst and paints the snapshot.
func Draw(dst *core.Screen, snap flappy.Snapshot) {
	dst.Clear()
	g := snap.Geometry

	dst.DrawHLine(0, g.GroundVisualRow, g.Width, GroundChar, GroundColor)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, g, o)
	}

	if snap.Mode != flappy.ModeWelcome {
		dst.DrawTextColored(snap.Bird.X, birdRow(snap), BirdGlyph(snap.Bird.Wing), BirdColor)
	}

	drawHUD(dst, snap)

	switch snap.Mode {
	case flappy.ModeWelcome:
		drawMessage(dst, strings.ToUpper(flappy.Title), "SPACE to start  |  Q to quit")
	case flappy.ModeCountdown:
		drawCountdown(dst, snap.Countdown)
	case flappy.ModeGameOver:
		drawMessage(dst, "GAME OVER", fmt.Sprintf("Points: %d  |  SPACE to play again  |  Q to quit", snap.Points))
	}
}

// birdRow returns the row the bird is drawn on. A bird whose fractional y is
// already inside a bottom barrier under its hitbox is drawn on the barrier's
// top row, so a hit never shows in an open row.
func birdRow(snap flappy.Snapshot) int {
	b := snap.Bird
	for _, o := range snap.Obstacles {
		if b.X+flappy.HitboxWidth < o.X || b.X+1 > o.RightEdge {
			continue
		}
		if b.Y > float64(snap.Geometry.GroundRow-o.BottomHeight-1) {
			return core.Max(b.Row, int(math.Ceil(b.Y)))
		}
	}
	return b.Row
}

// drawObstacle paints the top barrier from the ceiling down and the bottom
// barrier up to the ground, matching the rows that collide.
func drawObstacle(dst *core.Screen, g flappy.Geometry, o flappy.ObstacleView) {
	topRows := o.TopHeight - g.CeilingRow
	if topRows > 0 {
		dst.DrawRect(core.NewRect(o.X, g.CeilingRow, g.ObstacleWidth, topRows), ObstacleChar, ObstacleColor)
	}

	bottomY := g.GroundRow - o.BottomHeight
	dst.DrawRect(core.NewRect(o.X, bottomY, g.ObstacleWidth, g.GroundRow-bottomY+1), ObstacleChar, ObstacleColor)
}

// drawHUD draws points on the left and lives on the right of the top row.
func drawHUD(dst *core.Screen, snap flappy.Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf("Points: %d", snap.Points), HUDColor)

	lives := strings.Repeat(string(LifeChar), core.Max(snap.Lives, 0))
	label := "Lives: "
	x := snap.Geometry.Width - len(label) - len([]rune(lives)) - 2
	dst.DrawTextColored(x, 0, label, HUDColor)
	dst.DrawTextColored(x+len(label), 0, lives, LifeColor)
}

func drawCountdown(dst *core.Screen, n int) {
	text := fmt.Sprintf("%d", n)
	if n == 0 {
		text = "GO!"
	}
	drawMessage(dst, "GET READY", text)
}

// drawMessage draws a boxed two-line message in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, TextColor)
	dst.DrawTextCentered(box.Y+1, title, TextColor)
	dst.DrawTextCentered(box.Y+3, subtitle, HUDColor)
}
