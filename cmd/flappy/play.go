package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/K  - Start, flap, restart after game over
  Ctrl+S        - Save a screenshot to ~/.flappy/screenshots
  Q/Esc/Ctrl+C  - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	env, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so they only go to --log-file.
	out, closeLog, err := openLogOutput(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < env.Screen.Width || h < env.Screen.Height+1 {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least %dx%d\n",
				w, h, env.Screen.Width, env.Screen.Height+1)
		}
	}

	cfg := core.DefaultConfig()
	cfg.FrameDuration = env.Timing.FrameDuration
	cfg.Seed = flagSeed
	seed := cfg.EffectiveSeed()

	session, err := flappy.NewSession(env, flappy.NewSeededRand(seed))
	if err != nil {
		return err
	}
	logger.Info("session started", "seed", seed, "frame", cfg.FrameDuration)

	if err := tui.Run(session, logger, cfg.FrameDuration); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	snap := session.Snapshot()
	logger.Info("session ended", "ticks", snap.Tick, "points", snap.Points)
	fmt.Printf("Points: %d\n", snap.Points)
	return nil
}
