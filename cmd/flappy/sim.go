package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

var (
	flagTicks     int
	flagJumpEvery int
	flagRender    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI, using a simple autopilot:
start from the welcome screen, then flap every N ticks while playing.
The run stops at game over or after --ticks ticks.

Events are logged to stderr (or --log-file), the summary goes to stdout.

Examples:
  flappy sim --seed 42
  flappy sim --ticks 1000 --jump-every 3 --log-level debug
  flappy sim --seed 7 --render`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 4, "Flap every N ticks while playing (0 = never)")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
}

// simStats summarizes a headless run.
type simStats struct {
	Ticks  uint64
	Jumps  int
	Deaths int
	Final  flappy.Snapshot
}

func runSim(cmd *cobra.Command, args []string) error {
	env, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out, closeLog, err := openLogOutput(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	seed := cfg.EffectiveSeed()

	session, err := flappy.NewSession(env, flappy.NewSeededRand(seed))
	if err != nil {
		return err
	}
	logger.Info("simulation started", "seed", seed, "ticks", flagTicks, "jump_every", flagJumpEvery)

	stats := simulate(session, flagTicks, flagJumpEvery, logger)
	printSimStats(cmd.OutOrStdout(), seed, stats)

	if flagRender {
		fmt.Fprintln(cmd.OutOrStdout(), renderFrame(session.Environment(), stats.Final))
	}
	return nil
}

// renderFrame draws snap on a screen sized for env and returns it as text.
func renderFrame(env config.Environment, snap flappy.Snapshot) string {
	screen := core.NewScreen(env.Screen.Width, env.Screen.Height)
	render.Draw(screen, snap)
	return screen.String()
}

// simulate drives session with the autopilot for at most ticks ticks, then
// quits it.
func simulate(session *flappy.Session, ticks, jumpEvery int, logger *log.Logger) simStats {
	var stats simStats

	for i := 0; i < ticks && session.Running(); i++ {
		action := autopilot(session.Mode(), i, jumpEvery)
		if action == core.ActionJump {
			stats.Jumps++
		}

		res := session.Step(action)
		tui.LogEvents(logger, res.Snapshot.Tick, res.Events)
		for _, e := range res.Events {
			if _, ok := e.(flappy.LifeLostEvent); ok {
				stats.Deaths++
			}
		}

		if res.Snapshot.Mode == flappy.ModeGameOver {
			break
		}
	}

	res := session.Step(core.ActionQuit)
	tui.LogEvents(logger, res.Snapshot.Tick, res.Events)

	stats.Final = res.Snapshot
	stats.Ticks = res.Snapshot.Tick
	return stats
}

// autopilot picks the input for tick i.
func autopilot(mode flappy.Mode, i, jumpEvery int) core.Action {
	switch mode {
	case flappy.ModeWelcome:
		return core.ActionJump
	case flappy.ModePlaying:
		if jumpEvery > 0 && i%jumpEvery == 0 {
			return core.ActionJump
		}
	}
	return core.ActionNone
}

func printSimStats(w io.Writer, seed int64, s simStats) {
	fmt.Fprintf(w, "Seed:      %d\n", seed)
	fmt.Fprintf(w, "Ticks:     %d\n", s.Ticks)
	fmt.Fprintf(w, "Mode:      %s\n", s.Final.Mode)
	fmt.Fprintf(w, "Points:    %d\n", s.Final.Points)
	fmt.Fprintf(w, "Lives:     %d\n", s.Final.Lives)
	fmt.Fprintf(w, "Deaths:    %d\n", s.Deaths)
	fmt.Fprintf(w, "Jumps:     %d\n", s.Jumps)
	fmt.Fprintf(w, "Obstacles: %d\n", len(s.Final.Obstacles))
}
