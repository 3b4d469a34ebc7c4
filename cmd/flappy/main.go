// flappy is a terminal flappy-bird game driven by a fixed-rate tick loop.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy sim               - Run a headless simulation
//	flappy config            - Show the resolved configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible obstacles
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a flappy-bird game for your terminal",
	Long: `Flappy is a turn-paced flappy-bird game played in the terminal.
Steer the bird through the gaps between barriers, one tick at a time.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless simulation and print a summary
  config   - Show the resolved configuration

Examples:
  flappy play
  flappy play --seed 42 --log-file flappy.log
  flappy sim --ticks 500 --jump-every 4
  flappy config --yaml > configs/flappy.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
