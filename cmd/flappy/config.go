package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print the configuration the game would run with, after applying
--config, ~/.flappy/config.yaml and ./configs/flappy.yaml over the
built-in defaults.

Examples:
  flappy config
  flappy config --config ./my-flappy.yaml
  flappy config --yaml > configs/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print as YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	env, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagYAML {
		data, err := config.Marshal(env)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), configTable(env))
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// configTable renders env as a section/field/value table.
func configTable(env config.Environment) string {
	rows := [][]string{
		{"physics", "gravity", fmt.Sprintf("%g", env.Physics.Gravity)},
		{"physics", "jump_impulse", fmt.Sprintf("%g", env.Physics.JumpImpulse)},
		{"physics", "horizontal_speed", fmt.Sprintf("%d", env.Physics.HorizontalSpeed)},
		{"timing", "frame_duration", env.Timing.FrameDuration.String()},
		{"timing", "countdown_step_ticks", fmt.Sprintf("%d", env.Timing.CountdownStepTicks)},
		{"screen", "width", fmt.Sprintf("%d", env.Screen.Width)},
		{"screen", "height", fmt.Sprintf("%d", env.Screen.Height)},
		{"screen", "ceiling_row", fmt.Sprintf("%d", env.Screen.CeilingRow)},
		{"screen", "ground_row", fmt.Sprintf("%d", env.Screen.GroundRow)},
		{"bird", "start_x", fmt.Sprintf("%d", env.Bird.StartX)},
		{"bird", "start_y", fmt.Sprintf("%d", env.Bird.StartY)},
		{"bird", "wing_flap_ticks", fmt.Sprintf("%d", env.Bird.WingFlapTicks)},
		{"obstacles", "width", fmt.Sprintf("%d", env.Obstacles.Width)},
		{"obstacles", "min_height", fmt.Sprintf("%d", env.Obstacles.MinHeight)},
		{"obstacles", "gap", fmt.Sprintf("%d", env.Obstacles.Gap)},
		{"obstacles", "min_spacing", fmt.Sprintf("%d", env.Obstacles.MinSpacing)},
		{"obstacles", "max_spacing", fmt.Sprintf("%d", env.Obstacles.MaxSpacing)},
		{"session", "starting_lives", fmt.Sprintf("%d", env.Session.StartingLives)},
		{"session", "countdown_from", fmt.Sprintf("%d", env.Session.CountdownFrom)},
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderHeader(true).
		BorderRow(false).
		Headers("Section", "Field", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	return t.Render()
}
