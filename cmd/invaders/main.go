// invaders is a fixed-formation shooter for the terminal and the desktop.
//
// Usage:
//
//	invaders                 - Play in the terminal
//	invaders play            - Play in the terminal
//	invaders window          - Play in a desktop window
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load gameplay config from a YAML file
//	--mute              - Disable sound
//	--log-file <path>   - Write logs here (default: ~/.invaders/invaders.log)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagMute    bool
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend the bunkers from the descending formation",
	Long: `Invaders is a fixed-formation shooter. Move the ship along the bottom
of the field, shoot the formation before it wears you down and pick off the
bonus ship when it crosses the top.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  invaders
  invaders --seed 42 --mute
  invaders window --scale 0.75
  invaders config --config ./my-invaders.yaml`,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects and music")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default ~/.invaders/invaders.log, - for stderr)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
