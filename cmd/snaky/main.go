// snaky is a snake simulation for the terminal.
//
// Usage:
//
//	snaky play               - Play interactively
//	snaky sim                - Run a headless simulation and print the grid
//	snaky config             - Print or install the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaky",
	Short: "Snaky - snakes on a grid, in your terminal",
	Long: `Snaky simulates snakes moving on a grid: each tick every snake advances
one cell, eats food to grow, and dies on walls or bodies.

Available commands:
  play     - Steer a snake yourself
  sim      - Run snakes headless and print the grid after each tick
  config   - Print or install the default snake.yaml

Examples:
  snaky play
  snaky play --difficulty hard
  snaky sim --snakes 3 --ticks 20 --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
