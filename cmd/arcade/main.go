// arcade runs the game-feel scenarios in a terminal, in a desktop window, or
// headless.
//
// Usage:
//
//	arcade list                  - List available scenarios
//	arcade play [scenario]       - Play in the terminal (picker if omitted)
//	arcade window <scenario>     - Play in a desktop window
//	arcade simulate <scenario>   - Run headless and print a state hash
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--config <path>       - Use a specific arcade.yaml
//	--feel <preset>       - Start with a feel preset
//	--boundary <mode>     - clamp, wrap or bounce
//	--control <mode>      - topdown or platformer
//	--watch               - Reload the config file when it changes
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenarios to register them
	_ "github.com/vovakirdan/feel-arcade/internal/scenario"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagFeel     string
	flagBoundary string
	flagControl  string
	flagWatch    bool
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
	Use:   "arcade",
	Short: "Feel Arcade - movement, collision and game-feel playground",
	Long: `Feel Arcade is a set of small arcade scenarios for trying out
boundary policies, control modes, feel presets and feedback effects.

Available commands:
  list      - Show all scenarios
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run a scenario headless

Examples:
  arcade list
  arcade play walls
  arcade play bounds --boundary wrap --feel floaty
  arcade window feedback --watch --config ./configs/arcade.yaml
  arcade simulate loop --seed 7 --ticks 1800`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, then time)")
	pf.StringVar(&flagConfig, "config", "", "Path to arcade.yaml")
	pf.StringVar(&flagFeel, "feel", "", "Feel preset name")
	pf.StringVar(&flagBoundary, "boundary", "", "Boundary policy: clamp, wrap, bounce")
	pf.StringVar(&flagControl, "control", "", "Control mode: topdown, platformer")
	pf.BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (play defaults to ~/.arcade/arcade.log)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
}
