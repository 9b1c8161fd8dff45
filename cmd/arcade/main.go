// arcade is a small arcade of side-scrolling games that runs in the
// terminal or in a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: the menu)
//	arcade menu              - Start with the game picker
//	arcade scores [game]     - Show run history for a game
//	arcade history           - Show the most recent runs
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set run history path (default: ~/.arcade/arcade.db, "" disables)
//	--log <path>        - Log file for the terminal host (default: ~/.arcade/arcade.log)
//	--log-level <level> - debug, info, warn or error
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
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Treasure Arcade - jump, run and grab the treasure",
	Long: `Treasure Arcade is a small collection of side-scrolling games that
run in your terminal or in a desktop window.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker
  scores   - View best runs
  history  - View recent runs

Examples:
  arcade list
  arcade play slime-jump
  arcade play running-man --host window
  arcade menu --touch
  arcade scores slime-jump`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/arcade.db", "Path to run history database (empty disables)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/arcade.log", "Log file used by the terminal host")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}
