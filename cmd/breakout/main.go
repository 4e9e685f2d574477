// breakout is a terminal brick-breaker.
//
// Usage:
//
//	breakout play              - Pick a mode from the menu and play
//	breakout play --mode endless
//	breakout levels            - List campaign levels
//	breakout list              - List game modes
//	breakout serve             - Start SSH server for remote play
//	breakout scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breakout/scores.db)
//	--log <path>    - Write diagnostics to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a brick-breaker for the terminal. Clear eight
hand-made levels in the campaign, or keep going in endless mode.

Available commands:
  play     - Play (menu, or --mode to start directly)
  levels   - Show the campaign levels
  list     - Show the game modes
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  breakout play
  breakout play --mode endless --difficulty hard
  breakout play --level 4 --sound
  breakout serve --ssh :2222
  breakout scores --limit 20`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write diagnostics to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging routes core and UI diagnostics to --log. The terminal
// belongs to the game, so without the flag they are discarded.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogPath == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           log.DebugLevel,
	})
	breakout.SetLogger(logger)
	tui.SetLogger(logger)
	return nil
}
