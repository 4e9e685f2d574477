package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the campaign levels with the ball speed each one starts at.

Examples:
  breakout levels
  breakout play --level 5`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	fmt.Println("Campaign levels:")
	fmt.Println()
	fmt.Printf("  %-5s  %-14s  %s\n", "Level", "Layout", "Speed")
	fmt.Printf("  %-5s  %-14s  %s\n", "-----", "------", "-----")

	for n := 1; n <= breakout.LevelCount(); n++ {
		fmt.Printf("  %-5d  %-14s  %.1f\n", n, breakout.LevelName(n), breakout.LevelSpeed(n))
	}

	fmt.Println()
	fmt.Println("Endless mode cycles the layouts after the last level and keeps speeding up.")
}
