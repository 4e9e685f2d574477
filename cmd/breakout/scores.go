package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode-id]",
	Short: "Show high scores",
	Long: `Display the top high scores. Without an argument every mode is shown.

Examples:
  breakout scores
  breakout scores breakout_endless --limit 20
  breakout scores breakout --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored scores")
}

func runScores(_ *cobra.Command, args []string) error {
	games := registry.List()
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown mode %q, run 'breakout list' to see modes", args[0])
		}
		games = []registry.GameInfo{{ID: args[0], Title: titleOf(args[0])}}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		for _, g := range games {
			if err := store.ClearScores(g.ID); err != nil {
				return err
			}
			fmt.Printf("Cleared scores for %s\n", g.Title)
		}
		return nil
	}

	if len(args) == 0 {
		played, statsErr := store.GetAllGamesStats()
		if statsErr != nil {
			return statsErr
		}
		if len(played) == 0 {
			fmt.Println("No scores recorded yet.")
			fmt.Println()
			fmt.Println("Play 'breakout play' to set the first high score!")
			return nil
		}
	}

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, g); err != nil {
			return err
		}
	}
	return nil
}

func titleOf(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

func printScores(store *storage.Store, g registry.GameInfo) error {
	scores, err := store.TopScores(g.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	stats, err := store.GetGameStats(g.ID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Best level: %d\n", stats.HighScore, stats.GamesCount, stats.BestLevel)
	}
	return nil
}
