package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/sound"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagMode       string
	flagLevel      int
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start playing. Without --mode or --level a menu lets you pick the
mode or the campaign level, and you return to it after each game.

Controls:
  Left/Right, A/D, H/L  - Move paddle
  Mouse                 - Move paddle, click to launch
  Enter/Up              - Launch ball
  Space                 - Start / pause / resume
  P/Esc                 - Pause
  R                     - Restart (paused or after game over)
  B                     - Back to menu (paused or after game over)
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Wider paddle, slower ball, more power-ups
  normal - Default settings
  hard   - Narrower paddle, faster ball, fewer power-ups
  fixed  - Ball speed does not rise between levels

Examples:
  breakout play
  breakout play --mode endless
  breakout play --level 6 --difficulty hard
  breakout play --config ./my-breakout.yaml --sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: campaign or endless (default: menu)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this campaign level")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

// modeGameID maps a --mode value to a registered game ID.
func modeGameID(mode string) (string, error) {
	switch mode {
	case "", "campaign":
		return "breakout", nil
	case "endless":
		return "breakout_endless", nil
	default:
		return "", fmt.Errorf("unknown mode %q (want campaign or endless)", mode)
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	if flagLevel < 0 || flagLevel > breakout.LevelCount() {
		return fmt.Errorf("level must be between 1 and %d", breakout.LevelCount())
	}
	gameID, err := modeGameID(flagMode)
	if err != nil {
		return err
	}

	// Set config path and difficulty for games before creation
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)

	if flagSound {
		player := sound.NewPlayer(0)
		if soundErr := player.Start(); soundErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", soundErr)
		} else {
			breakout.SetEventSink(player)
			defer player.Close()
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagMode != "" || flagLevel > 0 {
		game, createErr := registry.Create(gameID)
		if createErr != nil {
			return fmt.Errorf("cannot create game: %w", createErr)
		}
		if flagLevel > 0 {
			breakout.SetStartLevel(flagLevel)
		}

		back, runErr := tui.Run(game, store, cfg)
		if runErr != nil {
			return fmt.Errorf("error running game: %w", runErr)
		}
		if !back {
			return nil
		}
		breakout.SetStartLevel(1)
	}

	return menuLoop(store, cfg)
}

// menuLoop shows the menu until the player quits, running each picked game
// and the scoreboard in between.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := tui.StartGame(menuResult)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
