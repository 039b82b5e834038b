package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// soundSink is implemented by games that play audio.
type soundSink interface {
	SetSounds(shooter.Sounds)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new session at the main menu.

Controls:
  Left/Right, A/D  - Move
  Space            - Shoot
  Tab/Esc          - Open/close the shop
  Up/Down, Enter   - Navigate menus
  R                - Restart (after game over, upgrades are kept)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Extra HP, gentler rams, progression from the lowest level
  normal - Progression from 30%
  hard   - Less HP, bosses come sooner, progression from 70%
  fixed  - No progression, the config is used as is

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --config ./my-shooter.yaml
  shooter play --assets ./sounds`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// newGame creates a registered game.
func newGame(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q", id)
	}
	game, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("error creating game: %w", err)
	}
	return game, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	// The game loads its own copy on Reset; loading here surfaces errors
	// before the terminal is taken over and provides the audio settings.
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyShooterPreset(&cfg, preset)
	if flagMute {
		cfg.Audio.Enabled = false
	}

	var bank *audio.Bank
	if flagAssets != "" && cfg.Audio.Enabled {
		bank, err = audio.LoadBank(flagAssets)
		if err != nil {
			return err
		}
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Set config path and difficulty for the game before creation
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)

	game, err := newGame(shooter.ID)
	if err != nil {
		return err
	}

	sounds := audio.NewSoundManager(cfg.Audio, bank)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	defer sounds.Cleanup()

	if s, ok := game.(soundSink); ok {
		s.SetSounds(sounds)
	}

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, rc, tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
