package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/game"
	"github.com/vovakirdan/mythfall/internal/locale"
	"github.com/vovakirdan/mythfall/internal/platform/tui"
	"github.com/vovakirdan/mythfall/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Open the main menu and start a run.

Controls (rebind with 'mythfall settings bind'):
  WASD/Arrows  - Move
  Space        - Dash
  P            - Pause menu
  ` + "`" + `            - Console
  R            - Restart (after a run ends)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, more health
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, less health, more foes
  fixed  - No progression, stays at config's initial level

Examples:
  mythfall play
  mythfall play --difficulty hard
  mythfall play --config ./my-tuning.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard, "mythfall")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, preset, err := loadGameConfig(flagDifficulty, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loc, err := locale.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading locales: %v\n", err)
		os.Exit(1)
	}
	if _, err := loc.Set(settings.ActiveLocale()); err != nil {
		logger.Warn("falling back to default locale", "locale", settings.ActiveLocale(), "err", err)
	}

	keys, err := tui.DefaultKeyMap().WithOverrides(settings.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in %s: %v\n", settings.Path(), err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Runtime.TickRate,
		Substeps: cfg.Runtime.Substeps,
		Seed:     flagSeed,
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}

	opts := game.Options{
		Config:     cfg,
		Runtime:    rc,
		Logger:     logger,
		Difficulty: string(preset),
	}
	var runs tui.RunLister

	// Continue without history if the database cannot be opened.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
	} else {
		defer store.Close()
		opts.Saver = store
		runs = store
	}

	runErr := tui.Run(tui.Options{
		App:      game.NewApp(opts),
		Locale:   loc,
		Settings: settings,
		Runs:     runs,
		Runtime:  rc,
		Keys:     keys,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
