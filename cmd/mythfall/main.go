// mythfall is a roguelike survival game for the terminal.
//
// Usage:
//
//	mythfall play             - Play locally
//	mythfall serve            - Start SSH server for remote play
//	mythfall modes            - List game modes
//	mythfall content          - List heroes, items and perks
//	mythfall history [mode]   - Show recorded runs
//	mythfall settings         - Show or change saved settings
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.mythfall/runs.db)
//	--config <path>     - Custom tuning YAML
//	--settings <path>   - Settings file (default: ~/.mythfall/settings.toml)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mythfall/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSettings string
	flagLogPath  string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mythfall",
	Short: "Mythfall - survive the wrath of the old gods in your terminal",
	Long: `Mythfall is a terminal roguelike survival game. Pick a hero from the
Greek, Norse or Egyptian pantheons and outlast waves of mythic foes.

Available commands:
  play      - Start a local game
  serve     - Start SSH server for remote play
  modes     - Show all game modes
  content   - Show heroes, items and perks
  history   - View recorded runs
  settings  - Show or change saved settings

Examples:
  mythfall play
  mythfall play --difficulty hard
  mythfall serve --ssh :2222
  mythfall history survival`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mythfall/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(settingsCmd)
}

// newLogger returns a logger writing to the --log file, or to fallback when
// no file is set. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadGameConfig loads tuning and applies the chosen difficulty preset.
// An empty preset uses the one stored in settings.
func loadGameConfig(preset string, settings *config.Settings) (config.GameConfig, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	if preset == "" {
		preset = settings.Difficulty
	}
	p, ok := config.ParsePreset(preset)
	if !ok {
		return cfg, "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", preset)
	}
	config.ApplyPreset(&cfg, p)
	return cfg, p, nil
}
