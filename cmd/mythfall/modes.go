package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/mode"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all game modes",
	Long:  `Shows the game modes in the order of the selection screen.`,
	Args:  cobra.NoArgs,
	RunE:  runModes,
}

func runModes(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	modes := mode.DefaultCatalog(cfg).List()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID()))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Game modes:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "ID", "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, "--", "----", "-----------")
	for _, m := range modes {
		fmt.Fprintf(out, "  %-*s  %-10s  %s\n", maxIDLen, m.ID(), m.Name(), m.Description())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'mythfall play' to choose one.")
	return nil
}
