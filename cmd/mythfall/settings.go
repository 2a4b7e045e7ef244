package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/locale"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved settings",
	Long: `Settings are stored in ~/.mythfall/settings.toml unless --settings or
MYTHFALL_SETTINGS points elsewhere. MYTHFALL_LOCALE overrides the saved locale.

Examples:
  mythfall settings
  mythfall settings locale de-DE
  mythfall settings difficulty hard
  mythfall settings bind dash x
  mythfall settings bind dash          # restore the default`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

func init() {
	settingsCmd.AddCommand(&cobra.Command{
		Use:   "locale <tag>",
		Short: "Set the interface language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := locale.New()
			if err != nil {
				return err
			}
			tag, err := loc.Set(args[0])
			if err != nil {
				return err
			}
			s, err := config.LoadSettings(flagSettings)
			if err != nil {
				return err
			}
			if err := s.SetLocale(tag.String()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Locale set to %s\n", tag)
			return nil
		},
	})

	settingsCmd.AddCommand(&cobra.Command{
		Use:       "difficulty <preset>",
		Short:     "Set the default difficulty",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"easy", "normal", "hard", "fixed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings(flagSettings)
			if err != nil {
				return err
			}
			if err := s.SetDifficulty(config.DifficultyPreset(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Difficulty set to %s\n", args[0])
			return nil
		},
	})

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "bind <action> [keys...]",
		Short: "Rebind an action",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := core.ParseAction(strings.ToLower(args[0])); !ok {
				return fmt.Errorf("unknown action %q", args[0])
			}
			s, err := config.LoadSettings(flagSettings)
			if err != nil {
				return err
			}
			if err := s.Bind(args[0], args[1:]...); err != nil {
				return err
			}
			if len(args) == 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s restored to default keys\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s bound to %s\n", args[0], strings.Join(args[1:], ", "))
			}
			return nil
		},
	})
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "file:       %s\n", s.Path())
	if active := s.ActiveLocale(); active != s.Locale {
		fmt.Fprintf(out, "locale:     %s (MYTHFALL_LOCALE, stored %s)\n", active, s.Locale)
	} else {
		fmt.Fprintf(out, "locale:     %s\n", s.Locale)
	}
	fmt.Fprintf(out, "difficulty: %s\n", s.Difficulty)
	if len(s.Keys) == 0 {
		fmt.Fprintln(out, "keys:       defaults")
		return nil
	}
	actions := make([]string, 0, len(s.Keys))
	for a := range s.Keys {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	fmt.Fprintln(out, "keys:")
	for _, a := range actions {
		fmt.Fprintf(out, "  %-8s %s\n", a, strings.Join(s.Keys[a], ", "))
	}
	return nil
}
