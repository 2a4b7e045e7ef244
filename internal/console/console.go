// Package console implements the in-game command line. Each line is split
// shell-style and dispatched through a cobra command tree; output and errors
// come back as lines for the overlay to print.
package console

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/content"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/game"
	"github.com/vovakirdan/mythfall/internal/locale"
	"github.com/vovakirdan/mythfall/internal/mode"
)

const maxHistory = 50

// Console runs commands against a running App.
type Console struct {
	app      *app.App
	loc      *locale.Localizer
	settings *config.Settings
	history  []string
}

// New creates a console. settings may be nil, in which case locale changes
// are not persisted.
func New(a *app.App, loc *locale.Localizer, settings *config.Settings) *Console {
	return &Console{app: a, loc: loc, settings: settings}
}

// History returns previously executed lines, oldest first.
func (c *Console) History() []string {
	return append([]string(nil), c.history...)
}

// Exec runs one command line and returns its output.
func (c *Console) Exec(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	c.history = append(c.history, line)
	if len(c.history) > maxHistory {
		c.history = c.history[len(c.history)-maxHistory:]
	}

	args, err := shlex.Split(line, true)
	if err != nil {
		return []string{"error: " + err.Error()}
	}

	var out bytes.Buffer
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(&out, "error: %v\n", err)
	}
	return lines(out.String())
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (c *Console) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "console",
		Short:         "In-game console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(c.localeCmd(), c.inventoryCmd(), c.itemCmd(), c.perkCmd(), c.modeCmd())
	return root
}

func (c *Console) localeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "locale", Short: "Show or change the interface language"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available locales",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cur := c.loc.Current()
			for _, tag := range c.loc.Available() {
				mark := " "
				if tag == cur {
					mark = "*"
				}
				cmd.Printf("%s %s\n", mark, tag)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current locale",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(c.loc.Current().String())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <locale>",
		Short: "Switch the interface language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := c.loc.Set(args[0])
			if err != nil {
				return err
			}
			if c.settings != nil {
				if err := c.settings.SetLocale(tag.String()); err != nil {
					return err
				}
			}
			cmd.Printf("locale set to %s\n", tag)
			return nil
		},
	})
	return cmd
}

func (c *Console) inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "inventory", Short: "Inspect or change the hero's inventory"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List carried items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stacks, err := game.HeroInventory(c.app)
			if err != nil {
				return err
			}
			if len(stacks) == 0 {
				cmd.Println("inventory is empty")
				return nil
			}
			for _, st := range stacks {
				cmd.Printf("%-14s x%d\n", st.ItemID, st.Quantity)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <item> [quantity]",
		Short: "Give the hero an item",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty := 1
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid quantity %q", args[1])
				}
				qty = n
			}
			st, err := game.GiveItem(c.app, args[0], qty)
			if err != nil {
				return err
			}
			cmd.Printf("added %s x%d\n", st.ItemID, st.Quantity)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "use <item>",
		Short: "Use one of a carried item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			healed, err := game.UseItem(c.app, args[0])
			if err != nil {
				return err
			}
			cmd.Printf("used %s, healed %d\n", args[0], healed)
			return nil
		},
	})
	return cmd
}

func (c *Console) registries() *content.Registries {
	return ecs.MustResource[content.Registries](c.app.World())
}

func (c *Console) itemCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "item", Short: "Browse registered items"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all items",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, it := range c.registries().Items.List() {
				cmd.Printf("%-14s %-16s %s\n", it.ID(), it.Name(), it.Mythology())
			}
		},
	})
	return cmd
}

func (c *Console) perkCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "perk", Short: "Browse registered perks"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all perks",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range c.registries().Perks.List() {
				cmd.Printf("%-16s %-18s %s\n", p.ID(), p.Name(), p.Mythology())
			}
		},
	})
	return cmd
}

func (c *Console) modeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "mode", Short: "Browse game modes"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List modes in selection order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			catalog := ecs.MustResource[mode.Catalog](c.app.World())
			for i, m := range catalog.List() {
				cmd.Printf("%d %-10s %s\n", i, m.ID(), m.Name())
			}
		},
	})
	return cmd
}
