package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mythfall/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content [heroes|items|perks|enemies]",
	Short: "List heroes, items, perks and enemies",
	Long: `Shows what the built-in mythology packs register.

Examples:
  mythfall content
  mythfall content heroes`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"heroes", "items", "perks", "enemies"},
	RunE:      runContent,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

func runContent(cmd *cobra.Command, args []string) error {
	reg := content.NewRegistries()
	content.Load(reg, content.DefaultPacks()...)

	section := ""
	if len(args) == 1 {
		section = args[0]
	}

	var tables []*table.Table
	switch section {
	case "", "heroes":
		t := newTable("Hero", "Name", "Mythology", "HP", "Starts with")
		for _, h := range reg.Heroes.List() {
			var items []string
			for _, st := range h.StartingItems {
				items = append(items, fmt.Sprintf("%s x%d", st.ItemID, st.Quantity))
			}
			t.Row(h.ID(), h.Name, h.Mythology(), fmt.Sprintf("%d", h.Health), strings.Join(items, ", "))
		}
		tables = append(tables, t)
		if section != "" {
			break
		}
		fallthrough
	case "items":
		t := newTable("Item", "Name", "Mythology", "Description")
		for _, it := range reg.Items.List() {
			t.Row(it.ID(), it.Name(), it.Mythology(), it.Description())
		}
		tables = append(tables, t)
		if section != "" {
			break
		}
		fallthrough
	case "perks":
		t := newTable("Perk", "Name", "Mythology")
		for _, p := range reg.Perks.List() {
			t.Row(p.ID(), p.Name(), p.Mythology())
		}
		tables = append(tables, t)
		if section != "" {
			break
		}
		fallthrough
	case "enemies":
		t := newTable("Pack", "Mythology", "Foes")
		for _, p := range reg.Enemies.List() {
			var names []string
			for _, k := range p.Kinds {
				names = append(names, k.Name)
			}
			t.Row(p.ID(), p.Mythology(), strings.Join(names, ", "))
		}
		tables = append(tables, t)
	default:
		return fmt.Errorf("unknown section %q", section)
	}

	for _, t := range tables {
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	}
	return nil
}
