package mode

import (
	"fmt"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/state"
)

// Catalog is the ordered list of selectable modes.
type Catalog struct {
	modes []Mode
}

// NewCatalog creates a catalog of the given modes in menu order.
func NewCatalog(modes ...Mode) *Catalog {
	return &Catalog{modes: modes}
}

// DefaultCatalog returns Survival and Escape tuned by cfg.
func DefaultCatalog(cfg config.GameConfig) *Catalog {
	return NewCatalog(
		NewSurvival(cfg.Survival, cfg.Enemy),
		NewEscape(cfg.Escape, cfg.Enemy),
	)
}

// Len returns the number of modes.
func (c *Catalog) Len() int { return len(c.modes) }

// List returns the modes in menu order.
func (c *Catalog) List() []Mode { return append([]Mode(nil), c.modes...) }

// At returns the mode at index i.
func (c *Catalog) At(i int) (Mode, error) {
	if i < 0 || i >= len(c.modes) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoMode, i, len(c.modes))
	}
	return c.modes[i], nil
}

// Index returns the position of the mode with the given id, or -1.
func (c *Catalog) Index(id string) int {
	for i, m := range c.modes {
		if m.ID() == id {
			return i
		}
	}
	return -1
}

// Plugin installs the catalog and the progression systems of its modes.
type Plugin struct {
	Catalog *Catalog
}

func (p Plugin) Build(a *app.App) {
	ecs.InsertResource(a.World(), p.Catalog)
	playing := app.InState(state.Playing)

	for _, m := range p.Catalog.modes {
		switch m := m.(type) {
		case *Survival:
			a.AddSystem(app.Update, "survival.advance", m.advance, playing, isActive[*Survival])
		case *Escape:
			a.AddSystem(app.Update, "escape.advance", m.advance, playing, isActive[*Escape])
		}
	}
}

func isActive[M Mode](a *app.App) bool {
	return ecs.HasResource[GameMode[M]](a.World())
}
