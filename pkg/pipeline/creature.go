package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"artdex/pkg/schema"
	"artdex/pkg/sources"
	"artdex/pkg/view"
)

// CommitKey is the only key that starts a creature lookup.
const CommitKey = "Enter"

// ErrEmptyName is returned when the input holds nothing to look up.
var ErrEmptyName = errors.New("empty pokemon name")

// KeyEvent is a key press in the creature input.
type KeyEvent struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Creature shows a pokemon sprite on the surface it is run with.
type Creature struct {
	source sources.CreatureSource
}

func NewCreature(source sources.CreatureSource) *Creature {
	return &Creature{source: source}
}

// HandleKey runs a lookup when ev is the commit key and reports whether it did.
// Any other key is ignored without touching the surface.
func (c *Creature) HandleKey(ctx context.Context, surface view.Surface, ev KeyEvent) (bool, error) {
	if ev.Key != CommitKey {
		return false, nil
	}
	return true, c.Run(ctx, surface, ev.Value)
}

// Run looks up value, lowercased, and renders the result or the fixed error.
func (c *Creature) Run(ctx context.Context, surface view.Surface, value string) error {
	runID := ksuid.New().String()
	name := strings.ToLower(strings.TrimSpace(value))
	logger := log.With("pipeline", "creature", "run", runID, "name", name)
	markRun(surface, runID)

	creature, err := c.fetch(ctx, name)
	if err != nil {
		logger.Warn("creature run failed", "err", err)
		ShowError(surface, CreatureFailure)
		return err
	}

	fig := creatureFigure(creature)
	Render(surface, fig)
	if fig == nil {
		logger.Warn("creature record was empty, rendered placeholder")
		return nil
	}
	logger.Info("rendered creature", "id", creature.ID, "sprite", fig.Src)
	return nil
}

func (c *Creature) fetch(ctx context.Context, name string) (*schema.Creature, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	creature, err := c.source.Creature(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("creature %q: %w", name, err)
	}
	return creature, nil
}

func creatureFigure(cr *schema.Creature) *Figure {
	if cr == nil {
		return nil
	}
	return &Figure{Title: cr.Name, Src: cr.SpriteURL()}
}
