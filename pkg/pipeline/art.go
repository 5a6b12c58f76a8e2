package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"artdex/pkg/schema"
	"artdex/pkg/sources"
	"artdex/pkg/view"
)

// ErrNoObjects is returned when the highlight search matches nothing.
var ErrNoObjects = errors.New("art search returned no objects")

// Art shows a random highlighted Greek and Roman piece on the surface it is run with.
type Art struct {
	source sources.ArtSource
	pick   func(n int) int
}

func NewArt(source sources.ArtSource) *Art {
	return &Art{
		source: source,
		pick:   rand.IntN,
	}
}

// SetPicker replaces the index picker. pick must return a value in [0, n).
func (a *Art) SetPicker(pick func(n int) int) {
	a.pick = pick
}

// Run searches, picks one object, fetches it, and renders it. Any failure
// leaves only the fixed art error message on the surface.
func (a *Art) Run(ctx context.Context, surface view.Surface) error {
	runID := ksuid.New().String()
	logger := log.With("pipeline", "art", "run", runID)
	markRun(surface, runID)

	piece, err := a.fetch(ctx)
	if err != nil {
		logger.Warn("art run failed", "err", err)
		ShowError(surface, ArtFailure)
		return err
	}

	fig := artFigure(piece)
	Render(surface, fig)
	if fig == nil {
		logger.Warn("art record was empty, rendered placeholder")
		return nil
	}
	logger.Info("rendered art", "object", piece.ObjectID, "title", fig.Title)
	return nil
}

func (a *Art) fetch(ctx context.Context) (*schema.ArtPiece, error) {
	coll, err := a.source.Search(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if coll == nil || len(coll.ObjectIDs) == 0 {
		return nil, ErrNoObjects
	}

	i := a.pick(len(coll.ObjectIDs))
	if i < 0 || i >= len(coll.ObjectIDs) {
		return nil, fmt.Errorf("picked index %d outside [0, %d)", i, len(coll.ObjectIDs))
	}
	id := coll.ObjectIDs[i]

	piece, err := a.source.Object(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("object %d: %w", id, err)
	}
	return piece, nil
}

func artFigure(p *schema.ArtPiece) *Figure {
	if p == nil {
		return nil
	}
	return &Figure{Title: p.Title, Src: p.PrimaryImage}
}
