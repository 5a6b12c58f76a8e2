package sources

import (
	"context"
	"net/http"
	"time"

	"artdex/pkg/fetch"
	"artdex/pkg/schema"
)

// ArtSource looks up highlighted art and individual object records.
type ArtSource interface {
	Search(ctx context.Context) (*schema.ArtCollection, error)
	Object(ctx context.Context, id int) (*schema.ArtPiece, error)
}

// CreatureSource looks up a pokemon by lowercase name or number.
type CreatureSource interface {
	Creature(ctx context.Context, nameOrID string) (*schema.Creature, error)
}

// NewHTTPClient returns the client shared by every source and the image proxy.
func NewHTTPClient(timeout time.Duration, maxBody int64) *fetch.Client {
	return fetch.NewClient(&http.Client{Timeout: timeout}, maxBody)
}
