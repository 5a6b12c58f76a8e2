package sources

import (
	"context"
	"net/url"
	"strings"

	"github.com/shouni/go-http-kit/pkg/httpkit"

	"artdex/pkg/fetch"
	"artdex/pkg/schema"
)

// PokeAPI talks to the pokemon endpoint of pokeapi.co.
type PokeAPI struct {
	client  httpkit.ClientInterface
	baseURL string
}

func NewPokeAPI(client httpkit.ClientInterface, baseURL string) *PokeAPI {
	return &PokeAPI{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Creature fetches a pokemon record. nameOrID is used as a single path segment.
func (p *PokeAPI) Creature(ctx context.Context, nameOrID string) (*schema.Creature, error) {
	return fetch.GetJSON[schema.Creature](ctx, p.client, p.baseURL+"/"+url.PathEscape(nameOrID))
}
