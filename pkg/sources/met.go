package sources

import (
	"context"
	"strconv"
	"strings"

	"github.com/shouni/go-http-kit/pkg/httpkit"

	"artdex/pkg/fetch"
	"artdex/pkg/schema"
)

const greekRomanHighlights = "search?q=Greek%20and%20Roman%20Art&isHighlight=true"

// Met talks to the Metropolitan Museum collection API.
type Met struct {
	client  httpkit.ClientInterface
	baseURL string
}

func NewMet(client httpkit.ClientInterface, baseURL string) *Met {
	return &Met{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Search runs the fixed Greek and Roman highlight query.
func (m *Met) Search(ctx context.Context) (*schema.ArtCollection, error) {
	return fetch.GetJSON[schema.ArtCollection](ctx, m.client, m.baseURL+"/"+greekRomanHighlights)
}

// Object fetches a single object record.
func (m *Met) Object(ctx context.Context, id int) (*schema.ArtPiece, error) {
	return fetch.GetJSON[schema.ArtPiece](ctx, m.client, m.baseURL+"/objects/"+strconv.Itoa(id))
}
