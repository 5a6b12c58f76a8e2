package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artdex/pkg/fetch"
)

func TestMet(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/search":
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"total":3,"objectIDs":[5,9,12]}`))
		case "/v1/objects/9":
			_, _ = w.Write([]byte(`{"objectID":9,"title":"Vase","primaryImage":"http://x/9.jpg"}`))
		default:
			http.Error(w, `{"message":"Not a valid object"}`, http.StatusNotFound)
		}
	}))
	defer srv.Close()

	met := NewMet(fetch.NewClient(srv.Client(), 0), srv.URL+"/v1/")
	ctx := context.Background()

	coll, err := met.Search(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 9, 12}, coll.ObjectIDs)
	assert.Equal(t, "q=Greek%20and%20Roman%20Art&isHighlight=true", gotQuery)

	piece, err := met.Object(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Vase", piece.Title)
	assert.Equal(t, "http://x/9.jpg", piece.PrimaryImage)

	_, err = met.Object(ctx, 1)
	var se *fetch.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestPokeAPI(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		if r.URL.Path != "/pokemon/ditto" {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":132,"name":"ditto","sprites":{"front_default":"http://y/ditto.png"}}`))
	}))
	defer srv.Close()

	api := NewPokeAPI(fetch.NewClient(srv.Client(), 0), srv.URL+"/pokemon")
	ctx := context.Background()

	c, err := api.Creature(ctx, "ditto")
	require.NoError(t, err)
	assert.Equal(t, "ditto", c.Name)
	assert.Equal(t, "http://y/ditto.png", c.SpriteURL())

	_, err = api.Creature(ctx, "mr mime")
	assert.EqualError(t, err, "Not Found\n")
	assert.Equal(t, "/pokemon/mr%20mime", gotPath)
}
