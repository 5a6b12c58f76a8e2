package pipeline

import (
	"context"
	"runtime"
	"sync"

	"artdex/pkg/fetch"
	"artdex/pkg/schema"
	"artdex/pkg/view"
)

// --- Mocks ---

type mockArtSource struct {
	coll      *schema.ArtCollection
	searchErr error
	pieces    map[int]*schema.ArtPiece
	objectErr error

	searchCalls int
	objectIDs   []int
}

func (m *mockArtSource) Search(ctx context.Context) (*schema.ArtCollection, error) {
	m.searchCalls++
	return m.coll, m.searchErr
}

func (m *mockArtSource) Object(ctx context.Context, id int) (*schema.ArtPiece, error) {
	m.objectIDs = append(m.objectIDs, id)
	if m.objectErr != nil {
		return nil, m.objectErr
	}
	return m.pieces[id], nil
}

type mockCreatureSource struct {
	creatures map[string]*schema.Creature
	err       error

	mu    sync.Mutex
	names []string
}

func (m *mockCreatureSource) Creature(ctx context.Context, nameOrID string) (*schema.Creature, error) {
	m.mu.Lock()
	m.names = append(m.names, nameOrID)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	cr, ok := m.creatures[nameOrID]
	if !ok {
		return nil, &fetch.StatusError{StatusCode: 404, Body: "Not Found"}
	}
	return cr, nil
}

// recordingSurface counts calls on top of a real panel.
type recordingSurface struct {
	*view.Panel
	calls int
}

func (r *recordingSurface) SetTitle(text string)    { r.calls++; r.Panel.SetTitle(text) }
func (r *recordingSurface) SetImage(img view.Image) { r.calls++; r.Panel.SetImage(img) }
func (r *recordingSurface) SetError(msg string)     { r.calls++; r.Panel.SetError(msg) }
func (r *recordingSurface) ClearAll()               { r.calls++; r.Panel.ClearAll() }
func (r *recordingSurface) Replace(c view.Content)  { r.calls++; r.Panel.Replace(c) }

// yieldingSurface hands the scheduler to other goroutines before every write.
type yieldingSurface struct {
	*view.Panel
}

func (y yieldingSurface) SetTitle(text string)    { runtime.Gosched(); y.Panel.SetTitle(text) }
func (y yieldingSurface) SetImage(img view.Image) { runtime.Gosched(); y.Panel.SetImage(img) }
func (y yieldingSurface) SetError(msg string)     { runtime.Gosched(); y.Panel.SetError(msg) }
func (y yieldingSurface) ClearAll()               { runtime.Gosched(); y.Panel.ClearAll() }
func (y yieldingSurface) Replace(c view.Content)  { runtime.Gosched(); y.Panel.Replace(c) }

func strPtr(s string) *string { return &s }
