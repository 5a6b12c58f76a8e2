package view

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelClearIsIdempotent(t *testing.T) {
	p := NewPanel("art")
	p.SetTitle("Vase")
	p.SetImage(Image{Src: "http://x/9.jpg", Alt: "Vase", ID: "ga-piece"})
	p.SetError("boom")

	p.ClearAll()
	p.ClearAll()

	assert.True(t, p.Snapshot().Empty())
}

func TestPanelSnapshotIsACopy(t *testing.T) {
	p := NewPanel("creature")
	p.SetImage(Image{Src: "a"})

	snap := p.Snapshot()
	snap.Images[0].Src = "changed"

	assert.Equal(t, "a", p.Snapshot().Images[0].Src)
	assert.Equal(t, "creature", snap.Name)
}

func TestPanelReplace(t *testing.T) {
	p := NewPanel("art")
	p.SetTitle("stale")
	p.SetError("old failure")

	images := []Image{{Src: "http://x/9.jpg", Alt: "Vase", ID: "ga-piece"}}
	p.Replace(Content{Title: "Vase", Images: images})
	images[0].Src = "mutated"

	snap := p.Snapshot()
	assert.Equal(t, "Vase", snap.Title)
	assert.Equal(t, "http://x/9.jpg", snap.Images[0].Src)
	assert.Empty(t, snap.Errors)

	p.Replace(Content{Errors: []string{"boom"}})
	snap = p.Snapshot()
	assert.Empty(t, snap.Title)
	assert.Empty(t, snap.Images)
	assert.Equal(t, []string{"boom"}, snap.Errors)
}

func TestPanelReplaceConcurrent(t *testing.T) {
	p := NewPanel("creature")
	success := Content{Title: "ditto", Images: []Image{{Src: "d.png"}}}
	failure := Content{Errors: []string{"nope"}}

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); p.Replace(success) }()
		go func() { defer wg.Done(); p.Replace(failure) }()
	}
	wg.Wait()

	snap := p.Snapshot()
	ok := (snap.Title == "ditto" && len(snap.Images) == 1 && len(snap.Errors) == 0) ||
		(snap.Title == "" && len(snap.Images) == 0 && len(snap.Errors) == 1)
	assert.True(t, ok, "panel mixes outputs: %+v", snap)
}

func TestPanelConcurrentWriters(t *testing.T) {
	p := NewPanel("art")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.ClearAll()
			p.SetTitle("t")
			p.SetImage(Image{Src: "s"})
		}()
	}
	wg.Wait()

	snap := p.Snapshot()
	assert.Equal(t, "t", snap.Title)
	assert.NotEmpty(t, snap.Images)
}

func TestPage(t *testing.T) {
	page := NewPage()
	require.NotSame(t, page.Art, page.Creature)
	assert.Equal(t, "art", page.Art.Name())
	assert.Equal(t, "creature", page.Creature.Name())
	assert.True(t, page.Art.Snapshot().Empty())
	assert.True(t, page.Creature.Snapshot().Empty())
}
