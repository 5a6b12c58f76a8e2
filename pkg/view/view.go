package view

import (
	"slices"
	"sync"
)

// Surface is the set of output slots a pipeline is allowed to touch.
type Surface interface {
	SetTitle(text string)
	SetImage(img Image)
	SetError(msg string)
	ClearAll()

	// Replace clears every slot and writes c as one step, so concurrent runs
	// never leave a mix of their outputs behind.
	Replace(c Content)
}

// Content is the full set of values for the three slots.
type Content struct {
	Title  string
	Images []Image
	Errors []string
}

// RunTracker is implemented by surfaces that want to know which run wrote them last.
type RunTracker interface {
	MarkRun(id string)
}

// Image is one rendered image element.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
	ID  string `json:"id"`
}

// Snapshot is a copy of a panel's slots at one point in time.
type Snapshot struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Images  []Image  `json:"images"`
	Errors  []string `json:"errors"`
	LastRun string   `json:"last_run,omitempty"`
}

// Empty reports whether all three slots are empty.
func (s Snapshot) Empty() bool {
	return s.Title == "" && len(s.Images) == 0 && len(s.Errors) == 0
}

// Panel is an in-memory Surface holding a title, image and error slot.
// Each method holds the lock for its whole write; with Replace the last run to
// write wins outright.
type Panel struct {
	name string

	mu      sync.RWMutex
	title   string
	images  []Image
	errors  []string
	lastRun string
}

func NewPanel(name string) *Panel {
	return &Panel{name: name}
}

func (p *Panel) Name() string {
	return p.name
}

func (p *Panel) SetTitle(text string) {
	p.mu.Lock()
	p.title = text
	p.mu.Unlock()
}

// SetImage appends img to the image slot.
func (p *Panel) SetImage(img Image) {
	p.mu.Lock()
	p.images = append(p.images, img)
	p.mu.Unlock()
}

// SetError appends a message paragraph to the error slot.
func (p *Panel) SetError(msg string) {
	p.mu.Lock()
	p.errors = append(p.errors, msg)
	p.mu.Unlock()
}

func (p *Panel) ClearAll() {
	p.mu.Lock()
	p.title = ""
	p.images = nil
	p.errors = nil
	p.mu.Unlock()
}

func (p *Panel) Replace(c Content) {
	p.mu.Lock()
	p.title = c.Title
	p.images = slices.Clone(c.Images)
	p.errors = slices.Clone(c.Errors)
	p.mu.Unlock()
}

func (p *Panel) MarkRun(id string) {
	p.mu.Lock()
	p.lastRun = id
	p.mu.Unlock()
}

func (p *Panel) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{
		Name:    p.name,
		Title:   p.title,
		Images:  slices.Clone(p.images),
		Errors:  slices.Clone(p.errors),
		LastRun: p.lastRun,
	}
}
