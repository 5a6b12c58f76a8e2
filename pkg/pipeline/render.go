package pipeline

import (
	"artdex/pkg/view"
)

const (
	ArtFailure      = "Failed to get image. Click again"
	CreatureFailure = "That's not a Pokemon! Try again"

	// PieceID is the styling id given to every rendered image.
	PieceID = "ga-piece"
)

// Figure is the decoded part of a payload that gets rendered.
type Figure struct {
	Title string
	Src   string
}

// Clear empties the title, image and error slots.
func Clear(s view.Surface) {
	s.ClearAll()
}

// Render replaces the surface content with fig. A nil figure still leaves a
// bare image element and an empty title.
func Render(s view.Surface, fig *Figure) {
	var c view.Content
	img := view.Image{}
	if fig != nil {
		img = view.Image{Src: fig.Src, Alt: fig.Title, ID: PieceID}
		c.Title = fig.Title
	}
	c.Images = []view.Image{img}
	s.Replace(c)
}

// ShowError replaces the surface content with a single fixed message paragraph.
func ShowError(s view.Surface, msg string) {
	s.Replace(view.Content{Errors: []string{msg}})
}

func markRun(s view.Surface, id string) {
	if t, ok := s.(view.RunTracker); ok {
		t.MarkRun(id)
	}
}
