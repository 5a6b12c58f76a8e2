package view

// Panel names as they appear on snapshots.
const (
	ArtPanel      = "art"
	CreaturePanel = "creature"
)

// Page groups the two panels of one rendered document. Each request builds
// its own; nothing is kept between page loads.
type Page struct {
	Art      *Panel
	Creature *Panel
}

func NewPage() *Page {
	return &Page{
		Art:      NewPanel(ArtPanel),
		Creature: NewPanel(CreaturePanel),
	}
}
