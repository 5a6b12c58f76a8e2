package server

import (
	"cmp"
	"net/http"

	"github.com/labstack/echo/v4"

	"artdex/pkg/pipeline"
	"artdex/pkg/view"
)

type creatureResp struct {
	Triggered bool          `json:"triggered"`
	Panel     view.Snapshot `json:"panel"`
}

// POST /api/art
func (s *Server) handlePostArt(c echo.Context) error {
	panel := view.NewPanel(view.ArtPanel)
	// Failures are already on the panel as the fixed message.
	_ = s.Art.Run(c.Request().Context(), panel)
	return c.JSON(http.StatusOK, panel.Snapshot())
}

// POST /api/creature
func (s *Server) handlePostCreature(c echo.Context) error {
	var ev pipeline.KeyEvent
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if ev.Key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key is required")
	}

	panel := view.NewPanel(view.CreaturePanel)
	triggered, _ := s.Creature.HandleKey(c.Request().Context(), panel, ev)
	return c.JSON(http.StatusOK, creatureResp{
		Triggered: triggered,
		Panel:     panel.Snapshot(),
	})
}

// POST /art
func (s *Server) handlePostArtForm(c echo.Context) error {
	page := view.NewPage()
	_ = s.Art.Run(c.Request().Context(), page.Art)
	return s.renderPage(c, page)
}

// POST /creature
func (s *Server) handlePostCreatureForm(c echo.Context) error {
	ev := pipeline.KeyEvent{
		Key:   cmp.Or(c.FormValue("key"), pipeline.CommitKey),
		Value: c.FormValue("name"),
	}
	page := view.NewPage()
	_, _ = s.Creature.HandleKey(c.Request().Context(), page.Creature, ev)
	return s.renderPage(c, page)
}
