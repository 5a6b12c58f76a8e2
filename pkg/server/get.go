package server

import (
	"bytes"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"artdex/pkg/schema"
	"artdex/pkg/utils"
	"artdex/pkg/view"
)

func (s *Server) handleGetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "artdex",
		"status":  "ok",
	})
}

// GET /
func (s *Server) handleGetRoot(c echo.Context) error {
	return s.renderPage(c, view.NewPage())
}

func (s *Server) renderPage(c echo.Context, page *view.Page) error {
	var buf bytes.Buffer
	data := pageData{
		Art:      page.Art.Snapshot(),
		Creature: page.Creature.Snapshot(),
	}
	if err := pageTmpl.Execute(&buf, data); err != nil {
		log.Error("failed rendering page", "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("failed rendering page"))
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// GET /api/schema/:name
func (s *Server) handleGetSchema(c echo.Context) error {
	sch, ok := schema.Lookup(c.Param("name"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]any{
			"success":   false,
			"error":     "unknown schema",
			"available": schema.Names(),
		})
	}
	return c.JSON(http.StatusOK, sch)
}
