package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"artdex/pkg/fetch"
	"artdex/pkg/images"
)

// maxImageAge is sent when the cache keeps renditions forever.
const maxImageAge = 365 * 24 * time.Hour

// GET /api/image?src=
func (s *Server) handleGetImage(c echo.Context) error {
	src := c.QueryParam("src")
	if src == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "src is required")
	}
	if err := s.allowedImage(src); err != nil {
		log.Warn("blocked image source", "src", src, "error", err)
		return echo.NewHTTPError(http.StatusForbidden, "image host is not allowed")
	}

	data, err := s.images.Get(c.Request().Context(), src)
	if err != nil {
		log.Warn("image transcode failed", "src", src, "error", err)
		var se *fetch.StatusError
		if errors.As(err, &se) {
			return echo.NewHTTPError(http.StatusBadGateway, fmt.Sprintf("upstream returned %d", se.StatusCode))
		}
		return echo.NewHTTPError(http.StatusBadGateway, "failed to load image")
	}

	c.Response().Header().Set("Cache-Control", cacheControl(s.imageTTL))
	return c.Blob(http.StatusOK, images.ContentType, data)
}

// allowedImage accepts only http(s) URLs on one of the configured upstream hosts.
func (s *Server) allowedImage(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme %q not allowed", u.Scheme)
	}
	if _, ok := s.imageHosts[strings.ToLower(u.Hostname())]; !ok {
		return fmt.Errorf("host %q not allowed", u.Hostname())
	}
	return nil
}

func hostSet(hosts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			set[h] = struct{}{}
		}
	}
	return set
}

func cacheControl(ttl time.Duration) string {
	if ttl <= 0 {
		ttl = maxImageAge
	}
	return fmt.Sprintf("public, max-age=%d", int64(ttl/time.Second))
}

func (s *Server) transcode(ctx context.Context, src string) ([]byte, error) {
	raw, err := s.client.FetchBytes(ctx, src)
	if err != nil {
		return nil, err
	}
	data, err := images.ToWebP(raw, s.webpQuality)
	if err != nil {
		return nil, err
	}
	log.Infof("Transcoded %s to webp (%d -> %d bytes)", src, len(raw), len(data))
	return data, nil
}
