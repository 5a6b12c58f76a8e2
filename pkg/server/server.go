package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shouni/go-http-kit/pkg/httpkit"

	"artdex/pkg/flight"
	"artdex/pkg/pipeline"
	"artdex/pkg/sources"
	"artdex/pkg/utils"
)

type Server struct {
	Echo     *echo.Echo
	Ctx      context.Context
	Art      *pipeline.Art
	Creature *pipeline.Creature

	client      httpkit.ClientInterface
	images      *flight.Cache[string, []byte]
	imageTTL    time.Duration
	imageHosts  map[string]struct{}
	webpQuality int
}

// Options carries the upstream clients and tunables the server is built from.
type Options struct {
	Art           sources.ArtSource
	Creature      sources.CreatureSource
	Client        httpkit.ClientInterface
	ImageHosts    []string // upstream hosts /api/image may fetch from
	ImageCacheTTL time.Duration
	WebPQuality   int
}

func NewServer(ctx context.Context, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:        e,
		Ctx:         ctx,
		Art:         pipeline.NewArt(opts.Art),
		Creature:    pipeline.NewCreature(opts.Creature),
		client:      opts.Client,
		imageTTL:    opts.ImageCacheTTL,
		imageHosts:  hostSet(opts.ImageHosts),
		webpQuality: opts.WebPQuality,
	}
	s.images = flight.NewCache(opts.ImageCacheTTL, s.transcode)

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	// page and its form triggers
	s.Echo.GET("/", s.handleGetRoot)
	s.Echo.POST("/art", s.handlePostArtForm)
	s.Echo.POST("/creature", s.handlePostCreatureForm)
	s.Echo.GET("/healthz", s.handleGetHealth)

	api := s.Echo.Group("/api")
	api.POST("/art", s.handlePostArt)           // click trigger -> art panel snapshot
	api.POST("/creature", s.handlePostCreature) // key press trigger -> creature panel snapshot
	api.GET("/schema/:name", s.handleGetSchema)
	api.GET("/image", s.handleGetImage) // webp rendition of a displayed image
}

func (s *Server) Start(addr string) error {
	utils.Logf("Server listening at %s", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	utils.Logf("Shutting down server...")
	return s.Echo.Shutdown(ctx)
}
