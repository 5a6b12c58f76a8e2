package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charm "github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"

	"artdex/pkg/config"
	"artdex/pkg/server"
	"artdex/pkg/sources"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer done()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if level, err := charm.ParseLevel(cfg.LogLevel); err == nil {
		charm.SetLevel(level)
	} else {
		log.Warnf("Unknown LOG_LEVEL %q, keeping info", cfg.LogLevel)
	}

	client := sources.NewHTTPClient(cfg.HTTPTimeout, cfg.MaxBodyBytes)
	srv := server.NewServer(ctx, server.Options{
		Art:           sources.NewMet(client, cfg.ArtBaseURL),
		Creature:      sources.NewPokeAPI(client, cfg.CreatureBaseURL),
		Client:        client,
		ImageHosts:    cfg.ImageHosts,
		ImageCacheTTL: cfg.ImageCacheTTL,
		WebPQuality:   cfg.WebPQuality,
	})
	if charm.GetLevel() <= charm.DebugLevel {
		srv.Echo.Logger.SetLevel(log.DEBUG)
	}

	log.Infof("Art source %s, creature source %s, image hosts %v", cfg.ArtBaseURL, cfg.CreatureBaseURL, cfg.ImageHosts)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
