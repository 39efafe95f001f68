package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/mrlokans/phrasetrainer/internal/catalog"
	"github.com/mrlokans/phrasetrainer/internal/config"
	http_controllers "github.com/mrlokans/phrasetrainer/internal/http"
	"github.com/mrlokans/phrasetrainer/internal/romaji"
	"github.com/mrlokans/phrasetrainer/internal/selector"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// LoadCatalog builds the catalog described by cfg: the bundled one, or the
// file at cfg.Path, optionally with romaji backfilled.
func LoadCatalog(cfg config.Catalog) (*catalog.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)

	if cfg.UseEmbedded {
		log.Printf("Loading bundled phrase catalog")
		c, err = catalog.LoadBundled()
	} else {
		var format catalog.Format
		if cfg.Format != "" {
			format, err = catalog.ParseFormat(cfg.Format)
			if err != nil {
				return nil, err
			}
		}
		log.Printf("Loading phrase catalog from %s", cfg.Path)
		c, err = catalog.LoadFile(cfg.Path, format)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RomajiBackfill {
		backfiller, err := romaji.NewBackfiller()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize romaji backfill: %w", err)
		}
		c = backfiller.Apply(c)
	}

	for _, d := range c.Difficulties() {
		log.Printf("  difficulty %q: %d phrases", d.Difficulty, d.Count)
	}
	log.Printf("Phrase catalog loaded: %d phrases", c.Len())

	return c, nil
}

// NewHandler wires the selector and router for a loaded catalog.
func NewHandler(cfg *config.Config, c *catalog.Catalog, version string) http.Handler {
	svc := selector.New(c, selector.Options{
		DefaultDifficulty: cfg.Selector.DefaultDifficulty,
		NoMatchMessage:    cfg.Selector.NoMatchMessage,
	})

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Selector:        svc,
		Catalog:         c,
		StaticPath:      cfg.UI.StaticPath,
		IndexFile:       cfg.UI.IndexFile,
		CORSAllowOrigin: cfg.HTTP.CORSAllowOrigin,
		Version:         version,
	})

	if cfg.HTTP.GzipEnabled {
		return gzhttp.GzipHandler(router)
	}
	return router
}

func Serve(handler http.Handler, cfg *config.Config, onShutdown ShutdownFunc) {
	if info, err := os.Stat(cfg.UI.StaticPath); err != nil || !info.IsDir() {
		log.Printf("WARNING: static directory %s is missing; only the API will be served", cfg.UI.StaticPath)
	}

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Phrase Trainer v%s", version)

	// The catalog must be complete before any request is served
	c, err := LoadCatalog(cfg.Catalog)
	if err != nil {
		log.Fatalf("Failed to load phrase catalog: %v", err)
	}

	Serve(NewHandler(cfg, c, version), cfg, nil)
}
