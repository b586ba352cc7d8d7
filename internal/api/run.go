package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgallion1/mdview/internal/config"
	"github.com/dgallion1/mdview/internal/docstore"
	"github.com/dgallion1/mdview/internal/markdown"
	"github.com/dgallion1/mdview/internal/viewer"
)

// ViewerOptions derives viewer settings from configuration.
func ViewerOptions(cfg config.Config) viewer.Options {
	return viewer.Options{
		IndentPx:      cfg.TOCIndentPx,
		UniqueAnchors: cfg.UniqueAnchors,
		Sanitize:      cfg.SanitizeContent,
		Markdown: markdown.Options{
			HighlightStyle: cfg.HighlightStyle,
			HardWraps:      cfg.HardWraps,
		},
	}
}

// Run serves the viewer on cfg.Port until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	store := docstore.New(cfg.DocTTL, cfg.MaxDocuments)
	go store.Run(ctx, janitorInterval(cfg.DocTTL))

	srv := NewServer(store, viewer.New(ViewerOptions(cfg)), log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting mdview", "port", cfg.Port)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// janitorInterval sweeps a few times per TTL, bounded to [1s, 1m].
func janitorInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/4, time.Second), time.Minute)
}
