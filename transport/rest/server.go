package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter mounts the ping endpoint and the game API. defaults fill in
// fields a create request leaves out.
func NewRouter(logger *slog.Logger, games gameUseCase, defaults Defaults) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(30 * time.Second))

	router.Get("/ping", pingHandler)

	handlers := NewGameHandlers(logger, games, defaults)
	router.Route("/games", func(r chi.Router) {
		r.Post("/", handlers.CreateGame)
		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", handlers.GetGame)
			r.Delete("/", handlers.DeleteGame)
			r.Post("/turns", handlers.MakeTurn)
			r.Post("/reset", handlers.ResetGame)
			r.Put("/difficulty", handlers.SetDifficulty)
		})
	})

	return router
}

// Start serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped with error: %w", err)
		}

		return nil
	}
}
