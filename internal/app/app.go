package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/felixbrock/myllmmodel/internal/domain"
)

type ModelRepo interface {
	All() []domain.Model
	Find(id string) (*domain.Model, error)
	Defaults() (a string, b string)
}

type PromptRepo interface {
	Search(query string) []domain.Prompt
	Find(id int) (*domain.Prompt, error)
}

type PricingRepo interface {
	All() []domain.PricingTier
}

type RunRepo interface {
	Create(ctx context.Context, prompt string) (*domain.Run, error)
}

type App struct {
	ModelRepo   ModelRepo
	PromptRepo  PromptRepo
	PricingRepo PricingRepo
	RunRepo     RunRepo
	Config      Config

	// Now is used for the footer year. Defaults to time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Start serves until ctx is cancelled, then drains open requests for at most
// Config.ShutdownTimeout.
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
