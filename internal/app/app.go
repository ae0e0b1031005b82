package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp(opts Options) *App {
	return &App{ServiceProvider: NewServiceProvider(opts)}
}

// Run поднимает HTTP-сервер и держит его до отмены ctx (SIGINT/SIGTERM в CLI)
func (a *App) Run(ctx context.Context) error {
	sp := a.ServiceProvider
	logger := sp.Logger()

	srv := &http.Server{
		Addr:              sp.HTTPCfg().Address(),
		Handler:           sp.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if closeErr := sp.Close(); closeErr != nil {
		logger.Warn("failed to release resources", zap.Error(closeErr))
	}
	return err
}
