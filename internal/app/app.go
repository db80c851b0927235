package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carenotify/internal/config"
	"carenotify/internal/telemetry"
)

type App struct {
	cfg         *config.Config
	server      *http.Server
	logger      *zap.Logger
	stopTracing func(context.Context) error
}

func NewApp(cfg *config.Config, router *gin.Engine, logger *zap.Logger) *App {
	return &App{
		cfg: cfg,
		server: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		},
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	stopTracing, err := telemetry.Init(ctx, a.cfg)
	if err != nil {
		return err
	}
	a.stopTracing = stopTracing

	a.logger.Info("http server listening", zap.String("addr", a.cfg.HTTPAddr))
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("graceful shutdown started")
	shutdownErr := a.server.Shutdown(ctx)

	if a.stopTracing != nil {
		if err := a.stopTracing(ctx); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	if shutdownErr == nil {
		a.logger.Info("graceful shutdown completed")
	}
	return shutdownErr
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}
