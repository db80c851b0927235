//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"carenotify/internal/app"
	"carenotify/internal/config"
	"carenotify/internal/http"
	"carenotify/internal/http/controller"
	"carenotify/internal/logging"
	"carenotify/internal/metrics"
	"carenotify/internal/service/notify"
	"carenotify/internal/service/session"
	"carenotify/internal/store"
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		config.New,
		logging.New,
		metrics.New,
		store.NewStore,
		notify.NewService,
		session.NewGateway,
		controller.NewHandler,
		http.NewRouter,
		app.NewApp,
	)
	return &app.App{}, nil
}
