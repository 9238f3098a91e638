/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

// Package service exposes the planner over HTTP: POST /plan, POST
// /validate, POST /benchmarks, GET /health, and a GET /ws/progress
// websocket for live search progress streaming.
package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/stripslab/planner/internal/planstore"
)

type App struct {
	Router      *mux.Router
	Store       *planstore.Store
	Progress    *ProgressBroadcaster
	Cfg         Config
	Logger      zerolog.Logger
	RootCtx     context.Context
	RootCancel  context.CancelFunc
}

func NewApp(cfg Config, logger zerolog.Logger, store *planstore.Store) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		Router:     mux.NewRouter(),
		Store:      store,
		Progress:   NewProgressBroadcaster(logger),
		Cfg:        cfg,
		Logger:     logger,
		RootCtx:    ctx,
		RootCancel: cancel,
	}
}

func (app *App) ConfigureRoutes() *App {
	app.Router.Use(app.versionHeaderMiddleware)

	app.Router.HandleFunc("/health", app.healthHandler).Methods(http.MethodGet)
	app.Router.HandleFunc("/plan", app.planHandler).Methods(http.MethodPost)
	app.Router.HandleFunc("/validate", app.validateHandler).Methods(http.MethodPost)
	app.Router.HandleFunc("/benchmarks", app.benchmarksHandler).Methods(http.MethodPost)
	app.Router.HandleFunc("/ws/progress", func(w http.ResponseWriter, r *http.Request) {
		_ = app.Progress.melody.HandleRequest(w, r)
	})

	return app
}

func (app *App) versionHeaderMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Planner-Version", Version)
		next.ServeHTTP(w, r)
	})
}

const Version = "0.1.0"

func (app *App) Run() {
	addr := fmt.Sprintf(":%d", app.Cfg.Port)

	srv := &http.Server{
		Addr:         addr,
		WriteTimeout: 180 * time.Second,
		ReadTimeout:  180 * time.Second,
		IdleTimeout:  180 * time.Second,
		Handler:      app.Router,
	}

	go func() {
		app.Logger.Info().Msgf("Starting planner service on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Error().Err(err).Msg("planner service stopped")
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	app.Logger.Info().Msg("Shutting down planner service")
	app.RootCancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
