// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the storefront server from its configuration:
// database, migrations, optional Redis cache, repositories, services,
// handlers and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/handler"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/server"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
)

// App owns every long-lived resource of a running server.
type App struct {
	db       *store.DB
	cache    *redis.Client
	handlers *handler.Handlers
	server   server.Server

	logger *logger.Logger
}

// New connects to the configured stores, applies migrations and builds the
// server. Resources opened before a failure are released.
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	a := &App{logger: log}

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	a.db = db

	if err = db.Migrate(); err != nil {
		a.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	if cfg.Storage.Cache.Address != "" {
		a.cache, err = store.NewRedisClient(ctx, cfg.Storage.Cache)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("error connecting to cache: %w", err)
		}
	}

	storages := store.NewStorages(db, a.cache, cfg.Storage.Cache, log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	a.handlers, err = handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	a.server, err = server.NewServer(a.handlers, cfg.Server, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return a, nil
}

// Handler returns a router serving the full API.
func (a *App) Handler() http.Handler {
	return a.handlers.HTTP.Init()
}

// Run serves until a termination signal arrives, then releases resources.
func (a *App) Run() error {
	defer a.Close()
	return a.server.RunServer()
}

// Close releases the database pool and the cache client.
func (a *App) Close() error {
	var errs []error
	if a.cache != nil {
		errs = append(errs, a.cache.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}

	if err := errors.Join(errs...); err != nil {
		a.logger.Err(err).Msg("error releasing resources")
		return err
	}
	return nil
}
