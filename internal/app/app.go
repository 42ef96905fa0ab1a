// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/heartsim/internal/config"
	"github.com/AccelByte/heartsim/internal/server"
	"github.com/AccelByte/heartsim/pkg/achievement"
	"github.com/AccelByte/heartsim/pkg/achievement/builtin"
	"github.com/AccelByte/heartsim/pkg/content"
	"github.com/AccelByte/heartsim/pkg/session"
	"github.com/AccelByte/heartsim/pkg/stats"
)

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	httpServer        *server.HTTPServer
	metricsServer     *server.MetricsServer
	shutdownTelemetry func(context.Context) error
}

// New creates and initializes a new application instance.
//
// Components are initialized in dependency order: content catalog,
// achievement evaluator, session manager, servers, telemetry.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	catalog, err := loadCatalog(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content catalog: %w", err)
	}

	evaluator, err := achievement.NewEvaluator(builtin.Definitions())
	if err != nil {
		return nil, fmt.Errorf("failed to build achievement evaluator: %w", err)
	}
	logrus.Infof("achievement catalog loaded with %d definitions", evaluator.Count())

	tuning := session.Tuning{
		Stability: stats.Tuning{
			ReferenceDeviation: cfg.StabilityReferenceDeviation,
			BalanceWeight:      cfg.StabilityBalanceWeight,
		},
		EventChance:    cfg.EventChance,
		MatchChance:    cfg.MatchChance,
		AffectionDecay: cfg.AffectionDecay,
	}

	manager := session.NewManager(catalog, evaluator, tuning, session.NewRand(cfg.RandomSeed))
	logrus.Info("session manager initialized")

	app.httpServer = server.NewHTTPServer(cfg.HTTPPort, manager, cfg.Environment)
	if err := app.httpServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup http server: %w", err)
	}

	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, "/metrics")
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	if cfg.OtelEnabled {
		shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.OtelServiceName, cfg.Environment, cfg.ZipkinURL)
		if err != nil {
			return nil, fmt.Errorf("failed to setup telemetry: %w", err)
		}
		app.shutdownTelemetry = shutdownTelemetry
	}

	logrus.Info("application initialized successfully")

	return app, nil
}

// loadCatalog returns the built-in catalog when path is empty,
// otherwise loads and validates the YAML override.
func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		catalog := content.Default()
		if err := catalog.Validate(); err != nil {
			return nil, fmt.Errorf("built-in catalog invalid: %w", err)
		}
		logrus.Info("using built-in content catalog")
		return catalog, nil
	}

	catalog, err := content.Load(path)
	if err != nil {
		return nil, err
	}
	logrus.Infof("loaded content catalog from %s", path)
	return catalog, nil
}
