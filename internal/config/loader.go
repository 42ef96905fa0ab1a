// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from environment variables.
// It attempts to load from .env file first (for local development),
// then parses environment variables into the Config struct.
func Load() (*Config, error) {
	// In production (Docker/K8s), environment variables are injected directly
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env file found or error loading it: %v (this is normal in production)", err)
	} else {
		logrus.Infof("loaded environment variables from .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}

// Validate performs custom validation on the configuration.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d (must be 1-65535)", c.HTTPPort)
	}

	if c.MetricsPort < 1 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid METRICS_PORT: %d (must be 1-65535)", c.MetricsPort)
	}

	if c.HTTPPort == c.MetricsPort {
		return fmt.Errorf("HTTP_PORT and METRICS_PORT must differ, both are %d", c.HTTPPort)
	}

	if c.StabilityReferenceDeviation <= 0 {
		return fmt.Errorf("invalid STABILITY_REFERENCE_DEVIATION: %v (must be positive)", c.StabilityReferenceDeviation)
	}

	if c.StabilityBalanceWeight < 0 || c.StabilityBalanceWeight > 1 {
		return fmt.Errorf("invalid STABILITY_BALANCE_WEIGHT: %v (must be in [0,1])", c.StabilityBalanceWeight)
	}

	if c.EventChance < 0 || c.EventChance > 1 {
		return fmt.Errorf("invalid EVENT_CHANCE: %v (must be in [0,1])", c.EventChance)
	}

	if c.MatchChance < 0 || c.MatchChance > 1 {
		return fmt.Errorf("invalid MATCH_CHANCE: %v (must be in [0,1])", c.MatchChance)
	}

	if c.AffectionDecay < 0 {
		return fmt.Errorf("invalid AFFECTION_DECAY: %d (must be non-negative)", c.AffectionDecay)
	}

	return nil
}
