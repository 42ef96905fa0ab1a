// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

// Config holds all application configuration loaded from environment variables.
// This struct uses github.com/caarlos0/env for automatic environment variable parsing.
type Config struct {
	// Server configuration
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8000"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"HeartSim"`

	// Content configuration. An empty CONTENT_PATH means the built-in
	// catalog is used.
	ContentPath string `env:"CONTENT_PATH"`

	// Gameplay tuning
	StabilityReferenceDeviation float64 `env:"STABILITY_REFERENCE_DEVIATION" envDefault:"50"`
	StabilityBalanceWeight      float64 `env:"STABILITY_BALANCE_WEIGHT" envDefault:"0.6"`
	EventChance                 float64 `env:"EVENT_CHANCE" envDefault:"0.3"`
	MatchChance                 float64 `env:"MATCH_CHANCE" envDefault:"0.6"`
	AffectionDecay              int     `env:"AFFECTION_DECAY" envDefault:"0"`

	// RandomSeed pins the RNG for reproducible runs. Zero seeds from
	// the clock.
	RandomSeed int64 `env:"RANDOM_SEED" envDefault:"0"`

	// Telemetry configuration
	OtelEnabled     bool   `env:"OTEL_ENABLED" envDefault:"true"`
	ZipkinURL       string `env:"ZIPKIN_URL" envDefault:"http://localhost:9411/api/v2/spans"`
	OtelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"heartsim"`
}
