// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// vault-reconcile application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment variables
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds reconciliation defaults and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational vault store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the upstream equivalent-domains endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the defaults applied when a request does not carry its own
// match policy or sensitivity.
type App struct {
	// DefaultMatch is the match type used for URIs without an override
	// (e.g. "domain", "host", "starts_with").
	// Env: APP_DEFAULT_MATCH
	DefaultMatch string `env:"DEFAULT_MATCH"`

	// Sensitivity is a preset name (max, high, normal, low, min) or a float
	// threshold for duplicate detection.
	// Env: APP_SENSITIVITY
	Sensitivity string `env:"SENSITIVITY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: a postgres:// or postgresql:// URL opens pgx,
	// anything else is treated as a SQLite path or file: URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for the outbound equivalent-domains client.
type Adapter struct {
	// EquivalentDomainsURL is the base URL of the settings service that
	// serves equivalent-domain groups. Empty disables synchronisation.
	// Env: ADAPTER_EQUIVALENT_DOMAINS_URL
	EquivalentDomainsURL string `env:"EQUIVALENT_DOMAINS_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the equivalent-domains refresh.
	// Zero disables the worker.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// defaults is merged last and only fills fields no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultMatch: "domain",
			Sensitivity:  "normal",
			Version:      "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
	}
}

// Load assembles, merges and validates the application configuration.
// Sources are consulted in priority order (earlier sources win for
// non-zero fields):
//  1. Command-line flags bound through [BindFlags]
//  2. Environment variables, after preloading the dotenv file named by the flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// A nil flags value skips the flag source.
func Load(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv(flags.dotEnvPath()).
		withJSON().
		withDefaults().
		build()
}
