// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// storefront server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: password hashing cost, the
	// greeting served on "/" and the order stamp layouts.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the database and the optional cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// HashCost is the bcrypt work factor used for user credentials.
	HashCost int `env:"HASH_COST"`

	// Greeting is the plain-text body served on GET /.
	Greeting string `env:"GREETING"`

	// OrderDateLayout and OrderTimeLayout are time.Format layouts used to
	// stamp new orders.
	OrderDateLayout string `env:"ORDER_DATE_LAYOUT"`
	OrderTimeLayout string `env:"ORDER_TIME_LAYOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver is the database/sql driver name: "pgx" or "sqlite3".
	Driver string `env:"DRIVER"`

	// DSN is the connection string passed to the driver.
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the Redis settings of the card cache.
// The cache is disabled when Address is empty.
type Cache struct {
	Address  string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB"`
	TTL      time.Duration `env:"TTL"`
}

// Server holds network settings of the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address (host:port) the server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request,
	// store calls included.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxUploadSize caps the body of a card upload in bytes.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// GetStructuredConfig assembles the server configuration from environment
// variables, command-line flags and the optional JSON file, applies defaults
// and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

// defaultConfig returns the values used for settings no source provided.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HashCost:        10,
			Greeting:        "Hello World!",
			OrderDateLayout: "1/2/2006",
			OrderTimeLayout: "3:04:05 PM",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
			Cache: Cache{
				TTL: 5 * time.Minute,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:3000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxUploadSize:   32 << 20,
		},
	}
}
