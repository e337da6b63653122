// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, password
	// hashing work factor, login throttling and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// optional cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Assets holds the remote media provider credentials used to destroy
	// replaced wallpapers.
	Assets Assets `envPrefix:"ASSETS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// App contains security and runtime parameters of the service layer.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify session tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration controls how long an issued token stays valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ArgonTime, ArgonMemory (KiB) and ArgonThreads are the argon2id work
	// factor used for new password hashes.
	ArgonTime    uint32 `env:"ARGON_TIME"`
	ArgonMemory  uint32 `env:"ARGON_MEMORY"`
	ArgonThreads uint8  `env:"ARGON_THREADS"`

	// LoginAttemptsPerMinute caps login requests per email (or client IP)
	// when a cache is configured.
	LoginAttemptsPerMinute int `env:"LOGIN_ATTEMPTS_PER_MINUTE"`

	// Version is reported by the version endpoint.
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Server contains HTTP server parameters.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB contains relational database connection settings.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Cache contains the optional redis connection used for login throttling.
// An empty RedisURL disables throttling.
type Cache struct {
	RedisURL string `env:"REDIS_URL"`
}

// Assets describes the remote media provider.
type Assets struct {
	// Provider selects the destroy implementation: "cloudinary" or "s3".
	Provider string `env:"PROVIDER"`

	// Endpoint overrides the provider base URL (Cloudinary API host or an
	// S3-compatible endpoint such as MinIO).
	Endpoint string `env:"ENDPOINT"`

	// CloudName is the Cloudinary cloud name.
	CloudName string `env:"CLOUD_NAME"`

	// APIKey and APISecret authenticate destroy calls (Cloudinary key/secret
	// or S3 access key/secret key).
	APIKey    string `env:"API_KEY"`
	APISecret string `env:"API_SECRET"`

	// Bucket and Region are used by the S3 provider.
	Bucket string `env:"BUCKET"`
	Region string `env:"REGION"`
}

// GetStructuredConfig assembles the service configuration from environment
// variables, command-line flags, an optional JSON file and defaults, then
// validates it.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
