package config

import "time"

// Default values applied to fields left empty by every other source.
const (
	DefaultTokenIssuer            = "go-chat-accounts"
	DefaultTokenDuration          = 15 * 24 * time.Hour
	DefaultArgonTime       uint32 = 1
	DefaultArgonMemory     uint32 = 64 * 1024
	DefaultArgonThreads    uint8  = 4
	DefaultLoginAttempts          = 5
	DefaultRequestTimeout         = 30 * time.Second
	DefaultAssetsProvider         = AssetsProviderCloudinary
	DefaultVersion                = "N/A"
	DefaultLogLevel               = "debug"
)

// Upper bounds of the argon2 work factor. Stored secrets above them are
// rejected on verification, so configuration must stay within them.
const (
	MaxArgonTime   uint32 = 16
	MaxArgonMemory uint32 = 1 << 20 // KiB
)

// Supported remote asset providers.
const (
	AssetsProviderCloudinary = "cloudinary"
	AssetsProviderS3         = "s3"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:            DefaultTokenIssuer,
			TokenDuration:          DefaultTokenDuration,
			ArgonTime:              DefaultArgonTime,
			ArgonMemory:            DefaultArgonMemory,
			ArgonThreads:           DefaultArgonThreads,
			LoginAttemptsPerMinute: DefaultLoginAttempts,
			Version:                DefaultVersion,
			LogLevel:               DefaultLogLevel,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Assets: Assets{
			Provider: DefaultAssetsProvider,
		},
	}
}
