package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads command-line flags into a partial [StructuredConfig].
// Flags that are not provided leave their fields zero.
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN, redisURL string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var assetsProvider, assetsEndpoint, assetsCloudName string
	var assetsAPIKey, assetsAPISecret, assetsBucket, assetsRegion string
	var logLevel string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&redisURL, "redis-url", "", "Redis URL used for login throttling")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 360h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&assetsProvider, "assets-provider", "", "Remote asset provider: cloudinary or s3")
	flag.StringVar(&assetsEndpoint, "assets-endpoint", "", "Remote asset provider endpoint")
	flag.StringVar(&assetsCloudName, "assets-cloud-name", "", "Cloudinary cloud name")
	flag.StringVar(&assetsAPIKey, "assets-api-key", "", "Remote asset provider API key")
	flag.StringVar(&assetsAPISecret, "assets-api-secret", "", "Remote asset provider API secret")
	flag.StringVar(&assetsBucket, "assets-bucket", "", "S3 bucket")
	flag.StringVar(&assetsRegion, "assets-region", "", "S3 region")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				RedisURL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Assets: Assets{
			Provider:  assetsProvider,
			Endpoint:  assetsEndpoint,
			CloudName: assetsCloudName,
			APIKey:    assetsAPIKey,
			APISecret: assetsAPISecret,
			Bucket:    assetsBucket,
			Region:    assetsRegion,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
