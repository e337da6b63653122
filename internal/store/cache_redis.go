package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the cache and verifies connectivity. An empty
// RedisURL returns a nil client and no error: the cache is optional.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		log.Info().Msg("redis url is empty, cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Err(err).Str("func", "NewRedisClient").Msg("ping redis failed")
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().Str("addr", opt.Addr).Msg("connected to redis")

	return client, nil
}
