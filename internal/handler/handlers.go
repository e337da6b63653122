package handler

import (
	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/handler/http"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/service"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. A nil cache disables login
// throttling.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, cache *redis.Client, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		opts := []http.Option{http.WithRequestTimeout(cfg.Server.RequestTimeout)}
		if cache != nil {
			opts = append(opts, http.WithLoginRateLimit(cache, cfg.App.LoginAttemptsPerMinute))
		}
		handlers.HTTP = http.NewHandler(services, logger, opts...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
