package http

import (
	"time"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/service"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	services *service.Services

	loginLimiter   *loginLimiter
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option customises a [Handler].
type Option func(*Handler)

// WithLoginRateLimit throttles POST /api/users/login to attemptsPerMinute per
// email (or client IP). A nil cache leaves login unthrottled.
func WithLoginRateLimit(cache redis.Cmdable, attemptsPerMinute int) Option {
	return func(h *Handler) {
		if cache == nil || attemptsPerMinute <= 0 {
			return
		}
		h.loginLimiter = newLoginLimiter(cache, attemptsPerMinute)
	}
}

// WithRequestTimeout bounds the handling time of every request.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = timeout
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().
		Bool("login_rate_limit", h.loginLimiter != nil).
		Dur("request_timeout", h.requestTimeout).
		Msg("http handler created")
	return h
}
