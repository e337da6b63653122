package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/utils"
	"github.com/redis/go-redis/v9"
)

const (
	loginRateLimitKeyPrefix = "rl:login:"
	loginRateLimitWindow    = time.Minute
)

// loginLimiter counts login attempts per key in fixed one-minute windows.
type loginLimiter struct {
	cache        redis.Cmdable
	maxPerMinute int64
}

func newLoginLimiter(cache redis.Cmdable, maxPerMinute int) *loginLimiter {
	return &loginLimiter{cache: cache, maxPerMinute: int64(maxPerMinute)}
}

// hit counts one attempt and returns the attempts in the current window.
// The window starts with the first attempt; creating it and counting run in
// one transaction, so a counter never exists without its expiry.
func (l *loginLimiter) hit(ctx context.Context, key string) (int64, error) {
	var incr *redis.IntCmd
	_, err := l.cache.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, loginRateLimitWindow)
		incr = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return incr.Val(), nil
}

// withLoginRateLimit rejects login attempts above the limit with 429.
// Cache failures let the request through.
func (h *Handler) withLoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.loginLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		// read bytes from body
		body, err := io.ReadAll(io.LimitReader(r.Body, utils.MaxJSONBodySize+1))
		if err != nil {
			log.Err(err).Str("func", "*Handler.withLoginRateLimit").Msg("failed to read request body")
			writeFailure(w, r, MsgInvalidJSON, http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		key := loginRateLimitKeyPrefix + loginRateLimitSubject(body, r)

		count, err := h.loginLimiter.hit(r.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.withLoginRateLimit").Msg("rate limit cache unavailable")
			next.ServeHTTP(w, r)
			return
		}

		if count > h.loginLimiter.maxPerMinute {
			log.Warn().Str("key", key).Int64("attempts", count).Msg("login rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(loginRateLimitWindow.Seconds())))
			writeFailure(w, r, MsgTooManyLoginAttempts, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loginRateLimitSubject is the email of the login body, or the client IP
// when the body carries none.
func loginRateLimitSubject(body []byte, r *http.Request) string {
	var req struct {
		Email string `json:"email"`
	}
	_ = json.Unmarshal(body, &req)

	if email := strings.TrimSpace(req.Email); email != "" {
		return email
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
