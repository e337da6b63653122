package http

import (
	"net/http"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/service"
	"github.com/MKhiriev/go-chat-accounts/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// A missing or malformed "Authorization" header is rejected with 401
// "Not authorized, no token."; a token that fails verification with 401
// "Not authorized, token failed.". On success the verified claims are stored
// in the request context (see [utils.WithClaims]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			writeFailure(w, r, service.MsgNoToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Send()
			writeFailure(w, r, service.MsgNoToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, service.MsgTokenFailed)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}
