package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/service"
	"github.com/MKhiriev/go-chat-accounts/internal/utils"
	"github.com/MKhiriev/go-chat-accounts/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:   http.StatusBadRequest,
	service.ErrUnauthorized: http.StatusUnauthorized,
	service.ErrInternal:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as a failure envelope. Unclassified errors use
// fallback as the client message.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := service.MessageOf(err, fallback)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(message)
	}

	writeFailure(w, r, message, status)
}

func writeFailure(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteJSON(w, models.Response{Success: false, Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
