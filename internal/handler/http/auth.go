package http

import (
	"net/http"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/service"
	"github.com/MKhiriev/go-chat-accounts/internal/utils"
	"github.com/MKhiriev/go-chat-accounts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.Registration
	if err := utils.ReadJSON(r, &registration); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, r, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Register(ctx, registration)
	if err != nil {
		writeError(w, r, err, service.MsgRegisterFailed)
		return
	}

	h.writeSession(w, r, session, service.MsgRegistrationSuccessful, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, r, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err, service.MsgLoginFailed)
		return
	}

	h.writeSession(w, r, session, service.MsgLoginSuccessful, http.StatusOK)
}

func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, session models.Session, message string, status int) {
	response := models.SessionResponse{
		Response: models.Response{Success: true, Message: message},
		User:     models.NewSessionUser(session),
	}

	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing session response")
	}
}
