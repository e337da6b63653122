package http

import (
	"net/http"

	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/MKhiriev/go-chat-accounts/internal/service"
	"github.com/MKhiriev/go-chat-accounts/internal/utils"
	"github.com/MKhiriev/go-chat-accounts/models"
)

const searchQueryParam = "search"

func (h *Handler) findUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(ErrNoUserInContext).Send()
		writeFailure(w, r, service.MsgNoToken, http.StatusUnauthorized)
		return
	}

	users, err := h.services.UserDirectory.Search(ctx, models.SearchRequest{
		Query:    r.URL.Query().Get(searchQueryParam),
		CallerID: callerID,
	})
	if err != nil {
		writeError(w, r, err, service.MsgSomethingWentWrong)
		return
	}

	response := models.SearchResponse{
		Response: models.Response{Success: true, Message: service.MsgUsersFound},
		Users:    users,
	}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing search response")
	}
}

func (h *Handler) setChatWallpaper(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Err(ErrNoUserInContext).Send()
		writeFailure(w, r, service.MsgNoToken, http.StatusUnauthorized)
		return
	}

	var change models.WallpaperChange
	if err := utils.ReadJSON(r, &change); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, r, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.WallpaperService.SetWallpaper(ctx, userID, change)
	if err != nil {
		writeError(w, r, err, service.MsgWallpaperFailed)
		return
	}

	if result.CleanupErr != nil {
		log.Warn().Err(result.CleanupErr).Str("user_id", userID).Msg("previous wallpaper was not destroyed")
	}

	response := models.WallpaperResponse{
		Response:  models.Response{Success: true, Message: result.Message},
		Wallpaper: result.Wallpaper,
	}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing wallpaper response")
	}
}
