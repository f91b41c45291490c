package handlers

import (
	"net/http"

	"github.com/taskmasterhq/taskmaster/internal/apperr"
	"github.com/taskmasterhq/taskmaster/internal/logger"
	"github.com/taskmasterhq/taskmaster/internal/middleware"
	"github.com/taskmasterhq/taskmaster/internal/models/user"
	"github.com/taskmasterhq/taskmaster/internal/service"
)

type UserHandler struct {
	users *service.UserService
	log   *logger.Logger
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{
		users: users,
		log:   logger.New("user-handler"),
	}
}

func (h *UserHandler) identity(w http.ResponseWriter, r *http.Request) (middleware.Identity, bool) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeError(w, h.log, apperr.Unauthenticated("authentication required"))
	}
	return identity, ok
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	u, err := h.users.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, user.ProfileResponse{User: *u})
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req user.UpdateProfileRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), identity.UserID, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, user.ProfileResponse{User: *u})
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req user.ChangePasswordRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	if err := h.users.ChangePassword(r.Context(), identity.UserID, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("password changed for user %s", identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}
