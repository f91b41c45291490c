package handlers

import (
	"net/http"

	"github.com/taskmasterhq/taskmaster/internal/logger"
	"github.com/taskmasterhq/taskmaster/internal/models/user"
	"github.com/taskmasterhq/taskmaster/internal/service"
)

type AuthHandler struct {
	users *service.UserService
	log   *logger.Logger
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{
		users: users,
		log:   logger.New("auth-handler"),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	resp, err := h.users.Register(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("registered user %s", resp.User.ID)
	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	resp, err := h.users.Login(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
