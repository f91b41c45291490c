package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/taskmasterhq/taskmaster/internal/apperr"
	"github.com/taskmasterhq/taskmaster/internal/logger"
	"github.com/taskmasterhq/taskmaster/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError maps an error kind to its HTTP status. Internal faults are
// logged with their cause but reach the client as an opaque message.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	kind := apperr.KindOf(err)

	status := http.StatusInternalServerError
	message := err.Error()

	switch kind {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindUnauthenticated:
		status = http.StatusUnauthorized
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	default:
		log.Error("internal error: %v", err)
		message = "internal server error"
	}

	writeJSON(w, status, models.ErrorResponse{
		Error:   string(kind),
		Message: message,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, log *logger.Logger, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debug("failed to decode request: %v", err)
		writeError(w, log, apperr.Validation("invalid request body"))
		return false
	}
	return true
}
