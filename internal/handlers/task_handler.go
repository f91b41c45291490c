package handlers

import (
	"net/http"

	"github.com/taskmasterhq/taskmaster/internal/apperr"
	"github.com/taskmasterhq/taskmaster/internal/logger"
	"github.com/taskmasterhq/taskmaster/internal/middleware"
	"github.com/taskmasterhq/taskmaster/internal/models"
	"github.com/taskmasterhq/taskmaster/internal/service"
)

type TaskHandler struct {
	tasks *service.TaskService
	log   *logger.Logger
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{
		tasks: tasks,
		log:   logger.New("task-handler"),
	}
}

func (h *TaskHandler) identity(w http.ResponseWriter, r *http.Request) (middleware.Identity, bool) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		// Only reachable if a route is wired without RequireAuth.
		writeError(w, h.log, apperr.Unauthenticated("authentication required"))
	}
	return identity, ok
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := &models.TaskFilter{
		Search:   query.Get("search"),
		Status:   query.Get("status"),
		Priority: query.Get("priority"),
	}

	tasks, err := h.tasks.ListTasks(r.Context(), identity.UserID, filter)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	if tasks == nil {
		tasks = []*models.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), identity.UserID, &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(r.Context(), identity.UserID, r.PathValue("id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	task, err := h.tasks.UpdateTask(r.Context(), identity.UserID, r.PathValue("id"), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), identity.UserID, r.PathValue("id")); err != nil {
		writeError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
