package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskmasterhq/taskmaster/internal/apperr"
	"github.com/taskmasterhq/taskmaster/internal/logger"
	"github.com/taskmasterhq/taskmaster/internal/models"
	"github.com/taskmasterhq/taskmaster/internal/storage"
	"github.com/taskmasterhq/taskmaster/internal/validation"
)

// Missing tasks and tasks owned by someone else produce the same error, so
// task ids cannot be enumerated across accounts.
const taskNotFoundMsg = "task not found"

type TaskService struct {
	tasks storage.TaskStore
	log   *logger.Logger
}

func NewTaskService(tasks storage.TaskStore) *TaskService {
	return &TaskService{
		tasks: tasks,
		log:   logger.New("task-service"),
	}
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, req *models.CreateTaskRequest) (*models.Task, error) {
	if err := validation.ValidateTitle(req.Title); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if err := validation.ValidatePriority(req.Priority); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	task, err := s.tasks.CreateTask(ctx, ownerID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns the owner's tasks, newest first. The owner filter is
// applied by the store before any of the optional narrowing filters.
func (s *TaskService) ListTasks(ctx context.Context, ownerID string, filter *models.TaskFilter) ([]*models.Task, error) {
	if filter != nil {
		if filter.Status != "" {
			if err := validation.ValidateStatus(filter.Status); err != nil {
				return nil, apperr.Validation(err.Error())
			}
		}
		if filter.Priority != "" {
			if err := validation.ValidatePriority(filter.Priority); err != nil {
				return nil, apperr.Validation(err.Error())
			}
		}
	}

	tasks, err := s.tasks.ListTasksByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return filterTasks(tasks, filter), nil
}

// filterTasks is a pure, order-preserving narrowing of an already
// owner-scoped listing.
func filterTasks(tasks []*models.Task, filter *models.TaskFilter) []*models.Task {
	if filter == nil {
		return tasks
	}

	search := strings.ToLower(filter.Search)
	out := make([]*models.Task, 0, len(tasks))
	for _, task := range tasks {
		if search != "" && !strings.Contains(strings.ToLower(task.Title), search) {
			continue
		}
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		out = append(out, task)
	}

	return out
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	return s.getOwnedTask(ctx, ownerID, taskID)
}

// UpdateTask applies a partial patch to an owned task; nil fields are left
// as they are. updated_at is refreshed by the store on every write.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, req *models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.getOwnedTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := validation.ValidateTitle(*req.Title); err != nil {
			return nil, apperr.Validation(err.Error())
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if err := validation.ValidateStatus(*req.Status); err != nil {
			return nil, apperr.Validation(err.Error())
		}
		task.Status = *req.Status
	}
	if req.Priority != nil {
		if err := validation.ValidatePriority(*req.Priority); err != nil {
			return nil, apperr.Validation(err.Error())
		}
		task.Priority = *req.Priority
	}

	updated, err := s.tasks.UpdateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if updated == nil {
		return nil, apperr.NotFound(taskNotFoundMsg)
	}

	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	if _, err := s.getOwnedTask(ctx, ownerID, taskID); err != nil {
		return err
	}

	deleted, err := s.tasks.DeleteTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return apperr.NotFound(taskNotFoundMsg)
	}

	return nil
}

// getOwnedTask is the ownership gate: existence is checked first, then the
// owner, and both failures collapse into the same not-found error.
func (s *TaskService) getOwnedTask(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	task, err := s.tasks.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, apperr.NotFound(taskNotFoundMsg)
	}
	if task.UserID != ownerID {
		return nil, apperr.NotFound(taskNotFoundMsg)
	}

	return task, nil
}
