package service

import (
	"context"
	"testing"
	"time"

	"github.com/taskmasterhq/taskmaster/internal/apperr"
	"github.com/taskmasterhq/taskmaster/internal/models"
	"github.com/taskmasterhq/taskmaster/internal/storage"
)

func newTaskService() *TaskService {
	return NewTaskService(storage.NewMemoryTaskStorage())
}

func TestCreateTask_Defaults(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "owner-1", &models.CreateTaskRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if task.Status != models.StatusTodo {
		t.Errorf("expected default status todo, got %q", task.Status)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("expected default priority medium, got %q", task.Priority)
	}
	if task.ID == "" {
		t.Error("expected generated id")
	}
	if task.UserID != "owner-1" {
		t.Errorf("expected owner-1, got %q", task.UserID)
	}
}

func TestCreateTask_Validation(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "owner-1", &models.CreateTaskRequest{Title: "   "})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error for empty title, got %v", err)
	}

	_, err = svc.CreateTask(ctx, "owner-1", &models.CreateTaskRequest{Title: "ok", Priority: "urgent"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error for bad priority, got %v", err)
	}
}

func TestListTasks_OwnerScopedAndFiltered(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	mustCreate := func(owner, title, priority string) *models.Task {
		t.Helper()
		task, err := svc.CreateTask(ctx, owner, &models.CreateTaskRequest{Title: title, Priority: priority})
		if err != nil {
			t.Fatalf("create %q failed: %v", title, err)
		}
		return task
	}

	mustCreate("alice", "Buy milk", "high")
	second := mustCreate("alice", "Walk dog", "low")
	mustCreate("bob", "Buy cheese", "high")

	completed := models.StatusCompleted
	if _, err := svc.UpdateTask(ctx, "alice", second.ID, &models.UpdateTaskRequest{Status: &completed}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// Owner filter comes first: bob's task never shows up for alice.
	tasks, err := svc.ListTasks(ctx, "alice", nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks for alice, got %d", len(tasks))
	}
	if tasks[0].Title != "Walk dog" || tasks[1].Title != "Buy milk" {
		t.Errorf("expected newest-first ordering, got %q then %q", tasks[0].Title, tasks[1].Title)
	}

	tasks, err = svc.ListTasks(ctx, "alice", &models.TaskFilter{Search: "milk"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Errorf("search filter returned wrong tasks: %+v", tasks)
	}

	tasks, err = svc.ListTasks(ctx, "alice", &models.TaskFilter{Status: models.StatusCompleted})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Walk dog" {
		t.Errorf("status filter returned wrong tasks: %+v", tasks)
	}

	tasks, err = svc.ListTasks(ctx, "alice", &models.TaskFilter{Priority: models.PriorityHigh})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Errorf("priority filter returned wrong tasks: %+v", tasks)
	}

	_, err = svc.ListTasks(ctx, "alice", &models.TaskFilter{Status: "nonsense"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error for bad status filter, got %v", err)
	}
}

func TestGetTask_OwnershipCollapsesToNotFound(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "alice", &models.CreateTaskRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Bob fetching alice's task and anyone fetching a nonexistent id must
	// be indistinguishable.
	_, errOwned := svc.GetTask(ctx, "bob", task.ID)
	_, errMissing := svc.GetTask(ctx, "bob", "no-such-id")

	if !apperr.IsKind(errOwned, apperr.KindNotFound) {
		t.Errorf("expected not found for foreign task, got %v", errOwned)
	}
	if !apperr.IsKind(errMissing, apperr.KindNotFound) {
		t.Errorf("expected not found for missing task, got %v", errMissing)
	}
	if errOwned.Error() != errMissing.Error() {
		t.Errorf("foreign and missing tasks must yield identical errors: %q vs %q",
			errOwned.Error(), errMissing.Error())
	}

	if _, err := svc.GetTask(ctx, "alice", task.ID); err != nil {
		t.Errorf("owner should read own task, got %v", err)
	}
}

func TestUpdateTask_PartialPatch(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "alice", &models.CreateTaskRequest{
		Title:       "Buy milk",
		Description: "2 liters",
		Priority:    models.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	completed := models.StatusCompleted
	updated, err := svc.UpdateTask(ctx, "alice", task.ID, &models.UpdateTaskRequest{Status: &completed})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Status != models.StatusCompleted {
		t.Errorf("expected completed, got %q", updated.Status)
	}
	if updated.Title != "Buy milk" || updated.Description != "2 liters" || updated.Priority != models.PriorityHigh {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(task.CreatedAt) {
		t.Error("created_at must not change on update")
	}
	if !updated.UpdatedAt.After(task.UpdatedAt) {
		t.Error("updated_at must be refreshed on update")
	}

	empty := " "
	_, err = svc.UpdateTask(ctx, "alice", task.ID, &models.UpdateTaskRequest{Title: &empty})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error for blank title, got %v", err)
	}
}

func TestUpdateTask_ForeignTask(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "alice", &models.CreateTaskRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	completed := models.StatusCompleted
	_, err = svc.UpdateTask(ctx, "bob", task.ID, &models.UpdateTaskRequest{Status: &completed})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found for foreign update, got %v", err)
	}

	// The task is untouched.
	got, err := svc.GetTask(ctx, "alice", task.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != models.StatusTodo {
		t.Errorf("foreign update must not mutate, got status %q", got.Status)
	}
}

func TestDeleteTask(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "alice", &models.CreateTaskRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteTask(ctx, "bob", task.ID); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found for foreign delete, got %v", err)
	}

	if err := svc.DeleteTask(ctx, "alice", task.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if err := svc.DeleteTask(ctx, "alice", task.ID); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found for repeated delete, got %v", err)
	}

	tasks, err := svc.ListTasks(ctx, "alice", nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(tasks))
	}
}
