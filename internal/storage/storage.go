package storage

import (
	"context"
	"errors"

	"github.com/taskmasterhq/taskmaster/internal/models"
	"github.com/taskmasterhq/taskmaster/internal/models/user"
)

// ErrDuplicateEmail is returned by CreateUser when the email is already
// taken. Services translate it into a user-visible conflict.
var ErrDuplicateEmail = errors.New("email is already registered")

// UserStore owns the persisted user records. Lookups return (nil, nil)
// when no record matches.
type UserStore interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByID(ctx context.Context, id string) (*user.User, error)
	UpdateUserName(ctx context.Context, id, name string) (*user.User, error)
	UpdateUserPassword(ctx context.Context, id, passwordHash string) error
}

// TaskStore owns the persisted tasks. GetTaskByID returns (nil, nil) when
// absent; the ownership decision belongs to the caller.
type TaskStore interface {
	CreateTask(ctx context.Context, userID string, req *models.CreateTaskRequest) (*models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	ListTasksByUser(ctx context.Context, userID string) ([]*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
}
