package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskmasterhq/taskmaster/internal/database"
	"github.com/taskmasterhq/taskmaster/internal/models"
)

type PostgresTaskStorage struct {
	db *database.DBManager
}

func NewPostgresTaskStorage(db *database.DBManager) *PostgresTaskStorage {
	return &PostgresTaskStorage{db: db}
}

func (s *PostgresTaskStorage) CreateTask(ctx context.Context, userID string, req *models.CreateTaskRequest) (*models.Task, error) {
	taskID := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO tasks (id, user_id, title, description, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, title, description, status, priority, created_at, updated_at
	`

	var task models.Task
	err := s.db.Write().QueryRow(ctx, query,
		taskID,
		userID,
		req.Title,
		req.Description,
		models.StatusTodo,
		req.Priority,
		now,
		now,
	).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

func (s *PostgresTaskStorage) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, status, priority, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	var task models.Task
	err := s.db.Read().QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

func (s *PostgresTaskStorage) ListTasksByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, status, priority, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Read().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Priority,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tasks, nil
}

func (s *PostgresTaskStorage) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, priority = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, user_id, title, description, status, priority, created_at, updated_at
	`

	var updated models.Task
	err := s.db.Write().QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.ID,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Title,
		&updated.Description,
		&updated.Status,
		&updated.Priority,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &updated, nil
}

func (s *PostgresTaskStorage) DeleteTask(ctx context.Context, id string) (bool, error) {
	tag, err := s.db.Write().Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
