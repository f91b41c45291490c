package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskmasterhq/taskmaster/internal/models"
	"github.com/taskmasterhq/taskmaster/internal/models/user"
)

// MemoryUserStorage is a map-backed UserStore used in tests and local
// development without Postgres.
type MemoryUserStorage struct {
	mu      sync.RWMutex
	byID    map[string]*user.User
	byEmail map[string]string
}

func NewMemoryUserStorage() *MemoryUserStorage {
	return &MemoryUserStorage{
		byID:    make(map[string]*user.User),
		byEmail: make(map[string]string),
	}
}

func (s *MemoryUserStorage) CreateUser(ctx context.Context, email, name, passwordHash string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, ErrDuplicateEmail
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.byID[u.ID] = u
	s.byEmail[email] = u.ID

	copied := *u
	return &copied, nil
}

func (s *MemoryUserStorage) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.byEmail[email]
	if !exists {
		return nil, nil
	}

	copied := *s.byID[id]
	return &copied, nil
}

func (s *MemoryUserStorage) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.byID[id]
	if !exists {
		return nil, nil
	}

	copied := *u
	return &copied, nil
}

func (s *MemoryUserStorage) UpdateUserName(ctx context.Context, id, name string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.byID[id]
	if !exists {
		return nil, nil
	}

	u.Name = name
	u.UpdatedAt = time.Now()

	copied := *u
	return &copied, nil
}

func (s *MemoryUserStorage) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.byID[id]
	if !exists {
		return nil
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

// MemoryTaskStorage is a map-backed TaskStore. Listing preserves reverse
// insertion order, matching the Postgres created_at DESC ordering.
type MemoryTaskStorage struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
	order map[string]int
	next  int
}

func NewMemoryTaskStorage() *MemoryTaskStorage {
	return &MemoryTaskStorage{
		tasks: make(map[string]*models.Task),
		order: make(map[string]int),
	}
}

func (s *MemoryTaskStorage) CreateTask(ctx context.Context, userID string, req *models.CreateTaskRequest) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusTodo,
		Priority:    req.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks[task.ID] = task
	s.order[task.ID] = s.next
	s.next++

	copied := *task
	return &copied, nil
}

func (s *MemoryTaskStorage) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return nil, nil
	}

	copied := *task
	return &copied, nil
}

func (s *MemoryTaskStorage) ListTasksByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*models.Task
	for _, task := range s.tasks {
		if task.UserID == userID {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return s.order[tasks[i].ID] > s.order[tasks[j].ID]
	})

	return tasks, nil
}

func (s *MemoryTaskStorage) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.tasks[task.ID]
	if !exists {
		return nil, nil
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Status = task.Status
	existing.Priority = task.Priority
	existing.UpdatedAt = time.Now()

	copied := *existing
	return &copied, nil
}

func (s *MemoryTaskStorage) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[id]; !exists {
		return false, nil
	}

	delete(s.tasks, id)
	delete(s.order, id)
	return true, nil
}
