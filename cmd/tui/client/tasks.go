package client

import (
	"net/http"
	"net/url"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

func (c *Client) ListTasks(search, status, priority string) ([]*models.Task, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if status != "" {
		query.Set("status", status)
	}
	if priority != "" {
		query.Set("priority", priority)
	}

	var tasks []*models.Task
	if err := c.do(http.MethodGet, "/api/tasks", query, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(title, description, priority string) (*models.Task, error) {
	req := models.CreateTaskRequest{
		Title:       title,
		Description: description,
		Priority:    priority,
	}

	var task models.Task
	if err := c.do(http.MethodPost, "/api/tasks", nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) SetTaskStatus(id, status string) (*models.Task, error) {
	req := models.UpdateTaskRequest{Status: &status}

	var task models.Task
	if err := c.do(http.MethodPut, "/api/tasks/"+id, nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(id string) error {
	return c.do(http.MethodDelete, "/api/tasks/"+id, nil, nil, nil)
}
