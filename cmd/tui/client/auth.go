package client

import (
	"net/http"

	"github.com/taskmasterhq/taskmaster/internal/models/user"
)

func (c *Client) Register(email, password, name string) (*user.AuthResponse, error) {
	req := user.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     name,
	}

	var resp user.AuthResponse
	if err := c.do(http.MethodPost, "/api/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(email, password string) (*user.AuthResponse, error) {
	req := user.LoginRequest{
		Email:    email,
		Password: password,
	}

	var resp user.AuthResponse
	if err := c.do(http.MethodPost, "/api/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetProfile() (*user.ProfileResponse, error) {
	var resp user.ProfileResponse
	if err := c.do(http.MethodGet, "/api/user/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateProfile(name string) (*user.ProfileResponse, error) {
	req := user.UpdateProfileRequest{Name: name}

	var resp user.ProfileResponse
	if err := c.do(http.MethodPut, "/api/user/profile", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
