package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskmasterhq/taskmaster/internal/apperr"
	"github.com/taskmasterhq/taskmaster/internal/auth"
	"github.com/taskmasterhq/taskmaster/internal/logger"
	"github.com/taskmasterhq/taskmaster/internal/models/user"
	"github.com/taskmasterhq/taskmaster/internal/storage"
	"github.com/taskmasterhq/taskmaster/internal/validation"
)

// Login failures for unknown emails and wrong passwords share one message
// so a caller cannot probe which emails are registered.
const badCredentialsMsg = "invalid email or password"

type UserService struct {
	users      storage.UserStore
	jwtManager *auth.JWTManager
	log        *logger.Logger
}

func NewUserService(users storage.UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		users:      users,
		jwtManager: jwtManager,
		log:        logger.New("user-service"),
	}
}

func (s *UserService) Register(ctx context.Context, req *user.RegisterRequest) (*user.AuthResponse, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	if err := validation.ValidateName(req.Name); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	existing, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("email is already registered")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.users.CreateUser(ctx, req.Email, req.Name, passwordHash)
	if err != nil {
		// The store enforces uniqueness too; a concurrent register can slip
		// past the lookup above.
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, apperr.Conflict("email is already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(created)
}

func (s *UserService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	u, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperr.Unauthenticated(badCredentialsMsg)
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, apperr.Unauthenticated(badCredentialsMsg)
	}

	return s.issueToken(u)
}

func (s *UserService) issueToken(u *user.User) (*user.AuthResponse, error) {
	token, expiresAt, err := s.jwtManager.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &user.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *u,
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *user.UpdateProfileRequest) (*user.User, error) {
	if err := validation.ValidateName(req.Name); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	u, err := s.users.UpdateUserName(ctx, userID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	return u, nil
}

// ChangePassword re-verifies the current password before accepting a new
// one. Tokens issued before the change remain valid until expiry.
func (s *UserService) ChangePassword(ctx context.Context, userID string, req *user.ChangePasswordRequest) error {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return apperr.NotFound("user not found")
	}

	if !auth.CheckPassword(u.PasswordHash, req.CurrentPassword) {
		return apperr.Unauthenticated("current password is incorrect")
	}

	if err := validation.ValidatePassword(req.NewPassword); err != nil {
		return apperr.Validation(err.Error())
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdateUserPassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
