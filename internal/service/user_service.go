package service

import (
	"context"
	"fmt"

	"practice-service/internal/models"
	"practice-service/internal/repository"
)

type UserService struct {
	Users    *repository.UserRepository
	Progress ProgressStore
}

func NewUserService(users *repository.UserRepository, progress ProgressStore) *UserService {
	return &UserService{Users: users, Progress: progress}
}

// Login creates the user on first sight of a verified identity and
// refreshes display attributes on every later login.
func (s *UserService) Login(ctx context.Context, id, email, displayName string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	user := &models.User{ID: id, Email: email, DisplayName: displayName}
	if err := s.Users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	stored, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if stored == nil {
		return nil, ErrUserNotFound
	}
	return stored, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteAccount removes the user and every progress record they own,
// favorites included.
func (s *UserService) DeleteAccount(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	deleted, err := s.Users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}
	return s.Progress.DeleteAllForUser(ctx, id)
}
