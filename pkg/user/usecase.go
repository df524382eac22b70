package user

import (
	"context"
	"strings"

	"github.com/formforge/backend/pkg/apperr"
)

// Repository is the record-store seam for users.
type Repository interface {
	// Create persists u and returns it with the store-assigned ID.
	Create(ctx context.Context, u User) (User, error)
	// List returns all users in id order.
	List(ctx context.Context) ([]User, error)
}

// UseCase covers the user operations exposed over HTTP.
type UseCase interface {
	Create(ctx context.Context, username, email string) (User, error)
	List(ctx context.Context) ([]User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, username, email string) (User, error) {
	if strings.TrimSpace(username) == "" {
		return User{}, apperr.Validation("Missing required parameter: username")
	}
	if strings.TrimSpace(email) == "" {
		return User{}, apperr.Validation("Missing required parameter: email")
	}
	u, err := s.repo.Create(ctx, User{Username: username, Email: email})
	if err != nil {
		return User{}, apperr.Internal("failed to save user", err)
	}
	return u, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list users", err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}
