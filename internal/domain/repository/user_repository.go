package repository

import (
	"context"
	"errors"

	"github.com/wichananm65/user-registry/internal/domain/entity"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrStoreClosed  = errors.New("user store closed")
)

// UserRepository defines persistence behavior for the User entity.
type UserRepository interface {
	// Save inserts a user with ID 0 under a freshly assigned id, or overwrites the entry at user.ID.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)
	// FindByID returns ErrUserNotFound when no record exists.
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	// DeleteByID is a no-op for unknown ids.
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
