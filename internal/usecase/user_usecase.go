package usecase

import (
	"context"

	"github.com/wichananm65/user-registry/internal/domain/entity"
)

// UserUsecase exposes application-level operations for User.
type UserUsecase interface {
	Create(ctx context.Context, input CreateUserInput) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, input SearchUsersInput) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
}

// CreateUserInput carries data required to create a user.
type CreateUserInput struct {
	Email       string       `json:"email" validate:"notblank,email"`
	FirstName   string       `json:"firstName" validate:"notblank"`
	LastName    string       `json:"lastName" validate:"notblank"`
	BirthDate   *entity.Date `json:"birthDate" validate:"required"`
	Address     *string      `json:"address"`
	PhoneNumber *string      `json:"phoneNumber" validate:"omitempty,min=10,max=15"`
}

// UpdateUserInput carries a partial update. Absent fields are left untouched;
// an explicit null clears address and phoneNumber and is ignored elsewhere.
type UpdateUserInput struct {
	Email       Optional[string]      `json:"email"`
	FirstName   Optional[string]      `json:"firstName"`
	LastName    Optional[string]      `json:"lastName"`
	BirthDate   Optional[entity.Date] `json:"birthDate"`
	Address     Optional[string]      `json:"address"`
	PhoneNumber Optional[string]      `json:"phoneNumber"`
}

// SearchUsersInput bounds a birth date search. Both ends are exclusive.
type SearchUsersInput struct {
	From string `query:"from" validate:"required,datetime=2006-01-02"`
	To   string `query:"to" validate:"required,datetime=2006-01-02"`
}
