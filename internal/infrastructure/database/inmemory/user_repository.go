package inmemory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/wichananm65/user-registry/internal/domain/entity"
	"github.com/wichananm65/user-registry/internal/domain/repository"
)

// UserRepository is an in-memory implementation of UserRepository.
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*entity.User
	closed bool
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID: 1,
		store:  make(map[int64]*entity.User),
	}
}

func (r *UserRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, repository.ErrStoreClosed
	}

	userCopy := user.Clone()
	if userCopy.ID == 0 {
		userCopy.ID = r.nextID
		r.nextID++
	} else if userCopy.ID >= r.nextID {
		// keep ids unique if a caller saves under an id the counter has not reached yet
		r.nextID = userCopy.ID + 1
	}
	r.store[userCopy.ID] = userCopy

	return userCopy.Clone(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, repository.ErrStoreClosed
	}

	user, ok := r.store[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user.Clone(), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, repository.ErrStoreClosed
	}

	result := make([]*entity.User, 0, len(r.store))
	for _, user := range r.store {
		result = append(result, user.Clone())
	}
	slices.SortFunc(result, func(a, b *entity.User) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return repository.ErrStoreClosed
	}
	delete(r.store, id)
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return 0, repository.ErrStoreClosed
	}
	return len(r.store), nil
}

// Close drops all records. Calls made after Close fail with ErrStoreClosed.
func (r *UserRepository) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.store = nil
	return nil
}
