package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
)

type userRepositoryImpl struct {
	store *Store
}

func NewUserRepository(store *Store) user.UserRepository {
	return &userRepositoryImpl{store: store}
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]user.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users = append(r.store.users, cloneUser(newUser))
	return cloneUser(newUser), nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.users {
		if r.store.users[i].ID == u.ID {
			r.store.users[i] = cloneUser(u)
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.users {
		if r.store.users[i].ID == id {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if excludeID != nil && u.ID == *excludeID {
			continue
		}
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
