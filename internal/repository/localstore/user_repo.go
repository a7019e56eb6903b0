package localstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/kvstore"
)

type userRepo struct {
	store kvstore.Store
}

func NewUserRepository(store kvstore.Store) domain.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	return readCollection[domain.User](ctx, r.store, keyUsers)
}

func (r *userRepo) ReplaceAll(ctx context.Context, users []domain.User) error {
	return writeCollection(ctx, r.store, keyUsers, users)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	// ID and CreatedAt are never taken from the input.
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	users = append(users, *user)
	return r.ReplaceAll(ctx, users)
}

func (r *userRepo) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
