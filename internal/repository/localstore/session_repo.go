package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/kvstore"
	"emplealocal-backend/pkg/logger"
)

type sessionRepo struct {
	store kvstore.Store
}

func NewSessionRepository(store kvstore.Store) domain.SessionRepository {
	return &sessionRepo{store: store}
}

func (r *sessionRepo) Current(ctx context.Context) (*domain.User, error) {
	raw, err := r.store.Get(ctx, keyCurrentUser)
	if errors.Is(err, kvstore.ErrNoKey) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("read session failed", "error", err)
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreFailure, keyCurrentUser, err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logger.Log.Error("session record is corrupted", "error", err)
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStoreFailure, keyCurrentUser, err)
	}
	return &user, nil
}

func (r *sessionRepo) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStoreFailure, keyCurrentUser, err)
	}
	if err := r.store.Set(ctx, keyCurrentUser, string(raw)); err != nil {
		logger.Log.Error("write session failed", "error", err)
		return fmt.Errorf("%w: write %s: %v", domain.ErrStoreFailure, keyCurrentUser, err)
	}
	return nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyCurrentUser); err != nil {
		logger.Log.Error("clear session failed", "error", err)
		return fmt.Errorf("%w: delete %s: %v", domain.ErrStoreFailure, keyCurrentUser, err)
	}
	return nil
}

func (r *sessionRepo) Authenticated(ctx context.Context) (bool, error) {
	_, err := r.Current(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
