// Package localstore implements the entity repositories on top of a
// key-value string store. Each collection lives under one key as a JSON
// array in insertion order; every mutation is a whole-collection
// read-modify-write. Collections stay small, and the model is isolated
// behind the domain interfaces so it could be swapped for indexed storage
// without touching the flows.
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

// Storage keys. The emplealocal_ prefix is part of the persisted layout
// and must not change between releases.
const (
	keyUsers        = "emplealocal_users"
	keyJobs         = "emplealocal_jobs"
	keyApplications = "emplealocal_applications"
	keyCurrentUser  = "emplealocal_currentUser"
)

func readCollection[T any](ctx context.Context, store kvstore.Store, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNoKey) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Error("read collection failed", "key", key, "error", err)
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreFailure, key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Log.Error("collection is corrupted", "key", key, "error", err)
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStoreFailure, key, err)
	}
	return items, nil
}

func writeCollection[T any](ctx context.Context, store kvstore.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		logger.Log.Error("encode collection failed", "key", key, "error", err)
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStoreFailure, key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		logger.Log.Error("write collection failed", "key", key, "error", err)
		return fmt.Errorf("%w: write %s: %v", domain.ErrStoreFailure, key, err)
	}
	return nil
}

// Reset drops all four storage keys. Used by tests and maintenance tooling.
func Reset(ctx context.Context, store kvstore.Store) error {
	for _, key := range []string{keyUsers, keyJobs, keyApplications, keyCurrentUser} {
		if err := store.Delete(ctx, key); err != nil {
			return fmt.Errorf("%w: clear %s: %v", domain.ErrStoreFailure, key, err)
		}
	}
	return nil
}
