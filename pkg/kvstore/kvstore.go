// Package kvstore provides the persistent key-value string store the
// repository layer sits on. Values are opaque strings (JSON documents in
// practice); keys are short, fixed collection names.
package kvstore

import (
	"context"
	"errors"
)

// ErrNoKey is returned by Get when the key has never been written
// or has been deleted.
var ErrNoKey = errors.New("kvstore: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
