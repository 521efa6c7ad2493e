// Package kvstore provides the string-keyed byte stores the card provider
// persists into: SQLite (default), Redis, an in-memory fake, and a sealing
// decorator that encrypts values at rest.
//
// All implementations return (nil, nil) from Get when the key is absent.
package kvstore

import (
	"context"
	"errors"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// ErrUnknownBackend is returned by config-driven constructors for an
// unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)
