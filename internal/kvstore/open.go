package kvstore

import (
	"context"
	"fmt"
)

// Options selects and configures a backend for New.
type Options struct {
	Backend      string
	DatabasePath string
	RedisAddr    string
	RedisPrefix  string
	// Passphrase, when set, wraps the backend in a SealedStore.
	Passphrase string
}

// New builds the configured store. The returned close function releases the
// backend's connections and is never nil.
func New(ctx context.Context, opts Options) (Store, func() error, error) {
	var (
		store   Store
		closeFn = func() error { return nil }
	)

	switch opts.Backend {
	case "", BackendSQLite:
		db, err := Open(ctx, opts.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		store, closeFn = NewSQLiteStore(db), db.Close
	case BackendMemory:
		store = NewMemoryStore()
	case BackendRedis:
		client := NewRedisClient(opts.RedisAddr)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", opts.RedisAddr, err)
		}
		prefix := opts.RedisPrefix
		if prefix == "" {
			prefix = DefaultRedisPrefix
		}
		store, closeFn = NewRedisStore(client, prefix), client.Close
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}

	if opts.Passphrase != "" {
		store = NewSealedStore(store, opts.Passphrase)
	}
	return store, closeFn, nil
}
