package cards

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/cardkeeper/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersister_CoalescesPendingSnapshots(t *testing.T) {
	store := kvstore.NewMemoryStore()
	p := newTestProvider(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := p.Add(ctx, visa())
		require.NoError(t, err)
	}

	runProvider(t, p)
	flush(t, p)

	assert.Equal(t, 1, store.Sets(), "queued snapshots collapse into the latest one")
	assert.Len(t, storedCards(t, store), 5)
}

func TestPersister_FinalWriteOnShutdown(t *testing.T) {
	store := kvstore.NewMemoryStore()
	p := newTestProvider(store)
	ctx := context.Background()

	_, err := p.Add(ctx, visa())
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	cancel()
	require.NoError(t, p.Run(runCtx))

	assert.Len(t, storedCards(t, store), 1)
}

func TestPersister_FlushAfterRunReturned(t *testing.T) {
	store := kvstore.NewMemoryStore()
	p := newTestProvider(store)
	ctx := context.Background()

	runCtx, cancel := context.WithCancel(ctx)
	cancel()
	require.NoError(t, p.Run(runCtx))

	_, err := p.Add(ctx, visa())
	require.NoError(t, err)
	flush(t, p)

	assert.Len(t, storedCards(t, store), 1)
}

func TestPersister_FlushHonoursContext(t *testing.T) {
	p := newTestProvider(kvstore.NewMemoryStore())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, p.Flush(ctx), context.DeadlineExceeded)
}

func TestPersister_WriteTimeout(t *testing.T) {
	logger, logs := newTestLogger()
	store := kvstore.NewMemoryStore()
	block := make(chan struct{})
	slow := slowStore{Store: store, block: block}
	p := newTestProvider(slow, WithLogger(logger), WithPersistTimeout(10*time.Millisecond))
	runProvider(t, p)
	defer close(block)

	_, err := p.Add(context.Background(), visa())
	require.NoError(t, err)
	flush(t, p)

	assert.Contains(t, logs.String(), "persist cards failed")
	assert.Contains(t, logs.String(), context.DeadlineExceeded.Error())
}

// slowStore blocks Set until block is closed or ctx is done.
type slowStore struct {
	Store
	block chan struct{}
}

func (s slowStore) Set(ctx context.Context, key string, value []byte) error {
	select {
	case <-s.block:
		return s.Store.Set(ctx, key, value)
	case <-ctx.Done():
		return ctx.Err()
	}
}
