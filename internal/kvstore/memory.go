package kvstore

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore is a map-backed Store. Failures can be injected with FailGet
// and FailSet; Sets counts successful writes.
type MemoryStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setErr  error
	sets    int
	onWrite func(key string, value []byte)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// FailGet makes every Get return err; nil restores normal behaviour.
func (m *MemoryStore) FailGet(err error) {
	m.mu.Lock()
	m.getErr = err
	m.mu.Unlock()
}

// FailSet makes every Set return err; nil restores normal behaviour.
func (m *MemoryStore) FailSet(err error) {
	m.mu.Lock()
	m.setErr = err
	m.mu.Unlock()
}

// OnWrite registers fn to be called (outside the lock) after each
// successful Set.
func (m *MemoryStore) OnWrite(fn func(key string, value []byte)) {
	m.mu.Lock()
	m.onWrite = fn
	m.mu.Unlock()
}

// Sets returns the number of successful Set calls.
func (m *MemoryStore) Sets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, v...), nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	if m.setErr != nil {
		err := m.setErr
		m.mu.Unlock()
		return err
	}
	m.data[key] = append([]byte{}, value...)
	m.sets++
	fn := m.onWrite
	m.mu.Unlock()

	if fn != nil {
		fn(key, value)
	}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) List(ctx context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		out[k] = append([]byte{}, v...)
	}
	return out, nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	clear(m.data)
	m.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the stored data.
func (m *MemoryStore) Snapshot() map[string][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.data)
}
