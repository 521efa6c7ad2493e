package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Basics(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)

	in := []byte("value")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'X'

	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), v, "stored value must not alias the caller's slice")
	assert.Equal(t, 1, m.Sets())

	all, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"k": []byte("value")}, all)

	require.NoError(t, m.Delete(ctx, "k"))
	assert.Empty(t, m.Snapshot())

	require.NoError(t, m.Set(ctx, "a", nil))
	require.NoError(t, m.Clear(ctx))
	assert.Empty(t, m.Snapshot())
}

func TestMemoryStore_InjectedFailures(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	boom := errors.New("boom")

	m.FailSet(boom)
	require.ErrorIs(t, m.Set(ctx, "k", []byte("v")), boom)
	assert.Equal(t, 0, m.Sets())

	m.FailSet(nil)
	require.NoError(t, m.Set(ctx, "k", []byte("v")))

	m.FailGet(boom)
	_, err := m.Get(ctx, "k")
	require.ErrorIs(t, err, boom)
}

func TestMemoryStore_SetHonoursContext(t *testing.T) {
	m := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, m.Set(ctx, "k", []byte("v")), context.Canceled)
}

func TestMemoryStore_OnWrite(t *testing.T) {
	m := NewMemoryStore()
	var got []string
	m.OnWrite(func(key string, value []byte) { got = append(got, key+"="+string(value)) })

	require.NoError(t, m.Set(context.Background(), "k", []byte("v")))
	assert.Equal(t, []string{"k=v"}, got)
}
