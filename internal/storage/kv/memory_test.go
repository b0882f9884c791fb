package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "students")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_SetThenGet(t *testing.T) {
	store := NewMemoryStore()

	err := store.Set(context.Background(), "theme", []byte(`"dark"`))
	assert.NoError(t, err)

	value, err := store.Get(context.Background(), "theme")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`"dark"`), value)
}

func TestMemoryStore_SetIfAbsentNeverOverwrites(t *testing.T) {
	store := NewMemoryStore()

	inserted, err := store.SetIfAbsent(context.Background(), "totalWaste", []byte(`{"organic":1}`))
	assert.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = store.SetIfAbsent(context.Background(), "totalWaste", []byte(`{"organic":2}`))
	assert.NoError(t, err)
	assert.False(t, inserted)

	value, err := store.Get(context.Background(), "totalWaste")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"organic":1}`), value)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()

	assert.NoError(t, store.Set(context.Background(), "theme", []byte(`"light"`)))

	value, _ := store.Get(context.Background(), "theme")
	value[1] = 'X'

	again, _ := store.Get(context.Background(), "theme")
	assert.Equal(t, []byte(`"light"`), again)
}
