package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/greenschool/canteen-server/internal/storage/kv"
)

func newTestStore() (*Store, *kv.MemoryStore) {
	memory := kv.NewMemoryStore()
	return NewStore(memory), memory
}

func TestStudents_AbsentKeyYieldsEmptyRegistry(t *testing.T) {
	store, _ := newTestStore()

	registry, err := store.Students(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, registry)
	assert.Empty(t, registry)
}

func TestStudents_CorruptValueYieldsEmptyRegistry(t *testing.T) {
	store, memory := newTestStore()
	assert.NoError(t, memory.Set(context.Background(), KeyStudents, []byte(`{"12345": not json`)))

	registry, err := store.Students(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, registry)
}

func TestStudents_NullEntryIsDropped(t *testing.T) {
	store, memory := newTestStore()
	blob := []byte(`{"12345": null, "67890": {"name": "Bima Pratama", "balance": 45000, "totalWaste": {"organic": 0, "anorganic": 0}, "transactions": []}}`)
	assert.NoError(t, memory.Set(context.Background(), KeyStudents, blob))

	registry, err := store.Students(context.Background())
	assert.NoError(t, err)
	assert.Len(t, registry, 1)
	assert.NotContains(t, registry, "12345")
	if assert.Contains(t, registry, "67890") {
		assert.Equal(t, "Bima Pratama", registry["67890"].Name)
	}
}

func TestWasteTotals_RoundTripKeepsExactValues(t *testing.T) {
	store, _ := newTestStore()

	written := WasteTotals{
		Organic:   decimal.RequireFromString("10.5"),
		Anorganic: decimal.RequireFromString("3.25"),
	}
	assert.NoError(t, store.SaveWasteTotals(context.Background(), written))

	read, err := store.WasteTotals(context.Background())
	assert.NoError(t, err)
	assert.True(t, read.Organic.Equal(written.Organic))
	assert.True(t, read.Anorganic.Equal(written.Anorganic))
	assert.Equal(t, "10.5", read.Organic.String())
	assert.Equal(t, "3.25", read.Anorganic.String())
}

func TestWasteTotals_StoredAsPlainNumbers(t *testing.T) {
	store, memory := newTestStore()

	assert.NoError(t, store.SaveWasteTotals(context.Background(), WasteTotals{
		Organic:   decimal.RequireFromString("10.5"),
		Anorganic: decimal.RequireFromString("3.25"),
	}))

	raw, err := memory.Get(context.Background(), KeyWasteTotals)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"organic":10.5,"anorganic":3.25}`, string(raw))
}

func TestTheme_DefaultsToLight(t *testing.T) {
	store, _ := newTestStore()

	theme, err := store.Theme(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "light", theme)
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	store, memory := newTestStore()

	assert.NoError(t, store.SeedDefaults(context.Background()))
	firstPass := map[string][]byte{}
	for _, key := range []string{KeyStudents, KeyWasteTotals, KeyCanteenPrices, KeyPurchases, KeyTheme} {
		raw, err := memory.Get(context.Background(), key)
		assert.NoError(t, err)
		firstPass[key] = raw
	}

	assert.NoError(t, store.SeedDefaults(context.Background()))
	for key, before := range firstPass {
		after, err := memory.Get(context.Background(), key)
		assert.NoError(t, err)
		assert.Equal(t, before, after, "key %s changed on second seed", key)
	}
}

func TestSeedDefaults_NeverOverwritesExistingData(t *testing.T) {
	store, memory := newTestStore()
	existing := []byte(`{"99999":{"name":"Citra","balance":10000,"totalWaste":{"organic":0,"anorganic":0},"transactions":[]}}`)
	assert.NoError(t, memory.Set(context.Background(), KeyStudents, existing))

	assert.NoError(t, store.SeedDefaults(context.Background()))

	raw, err := memory.Get(context.Background(), KeyStudents)
	assert.NoError(t, err)
	assert.Equal(t, existing, raw)

	registry, err := store.Students(context.Background())
	assert.NoError(t, err)
	assert.Contains(t, registry, "99999")
	assert.NotContains(t, registry, "12345")
}
