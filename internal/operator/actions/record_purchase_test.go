package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/service"
	"github.com/greenschool/canteen-server/internal/storage/kv"
	"github.com/greenschool/canteen-server/internal/storage/ledger"
)

func newSeededStore(t *testing.T) (*ledger.Store, *kv.MemoryStore) {
	t.Helper()
	memory := kv.NewMemoryStore()
	store := ledger.NewStore(memory)
	assert.NoError(t, store.SaveStudents(context.Background(), ledger.Registry{
		"12345": {Name: "Alya Putri", Balance: 85000, Transactions: []ledger.Transaction{}},
		"67890": {Name: "Bima Pratama", Balance: 45000, Transactions: []ledger.Transaction{}},
	}))
	return store, memory
}

func rawStudents(t *testing.T, memory *kv.MemoryStore) []byte {
	t.Helper()
	raw, err := memory.Get(context.Background(), ledger.KeyStudents)
	assert.NoError(t, err)
	return raw
}

func TestRecordPurchase_DebitsBalanceAndAppendsTransaction(t *testing.T) {
	store, _ := newSeededStore(t)

	action := &RecordPurchase{NIS: "12345", ItemName: "Nasi Goreng", Price: 15000}
	err := action.Perform(context.Background(), store)
	assert.NoError(t, err)
	assert.Equal(t, int64(70000), action.NewBalance)

	registry, err := store.Students(context.Background())
	assert.NoError(t, err)
	student := registry["12345"]
	assert.Equal(t, int64(70000), student.Balance)
	assert.Len(t, student.Transactions, 1)

	trx := student.Transactions[0]
	assert.Equal(t, ledger.TransactionPurchase, trx.Type)
	assert.Equal(t, "Nasi Goreng", trx.Detail)
	assert.Equal(t, int64(-15000), trx.Amount)
	assert.NotEmpty(t, trx.Date)
	assert.False(t, trx.RecordedAt.IsZero())

	assert.Len(t, action.Events(), 1)
	assert.Equal(t, events.KindLedgerUpdated, action.Events()[0].Kind)
	assert.Equal(t, "12345", action.Events()[0].NIS)
}

func TestRecordPurchase_InsufficientBalanceLeavesStoreUntouched(t *testing.T) {
	store, memory := newSeededStore(t)
	before := rawStudents(t, memory)

	action := &RecordPurchase{NIS: "67890", ItemName: "Nasi Goreng", Price: 999999}
	err := action.Perform(context.Background(), store)
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)

	assert.Equal(t, before, rawStudents(t, memory))
	assert.Empty(t, action.Events())
}

func TestRecordPurchase_ExactBalanceIsAllowed(t *testing.T) {
	store, _ := newSeededStore(t)

	action := &RecordPurchase{NIS: "67890", ItemName: "Mie Ayam", Price: 45000}
	assert.NoError(t, action.Perform(context.Background(), store))
	assert.Equal(t, int64(0), action.NewBalance)
}

func TestRecordPurchase_MalformedInputIsDistinctFromInsufficientBalance(t *testing.T) {
	store, memory := newSeededStore(t)
	before := rawStudents(t, memory)

	cases := []*RecordPurchase{
		{NIS: "12345", ItemName: "", Price: 1000},
		{NIS: "12345", ItemName: "  ", Price: 1000},
		{NIS: "12345", ItemName: "Teh Botol", Price: 0},
		{NIS: "12345", ItemName: "Teh Botol", Price: -5},
	}
	for _, action := range cases {
		err := action.Perform(context.Background(), store)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		assert.NotErrorIs(t, err, service.ErrInsufficientBalance)
	}

	assert.Equal(t, before, rawStudents(t, memory))
}

func TestRecordPurchase_UnknownStudent(t *testing.T) {
	store, memory := newSeededStore(t)
	before := rawStudents(t, memory)

	action := &RecordPurchase{NIS: "00000", ItemName: "Nasi Goreng", Price: 1000}
	err := action.Perform(context.Background(), store)
	assert.ErrorIs(t, err, service.ErrStudentNotFound)
	assert.Equal(t, before, rawStudents(t, memory))
}

func TestRecordPurchase_NullRegistryEntryReportsUnknownStudent(t *testing.T) {
	memory := kv.NewMemoryStore()
	store := ledger.NewStore(memory)
	blob := []byte(`{"12345": null}`)
	assert.NoError(t, memory.Set(context.Background(), ledger.KeyStudents, blob))

	action := &RecordPurchase{NIS: "12345", ItemName: "Nasi Goreng", Price: 1000}
	err := action.Perform(context.Background(), store)
	assert.ErrorIs(t, err, service.ErrStudentNotFound)
}
