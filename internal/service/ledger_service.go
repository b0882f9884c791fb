package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/greenschool/canteen-server/internal/storage"
)

// LedgerService answers read queries over the student registry.
type LedgerService struct {
	storage *storage.Storage
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage) *LedgerService {
	return &LedgerService{storage: store}
}

// LookupStudent resolves a NIS to its registry entry.
func (s *LedgerService) LookupStudent(ctx context.Context, nis string) (*Student, error) {
	registry, err := s.storage.Ledger.Students(ctx)
	if err != nil {
		return nil, err
	}

	row, ok := registry[nis]
	if !ok {
		return nil, fmt.Errorf("nis %q: %w", nis, ErrStudentNotFound)
	}

	return studentFromStorage(nis, row), nil
}

// ListStudents returns every registry entry sorted by NIS. The registry map
// itself has no ordering, so the sort keeps the admin table deterministic.
func (s *LedgerService) ListStudents(ctx context.Context) ([]Student, error) {
	registry, err := s.storage.Ledger.Students(ctx)
	if err != nil {
		return nil, err
	}

	nisKeys := make([]string, 0, len(registry))
	for nis := range registry {
		nisKeys = append(nisKeys, nis)
	}
	sort.Strings(nisKeys)

	students := make([]Student, len(nisKeys))
	for i, nis := range nisKeys {
		students[i] = *studentFromStorage(nis, registry[nis])
	}
	return students, nil
}

// AllTransactions flattens every student's transactions into one feed,
// newest first. Entries with equal or missing timestamps keep their encounter
// order (students in NIS order, each student's list in insertion order), so
// the result is deterministic for a fixed registry.
func (s *LedgerService) AllTransactions(ctx context.Context) ([]AggregateTransaction, error) {
	students, err := s.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	var feed []AggregateTransaction
	for _, student := range students {
		for _, trx := range student.Transactions {
			feed = append(feed, AggregateTransaction{
				NIS:         student.NIS,
				Name:        student.Name,
				Transaction: trx,
			})
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].RecordedAt.After(feed[j].RecordedAt)
	})

	return feed, nil
}
