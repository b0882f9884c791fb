package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"

	"github.com/greenschool/canteen-server/internal/storage/kv"
)

// Store is the typed adapter over the key-value medium. Reads decode with a
// validating step: a missing key yields the empty default, and a corrupt blob
// is logged and also recovered as the empty default, never surfaced to the
// caller. Writes marshal the whole blob back under its key.
type Store struct {
	kv kv.Store
}

func NewStore(kvStore kv.Store) *Store {
	return &Store{kv: kvStore}
}

// load fetches and decodes one key. It reports false when the caller should
// fall back to the empty default (absent or corrupt value).
func (s *Store) load(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.WithError(err).WithField("key", key).Warn("LedgerStore.load.corrupt value, using empty default")
		log.Debug(spew.Sdump(string(raw)))
		return false, nil
	}

	return true, nil
}

func (s *Store) save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, raw)
}

// Students returns the full registry. Absent or corrupt data yields an empty
// registry.
func (s *Store) Students(ctx context.Context) (Registry, error) {
	registry := Registry{}
	ok, err := s.load(ctx, KeyStudents, &registry)
	if err != nil {
		return nil, err
	}
	if !ok || registry == nil {
		return Registry{}, nil
	}
	// A null entry decodes cleanly into a nil *Student; treat it like any
	// other corrupt value so callers never see a nil student.
	for nis, student := range registry {
		if student == nil {
			log.WithField("nis", nis).Warn("LedgerStore.Students.null entry, dropping")
			delete(registry, nis)
		}
	}
	return registry, nil
}

// SaveStudents persists the whole registry under the students key.
func (s *Store) SaveStudents(ctx context.Context, registry Registry) error {
	return s.save(ctx, KeyStudents, registry)
}

func (s *Store) WasteTotals(ctx context.Context) (WasteTotals, error) {
	var totals WasteTotals
	if _, err := s.load(ctx, KeyWasteTotals, &totals); err != nil {
		return WasteTotals{}, err
	}
	return totals, nil
}

func (s *Store) SaveWasteTotals(ctx context.Context, totals WasteTotals) error {
	return s.save(ctx, KeyWasteTotals, totals)
}

func (s *Store) Prices(ctx context.Context) ([]PriceEntry, error) {
	var prices []PriceEntry
	if _, err := s.load(ctx, KeyCanteenPrices, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// Theme returns the stored UI theme, defaulting to "light".
func (s *Store) Theme(ctx context.Context) (string, error) {
	var theme string
	ok, err := s.load(ctx, KeyTheme, &theme)
	if err != nil {
		return "", err
	}
	if !ok || theme == "" {
		return "light", nil
	}
	return theme, nil
}

func (s *Store) SaveTheme(ctx context.Context, theme string) error {
	return s.save(ctx, KeyTheme, theme)
}
