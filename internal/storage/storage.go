package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/greenschool/canteen-server/internal/config"
	"github.com/greenschool/canteen-server/internal/storage/kv"
	"github.com/greenschool/canteen-server/internal/storage/ledger"
	"github.com/greenschool/canteen-server/migrations"
)

// Storage bundles the data layer: the raw key-value medium and the typed
// ledger adapter over it.
type Storage struct {
	DB     *sql.DB
	KV     kv.Store
	Ledger *ledger.Store
}

// NewStorage opens the local SQLite database, brings its schema up to date
// from the embedded migrations, and wires the ledger adapter.
func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("sqlite", env.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	kvStore := kv.NewSQLStore(db)
	return &Storage{
		DB:     db,
		KV:     kvStore,
		Ledger: ledger.NewStore(kvStore),
	}, nil
}

// NewStorageWithKV builds a Storage over an existing key-value store. Used by
// tests with the in-memory store.
func NewStorageWithKV(kvStore kv.Store) *Storage {
	return &Storage{
		KV:     kvStore,
		Ledger: ledger.NewStore(kvStore),
	}
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func migrateUp(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	dbDriver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
