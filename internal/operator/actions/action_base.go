package actions

import (
	"context"

	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/storage/ledger"
)

// IAction is one ledger mutation. Perform loads what it needs from the store,
// validates, and persists; on any precondition failure it returns before
// writing so the stored state is untouched.
type IAction interface {
	Perform(ctx context.Context, store *ledger.Store) error
}

// EventSource is implemented by actions that emit sync-signal events. The
// operator publishes them only after Perform succeeds.
type EventSource interface {
	Events() []events.Event
}
