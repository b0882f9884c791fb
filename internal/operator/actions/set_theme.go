package actions

import (
	"context"
	"fmt"

	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/service"
	"github.com/greenschool/canteen-server/internal/storage/ledger"
)

// SetTheme persists the UI theme shared by all open views.
type SetTheme struct {
	Theme string

	emitted []events.Event
}

func (a *SetTheme) Perform(ctx context.Context, store *ledger.Store) error {
	if a.Theme != "dark" && a.Theme != "light" {
		return fmt.Errorf("theme %q: %w", a.Theme, service.ErrInvalidInput)
	}

	if err := store.SaveTheme(ctx, a.Theme); err != nil {
		return err
	}

	a.emitted = append(a.emitted, events.New(events.KindThemeUpdated))
	return nil
}

func (a *SetTheme) Events() []events.Event {
	return a.emitted
}
