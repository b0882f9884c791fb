// Package events carries the cross-view sync signal: every mutation another
// open view may care about is published on a process-wide bus, and open views
// observe it through the event stream endpoint.
package events

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Kind identifies what part of the shared state changed.
type Kind string

const (
	// KindWasteUpdated fires after the admin overwrites the waste totals.
	KindWasteUpdated Kind = "waste.updated"
	// KindLedgerUpdated fires after a purchase or top-up changes a student.
	KindLedgerUpdated Kind = "ledger.updated"
	// KindThemeUpdated fires when the stored UI theme changes.
	KindThemeUpdated Kind = "theme.updated"
)

// Event is the lightweight notification broadcast to every subscriber.
// Subscribers re-read the store; the event carries no state of its own.
type Event struct {
	ID         uuid.UUID `json:"id" doc:"Unique event ID"`
	Kind       Kind      `json:"kind" doc:"What changed: waste.updated, ledger.updated or theme.updated"`
	NIS        string    `json:"nis,omitempty" doc:"Affected student for ledger.updated events"`
	OccurredAt time.Time `json:"occurredAt" doc:"When the mutation was recorded"`
}

func New(kind Kind) Event {
	return Event{
		ID:         uuid.Must(uuid.NewV4()),
		Kind:       kind,
		OccurredAt: time.Now(),
	}
}

func NewForStudent(kind Kind, nis string) Event {
	event := New(kind)
	event.NIS = nis
	return event
}
