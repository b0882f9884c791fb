package operator

import (
	"context"

	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/operator/actions"
	"github.com/greenschool/canteen-server/internal/storage"
)

// Operator is the worker that processes mutations from the queue.
type Operator struct {
	storage *storage.Storage
	bus     *events.Bus
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, bus *events.Bus, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		bus:     bus,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := item.action.Perform(item.ctx, o.storage.Ledger)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	// Sync signal goes out only after the mutation is persisted.
	if source, ok := item.action.(actions.EventSource); ok {
		for _, event := range source.Events() {
			o.bus.Publish(event)
		}
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
