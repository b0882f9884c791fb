package operator

import (
	"context"
	"sync"

	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/operator/actions"
	"github.com/greenschool/canteen-server/internal/storage"
)

// OperatorDelegator manages the queue, starts/stops the Operator, and
// enqueues items. Every mutation is a read-modify-write over a whole stored
// blob, so exactly one worker runs: that serializes in-process writers.
// Two separate processes against the same database file can still race each
// other, exactly as two browser tabs could; that limitation is accepted, not
// locked away.
type OperatorDelegator struct {
	storage  *storage.Storage
	bus      *events.Bus
	queue    chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage, bus *events.Bus) *OperatorDelegator {
	return &OperatorDelegator{
		storage: s,
		bus:     bus,
		queue:   make(chan ActionItem, 1000),
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.storage, d.bus, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queue <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
