package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/greenschool/canteen-server/internal/storage/ledger"
)

// WastePoller is the correctness backstop for the sync signal. On a fixed
// short interval it re-reads the stored waste totals and publishes
// waste.updated when they differ from the last value it saw. Views that miss
// the direct broadcast (for example a second server process against the same
// database file) converge through this path.
type WastePoller struct {
	store    *ledger.Store
	bus      *Bus
	interval time.Duration
	cron     *cron.Cron

	mu       sync.Mutex
	lastSeen *ledger.WasteTotals
}

func NewWastePoller(store *ledger.Store, bus *Bus, interval time.Duration) *WastePoller {
	return &WastePoller{
		store:    store,
		bus:      bus,
		interval: interval,
		cron:     cron.New(),
	}
}

func (p *WastePoller) Start() error {
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(spec, p.tick); err != nil {
		return fmt.Errorf("scheduling waste poll: %w", err)
	}
	p.cron.Start()
	return nil
}

func (p *WastePoller) Stop() {
	<-p.cron.Stop().Done()
}

func (p *WastePoller) tick() {
	totals, err := p.store.WasteTotals(context.Background())
	if err != nil {
		log.WithError(err).Warn("WastePoller.tick.read failed")
		return
	}

	p.mu.Lock()
	changed := p.lastSeen != nil &&
		(!p.lastSeen.Organic.Equal(totals.Organic) || !p.lastSeen.Anorganic.Equal(totals.Anorganic))
	p.lastSeen = &totals
	p.mu.Unlock()

	if changed {
		p.bus.Publish(New(KindWasteUpdated))
	}
}
