package events

import (
	"sync"
)

const subscriberBuffer = 16

// Bus is an in-process publish/subscribe channel. Publishing never blocks: a
// subscriber whose buffer is full misses the event and catches up through the
// re-poll backstop.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscription is one subscriber's view of the bus. Close it when done.
type Subscription struct {
	C      <-chan Event
	cancel func()
}

func (s *Subscription) Close() {
	s.cancel()
}

func (b *Bus) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	return &Subscription{
		C: ch,
		cancel: func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if existing, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(existing)
			}
		},
	}
}

func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
