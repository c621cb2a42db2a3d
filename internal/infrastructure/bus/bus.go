// Package bus implements best-effort fan-out of cross-context notifications.
//
// Contexts (the page adapter, the popup) subscribe for the lifetime of an
// event-stream request. Publish never blocks: a subscriber whose buffer is
// full loses the event. There is no delivery guarantee; consumers re-read
// storage when they reconnect.
package bus

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/api/metrics"
	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

const subscriberBuffer = 16

// Bus fans broadcast events out to all current subscribers.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan domain.Broadcast
	nextID int
	log    zerolog.Logger
}

func New(log zerolog.Logger) *Bus {
	return &Bus{
		subs: make(map[int]chan domain.Broadcast),
		log:  log,
	}
}

// Subscribe registers a new subscriber and returns its channel plus a cancel
// function. Cancel closes the channel; callers must stop reading after
// cancelling.
func (b *Bus) Subscribe() (<-chan domain.Broadcast, func()) {
	ch := make(chan domain.Broadcast, subscriberBuffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the broadcast to every subscriber that has buffer room and
// drops it for the rest. The zero Timestamp is filled in.
func (b *Bus) Publish(bc domain.Broadcast) {
	if bc.Timestamp == 0 {
		bc.Timestamp = time.Now().UnixMilli()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- bc:
		default:
			metrics.BroadcastsDroppedTotal.Inc()
			b.log.Debug().Str("action", string(bc.Action)).Msg("broadcast dropped, subscriber buffer full")
		}
	}
}

// SubscriberCount reports the number of attached subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
