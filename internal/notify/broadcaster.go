package notify

import (
	"sync"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/logging"
)

const defaultSubscriberBuffer = 16

// Broadcaster fans bill-created events out to subscribers. Publish never
// blocks and never fails: a subscriber whose buffer is full simply misses
// the event. A bill is legally finalized once persisted, so nothing on this
// path may delay or undo it.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[int]chan domain.BillCreatedEvent
	nextId int

	logger  logging.Logger
	bufSize int
}

func NewBroadcaster(logger logging.Logger) *Broadcaster {
	return &Broadcaster{
		subs:    make(map[int]chan domain.BillCreatedEvent),
		logger:  logger,
		bufSize: defaultSubscriberBuffer,
	}
}

// Subscribe registers a new listener and returns its id and channel.
// The channel is closed on Unsubscribe.
func (b *Broadcaster) Subscribe() (int, <-chan domain.BillCreatedEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextId
	b.nextId++

	ch := make(chan domain.BillCreatedEvent, b.bufSize)
	b.subs[id] = ch

	return id, ch
}

func (b *Broadcaster) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subs[id]
	if !ok {
		return
	}

	delete(b.subs, id)
	close(ch)
}

func (b *Broadcaster) Publish(event domain.BillCreatedEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn("dropping event for slow subscriber", "subscriber", id, "transaction", event.TransactionId)
		}
	}
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
