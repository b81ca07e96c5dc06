package events

import "sync"

// Topic names the two hub-wide signals views listen for.
type Topic string

const (
	// TopicSettingsUpdated carries the new branding payload.
	TopicSettingsUpdated Topic = "settings.updated"
	// TopicChatUpdated carries no payload; listeners refetch.
	TopicChatUpdated Topic = "chat.updated"
)

// Event is one published notification.
type Event struct {
	Topic   Topic       `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Bus is a minimal in-process publish/subscribe fan-out with typed topics.
// Delivery is non-blocking: a subscriber that stops draining its channel
// misses events rather than stalling publishers.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan Event
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe returns a channel of all published events and a cancel func.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan Event, 16)
	b.subs[id] = ch
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (b *Bus) Publish(topic Topic, payload interface{}) {
	ev := Event{Topic: topic, Payload: payload}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
