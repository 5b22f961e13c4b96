package realtime

import (
	"log"
	"sync"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"
)

const defaultBuffer = 16

// Hub is an in-process change feed keyed by topic. Publishers never block:
// a subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Subscription]struct{}
	buffer int
}

var _ interfaces.IChangeFeed = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[*Subscription]struct{}), buffer: defaultBuffer}
}

// Subscription receives events for one topic until Close is called.
type Subscription struct {
	Topic string

	ch   chan entities.ChangeEvent
	hub  *Hub
	once sync.Once
}

// C is closed after Close.
func (s *Subscription) C() <-chan entities.ChangeEvent {
	return s.ch
}

// Close releases the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{Topic: topic, ch: make(chan entities.ChangeEvent, h.buffer), hub: h}
	h.mu.Lock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.topics[topic] = subs
	}
	subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Publish(topic string, event entities.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.topics[topic] {
		select {
		case sub.ch <- event:
		default:
			log.Printf("[realtime][hub] dropped event topic=%s type=%s", topic, event.Type)
		}
	}
}

// Subscribers reports how many live subscriptions a topic has.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := h.topics[sub.Topic]
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.topics, sub.Topic)
	}
}
