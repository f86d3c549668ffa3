package store

// Event describes a single store mutation. Every mutator publishes one
// event after the write completes, so consumers (the websocket hub, the
// tests) can react without polling the store.
type Event struct {
	Entity string `json:"entity"` // "user", "hostel", "room", "booking", "payment", "notification", "session", "demo"
	Action string `json:"action"` // "created", "updated", "deleted", "reset"
	ID     string `json:"id,omitempty"`
	UserID string `json:"user_id,omitempty"` // recipient, set on notification events
}

// Subscriber receives store events. Implementations must not call back
// into the store's mutators from OnStoreEvent.
type Subscriber interface {
	OnStoreEvent(event Event)
}

// Subscribe registers a subscriber for all future store events.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// publish must be called without the store lock held.
func (s *Store) publish(event Event) {
	s.mu.RLock()
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, sub := range subs {
		sub.OnStoreEvent(event)
	}
}
