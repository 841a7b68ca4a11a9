package events

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// AllEventTypes subscribes a handler to every change type
const AllEventTypes = "*"

// InMemoryEventStore keeps an ordered log of catalog changes. Subscribers
// run synchronously inside Append, after the store lock is released, so a
// handler observes the catalog state that produced the change.
type InMemoryEventStore struct {
	streams     map[string][]Change
	subscribers map[string][]Handler
	log         []Change
	mutex       sync.RWMutex
	now         func() time.Time
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams:     make(map[string][]Change),
		subscribers: make(map[string][]Handler),
		now:         time.Now,
	}
}

var _ Store = (*InMemoryEventStore)(nil)

// Append records a change on the stream and notifies subscribers. The change
// stays recorded even when a handler fails.
func (s *InMemoryEventStore) Append(stream, changeType string, payload any) (Change, error) {
	if stream == "" {
		return Change{}, errors.New("stream cannot be empty")
	}

	s.mutex.Lock()
	change := Change{
		Type:     changeType,
		Stream:   stream,
		Version:  len(s.streams[stream]) + 1,
		Sequence: len(s.log) + 1,
		At:       s.now(),
		Summary:  summarize(payload),
		Payload:  payload,
	}
	s.streams[stream] = append(s.streams[stream], change)
	s.log = append(s.log, change)
	handlers := s.handlersFor(changeType)
	s.mutex.Unlock()

	return change, s.notify(handlers, change)
}

// Stream returns the changes of one stream starting at fromVersion (1-based)
func (s *InMemoryEventStore) Stream(stream string, fromVersion int) ([]Change, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	changes := s.streams[stream]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(changes) {
		return []Change{}, nil
	}
	return append([]Change(nil), changes[fromVersion-1:]...), nil
}

// Since returns every change after the first position changes
func (s *InMemoryEventStore) Since(position int) ([]Change, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if position < 0 {
		position = 0
	}
	if position >= len(s.log) {
		return []Change{}, nil
	}
	return append([]Change(nil), s.log[position:]...), nil
}

// Position returns the number of changes appended so far
func (s *InMemoryEventStore) Position() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.log)
}

func (s *InMemoryEventStore) Subscribe(changeTypes []string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, changeType := range changeTypes {
		s.subscribers[changeType] = append(s.subscribers[changeType], handler)
	}
	return nil
}

func (s *InMemoryEventStore) handlersFor(changeType string) []Handler {
	handlers := make([]Handler, 0, len(s.subscribers[changeType])+len(s.subscribers[AllEventTypes]))
	handlers = append(handlers, s.subscribers[changeType]...)
	handlers = append(handlers, s.subscribers[AllEventTypes]...)
	return handlers
}

func (s *InMemoryEventStore) notify(handlers []Handler, change Change) error {
	var errs []error
	for _, handler := range handlers {
		if !handler.CanHandle(change.Type) {
			continue
		}
		if err := handler.Handle(change); err != nil {
			errs = append(errs, fmt.Errorf("handling %s: %w", change.Type, err))
		}
	}
	return errors.Join(errs...)
}
