package config

import (
	"sync"
	"time"

	"github.com/go-logr/logr"

	"cferrpage/internal/rayid"
)

// Listener is called with a copy of the configuration after every change.
// When a listener writes to the store, listeners after it are not called with
// the superseded snapshot; they only see the newer one.
type Listener func(Configuration)

// Subscription is the handle returned by Store.OnChange.
type Subscription struct {
	id    uint64
	store *Store
}

// Unsubscribe removes the listener. Calling it more than once is safe.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.store == nil {
		return
	}
	s.store.unsubscribe(s.id)
}

type registration struct {
	id       uint64
	listener Listener
}

// Store owns the current Configuration. Reads return copies; every write is
// normalized and then announced to listeners synchronously, in the order they
// subscribed.
type Store struct {
	mu       sync.RWMutex
	current  Configuration
	defaults Defaults
	logger   logr.Logger

	listeners []registration
	nextID    uint64
	version   uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report failing listeners.
func WithLogger(logger logr.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock sets the clock used for generated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.defaults.Now = now
	}
}

// WithRayIDGenerator sets the generator used for blank ray ids.
func WithRayIDGenerator(gen rayid.Generator) Option {
	return func(s *Store) {
		s.defaults.RayID = gen
	}
}

// New creates a Store holding the normalized default configuration.
func New(opts ...Option) *Store {
	s := &Store{logger: logr.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.current = Normalize(DefaultTemplate(), s.defaults)
	return s
}

// Get returns a copy of the current configuration.
func (s *Store) Get() Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Default returns the un-normalized default template.
func (s *Store) Default() Configuration {
	return DefaultTemplate()
}

// Update merges p over the current configuration, normalizes the result and
// notifies listeners. A nil p is ignored.
func (s *Store) Update(p *Partial) {
	if p == nil {
		return
	}
	s.mu.Lock()
	s.current = Normalize(p.apply(s.current), s.defaults)
	s.version++
	snapshot, version, listeners := s.current, s.version, s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot, version, listeners)
}

// UpdateMap is Update for decoded mappings. A nil map is ignored.
func (s *Store) UpdateMap(m map[string]any) {
	if p, ok := PartialFromMap(m); ok {
		s.Update(p)
	}
}

// UpdateJSON is Update for a raw JSON object. Input that is not a JSON object
// is ignored.
func (s *Store) UpdateJSON(data []byte) {
	if p, ok := PartialFromJSON(data); ok {
		s.Update(p)
	}
}

// Reset replaces the configuration with freshly normalized defaults and
// notifies listeners.
func (s *Store) Reset() {
	s.mu.Lock()
	s.current = Normalize(DefaultTemplate(), s.defaults)
	s.version++
	snapshot, version, listeners := s.current, s.version, s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot, version, listeners)
}

// OnChange registers listener. It returns ErrNilListener when listener is nil.
func (s *Store) OnChange(listener Listener) (*Subscription, error) {
	if listener == nil {
		return nil, ErrNilListener
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, registration{id: id, listener: listener})
	return &Subscription{id: id, store: s}, nil
}

// ListenerCount returns the number of registered listeners.
func (s *Store) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// ClearListeners removes every listener.
func (s *Store) ClearListeners() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = nil
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, reg := range s.listeners {
		if reg.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *Store) snapshotLocked() []registration {
	out := make([]registration, len(s.listeners))
	copy(out, s.listeners)
	return out
}

// notify runs outside the lock so listeners may read or update the store.
// It stops once a newer write has started its own notification.
func (s *Store) notify(c Configuration, version uint64, listeners []registration) {
	for _, reg := range listeners {
		if s.superseded(version) {
			return
		}
		s.deliver(reg, c)
	}
}

func (s *Store) superseded(version uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version != version
}

func (s *Store) deliver(reg registration, c Configuration) {
	defer func() {
		if r := recover(); r != nil {
			logListenerError(s.logger, listenerError(reg.id, r), "Config change listener failed")
		}
	}()
	reg.listener(c)
}
