package state

import (
	"sync"
	"time"

	"printer_sync/internal/models"
)

// Store holds the single authoritative PrinterState for a client session.
// It is created once at startup and shared by pointer between the poller,
// which writes through Apply, and any number of readers.
type Store struct {
	mu   sync.RWMutex
	cur  models.PrinterState
	subs map[int]*subscriber
	next int
	now  func() time.Time
}

type subscriber struct {
	ch chan models.PrinterState
}

// New returns a Store initialized with DefaultPrinterState.
func New() *Store {
	return &Store{
		cur:  models.DefaultPrinterState(),
		subs: make(map[int]*subscriber),
		now:  time.Now,
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() models.PrinterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Clone()
}

// Apply runs fn against a working copy of the state and commits it.
// Subscribers are notified only if something changed.
func (s *Store) Apply(fn func(st *models.PrinterState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur.Clone()
	fn(&next)
	s.commitLocked(next)
}

// SetLight records the light state. The light command is its only caller;
// polling never writes IsLightOn.
func (s *Store) SetLight(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur.Clone()
	next.IsLightOn = on
	s.commitLocked(next)
}

func (s *Store) commitLocked(next models.PrinterState) {
	if next.Equal(s.cur) {
		return
	}
	next.UpdatedAt = s.now().UTC()
	s.cur = next
	for _, sub := range s.subs {
		sub.offer(next.Clone())
	}
}

// Subscribe registers an observer. The channel receives a snapshot after
// every change; a subscriber that falls behind only gets the most recent ones.
// The returned func unsubscribes and closes the channel.
func (s *Store) Subscribe(buffer int) (<-chan models.PrinterState, func()) {
	if buffer < 1 {
		buffer = 1
	}
	sub := &subscriber{ch: make(chan models.PrinterState, buffer)}

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = sub
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// offer never blocks: when the buffer is full the oldest snapshot is dropped.
// Callers hold the store lock, so offers to one subscriber are serialized.
func (sub *subscriber) offer(st models.PrinterState) {
	for {
		select {
		case sub.ch <- st:
			return
		default:
		}
		select {
		case <-sub.ch:
		default:
		}
	}
}
