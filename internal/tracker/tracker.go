// Package tracker maintains the set of client addresses that have already
// submitted the recruitment form since the last scheduled reset.
package tracker

import (
	"sync"

	"github.com/houraiteahouse/recruit-mailer/internal/logger"
)

// Tracker is the in-memory deduplication set for submission addresses.
// State lives for the process lifetime only; a scheduled reset (or restart)
// is the only eviction.
type Tracker struct {
	addresses map[string]struct{}
	mu        sync.RWMutex
	log       *logger.Logger
}

// New creates an empty tracker.
func New(log *logger.Logger) *Tracker {
	return &Tracker{
		addresses: make(map[string]struct{}),
		log:       log,
	}
}

// Has reports whether addr was recorded since the last Clear.
func (t *Tracker) Has(addr string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, found := t.addresses[addr]
	return found
}

// Record marks addr as having submitted. Recording the same address
// twice is harmless.
func (t *Tracker) Record(addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.addresses[addr] = struct{}{}

	t.log.Debug().
		Str("address", addr).
		Int("tracked", len(t.addresses)).
		Msg("recorded submission address")
}

// Clear removes all tracked addresses. Called from the reset scheduler tick.
func (t *Tracker) Clear() {
	t.mu.Lock()
	cleared := len(t.addresses)
	t.addresses = make(map[string]struct{})
	t.mu.Unlock()

	t.log.Info().
		Int("cleared", cleared).
		Msg("cleared submission address list")
}

// Count returns the number of tracked addresses.
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.addresses)
}
