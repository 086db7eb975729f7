package duel

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Skelly0/DuelBot/internal/domain/duel"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
)

// entry is one live match with its own lock. Lock order is entry.mu, then
// registry.mu; never the other way round.
type entry struct {
	key string

	mu           sync.Mutex
	match        *duel.Match
	lastActivity time.Time
	removed      bool

	createdAt time.Time

	// snapshot is a detached copy published after every mutation, read without mu
	snapshot atomic.Pointer[duel.Match]
}

// publish stores a fresh copy of the match for lock-free readers. Caller holds e.mu.
func (e *entry) publish() {
	e.snapshot.Store(e.match.Clone())
}

// touch records activity and publishes. Caller holds e.mu.
func (e *entry) touch(now time.Time) {
	e.lastActivity = now
	e.publish()
}

// registry maps a match key (the channel) to its live entry
type registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func newRegistry() *registry {
	return &registry{
		entries: make(map[string]*entry),
	}
}

// create inserts a match under its key, failing if the slot is taken
func (r *registry) create(m *duel.Match, now time.Time) (*entry, error) {
	e := &entry{
		key:          m.Key,
		match:        m,
		createdAt:    now,
		lastActivity: now,
	}
	e.publish()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[m.Key]; exists {
		return nil, duelerr.AlreadyExistsf("a duel is already in progress here").WithMeta("key", m.Key)
	}
	r.entries[m.Key] = e
	return e, nil
}

func (r *registry) get(key string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e, ok
}

// remove deletes the key only if it still maps to e, so a stale entry can never
// evict a newer match created under the same key
func (r *registry) remove(e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.entries[e.key]; ok && current == e {
		delete(r.entries, e.key)
	}
}

// list returns a stable snapshot of the current entries ordered by key
func (r *registry) list() []*entry {
	r.mu.RLock()
	out := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

func (r *registry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
