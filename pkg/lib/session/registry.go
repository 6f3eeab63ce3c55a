// Package session is the orchestration core: the registry that enforces
// one control process per resource key, the dispatcher that turns RPC
// requests into lifecycle actions, and the supervisor that reaps exits.
package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
	"github.com/haoyan-ts/dexhand-manager/pkg/lib/control"
)

// Ticket proves ownership of a registry reservation. Release requires the
// matching ticket; stale releases are reported, not executed.
type Ticket uint64

// Registry maps each resource key to at most one live session. Mutations of
// the key set happen under a short registry-wide lock; per-session mutation
// is serialized by a per-entry mutex, so unrelated keys never contend.
type Registry struct {
	mu   sync.RWMutex
	next uint64
	live map[lib.ResourceKey]*entry
	// last holds the most recent terminal handle per key, retrievable via
	// Query until a new session for that key supersedes it.
	last map[lib.ResourceKey]*control.Handle
	log  zerolog.Logger
}

type entry struct {
	mu     sync.Mutex
	ticket Ticket
	handle *control.Handle // nil between Acquire and Bind
	owner  string
}

func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		live: make(map[lib.ResourceKey]*entry),
		last: make(map[lib.ResourceKey]*control.Handle),
		log:  log,
	}
}

// Acquire atomically reserves the key. If a live session exists the call
// fails with ResourceInUseError carrying the current state.
func (r *Registry) Acquire(key lib.ResourceKey) (Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.live[key]; ok {
		state := lib.StateStarting // reservation exists but spawn not finished
		if e.handle != nil {
			state = e.handle.State()
		}
		return 0, &lib.ResourceInUseError{Key: key, State: state}
	}

	r.next++
	t := Ticket(r.next)
	r.live[key] = &entry{ticket: t}
	return t, nil
}

// Bind attaches the spawned handle (and the identity that started it) to an
// existing reservation. The new session supersedes any historical record
// for the key.
func (r *Registry) Bind(key lib.ResourceKey, t Ticket, h *control.Handle, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.live[key]
	if !ok || e.ticket != t {
		return lib.ErrAlreadyReleased
	}
	e.handle = h
	e.owner = owner
	delete(r.last, key)
	return nil
}

// Rollback drops a reservation without recording any history. Used when a
// Start fails before its control process ever ran.
func (r *Registry) Rollback(key lib.ResourceKey, t Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.live[key]
	if !ok || e.ticket != t {
		return lib.ErrAlreadyReleased
	}
	delete(r.live, key)
	return nil
}

// ReleaseHandle releases the entry currently bound to h, keeping h as the
// key's historical record. This is the supervisory release path: the
// registry resolves the reservation ticket internally after verifying the
// entry is still bound to this exact handle.
func (r *Registry) ReleaseHandle(h *control.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := h.Key()
	e, ok := r.live[key]
	if !ok || e.handle != h {
		return lib.ErrAlreadyReleased
	}
	r.last[key] = h
	delete(r.live, key)
	return nil
}

// Lookup returns the live handle for the key, if any. The handle may be nil
// for a reservation whose spawn is still in flight.
func (r *Registry) Lookup(key lib.ResourceKey) (*control.Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.live[key]
	if !ok {
		return nil, false
	}
	return e.handle, true
}

// Owner returns the identity that started the live session for the key.
func (r *Registry) Owner(key lib.ResourceKey) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.live[key]
	if !ok {
		return "", false
	}
	return e.owner, true
}

// LastKnown returns the historical record for the key, if one exists.
func (r *Registry) LastKnown(key lib.ResourceKey) (*control.Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.last[key]
	return h, ok
}

// Mutate runs fn under the key's critical section with the bound handle.
// Mutations on the same key are serialized; distinct keys run concurrently.
func (r *Registry) Mutate(key lib.ResourceKey, fn func(h *control.Handle) error) error {
	r.mu.RLock()
	e, ok := r.live[key]
	r.mu.RUnlock()

	if !ok || e == nil {
		return lib.ErrNoActiveSession
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handle == nil {
		return lib.ErrNoActiveSession
	}
	return fn(e.handle)
}

// Live returns a snapshot of all bound live handles.
func (r *Registry) Live() []*control.Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handles := make([]*control.Handle, 0, len(r.live))
	for _, e := range r.live {
		if e.handle != nil {
			handles = append(handles, e.handle)
		}
	}
	return handles
}

// LiveCount reports the number of live sessions, including in-flight
// reservations.
func (r *Registry) LiveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.live)
}

// Records returns the historical handles that have not been superseded.
func (r *Registry) Records() []*control.Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*control.Handle, 0, len(r.last))
	for _, h := range r.last {
		records = append(records, h)
	}
	return records
}
