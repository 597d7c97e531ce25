package host

import (
	"sync"

	"github.com/justyntemme/vst2go/pkg/debug"
)

// hostEntry is what a callback resolves to: the shared handle plus the
// configuration of the loader that created the instance.
type hostEntry struct {
	handle *Handle
	cfg    *Config
	log    *debug.Logger
}

// registry maps tokens to host entries. A token is registered before the
// plugin entry point runs and is later stored in the descriptor's reserved
// field, so the same token serves both the bootstrap window and the steady
// state. Tokens are never reused.
type registry struct {
	mu      sync.RWMutex
	entries map[uintptr]*hostEntry
	next    uintptr
}

var hosts = newRegistry()

func newRegistry() *registry {
	return &registry{
		entries: make(map[uintptr]*hostEntry),
		next:    1,
	}
}

func (r *registry) register(e *hostEntry) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	token := r.next
	r.next++
	r.entries[token] = e
	return token
}

func (r *registry) unregister(token uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, token)
}

func (r *registry) lookup(token uintptr) *hostEntry {
	if token == 0 {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[token]
}

// resolve picks the entry for a callback. A populated reserved field is
// authoritative; the bootstrap token is only consulted while it is still
// zero.
func (r *registry) resolve(reserved, bootstrap uintptr) *hostEntry {
	if reserved != 0 {
		return r.lookup(reserved)
	}
	return r.lookup(bootstrap)
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
