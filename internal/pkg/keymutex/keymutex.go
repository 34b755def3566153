// Package keymutex provides an in-process mutex keyed by string.
//
// The record store exposes no conditional write, so two concurrent
// read-modify-write sequences on the same order id would race with the
// later persist silently winning. Mutation handlers serialize per order
// id through a shared KeyedMutex instead. Readers never take these locks;
// the aggregation path only performs point-in-time scans.
package keymutex

import "sync"

// KeyedMutex serializes critical sections per key. Locks for distinct
// keys are independent. Lock entries are kept for the process lifetime;
// the key space (order ids of one deployment) is small enough that no
// eviction is needed.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *KeyedMutex) Lock(key string) {
	k.mutexFor(key).Lock()
}

// Unlock releases the mutex for key. Calling Unlock for a key that was
// never locked panics, same as sync.Mutex.
func (k *KeyedMutex) Unlock(key string) {
	k.mutexFor(key).Unlock()
}

func (k *KeyedMutex) mutexFor(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
