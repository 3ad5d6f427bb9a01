package resolver

import "sync"

// table is the registration store: an ordered multi-map from ServiceKey to
// the factories registered under it. A single coarse RWMutex guards the
// whole map — registration churn is a bootstrap-time activity, so contention
// is not a concern.
type table struct {
	mu      sync.RWMutex
	entries map[ServiceKey][]Factory
}

func newTable() *table {
	return &table{entries: make(map[ServiceKey][]Factory)}
}

// Add appends factory to the key's list, creating the list if absent.
func (t *table) Add(key ServiceKey, factory Factory) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key] = append(t.entries[key], factory)
}

// RemoveLast drops the last factory for key and reports whether anything was
// removed. Missing or empty keys are a no-op.
func (t *table) RemoveLast(key ServiceKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	list := t.entries[key]
	if len(list) == 0 {
		return false
	}
	list = list[:len(list)-1]
	if len(list) == 0 {
		delete(t.entries, key)
	} else {
		t.entries[key] = list
	}
	return true
}

// RemoveAll drops every factory for key and reports whether any existed.
func (t *table) RemoveAll(key ServiceKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[key]
	delete(t.entries, key)
	return ok
}

// All returns a copy of the key's factories in insertion order. Never nil.
func (t *table) All(key ServiceKey) []Factory {
	t.mu.RLock()
	defer t.mu.RUnlock()
	list := t.entries[key]
	out := make([]Factory, len(list))
	copy(out, list)
	return out
}

// Last returns the most recently added surviving factory for key.
func (t *table) Last(key ServiceKey) (Factory, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	list := t.entries[key]
	if len(list) == 0 {
		return nil, false
	}
	return list[len(list)-1], true
}

// Has reports whether key has at least one surviving factory.
func (t *table) Has(key ServiceKey) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries[key]) > 0
}

// Enumerate calls fn for each registration, insertion order per key. The
// snapshot is taken under the read lock; fn runs outside it.
func (t *table) Enumerate(fn func(key ServiceKey, factory Factory)) {
	t.mu.RLock()
	snapshot := make(map[ServiceKey][]Factory, len(t.entries))
	for k, list := range t.entries {
		cp := make([]Factory, len(list))
		copy(cp, list)
		snapshot[k] = cp
	}
	t.mu.RUnlock()

	for k, list := range snapshot {
		for _, f := range list {
			fn(k, f)
		}
	}
}
