package resolver

import (
	"reflect"
	"sync"
)

// InMemoryResolver is the default MutableDependencyResolver: a registration
// table plus per-key change callbacks. It is safe for concurrent use.
//
// Resolution is last-write-wins: GetService returns the newest surviving
// registration, GetServices returns all of them oldest-first (multi-binding
// consumers want every implementation, in the order they were added).
type InMemoryResolver struct {
	table *table

	cbMu      sync.Mutex
	callbacks map[ServiceKey][]*callbackEntry
}

type callbackEntry struct {
	fn func()
}

// NewInMemoryResolver creates an empty resolver.
func NewInMemoryResolver() *InMemoryResolver {
	return &InMemoryResolver{
		table:     newTable(),
		callbacks: make(map[ServiceKey][]*callbackEntry),
	}
}

var _ MutableDependencyResolver = (*InMemoryResolver)(nil)
var _ Enumerable = (*InMemoryResolver)(nil)

// ── Read side ────────────────────────────────────────────────────────────────

// GetService returns the newest surviving service for the key, or nil when
// nothing is registered. It never fails for an unknown key.
func (r *InMemoryResolver) GetService(serviceType reflect.Type, contract string) any {
	f, ok := r.table.Last(NewServiceKey(serviceType, contract))
	if !ok {
		return nil
	}
	return f()
}

// GetServices invokes every surviving factory for the key in insertion
// order. The result is never nil.
func (r *InMemoryResolver) GetServices(serviceType reflect.Type, contract string) []any {
	factories := r.table.All(NewServiceKey(serviceType, contract))
	out := make([]any, 0, len(factories))
	for _, f := range factories {
		out = append(out, f())
	}
	return out
}

// HasRegistration reports whether the exact (type, contract) key has at
// least one surviving factory.
func (r *InMemoryResolver) HasRegistration(serviceType reflect.Type, contract string) bool {
	return r.table.Has(NewServiceKey(serviceType, contract))
}

// ── Write side ───────────────────────────────────────────────────────────────

// Register appends factory under the key. Panics if factory is nil —
// registering nothing is a programmer error, unlike resolving nothing.
func (r *InMemoryResolver) Register(factory Factory, serviceType reflect.Type, contract string) {
	if factory == nil {
		panic("resolver: Register requires a non-nil factory")
	}
	key := NewServiceKey(serviceType, contract)
	r.table.Add(key, factory)
	r.notify(key)
}

// UnregisterCurrent removes the newest surviving factory for the key. It is
// an idempotent no-op past emptiness: unregistering more times than were
// registered never fails.
func (r *InMemoryResolver) UnregisterCurrent(serviceType reflect.Type, contract string) {
	key := NewServiceKey(serviceType, contract)
	if r.table.RemoveLast(key) {
		r.notify(key)
	}
}

// UnregisterAll removes every factory for the key.
func (r *InMemoryResolver) UnregisterAll(serviceType reflect.Type, contract string) {
	key := NewServiceKey(serviceType, contract)
	if r.table.RemoveAll(key) {
		r.notify(key)
	}
}

// ── Registration callbacks ───────────────────────────────────────────────────

// ServiceRegistrationCallback subscribes cb to registration changes for the
// key. cb fires synchronously once per registration already present (a late
// subscriber still learns the current state), then once per subsequent
// Register/UnregisterCurrent/UnregisterAll that touches the key. The
// returned Disposable removes the subscription.
func (r *InMemoryResolver) ServiceRegistrationCallback(serviceType reflect.Type, contract string, cb func()) (Disposable, error) {
	if cb == nil {
		panic("resolver: ServiceRegistrationCallback requires a non-nil callback")
	}
	key := NewServiceKey(serviceType, contract)
	entry := &callbackEntry{fn: cb}

	r.cbMu.Lock()
	r.callbacks[key] = append(r.callbacks[key], entry)
	r.cbMu.Unlock()

	for range r.table.All(key) {
		cb()
	}

	return NewDisposable(func() {
		r.cbMu.Lock()
		defer r.cbMu.Unlock()
		list := r.callbacks[key]
		for i, e := range list {
			if e == entry {
				r.callbacks[key] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}), nil
}

// notify invokes the key's callbacks outside any table lock.
func (r *InMemoryResolver) notify(key ServiceKey) {
	r.cbMu.Lock()
	list := r.callbacks[key]
	snapshot := make([]*callbackEntry, len(list))
	copy(snapshot, list)
	r.cbMu.Unlock()

	for _, e := range snapshot {
		e.fn()
	}
}

// ── Hand-off support ─────────────────────────────────────────────────────────

// EnumerateRegistrations calls fn for every surviving registration, letting
// a container adapter replay the resolver's contents before taking over.
func (r *InMemoryResolver) EnumerateRegistrations(fn func(key ServiceKey, factory Factory)) {
	r.table.Enumerate(fn)
}
