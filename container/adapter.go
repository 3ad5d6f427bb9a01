package container

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/km-arc/go-locator/resolver"
)

// Adapter implements the resolver contract on top of a Container, so the
// locator can hand resolution over to a full container after bootstrap:
//
//	adapter := container.FromResolver(container.New(), locator.CurrentMutable())
//	locator.SetResolver(adapter)
//
// Each (type, contract) key maps to a stack of container bindings, which
// preserves last-write-wins resolution and UnregisterCurrent's peel-back
// semantics even though the container itself keeps one binding per
// abstract.
type Adapter struct {
	c *Container

	mu     sync.Mutex
	keys   map[resolver.ServiceKey]*keyState
	nextID int
}

// keyState tracks the container abstracts bound for one service key, in
// insertion order.
type keyState struct {
	base  string
	names []string
	next  int
}

// NewAdapter wraps c. Panics if c is nil.
func NewAdapter(c *Container) *Adapter {
	if c == nil {
		panic("container: NewAdapter requires a non-nil container")
	}
	return &Adapter{c: c, keys: make(map[resolver.ServiceKey]*keyState)}
}

// FromResolver wraps c and replays every registration of prev into it, the
// hand-off pattern: nothing registered during bootstrap is lost when the
// container takes over. Resolvers that cannot enumerate themselves are
// skipped silently.
func FromResolver(c *Container, prev resolver.ReadonlyDependencyResolver) *Adapter {
	a := NewAdapter(c)
	if e, ok := prev.(resolver.Enumerable); ok {
		e.EnumerateRegistrations(func(key resolver.ServiceKey, factory resolver.Factory) {
			a.Register(factory, key.Type, key.Contract)
		})
	}
	return a
}

var _ resolver.MutableDependencyResolver = (*Adapter)(nil)

// Container exposes the wrapped container for direct use of its richer API
// (tags, extenders, contextual bindings).
func (a *Adapter) Container() *Container { return a.c }

// ── Write side ───────────────────────────────────────────────────────────────

// Register binds factory under a fresh container abstract for the key.
func (a *Adapter) Register(factory resolver.Factory, serviceType reflect.Type, contract string) {
	if factory == nil {
		panic("container: Register requires a non-nil factory")
	}
	key := resolver.NewServiceKey(serviceType, contract)

	a.mu.Lock()
	state, ok := a.keys[key]
	if !ok {
		state = &keyState{base: fmt.Sprintf("svc%d:%s", a.nextID, key)}
		a.nextID++
		a.keys[key] = state
	}
	name := fmt.Sprintf("%s#%d", state.base, state.next)
	state.next++
	state.names = append(state.names, name)
	a.mu.Unlock()

	a.c.Bind(name, func(*Container) any { return factory() })
}

// UnregisterCurrent forgets the newest binding for the key. No-op past
// emptiness.
func (a *Adapter) UnregisterCurrent(serviceType reflect.Type, contract string) {
	key := resolver.NewServiceKey(serviceType, contract)

	a.mu.Lock()
	state := a.keys[key]
	var name string
	if state != nil && len(state.names) > 0 {
		name = state.names[len(state.names)-1]
		state.names = state.names[:len(state.names)-1]
	}
	a.mu.Unlock()

	if name != "" {
		a.c.Forget(name)
	}
}

// UnregisterAll forgets every binding for the key.
func (a *Adapter) UnregisterAll(serviceType reflect.Type, contract string) {
	key := resolver.NewServiceKey(serviceType, contract)

	a.mu.Lock()
	state := a.keys[key]
	var names []string
	if state != nil {
		names = state.names
		state.names = nil
	}
	a.mu.Unlock()

	for _, name := range names {
		a.c.Forget(name)
	}
}

// HasRegistration reports whether the key has at least one live binding.
func (a *Adapter) HasRegistration(serviceType reflect.Type, contract string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	state := a.keys[resolver.NewServiceKey(serviceType, contract)]
	return state != nil && len(state.names) > 0
}

// ServiceRegistrationCallback is not supported by the container backend:
// the container has no per-binding change hook equivalent. Callers must
// treat this as "operation unavailable", not "no callbacks registered".
func (a *Adapter) ServiceRegistrationCallback(reflect.Type, string, func()) (resolver.Disposable, error) {
	return nil, resolver.ErrCallbackNotSupported
}

// ── Read side ────────────────────────────────────────────────────────────────

// GetService resolves the newest binding for the key through the container,
// or nil when none survives.
func (a *Adapter) GetService(serviceType reflect.Type, contract string) any {
	a.mu.Lock()
	state := a.keys[resolver.NewServiceKey(serviceType, contract)]
	var name string
	if state != nil && len(state.names) > 0 {
		name = state.names[len(state.names)-1]
	}
	a.mu.Unlock()

	if name == "" {
		return nil
	}
	return a.c.Make(name)
}

// GetServices resolves every surviving binding oldest-first. Never nil.
func (a *Adapter) GetServices(serviceType reflect.Type, contract string) []any {
	a.mu.Lock()
	state := a.keys[resolver.NewServiceKey(serviceType, contract)]
	var names []string
	if state != nil {
		names = make([]string, len(state.names))
		copy(names, state.names)
	}
	a.mu.Unlock()

	out := make([]any, 0, len(names))
	for _, name := range names {
		out = append(out, a.c.Make(name))
	}
	return out
}

// EnumerateRegistrations lets yet another resolver replay this adapter's
// registrations, chaining hand-offs.
func (a *Adapter) EnumerateRegistrations(fn func(key resolver.ServiceKey, factory resolver.Factory)) {
	a.mu.Lock()
	snapshot := make(map[resolver.ServiceKey][]string, len(a.keys))
	for key, state := range a.keys {
		names := make([]string, len(state.names))
		copy(names, state.names)
		snapshot[key] = names
	}
	a.mu.Unlock()

	for key, names := range snapshot {
		for _, name := range names {
			name := name
			fn(key, func() any { return a.c.Make(name) })
		}
	}
}
