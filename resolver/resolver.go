package resolver

import (
	"errors"
	"reflect"
	"sync"
)

// ── Contracts ────────────────────────────────────────────────────────────────

// Factory builds a service instance on demand.
type Factory func() any

// ReadonlyDependencyResolver is the read side of a resolver: look up one or
// all services registered for a (type, contract) key.
//
// Absence is not an error — GetService returns nil and GetServices returns
// an empty slice for keys with no surviving registration.
type ReadonlyDependencyResolver interface {
	// GetService returns the most recently registered surviving service for
	// the key, or nil when nothing is registered.
	GetService(serviceType reflect.Type, contract string) any

	// GetServices returns every surviving service for the key in
	// registration order. The result is never nil.
	GetServices(serviceType reflect.Type, contract string) []any
}

// MutableDependencyResolver is the write side: the full register/unregister
// contract implemented by the in-memory default and by container adapters.
type MutableDependencyResolver interface {
	ReadonlyDependencyResolver

	// Register appends factory under (serviceType, contract). Re-registering
	// the same key is how a caller overrides a prior registration without
	// destroying it: GetService returns the newest, UnregisterCurrent peels
	// back to the previous one.
	Register(factory Factory, serviceType reflect.Type, contract string)

	// HasRegistration reports whether at least one surviving factory exists
	// for the key. Contracts are isolated: a registration under contract
	// "A" is invisible to lookups with no contract or another contract.
	HasRegistration(serviceType reflect.Type, contract string) bool

	// UnregisterCurrent removes the most recently added surviving factory
	// for the key. Calling it on an empty or unknown key is a silent no-op,
	// never an error, no matter how often it is repeated.
	UnregisterCurrent(serviceType reflect.Type, contract string)

	// UnregisterAll removes every factory for the key. No-op when none exist.
	UnregisterAll(serviceType reflect.Type, contract string)

	// ServiceRegistrationCallback subscribes cb to registration changes for
	// the key. Implementations without an equivalent hook return
	// ErrCallbackNotSupported; that is distinct from "supported, no
	// subscribers".
	ServiceRegistrationCallback(serviceType reflect.Type, contract string, cb func()) (Disposable, error)
}

// Enumerable is implemented by resolvers that can list their registrations,
// letting an adapter replay them into a third-party container during
// hand-off.
type Enumerable interface {
	// EnumerateRegistrations calls fn for every surviving registration in
	// insertion order per key.
	EnumerateRegistrations(fn func(key ServiceKey, factory Factory))
}

// ErrCallbackNotSupported is returned by ServiceRegistrationCallback when
// the backing container has no registration-change hook.
var ErrCallbackNotSupported = errors.New("resolver: service registration callbacks not supported")

// ── Disposable ───────────────────────────────────────────────────────────────

// Disposable releases a subscription or scope. Dispose is safe to call more
// than once; only the first call has any effect.
type Disposable interface {
	Dispose()
}

type actionDisposable struct {
	once sync.Once
	fn   func()
}

func (d *actionDisposable) Dispose() { d.once.Do(d.fn) }

// NewDisposable wraps fn as a run-once Disposable. Panics if fn is nil.
func NewDisposable(fn func()) Disposable {
	if fn == nil {
		panic("resolver: NewDisposable requires a non-nil func")
	}
	return &actionDisposable{fn: fn}
}

// ── Registration sugar ───────────────────────────────────────────────────────

// RegisterConstant registers a pre-built value; every resolution returns the
// same instance.
func RegisterConstant(r MutableDependencyResolver, value any, serviceType reflect.Type, contract string) {
	r.Register(func() any { return value }, serviceType, contract)
}

// RegisterLazySingleton registers factory wrapped in a Lazy: it runs at most
// once on success, and every resolution returns the memoized instance.
func RegisterLazySingleton(r MutableDependencyResolver, factory Factory, serviceType reflect.Type, contract string) {
	r.Register(NewLazy(factory).Value, serviceType, contract)
}
