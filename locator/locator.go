// Package locator holds the active dependency resolver for an application
// and notifies subscribers when it is swapped. A Locator is an explicit
// context object; the package-level functions are the process-wide shim
// over Default for call sites that want a global access point.
package locator

import (
	"reflect"
	"sync"

	"github.com/km-arc/go-locator/resolver"
)

// Locator holds the single active resolver for a scope of the application.
// Prefer constructing one and passing it around explicitly; the package-level
// functions operate on Default for call sites that want a process-wide
// locator.
//
// Swapping the resolver (SetResolver) is an atomic slot replacement, not a
// merge: callers that captured Current() just before a swap keep talking to
// the old resolver instance — an accepted read-then-use race.
type Locator struct {
	mu       sync.RWMutex
	resolver resolver.MutableDependencyResolver

	notifications notificationHub
}

// New creates a Locator backed by a fresh in-memory resolver.
func New() *Locator {
	return &Locator{resolver: resolver.NewInMemoryResolver()}
}

// Default is the process-wide locator used by the package-level functions.
var Default = New()

// ── Resolver slot ────────────────────────────────────────────────────────────

// Current returns the active resolver's read side.
func (l *Locator) Current() resolver.ReadonlyDependencyResolver {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.resolver
}

// CurrentMutable returns the active resolver's write side.
func (l *Locator) CurrentMutable() resolver.MutableDependencyResolver {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.resolver
}

// SetResolver replaces the active resolver wholesale. Panics if r is nil.
// Change callbacks fire synchronously unless currently suppressed.
//
// The usual hand-off sequence is: bootstrap with the in-memory default,
// register platform services, then hand everything to a container adapter
// built with container.FromResolver.
func (l *Locator) SetResolver(r resolver.MutableDependencyResolver) {
	if r == nil {
		panic("locator: SetResolver requires a non-nil resolver")
	}
	l.mu.Lock()
	l.resolver = r
	l.mu.Unlock()

	l.notifications.resolverChanged()
}

// UseResolver installs r and returns a restore func that puts the previous
// resolver back. Tests wrap themselves in it so the locator never leaks
// state across test cases:
//
//	restore := loc.UseResolver(resolver.NewInMemoryResolver())
//	defer restore()
func (l *Locator) UseResolver(r resolver.MutableDependencyResolver) (restore func()) {
	l.mu.RLock()
	previous := l.resolver
	l.mu.RUnlock()

	l.SetResolver(r)
	return func() { l.SetResolver(previous) }
}

// ── Convenience passthroughs ─────────────────────────────────────────────────

// GetService forwards to the active resolver's read side.
func (l *Locator) GetService(serviceType reflect.Type, contract string) any {
	return l.Current().GetService(serviceType, contract)
}

// GetServices forwards to the active resolver's read side.
func (l *Locator) GetServices(serviceType reflect.Type, contract string) []any {
	return l.Current().GetServices(serviceType, contract)
}

// Register forwards to the active resolver's write side.
func (l *Locator) Register(factory resolver.Factory, serviceType reflect.Type, contract string) {
	l.CurrentMutable().Register(factory, serviceType, contract)
}

// HasRegistration forwards to the active resolver's write side.
func (l *Locator) HasRegistration(serviceType reflect.Type, contract string) bool {
	return l.CurrentMutable().HasRegistration(serviceType, contract)
}

// UnregisterCurrent forwards to the active resolver's write side.
func (l *Locator) UnregisterCurrent(serviceType reflect.Type, contract string) {
	l.CurrentMutable().UnregisterCurrent(serviceType, contract)
}

// UnregisterAll forwards to the active resolver's write side.
func (l *Locator) UnregisterAll(serviceType reflect.Type, contract string) {
	l.CurrentMutable().UnregisterAll(serviceType, contract)
}

// ── Package-level shim over Default ──────────────────────────────────────────

// Current returns Default's active read-side resolver.
func Current() resolver.ReadonlyDependencyResolver { return Default.Current() }

// CurrentMutable returns Default's active write-side resolver.
func CurrentMutable() resolver.MutableDependencyResolver { return Default.CurrentMutable() }

// SetResolver swaps Default's active resolver. Panics if r is nil.
func SetResolver(r resolver.MutableDependencyResolver) { Default.SetResolver(r) }

// UseResolver installs r on Default and returns the restore func.
func UseResolver(r resolver.MutableDependencyResolver) (restore func()) {
	return Default.UseResolver(r)
}
