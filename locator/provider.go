package locator

import (
	"sync"

	"github.com/km-arc/go-locator/resolver"
)

// ── ServiceProvider interface ────────────────────────────────────────────────

// ServiceProvider groups related registrations so an application can
// assemble its locator from composable pieces.
//
// Register runs during the registration phase and must only add
// registrations; Boot runs after every provider has registered, so it is
// safe to resolve other services there.
//
//	type LoggingProvider struct{ locator.BaseProvider }
//
//	func (p *LoggingProvider) Register(r resolver.MutableDependencyResolver) {
//	    resolver.RegisterLazySingleton(r, newLogger, resolver.TypeOf[logging.Logger](), "")
//	}
type ServiceProvider interface {
	// Register adds this provider's registrations. Do not resolve other
	// services here; use Boot for that.
	Register(r resolver.MutableDependencyResolver)

	// Boot is called after all providers have registered.
	Boot(l *Locator)

	// Provides lists the keys this provider registers. Only consulted for
	// deferred providers.
	Provides() []resolver.ServiceKey

	// IsDeferred reports whether registration should wait until one of the
	// Provides keys is first resolved.
	IsDeferred() bool
}

// BaseProvider supplies no-op Boot, Provides and IsDeferred. Embed it and
// override only what the provider needs.
type BaseProvider struct{}

func (BaseProvider) Boot(_ *Locator)                 {}
func (BaseProvider) Provides() []resolver.ServiceKey { return nil }
func (BaseProvider) IsDeferred() bool                { return false }

// ── ProviderRegistry ─────────────────────────────────────────────────────────

// ProviderRegistry runs ServiceProviders against a Locator in two phases:
// register everything, then boot everything. Deferred providers are held
// back until one of their provided keys is first resolved.
type ProviderRegistry struct {
	locator    *Locator
	eager      []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
	mu         sync.Mutex
}

// NewProviderRegistry creates a registry bound to l.
func NewProviderRegistry(l *Locator) *ProviderRegistry {
	return &ProviderRegistry{
		locator:    l,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and, unless it is deferred, immediately runs its
// Register phase. Registering the same provider twice is a no-op. Change
// notifications are suppressed for the duration of the provider's
// registrations.
func (pr *ProviderRegistry) Register(provider ServiceProvider) {
	pr.mu.Lock()
	if pr.registered[provider] {
		pr.mu.Unlock()
		return
	}
	pr.registered[provider] = true
	booted := pr.booted
	pr.mu.Unlock()

	if provider.IsDeferred() {
		pr.interceptDeferred(provider)
		return
	}

	scope := pr.locator.SuppressResolverCallbackChangedNotifications()
	provider.Register(pr.locator.CurrentMutable())
	scope.Dispose()

	pr.mu.Lock()
	pr.eager = append(pr.eager, provider)
	pr.mu.Unlock()

	// A provider registered after Boot is booted right away.
	if booted {
		provider.Boot(pr.locator)
	}
}

// interceptDeferred installs a placeholder factory per provided key. The
// first resolution of any of them tears the placeholders down, runs the real
// Register (and Boot, when the registry has booted), then resolves again.
// The provided keys are owned by the provider: nothing else should register
// under them before the trigger fires.
func (pr *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	keys := provider.Provides()
	var once sync.Once

	trigger := func() {
		once.Do(func() {
			r := pr.locator.CurrentMutable()
			for _, k := range keys {
				r.UnregisterAll(k.Type, k.Contract)
			}
			provider.Register(r)

			pr.mu.Lock()
			pr.eager = append(pr.eager, provider)
			booted := pr.booted
			pr.mu.Unlock()
			if booted {
				provider.Boot(pr.locator)
			}
		})
	}

	r := pr.locator.CurrentMutable()
	for _, k := range keys {
		k := k
		r.Register(func() any {
			trigger()
			return pr.locator.Current().GetService(k.Type, k.Contract)
		}, k.Type, k.Contract)
	}
}

// Boot runs the Boot phase on every eagerly registered provider. Idempotent.
func (pr *ProviderRegistry) Boot() {
	pr.mu.Lock()
	if pr.booted {
		pr.mu.Unlock()
		return
	}
	pr.booted = true
	providers := make([]ServiceProvider, len(pr.eager))
	copy(providers, pr.eager)
	pr.mu.Unlock()

	for _, provider := range providers {
		provider.Boot(pr.locator)
	}
}

// Booted reports whether Boot has run.
func (pr *ProviderRegistry) Booted() bool {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.booted
}

// Providers returns the providers whose Register phase has run.
func (pr *ProviderRegistry) Providers() []ServiceProvider {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	out := make([]ServiceProvider, len(pr.eager))
	copy(out, pr.eager)
	return out
}
